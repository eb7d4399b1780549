/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"testing"

	"github.com/skymond-software/rest-server-sub004/value"
)

func TestTruncateAtQuery(t *testing.T) {
	if got := truncateAtQuery("/a/b?x=1"); got != "/a/b" {
		t.Fatalf("got %q", got)
	}
	if got := truncateAtQuery("/a/b"); got != "/a/b" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeGETArgsPrefixesKeys(t *testing.T) {
	p := decodeGETArgs("q=hi&empty=")
	v, ok := p.Get("GET:q")
	if !ok || v.AsString() != "hi" {
		t.Fatalf("expected GET:q=hi, got %v ok=%v", v, ok)
	}
	if p.Has("q") {
		t.Fatal("unprefixed key must not be present")
	}
}

func TestDecodeGETArgsURLDecodesValues(t *testing.T) {
	p := decodeGETArgs("q=hello%20world")
	v, _ := p.Get("GET:q")
	if v.AsString() != "hello world" {
		t.Fatalf("got %q", v.AsString())
	}
}

func TestDispatchGETInvokesRegisteredFunction(t *testing.T) {
	var seen value.Request
	dt := buildDispatch([]NamespaceDesc{
		{Name: "webService", Functions: []FunctionDesc{
			{Name: "f", Fn: func(req value.Request) value.Response {
				seen = req
				resp := value.NewParams()
				resp.Add("ok", value.Bool(true))
				return resp
			}},
		}},
	})

	c := &connCtx{dtab: dt}
	resp, name := c.dispatchGET("/webService/f?q=hi")
	if name != "f" {
		t.Fatalf("got function name %q", name)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}
	if v, ok := seen.Get("GET:q"); !ok || v.AsString() != "hi" {
		t.Fatalf("expected GET:q=hi in handler args, got %v", seen)
	}
}

func TestDispatchGETFallsThroughOnUnknownNamespace(t *testing.T) {
	c := &connCtx{dtab: buildDispatch(nil)}
	resp, _ := c.dispatchGET("/unknown/f")
	if resp != nil {
		t.Fatal("expected nil response for unknown namespace")
	}
}

func TestDispatchGETFallsThroughOnHandlerReturningNil(t *testing.T) {
	dt := buildDispatch([]NamespaceDesc{
		{Name: "webService", Functions: []FunctionDesc{
			{Name: "f", Fn: func(value.Request) value.Response { return nil }},
		}},
	})
	c := &connCtx{dtab: dt}
	resp, _ := c.dispatchGET("/webService/f")
	if resp != nil {
		t.Fatal("expected nil response when handler returns nil")
	}
}
