/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"testing"

	"github.com/skymond-software/rest-server-sub004/value"
)

func TestBuildDispatchLookup(t *testing.T) {
	called := false
	dt := buildDispatch([]NamespaceDesc{
		{
			Name: "webService",
			Functions: []FunctionDesc{
				{Name: "echo", Fn: func(req value.Request) value.Response {
					called = true
					return nil
				}},
			},
		},
	})

	fn, known := dt.lookup("webService", "echo")
	if !known || fn == nil {
		t.Fatal("expected webService.echo to resolve")
	}
	fn(nil)
	if !called {
		t.Fatal("expected resolved function to be callable")
	}
}

func TestBuildDispatchUnknownNamespace(t *testing.T) {
	dt := buildDispatch(nil)
	_, known := dt.lookup("nope", "nope")
	if known {
		t.Fatal("expected unknown namespace")
	}
}

func TestBuildDispatchUnknownFunctionKnownNamespace(t *testing.T) {
	dt := buildDispatch([]NamespaceDesc{{Name: "webService"}})
	fn, known := dt.lookup("webService", "missing")
	if !known {
		t.Fatal("expected namespace to be known")
	}
	if fn != nil {
		t.Fatal("expected nil function for unregistered name")
	}
}

func TestBuildDispatchCaseSensitive(t *testing.T) {
	dt := buildDispatch([]NamespaceDesc{
		{Name: "webService", Functions: []FunctionDesc{{Name: "Echo", Fn: func(value.Request) value.Response { return nil }}}},
	})
	if _, known := dt.lookup("WebService", "Echo"); known {
		t.Fatal("namespace lookup must be case-sensitive")
	}
	if fn, _ := dt.lookup("webService", "echo"); fn != nil {
		t.Fatal("function lookup must be case-sensitive")
	}
}
