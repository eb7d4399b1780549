/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"testing"

	"github.com/skymond-software/rest-server-sub004/hdr"
)

func TestResolveNamespaceFunctionFromSOAPAction(t *testing.T) {
	c := &connCtx{headers: hdr.Header{}}
	c.headers.Set(hdr.SOAPAction, `"example.com/webService/echo"`)

	ns, fn := c.resolveNamespaceFunction()
	if ns != "webService" || fn != "echo" {
		t.Fatalf("got ns=%q fn=%q", ns, fn)
	}
}

func TestResolveNamespaceFunctionFromSOAPActionTwoLine(t *testing.T) {
	c := &connCtx{headers: hdr.Header{}}
	c.headers.Set(hdr.SOAPAction, "\"example.com/webService\n/echo\"")

	ns, fn := c.resolveNamespaceFunction()
	if ns != "webService" || fn != "echo" {
		t.Fatalf("got ns=%q fn=%q", ns, fn)
	}
}

func TestResolveNamespaceFunctionFallsBackToLocation(t *testing.T) {
	c := &connCtx{headers: hdr.Header{}}
	c.headers[hdr.Location] = "/webService/echo?x=1"

	ns, fn := c.resolveNamespaceFunction()
	if ns != "webService" || fn != "echo" {
		t.Fatalf("got ns=%q fn=%q", ns, fn)
	}
}

func TestSelectCodecJSON(t *testing.T) {
	c := &connCtx{handle: &Handle{config: &Config{}}}
	decode, chosen, commandType := c.selectCodec("application/json")
	if decode == nil || chosen.Encode == nil || commandType != "json" {
		t.Fatal("expected JSON codec selected")
	}
}

func TestSelectCodecSOAP(t *testing.T) {
	c := &connCtx{handle: &Handle{config: &Config{}}}
	decode, chosen, commandType := c.selectCodec(`text/xml; action="soap"`)
	if decode == nil || chosen.Encode == nil || commandType != "xml" {
		t.Fatal("expected XML codec selected")
	}
}

func TestSelectCodecUnknownContentTypeSkipsDecode(t *testing.T) {
	c := &connCtx{handle: &Handle{config: &Config{}}}
	decode, chosen, commandType := c.selectCodec("")
	if decode != nil {
		t.Fatal("expected no decoder for unknown content type")
	}
	if chosen.Encode == nil {
		t.Fatal("expected a default JSON encoder for the response regardless")
	}
	if commandType != "" {
		t.Fatalf("got commandType %q", commandType)
	}
}
