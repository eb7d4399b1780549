/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package rpcserver implements the embeddable HTTP/1.1 server with
// pluggable web-service dispatch described by SPEC_FULL.md: a host
// application configures one or more Listeners, registers namespaced RPC
// functions, and the server accepts client connections, parses HTTP
// requests, dispatches them to a registered function or to the
// static-file responder, serializes the result as XML (SOAP) or JSON, and
// returns it.
package rpcserver

import (
	"net"

	"github.com/skymond-software/rest-server-sub004/cookie"
	"github.com/skymond-software/rest-server-sub004/hdr"
	"github.com/skymond-software/rest-server-sub004/value"
)

// Func is a registered RPC function: given the decoded request parameters
// it returns a response object, or nil to mean "not this function" (spec.md
// §4.6 step 2 / §4.7 step 5 / §7 "Handler returns null").
type Func func(req value.Request) value.Response

// FunctionDesc names one callable within a namespace.
type FunctionDesc struct {
	Name string
	Fn   Func
}

// NamespaceDesc is one entry of the declarative list the Dispatch table is
// built from at listener startup (spec.md §3, §4.1 step 1).
type NamespaceDesc struct {
	Name      string
	Functions []FunctionDesc
}

// RedirectFunc implements the "redirectFunction" resolution path of
// spec.md §4.5 step 1: given the connection, the configured root, the
// parsed header map, the raw body and the cookie map, it returns the
// target URL and whether it applies to this request at all.
type RedirectFunc func(conn net.Conn, root string, headers hdr.Header, body []byte, cookies cookie.Map) (redirectURL string, ok bool)

// CookieFunc is the optional cookies_handler hook (spec.md §6); it has no
// return value.
type CookieFunc func(cookies cookie.Map)

// RequestHookFunc is the optional pre-invoke request_object_handler hook
// (spec.md §4.7 step 4 / §6).
type RequestHookFunc func(req value.Request)
