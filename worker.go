/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"crypto/tls"
	"net"
	"strconv"
	"time"

	"github.com/skymond-software/rest-server-sub004/cookie"
	"github.com/skymond-software/rest-server-sub004/hdr"
	"github.com/skymond-software/rest-server-sub004/transport"
)

// readBudget is the per-connection bounded wall-clock budget for receiving
// the request (spec.md §4.2 step 1, §5 "per-read has a budget derived from
// the 3-second per-connection read budget").
const readBudget = 3 * time.Second

// connCtx is the per-request Connection Context (spec.md §3): everything a
// worker needs to serve one connection, freed when serve returns.
type connCtx struct {
	conn    net.Conn
	handle  *Handle
	root    string
	name    string
	scheme  string
	dtab    dispatchTable
	redir   redirectSettings
	headers hdr.Header
	cookies cookie.Map
	body    []byte
}

// serve owns conn for its lifetime: it is the Connection Worker of spec.md
// §4.2. It never lets a handler panic escape to the listener, always
// decrements the worker count, and always closes conn before returning.
func (h *Handle) serve(conn net.Conn) {
	defer h.workerFinished()
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			h.config.logger().WithField("panic", r).Error("recovered from handler panic")
		}
	}()

	scheme := "http"
	if _, ok := conn.(*tls.Conn); ok {
		scheme = "https"
	}

	ctx := &connCtx{
		conn:   conn,
		handle: h,
		root:   h.config.Root,
		name:   h.config.Name,
		scheme: scheme,
		dtab:   h.dtab,
		redir:  h.redirectSnapshot(),
	}

	buf := readUntilHeaderEnd(conn, readBudget)
	if len(buf) == 0 {
		return
	}

	headers, body, ok := hdr.Parse(buf)
	if !ok {
		return
	}
	ctx.headers = headers
	ctx.body = body

	if cl := headers.Get(hdr.ContentLength); cl != "" {
		want, err := strconv.Atoi(cl)
		if err == nil && want > 0 {
			ctx.body = readUntilBodyComplete(conn, ctx.body, want, readBudget)
		}
	}

	if h.config.CookieFunc != nil {
		ctx.cookies = cookie.Parse(headers.Get(hdr.CookieHeader), headers.Get(hdr.Host))
		h.config.CookieFunc(ctx.cookies)
	}

	defer h.requestCompleted()

	switch headers.Get(hdr.Command) {
	case "GET":
		ctx.handleGET()
	case "POST":
		ctx.handlePOST()
	case "HEAD":
		ctx.handleHEAD()
	case "OPTIONS":
		ctx.handleOPTIONS()
	default:
		h.config.logger().WithField("command", headers.Get(hdr.Command)).Warn("unsupported method")
	}
}

// readUntilHeaderEnd implements spec.md §4.2 step 1: grow buf until it
// contains a header terminator, the budget elapses, or the peer closes. A
// buffer with no terminator is still returned — hdr.Parse treats that as
// malformed input (spec.md §7: incomplete header parses to null).
func readUntilHeaderEnd(conn net.Conn, budget time.Duration) []byte {
	deadline := time.Now().Add(budget)
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)

	for {
		if _, found := hdr.HeaderEnd(buf); found {
			return buf
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return buf
		}
		n, err := transport.RecvTimeout(conn, chunk, remaining)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			return buf
		}
	}
}

// readUntilBodyComplete implements spec.md §4.2 step 4: keep reading (a
// fresh 3-second budget) until body holds at least want bytes.
func readUntilBodyComplete(conn net.Conn, body []byte, want int, budget time.Duration) []byte {
	deadline := time.Now().Add(budget)
	chunk := make([]byte, 4096)

	for len(body) < want {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		n, err := transport.RecvTimeout(conn, chunk, remaining)
		if n > 0 {
			body = append(body, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return body
}
