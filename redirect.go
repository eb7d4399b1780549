/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"net"
	"strconv"
	"strings"

	"github.com/skymond-software/rest-server-sub004/cookie"
	"github.com/skymond-software/rest-server-sub004/hdr"
)

// redirectSettings is the snapshot a worker takes at accept time of the
// listener's redirect configuration (spec.md §5: "redirect fields ... may
// change at runtime; workers read them into their Connection Context at
// accept time").
type redirectSettings struct {
	fn       RedirectFunc
	port     int
	protocol string
}

func (h *Handle) redirectSnapshot() redirectSettings {
	c := h.config
	return redirectSettings{fn: c.RedirectFunc, port: c.RedirectPort, protocol: c.RedirectProtocol}
}

// configured reports whether any redirect form applies at all (spec.md
// §4.5's "a redirect is emitted when any of these is configured").
func (r redirectSettings) configured() bool {
	return r.fn != nil || r.port != 0 || r.protocol != ""
}

// resolve implements spec.md §4.5's resolution order for method (GET
// allows all three forms; POST only the callback). ok is false when no
// redirect applies to this request.
func (r redirectSettings) resolve(method string, conn net.Conn, root string, headers hdr.Header, body []byte, cookies cookie.Map) (url string, ok bool) {
	if r.fn != nil {
		return r.fn(conn, root, headers, body, cookies)
	}

	if method != "GET" {
		return "", false
	}
	if r.port == 0 && r.protocol == "" {
		return "", false
	}

	host := headers.Get(hdr.Host)
	if r.port != 0 {
		if i := strings.LastIndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
	}

	scheme := r.protocol
	if scheme == "" {
		scheme = "http"
	}

	path := headers.Get(hdr.Location)

	target := scheme + "://" + host
	if r.port != 0 {
		target += ":" + strconv.Itoa(r.port)
	}
	target += path

	return target, true
}
