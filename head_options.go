/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"github.com/skymond-software/rest-server-sub004/hdr"
	"github.com/skymond-software/rest-server-sub004/static"
)

// handleHEAD implements SPEC_FULL.md §10.3's HEAD-as-GET-variant: a HEAD
// whose first path segment names a registered dispatch namespace is an
// unsupported method (no reply, connection closes per spec.md §4.2 step
// 6). Everything else resolves through the static responder exactly as
// GET does, but the body bytes never reach the wire.
func (c *connCtx) handleHEAD() {
	raw := c.headers.Get(hdr.Location)
	truncated := truncateAtQuery(raw)

	if namespace := firstPathSegment(truncated); namespace != "" {
		if _, namespaceKnown := c.dtab.lookup(namespace, ""); namespaceKnown {
			return
		}
	}

	host := c.headers.Get(hdr.Host)
	result := static.Serve(c.root, truncated, host, c.scheme)

	headers := map[string]string{contentTypeKey: result.ContentType}
	_ = writeFramedLen(c.conn, c.name, headers, nil, len(result.Body))
}

// handleOPTIONS implements SPEC_FULL.md §10.3's OPTIONS-on-registered-RPC-
// path rule: a path matching "/NS/function" for a known namespace gets an
// empty 200; anything else is an unknown command (no reply).
func (c *connCtx) handleOPTIONS() {
	loc := truncateAtQuery(c.headers.Get(hdr.Location))
	parts := nonEmptySegments(loc)
	if len(parts) < 2 {
		return
	}

	namespace, function := parts[0], parts[len(parts)-1]
	if _, namespaceKnown := c.dtab.lookup(namespace, function); !namespaceKnown {
		return
	}

	_ = writeFramed(c.conn, c.name, map[string]string{}, nil)
}

func firstPathSegment(p string) string {
	segs := nonEmptySegments(p)
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}
