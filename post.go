/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"strings"

	"github.com/skymond-software/rest-server-sub004/codec"
	"github.com/skymond-software/rest-server-sub004/hdr"
	"github.com/skymond-software/rest-server-sub004/value"
)

// handlePOST implements spec.md §4.7. Only the redirectFunction leg of the
// redirect policy applies to POST (§4.5) — static port/protocol redirects
// would otherwise silently drop the body.
func (c *connCtx) handlePOST() {
	if target, ok := c.redir.resolve("POST", c.conn, c.root, c.headers, c.body, c.cookies); ok {
		_ = writeRedirect(c.conn, target)
		return
	}

	namespace, function := c.resolveNamespaceFunction()
	if namespace == "" || function == "" {
		return
	}

	decodeFn, chosen, commandType := c.selectCodec(c.headers.Get(hdr.ContentType))

	var req value.Request
	if decodeFn != nil {
		if r, err := decodeFn(c.body); err == nil {
			req = r
		}
	}

	if c.handle.config.RequestHook != nil && req != nil {
		c.handle.config.RequestHook(req)
	}

	handler, namespaceKnown := c.dtab.lookup(namespace, function)
	if !namespaceKnown || handler == nil {
		if req != nil {
			req.Close()
		}
		return
	}

	resp := handler(req)
	if req != nil {
		req.Close()
	}
	if resp == nil {
		return
	}

	_ = writeResponse(c.conn, c.name, resp, chosen, function, commandType)
}

// resolveNamespaceFunction implements spec.md §4.7 step 2: prefer the
// SOAPAction header ("{Host}/{namespace}/{function}", quoted, optionally
// wrapped across two lines), falling back to the request target the same
// way GET does (first segment namespace, last segment function).
func (c *connCtx) resolveNamespaceFunction() (namespace, function string) {
	if action := c.headers.Get(hdr.SOAPAction); action != "" {
		action = strings.Trim(action, `"`)
		action = strings.ReplaceAll(action, "\r\n", "")
		action = strings.ReplaceAll(action, "\n", "")
		parts := nonEmptySegments(action)
		if len(parts) >= 3 {
			return parts[len(parts)-2], parts[len(parts)-1]
		}
	}

	loc := truncateAtQuery(c.headers.Get(hdr.Location))
	parts := nonEmptySegments(loc)
	if len(parts) < 2 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

func nonEmptySegments(path string) []string {
	raw := strings.Split(path, "/")
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// selectCodec implements spec.md §4.7 step 3's Content-Type dispatch. An
// unrecognized or missing Content-Type runs no decoder (spec.md §7: the
// handler is invoked with null parameters) but the JSON pair is still
// returned as the default encoder for the response (spec.md §4.8).
func (c *connCtx) selectCodec(contentType string) (decode codec.DecodeFunc, chosen codec.Pair, commandType string) {
	lower := strings.ToLower(contentType)
	switch {
	case strings.Contains(lower, "soap") || strings.Contains(lower, "text/xml"):
		p := c.handle.config.xmlCodec()
		return p.Decode, p, "xml"
	case strings.Contains(lower, "application/json"):
		p := c.handle.config.jsonCodec()
		return p.Decode, p, "json"
	default:
		return nil, c.handle.config.jsonCodec(), ""
	}
}
