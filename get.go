/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"net/url"
	"strings"

	"github.com/skymond-software/rest-server-sub004/hdr"
	"github.com/skymond-software/rest-server-sub004/value"
)

// getArgPrefix is prepended to every GET query key before a handler sees
// it (spec.md §4.6 step 2: "security convention: GET params are
// attacker-forgeable via CSRF and must be distinguishable from POST body
// params inside handlers").
const getArgPrefix = "GET:"

// handleGET implements spec.md §4.6. Redirect wins over dispatch, and
// dispatch wins over the static-file fallback.
func (c *connCtx) handleGET() {
	raw := c.headers.Get(hdr.Location)
	truncated := truncateAtQuery(raw)

	if target, ok := c.redir.resolve("GET", c.conn, c.root, c.headers, c.body, c.cookies); ok {
		_ = writeRedirect(c.conn, target)
		return
	}

	if resp, methodName := c.dispatchGET(raw); resp != nil {
		chosen := c.handle.config.jsonCodec()
		_ = writeResponse(c.conn, c.name, resp, chosen, methodName, "GET")
		return
	}

	c.serveStatic(truncated)
}

// dispatchGET splits raw (the original, query-bearing request target)
// into namespace/function/query per spec.md §4.6 step 2 and invokes the
// registered handler, if any.
func (c *connCtx) dispatchGET(raw string) (value.Response, string) {
	trimmed := strings.TrimPrefix(raw, "/")
	segments := strings.SplitN(trimmed, "/", 2)
	if len(segments) < 2 {
		return nil, ""
	}

	namespace := segments[0]
	rest := segments[1]

	function, query := rest, ""
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		function, query = rest[:i], rest[i+1:]
	}

	handler, namespaceKnown := c.dtab.lookup(namespace, function)
	if !namespaceKnown || handler == nil {
		return nil, function
	}

	return handler(decodeGETArgs(query)), function
}

// decodeGETArgs parses "&"-separated key=value pairs, URL-decodes values,
// and prefixes every key with getArgPrefix.
func decodeGETArgs(query string) value.Params {
	p := value.NewParams()
	if query == "" {
		return p
	}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, val := pair, ""
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key, val = pair[:i], pair[i+1:]
		}
		if decoded, err := url.QueryUnescape(val); err == nil {
			val = decoded
		}
		p.Add(getArgPrefix+key, value.String(val))
	}
	return p
}

func truncateAtQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
