/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"github.com/skymond-software/rest-server-sub004/hdr"
	"github.com/skymond-software/rest-server-sub004/static"
)

// serveStatic implements the fallthrough leg of spec.md §4.6 step 3: any
// request that didn't resolve to a registered RPC function is served from
// the configured root via the static-file responder (spec.md §4.9).
func (c *connCtx) serveStatic(path string) {
	host := c.headers.Get(hdr.Host)
	result := static.Serve(c.root, path, host, c.scheme)

	headers := map[string]string{contentTypeKey: result.ContentType}
	_ = writeFramed(c.conn, c.name, headers, result.Body)
}
