/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package client

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/skymond-software/rest-server-sub004/hdr"
)

var errMalformedResponse = errors.New("client: malformed response")

// parseResponse reads the status line and header block the server emits
// (spec.md §4.8) and returns the status code, headers, and body. Unlike
// hdr.Parse, this does not populate the synthetic request-line keys — a
// response's first line has a different shape (protocol, status, reason).
func parseResponse(raw []byte) (*Response, error) {
	offset, found := hdr.HeaderEnd(raw)
	if !found {
		return nil, errMalformedResponse
	}

	headerPart := raw[:offset]
	body := raw[offset:]

	sep := []byte("\r\n")
	term := []byte("\r\n\r\n")
	if !bytes.HasSuffix(headerPart, term) {
		sep = []byte("\n")
	}
	headerPart = bytes.TrimSuffix(headerPart, append(append([]byte{}, sep...), sep...))

	lines := bytes.Split(headerPart, sep)
	if len(lines) == 0 {
		return nil, errMalformedResponse
	}

	statusLine := bytes.Fields(lines[0])
	if len(statusLine) < 2 {
		return nil, errMalformedResponse
	}
	code, err := strconv.Atoi(string(statusLine[1]))
	if err != nil {
		return nil, errMalformedResponse
	}

	h := make(hdr.Header, len(lines))
	for _, line := range lines[1:] {
		idx := bytes.Index(line, []byte(": "))
		if idx < 0 {
			continue
		}
		h.Set(string(line[:idx]), string(line[idx+2:]))
	}

	return &Response{StatusCode: code, Header: h, Body: body}, nil
}
