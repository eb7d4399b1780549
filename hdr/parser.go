/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import "bytes"

var (
	crlfcrlf = []byte("\r\n\r\n")
	lflf     = []byte("\n\n")
)

// HeaderEnd reports whether buf already contains a full header terminator
// (either \r\n\r\n or \n\n — spec.md §4.3 requires both be accepted) and,
// if so, returns the offset of the first byte past it.
func HeaderEnd(buf []byte) (offset int, found bool) {
	if i := bytes.Index(buf, crlfcrlf); i >= 0 {
		return i + len(crlfcrlf), true
	}
	if i := bytes.Index(buf, lflf); i >= 0 {
		return i + len(lflf), true
	}
	return 0, false
}

// Parse splits buf into a Header map plus the remaining body bytes. buf
// must already contain a terminator (see HeaderEnd); Parse returns
// ok=false for malformed input — callers treat that as an unparsable
// request (spec.md §4.3 "An empty header ... yields null").
func Parse(buf []byte) (h Header, body []byte, ok bool) {
	end, found := HeaderEnd(buf)
	if !found {
		return nil, nil, false
	}

	headerPart := buf[:end]
	body = buf[end:]

	// Detect which terminator (and therefore which line delimiter) was
	// used, once, then split the rest of the lines the same way.
	sep := []byte("\r\n")
	term := crlfcrlf
	if !bytes.HasSuffix(headerPart, crlfcrlf) {
		sep = []byte("\n")
		term = lflf
	}
	headerPart = headerPart[:len(headerPart)-len(term)]

	if len(headerPart) == 0 {
		return nil, nil, false
	}

	lines := bytes.Split(headerPart, sep)

	h = make(Header, len(lines)+3)

	// Request line: up to three whitespace-delimited fields.
	reqLine := bytes.TrimRight(lines[0], " \t")
	fields := splitFields(reqLine)
	h[Command] = ""
	h[Location] = ""
	h[Protocol] = ""
	if len(fields) > 0 {
		h[Command] = string(fields[0])
	}
	if len(fields) > 1 {
		h[Location] = string(fields[1])
	}
	if len(fields) > 2 {
		h[Protocol] = string(fields[2])
	}

	i := 1
	for i < len(lines) {
		line := lines[i]
		i++
		if len(line) == 0 {
			continue
		}

		idx := bytes.Index(line, colonSpace)
		if idx < 0 {
			continue
		}
		name := string(trim(line[:idx]))
		value := line[idx+len(colonSpace):]

		// Quoted value whose opening line doesn't close the quote is
		// joined with the following line (covers SOAPAction-style
		// `"ns/op"` wrapped across lines — spec.md §4.3).
		for len(value) > 0 && value[0] == '"' && !hasClosingQuote(value) && i < len(lines) {
			value = append(append(append([]byte{}, value...), sep...), lines[i]...)
			i++
		}

		if name == "" {
			continue
		}
		h[CanonicalKey(name)] = string(trim(value))
	}

	return h, body, true
}

var colonSpace = []byte(": ")

func hasClosingQuote(v []byte) bool {
	return len(v) >= 2 && v[len(v)-1] == '"'
}

// splitFields splits on runs of ASCII space/tab, like strings.Fields but
// byte-based and capped implicitly by the request-line's own structure.
func splitFields(s []byte) [][]byte {
	var out [][]byte
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && !isASCIISpace(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
			start = -1
		}
	}
	return out
}
