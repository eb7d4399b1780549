/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package hdr implements the case-insensitive header mapping the request
// parser produces and the three synthetic keys it always populates for a
// well-formed request line.
package hdr

// Synthetic keys the parser inserts; never present on the wire (spec.md §4.3).
const (
	Command  = "_httpCommand"
	Location = "_httpLocation"
	Protocol = "_httpProtocol"
)

// Well-known field names, canonicalized the way CanonicalKey produces them.
const (
	Host          = "Host"
	ContentType   = "Content-Type"
	ContentLength = "Content-Length"
	CookieHeader  = "Cookie"
	SOAPAction    = "SOAPAction"
	LocationHdr   = "Location"
	Server        = "Server"
	Connection    = "Connection"
	CacheControl  = "Cache-Control"
	Expires       = "Expires"
	DateField     = "Date"
	Vary          = "Vary"
	SetCookie     = "Set-Cookie"
)

// Header is the case-insensitive mapping from field name to raw byte-string
// value produced by the parser (§4.3). Last write wins on duplicate names
// (spec.md §4.3, §9 open questions) — a consequence of this being a map,
// not a rule enforced anywhere explicitly.
type Header map[string]string

// Get returns the value for key, or "" if absent. key is canonicalized
// before lookup so callers may pass any casing.
func (h Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[CanonicalKey(key)]
}

// Set stores value under the canonical form of key, replacing any prior
// value (last write wins).
func (h Header) Set(key, value string) {
	h[CanonicalKey(key)] = value
}

// Del removes key (any casing) from the map.
func (h Header) Del(key string) {
	delete(h, CanonicalKey(key))
}

// Clone returns a shallow copy safe for independent mutation.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	h2 := make(Header, len(h))
	for k, v := range h {
		h2[k] = v
	}
	return h2
}
