/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import "testing"

func TestParseCRLF(t *testing.T) {
	raw := []byte("GET /index.html HTTP/1.1\r\nHost: 127.0.0.1:8999\r\nCookie: a=b\r\n\r\nbody-bytes")
	h, body, ok := Parse(raw)
	if !ok {
		t.Fatalf("expected ok")
	}
	if h[Command] != "GET" || h[Location] != "/index.html" || h[Protocol] != "HTTP/1.1" {
		t.Fatalf("unexpected synthetic keys: %#v", h)
	}
	if h.Get("host") != "127.0.0.1:8999" {
		t.Fatalf("case-insensitive lookup failed: %q", h.Get("host"))
	}
	if string(body) != "body-bytes" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestParseLF(t *testing.T) {
	raw := []byte("GET /x HTTP/1.1\nHost: x\n\n")
	h, body, ok := Parse(raw)
	if !ok {
		t.Fatalf("expected ok")
	}
	if h[Command] != "GET" || h.Get("Host") != "x" {
		t.Fatalf("unexpected header: %#v", h)
	}
	if len(body) != 0 {
		t.Fatalf("expected empty body, got %q", body)
	}
}

func TestParseShortRequestLine(t *testing.T) {
	raw := []byte("GET\r\n\r\n")
	h, _, ok := Parse(raw)
	if !ok {
		t.Fatalf("expected ok")
	}
	if h[Command] != "GET" || h[Location] != "" || h[Protocol] != "" {
		t.Fatalf("unexpected partial request line: %#v", h)
	}
}

func TestParseEmptyIsMalformed(t *testing.T) {
	_, _, ok := Parse([]byte("\r\n\r\n"))
	if ok {
		t.Fatalf("expected malformed (empty) header to be rejected")
	}
}

func TestParseAnonymousFieldSkipped(t *testing.T) {
	raw := []byte("GET / HTTP/1.1\r\n: bogus\r\nHost: x\r\n\r\n")
	h, _, ok := Parse(raw)
	if !ok {
		t.Fatalf("expected ok")
	}
	if h.Get("Host") != "x" {
		t.Fatalf("Host missing: %#v", h)
	}
}

func TestParseQuotedContinuation(t *testing.T) {
	raw := []byte("POST /x HTTP/1.1\r\nHost: h\r\nSOAPAction: \"h/ns\r\n/func\"\r\n\r\n")
	h, _, ok := Parse(raw)
	if !ok {
		t.Fatalf("expected ok")
	}
	got := h.Get("SOAPAction")
	want := "\"h/ns\r\n/func\""
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestParseDuplicateLastWriteWins(t *testing.T) {
	raw := []byte("GET / HTTP/1.1\r\nX-A: one\r\nX-A: two\r\n\r\n")
	h, _, ok := Parse(raw)
	if !ok {
		t.Fatalf("expected ok")
	}
	if h.Get("X-A") != "two" {
		t.Fatalf("expected last write wins, got %q", h.Get("X-A"))
	}
}

func TestCanonicalKeySOAPAction(t *testing.T) {
	if CanonicalKey("soapaction") != SOAPAction {
		t.Fatalf("expected SOAPAction canonicalization")
	}
	if CanonicalKey("CONTENT-TYPE") != ContentType {
		t.Fatalf("expected Content-Type canonicalization, got %q", CanonicalKey("CONTENT-TYPE"))
	}
}
