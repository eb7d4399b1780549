/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package static

import (
	"os"
	"path/filepath"
	"testing"
)

func TestServeIndexHit(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("Hello world!"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := Serve(root, "/", "127.0.0.1:8999", "http")
	if string(r.Body) != "Hello world!" {
		t.Fatalf("got %q", r.Body)
	}
	if r.ContentType != "text/html" {
		t.Fatalf("got content-type %q", r.ContentType)
	}
}

func TestServeMiss(t *testing.T) {
	root := t.TempDir()
	r := Serve(root, "/marklar", "x", "http")
	if len(r.Body) != 0 {
		t.Fatalf("expected empty body on miss, got %q", r.Body)
	}
}

func TestServeTraversalRejected(t *testing.T) {
	root := t.TempDir()
	r := Serve(root, "/../etc/passwd", "x", "http")
	if len(r.Body) != 0 {
		t.Fatalf("expected empty body for traversal, got %q", r.Body)
	}
}

func TestServeDirectoryRedirectStub(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "docs", "index.html"), []byte("docs"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := Serve(root, "/docs", "x", "http")
	if r.ContentType != "text/html" {
		t.Fatalf("expected redirect stub content-type, got %q", r.ContentType)
	}
	if string(r.Body) != `<meta http-equiv="refresh" content="0;URL='/docs/'">` {
		t.Fatalf("unexpected redirect stub body: %q", r.Body)
	}
}

func TestServeWsdlSubstitution(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "webService"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "webService", "svc.wsdl"), []byte("<ns>"+targetNamespacePlaceholder+"</ns>"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := Serve(root, "/webService/svc.wsdl", "example.com", "https")
	want := "<ns>https://example.com/webService</ns>"
	if string(r.Body) != want {
		t.Fatalf("got %q want %q", r.Body, want)
	}
}
