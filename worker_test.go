/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"net"
	"testing"
	"time"
)

func TestReadUntilHeaderEndStopsAtCRLFCRLF(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		client.Write([]byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n"))
	}()

	buf := readUntilHeaderEnd(server, time.Second)
	if string(buf) != "GET / HTTP/1.1\r\nHost: x\r\n\r\n" {
		t.Fatalf("got %q", buf)
	}
}

func TestReadUntilHeaderEndStopsAtLFLF(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		client.Write([]byte("GET / HTTP/1.1\nHost: x\n\n"))
	}()

	buf := readUntilHeaderEnd(server, time.Second)
	if string(buf) != "GET / HTTP/1.1\nHost: x\n\n" {
		t.Fatalf("got %q", buf)
	}
}

func TestReadUntilHeaderEndTimesOutOnIncompleteInput(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		client.Write([]byte("GET / HTTP/1.1\r\nHost: x"))
	}()

	start := time.Now()
	buf := readUntilHeaderEnd(server, 50*time.Millisecond)
	if time.Since(start) < 40*time.Millisecond {
		t.Fatal("expected to wait out the budget on incomplete input")
	}
	if string(buf) != "GET / HTTP/1.1\r\nHost: x" {
		t.Fatalf("got %q", buf)
	}
}

func TestReadUntilBodyCompleteGathersWantedBytes(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		client.Write([]byte("abc"))
		client.Write([]byte("de"))
	}()

	body := readUntilBodyComplete(server, nil, 5, time.Second)
	if string(body) != "abcde" {
		t.Fatalf("got %q", body)
	}
}
