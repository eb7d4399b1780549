/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package client implements the companion client used by the test suite
// (spec.md §1): a small HTTP/1.1 client that speaks the same wire subset
// the server understands (GET/POST, CRLF responses, Content-Length
// framing, a 301 Location redirect) without pulling in net/http.
package client

import (
	"bytes"
	"crypto/tls"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/skymond-software/rest-server-sub004/hdr"
)

// Jar is the minimal cookie-jar contract a Client may use to persist
// cookies across requests to the same host, mirroring the teacher's
// Client.Jar field (cli/client.go) without adopting net/http's Cookie
// type.
type Jar interface {
	Cookies(host string) map[string]string
	SetCookies(host string, cookies hdr.Header)
}

// Response is the parsed result of one round trip.
type Response struct {
	StatusCode int
	Header     hdr.Header
	Body       []byte
}

// Client issues requests to one server over a fresh TCP (or TLS)
// connection per call, matching the server's non-keep-alive contract
// (spec.md §1 Non-goals: "HTTP/1.1 keep-alive ... each connection is
// served once then closed").
type Client struct {
	// DialTimeout bounds connection setup; zero means no timeout.
	DialTimeout time.Duration

	// TLSConfig enables https:// targets when non-nil.
	TLSConfig *tls.Config

	// Jar, if set, supplies and receives cookies per host.
	Jar Jar
}

// Get issues a GET request and follows at most one 301 redirect (the only
// status code the server ever emits besides 200, per spec.md §6).
func (c *Client) Get(target string) (*Response, error) {
	return c.do("GET", target, "", nil)
}

// Post issues a POST request with the given Content-Type and body.
func (c *Client) Post(target, contentType string, body []byte) (*Response, error) {
	return c.do("POST", target, contentType, body)
}

func (c *Client) do(method, target, contentType string, body []byte) (*Response, error) {
	resp, err := c.roundTrip(method, target, contentType, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == 301 && method == "GET" {
		loc := resp.Header.Get(hdr.LocationHdr)
		if loc != "" {
			return c.roundTrip(method, loc, contentType, body)
		}
	}
	return resp, nil
}

func (c *Client) roundTrip(method, target, contentType string, body []byte) (*Response, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}

	host := u.Host
	addr := host
	if u.Port() == "" {
		if u.Scheme == "https" {
			addr += ":443"
		} else {
			addr += ":80"
		}
	}

	conn, err := c.dial(u.Scheme, addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	path := u.RequestURI()

	var buf bytes.Buffer
	buf.WriteString(method + " " + path + " HTTP/1.1\r\n")
	buf.WriteString("Host: " + host + "\r\n")
	if contentType != "" {
		buf.WriteString("Content-Type: " + contentType + "\r\n")
	}
	if len(body) > 0 {
		buf.WriteString("Content-Length: " + strconv.Itoa(len(body)) + "\r\n")
	}
	if c.Jar != nil {
		writeCookies(&buf, c.Jar.Cookies(host))
	}
	buf.WriteString("\r\n")
	buf.Write(body)

	if _, err := conn.Write(buf.Bytes()); err != nil {
		return nil, err
	}

	raw, err := readAll(conn)
	if err != nil && len(raw) == 0 {
		return nil, err
	}

	resp, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if c.Jar != nil {
		if sc := resp.Header.Get(hdr.SetCookie); sc != "" {
			c.Jar.SetCookies(host, resp.Header)
		}
	}

	return resp, nil
}

func (c *Client) dial(scheme, addr string) (net.Conn, error) {
	if scheme == "https" {
		dialer := &net.Dialer{Timeout: c.DialTimeout}
		return tls.DialWithDialer(dialer, "tcp", addr, c.TLSConfig)
	}
	if c.DialTimeout > 0 {
		return net.DialTimeout("tcp", addr, c.DialTimeout)
	}
	return net.Dial("tcp", addr)
}

func writeCookies(buf *bytes.Buffer, cookies map[string]string) {
	if len(cookies) == 0 {
		return
	}
	buf.WriteString("Cookie: ")
	first := true
	for k, v := range cookies {
		if !first {
			buf.WriteString("; ")
		}
		first = false
		buf.WriteString(k + "=" + v)
	}
	buf.WriteString("\r\n")
}

func readAll(conn net.Conn) ([]byte, error) {
	var out []byte
	chunk := make([]byte, 4096)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			out = append(out, chunk[:n]...)
		}
		if err != nil {
			return out, err
		}
	}
}
