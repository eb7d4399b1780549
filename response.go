/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"net"
	"strconv"
	"time"

	"github.com/skymond-software/rest-server-sub004/codec"
	"github.com/skymond-software/rest-server-sub004/transport"
	"github.com/skymond-software/rest-server-sub004/value"
)

// bodyKey and contentTypeKey are the two response-object entries the
// framer treats specially (spec.md §3's "Response Object" / raw mode).
const (
	bodyKey        = "body"
	contentTypeKey = "Content-Type"
)

// writeResponse implements the response framer (spec.md §4.8): it decides
// codec mode vs raw mode, serializes or extracts the body, and writes the
// whole thing to conn as one framed HTTP/1.1 200 OK.
func writeResponse(conn net.Conn, serverName string, resp value.Response, chosen codec.Pair, methodName, commandType string) error {
	var body []byte
	headers := make(map[string]string)

	if resp == nil {
		return writeFramed(conn, serverName, headers, nil)
	}

	if ctVal, ok := resp.Get(contentTypeKey); ok {
		// Raw mode: body verbatim, every other entry becomes a header.
		headers[contentTypeKey] = ctVal.AsString()
		if b, ok := resp.Get(bodyKey); ok {
			body = rawBytes(b)
		}
		if withKeys, ok := resp.(interface{ Keys() []string }); ok {
			for _, k := range withKeys.Keys() {
				if k == bodyKey || k == contentTypeKey {
					continue
				}
				if v, ok := resp.Get(k); ok {
					headers[k] = v.AsString()
				}
			}
		} else if p, ok := resp.(value.Params); ok {
			for k, v := range p {
				if k == bodyKey || k == contentTypeKey {
					continue
				}
				headers[k] = v.AsString()
			}
		}
	} else {
		// Codec mode: serialize through the chosen hooks.
		out, err := chosen.Encode(methodName, resp, commandType)
		if err != nil {
			return err
		}
		body = out
		headers[contentTypeKey] = chosen.ContentType
	}

	return writeFramed(conn, serverName, headers, body)
}

// writeFramed emits the fixed preamble spec.md §4.8 mandates, then the
// merged headers, then the body, all via transport.SendAll's bounded
// chunked writes.
func writeFramed(conn net.Conn, serverName string, headers map[string]string, body []byte) error {
	return writeFramedLen(conn, serverName, headers, body, len(body))
}

// writeFramedLen is writeFramed with the Content-Length and the written
// body decoupled: a HEAD response (spec.md §10.3) reports the full
// resource length while writing zero body bytes.
func writeFramedLen(conn net.Conn, serverName string, headers map[string]string, body []byte, contentLength int) error {
	now := time.Now().UTC().Format(time.RFC1123)
	// time.RFC1123 renders "UTC"; the wire format wants "GMT".
	now = now[:len(now)-3] + "GMT"

	buf := make([]byte, 0, 256+len(body))
	buf = append(buf, "HTTP/1.1 200 OK\r\n"...)
	buf = append(buf, "Date: "+now+"\r\n"...)
	buf = append(buf, "Vary: Accept-Encoding\r\n"...)
	buf = append(buf, "Connection: close\r\n"...)
	buf = append(buf, "Cache-Control: no-store\r\n"...)
	buf = append(buf, "Expires: "+now+"\r\n"...)
	buf = append(buf, "Server: "+serverName+"\r\n"...)

	if _, ok := headers[contentTypeKey]; !ok {
		headers[contentTypeKey] = "text/plain"
	}
	headers["Content-Length"] = strconv.Itoa(contentLength)

	for k, v := range headers {
		buf = append(buf, k+": "+v+"\r\n"...)
	}
	buf = append(buf, "\r\n"...)
	buf = append(buf, body...)

	return transport.SendAll(conn, buf)
}

// writeRedirect implements spec.md §4.5's emit step.
func writeRedirect(conn net.Conn, url string) error {
	out := "HTTP/1.1 301 Moved Permanently\r\nLocation: " + url + "\r\n\r\n"
	return transport.SendAll(conn, []byte(out))
}

func rawBytes(v value.Value) []byte {
	switch v.Kind {
	case value.KindBytes:
		return v.Bytes
	case value.KindString:
		return []byte(v.Str)
	default:
		return nil
	}
}
