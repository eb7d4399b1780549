/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package cookie implements the Cookie-header parser (spec.md §4.4): it
// splits the raw header value into name/value pairs and strips an optional
// "{scheme}://{host}." prefix from each cookie name so a host serving
// several subdomains can present logically identical cookie names to
// handlers.
package cookie

import "strings"

// Map is the name → value mapping handed to the host's cookie callback and
// retained on the Connection Context for the RPC handler's use.
type Map map[string]string

// Parse splits the Cookie header value on "; " into name=value pairs and
// strips a leading "http://{host}." or "https://{host}." from each name.
func Parse(headerValue, host string) Map {
	m := make(Map)
	if headerValue == "" {
		return m
	}
	for _, pair := range strings.Split(headerValue, "; ") {
		if pair == "" {
			continue
		}
		name, value := pair, ""
		if i := strings.IndexByte(pair, '='); i >= 0 {
			name, value = pair[:i], pair[i+1:]
		}
		m[stripSchemeHost(name, host)] = value
	}
	return m
}

func stripSchemeHost(name, host string) string {
	for _, scheme := range [...]string{"http://", "https://"} {
		prefix := scheme + host + "."
		if strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}
