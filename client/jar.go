/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package client

import (
	"strings"
	"sync"

	"github.com/skymond-software/rest-server-sub004/hdr"
)

// MemoryJar is a trivial in-process Jar keyed by host, sufficient for the
// test suite's same-process client/server round trips.
type MemoryJar struct {
	mu     sync.Mutex
	byHost map[string]map[string]string
}

func NewMemoryJar() *MemoryJar {
	return &MemoryJar{byHost: make(map[string]map[string]string)}
}

func (j *MemoryJar) Cookies(host string) map[string]string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make(map[string]string, len(j.byHost[host]))
	for k, v := range j.byHost[host] {
		out[k] = v
	}
	return out
}

// SetCookies stores the cookie from the Set-Cookie entry on header;
// hdr.Header keeps one value per name, so when a response carries several
// Set-Cookie lines only the last is seen. Only the name=value pair is kept — attributes (Path, Expires, ...) are not
// modeled, matching the narrow round-trip this companion client exists
// for.
func (j *MemoryJar) SetCookies(host string, header hdr.Header) {
	raw := header.Get(hdr.SetCookie)
	if raw == "" {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.byHost[host] == nil {
		j.byHost[host] = make(map[string]string)
	}
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if i := strings.IndexByte(part, '='); i >= 0 {
			j.byHost[host][part[:i]] = part[i+1:]
			return
		}
	}
}
