/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"crypto/tls"
	"net"
	"sync/atomic"

	"github.com/skymond-software/rest-server-sub004/transport"
)

// Handle is the opaque value Create returns and Destroy consumes: one
// running Listener. Its running/exitNow flags only ever move one way —
// running goes true once and false once, exitNow goes false to true once
// — matching spec.md §3's Listener Handle invariants.
type Handle struct {
	config *Config
	ln     *transport.Listener
	dtab   dispatchTable
	tlsCfg *tls.Config // loaded once at Create; nil in plaintext mode

	running int32 // atomic bool: set once Create's accept loop starts
	exitNow int32 // atomic bool: set once by Destroy to request shutdown

	workers int64 // atomic: live worker count

	// requests counts completed requests across the listener's lifetime;
	// read-only to callers (SPEC_FULL.md §10.3 supplemented feature).
	requests int64
}

// IsRunning reports whether the accept loop is still active.
func (h *Handle) IsRunning() bool {
	return atomic.LoadInt32(&h.running) != 0
}

// Addr returns the bound listener address, letting a host that configured
// an ephemeral port (":0") discover what it actually got.
func (h *Handle) Addr() net.Addr {
	return h.ln.Addr()
}

// ActiveWorkers reports the number of connections currently being served.
func (h *Handle) ActiveWorkers() int64 {
	return atomic.LoadInt64(&h.workers)
}

// RequestCount reports the number of requests completed since Create,
// across all connections (SPEC_FULL.md §10.3).
func (h *Handle) RequestCount() int64 {
	return atomic.LoadInt64(&h.requests)
}

func (h *Handle) markRunning() {
	atomic.StoreInt32(&h.running, 1)
}

func (h *Handle) stopRequested() bool {
	return atomic.LoadInt32(&h.exitNow) != 0
}

func (h *Handle) workerStarted() {
	atomic.AddInt64(&h.workers, 1)
}

func (h *Handle) workerFinished() {
	atomic.AddInt64(&h.workers, -1)
}

func (h *Handle) requestCompleted() {
	atomic.AddInt64(&h.requests, 1)
}
