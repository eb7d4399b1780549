/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"crypto/tls"
	"net"
	"sync/atomic"
	"time"

	"github.com/skymond-software/rest-server-sub004/transport"
)

// bindRetryInterval is how often Create retries a failed bind (spec.md
// §4.1 step 2: "on failure, sleep one second; retry").
const bindRetryInterval = time.Second

// shutdownPollInterval and shutdownDeadline implement Destroy's bounded
// wait for the accept loop to report running=false (spec.md §4.1
// "destroy" contract: "wait up to 100 milliseconds (polling)").
const (
	shutdownPollInterval = time.Millisecond
	shutdownDeadline     = 100 * time.Millisecond
)

// Create builds the dispatch table, binds the listener (retrying once a
// second for up to cfg.AcceptRetryTimeout, or forever if zero) and spawns
// the accept loop. It returns once the socket is bound and the accept
// loop has started, matching spec.md §4.1's "controlling thread observes
// handle.socket != null ... and handle.running == true" contract.
func Create(cfg *Config) (*Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.clone()

	h := &Handle{
		config: cfg,
		dtab:   buildDispatch(cfg.Dispatch),
	}

	if cfg.TLS != nil {
		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return nil, wrapError(ErrConfigInvalid, "failed to load TLS certificate", err)
		}
		h.tlsCfg = &tls.Config{Certificates: []tls.Certificate{cert}}
	}

	ln, err := bindWithRetry(cfg, h)
	if err != nil {
		return nil, err
	}
	h.ln = ln

	h.markRunning()
	go h.acceptLoop()

	return h, nil
}

func bindWithRetry(cfg *Config, h *Handle) (*transport.Listener, error) {
	deadline := time.Time{}
	if cfg.AcceptRetryTimeout > 0 {
		deadline = time.Now().Add(cfg.AcceptRetryTimeout)
	}

	for {
		ln, err := transport.Listen(cfg.Listen)
		if err == nil {
			return ln, nil
		}

		if h.stopRequested() {
			return nil, wrapError(ErrBind, "bind aborted: shutdown requested", err)
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil, wrapError(ErrPortInUse, "bind retry timeout exceeded", err)
		}

		cfg.logger().WithField("addr", cfg.Listen).WithError(err).Warn("bind failed, retrying")
		time.Sleep(bindRetryInterval)
	}
}

// acceptLoop is the Listener's single owned goroutine (spec.md §4.1 step
// 4, §5's "each listener owns one thread"). Every accepted connection is
// handed to a freshly spawned, detached worker goroutine.
func (h *Handle) acceptLoop() {
	for {
		conn, err := h.ln.AcceptTimeout(0)
		if err != nil {
			if h.stopRequested() {
				break
			}
			h.config.logger().WithError(err).Warn("accept failed")
			continue
		}

		if h.config.TLS != nil {
			conn = h.wrapTLS(conn)
			if conn == nil {
				continue
			}
		}

		h.workerStarted()
		go h.serve(conn)
	}

	h.drainWorkers()
	atomic.StoreInt32(&h.running, 0)
}

func (h *Handle) wrapTLS(conn net.Conn) net.Conn {
	tlsConn := tls.Server(conn, h.tlsCfg)

	timeout := h.config.TLS.HandshakeTimeout
	if timeout <= 0 {
		timeout = transport.HandshakeTimeout
	}
	if err := transport.HandshakeWithWatchdog(tlsConn, timeout); err != nil {
		h.config.logger().WithError(err).Warn("TLS handshake failed")
		return nil
	}
	return tlsConn
}

// drainWorkers spins in small increments until the worker count reaches
// zero (spec.md §5: "the listener sleeps in 1-ms increments ... waiting
// for its worker count to drain" — here applied to the accept loop's own
// exit, the same discipline Destroy reuses for its bounded wait).
func (h *Handle) drainWorkers() {
	for h.ActiveWorkers() > 0 {
		time.Sleep(time.Millisecond)
	}
}

// Destroy implements spec.md §4.1's graceful-shutdown contract: set
// exitNow, close the server socket (unblocking accept), wait up to 100ms
// for running to go false, and return regardless — if the deadline is
// exceeded the listener is detached (left to finish on its own) rather
// than blocking the controlling thread forever.
func Destroy(h *Handle) {
	atomic.StoreInt32(&h.exitNow, 1)
	if h.ln != nil {
		_ = h.ln.Close()
	}

	deadline := time.Now().Add(shutdownDeadline)
	for h.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(shutdownPollInterval)
	}

	if h.IsRunning() {
		h.config.logger().Warn("listener did not stop within shutdown deadline, detaching")
	}
}
