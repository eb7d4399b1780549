/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"net"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/skymond-software/rest-server-sub004/codec"
)

var validate = validator.New()

// TLSConfig switches a Listener into TLS mode (spec.md §3's "transport
// mode" field, §5's handshake watchdog). A nil *TLSConfig on Config means
// plaintext.
type TLSConfig struct {
	CertFile string `validate:"required"`
	KeyFile  string `validate:"required"`

	// HandshakeTimeout bounds the TLS handshake itself (spec.md §5); zero
	// means transport.HandshakeTimeout.
	HandshakeTimeout time.Duration
}

// Config is a Listener's configuration (spec.md §3 "Listener Config").
// Build one, call Validate, then pass it to Create.
type Config struct {
	// Name identifies this listener in logs and in the Server response
	// header; required.
	Name string `validate:"required"`

	// Root is the filesystem directory the static responder serves from;
	// required.
	Root string `validate:"required"`

	// Listen is the "host:port" address to bind.
	Listen string `validate:"required"`

	// AcceptRetryTimeout bounds how long Create retries a failed bind
	// before giving up (spec.md §4.1 step "bind retry loop"). Zero means
	// retry forever.
	AcceptRetryTimeout time.Duration

	// TLS enables TLS transport when non-nil.
	TLS *TLSConfig

	// RedirectProtocol and RedirectPort implement the protocol/port legs
	// of the GET redirect policy (spec.md §4.5). Either may be left zero.
	RedirectProtocol string
	RedirectPort     int

	// RedirectFunc implements the redirectFunction leg, checked first and
	// applying to both GET and POST (spec.md §4.5).
	RedirectFunc RedirectFunc

	// Dispatch declares the namespace/function table built once at
	// Create time (spec.md §4.1 step 1).
	Dispatch []NamespaceDesc

	// CookieFunc and RequestHook are the optional host hooks of spec.md §6.
	CookieFunc  CookieFunc
	RequestHook RequestHookFunc

	// JSON and XML are the codec hooks used to decode POST bodies and
	// encode RPC responses (spec.md §3's codec-hooks pair, §9's
	// EncodeFunc/DecodeFunc design note). Each must be either both-empty
	// or both-set; zero value picks up the package default for that
	// content family (codec.DefaultJSON / codec.DefaultXML).
	JSON codec.Pair
	XML  codec.Pair

	// Logger receives structured log output; nil falls back to logrus's
	// package logger.
	Logger *logrus.Logger
}

// Validate applies struct-tag validation plus the cross-field invariants
// spec.md §3 calls out: codec hook pairs must each be complete or empty,
// and the dispatch table must not declare the same namespace twice.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return wrapError(ErrConfigInvalid, "listener config failed validation", err)
	}
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return wrapError(ErrConfigInvalid, "listen address must be host:port", err)
	}

	if c.TLS != nil {
		if err := validate.Struct(c.TLS); err != nil {
			return wrapError(ErrConfigInvalid, "tls config failed validation", err)
		}
	}

	if !c.JSON.Empty() && !c.JSON.Complete() {
		return newError(ErrCodecIncomplete, "JSON codec hooks must both be set or both be nil")
	}
	if !c.XML.Empty() && !c.XML.Complete() {
		return newError(ErrCodecIncomplete, "XML codec hooks must both be set or both be nil")
	}

	seen := make(map[string]bool, len(c.Dispatch))
	for _, ns := range c.Dispatch {
		if ns.Name == "" {
			return newError(ErrConfigInvalid, "dispatch namespace must not be empty")
		}
		if seen[ns.Name] {
			return newError(ErrConfigInvalid, "duplicate dispatch namespace: "+ns.Name)
		}
		seen[ns.Name] = true

		funcs := make(map[string]bool, len(ns.Functions))
		for _, fn := range ns.Functions {
			if fn.Name == "" {
				return newError(ErrConfigInvalid, "dispatch function must not be empty in namespace "+ns.Name)
			}
			if funcs[fn.Name] {
				return newError(ErrConfigInvalid, "duplicate dispatch function "+fn.Name+" in namespace "+ns.Name)
			}
			funcs[fn.Name] = true
		}
	}

	return nil
}

// clone returns a shallow copy of c with the Dispatch slice copied, so a
// Listener's table is immune to the host mutating its Config afterward
// (spec.md §4.1 step 1: "immutable thereafter").
func (c *Config) clone() *Config {
	out := *c
	out.Dispatch = make([]NamespaceDesc, len(c.Dispatch))
	copy(out.Dispatch, c.Dispatch)
	return &out
}

func (c *Config) jsonCodec() codec.Pair {
	if c.JSON.Empty() {
		return codec.DefaultJSON()
	}
	return c.JSON
}

func (c *Config) xmlCodec() codec.Pair {
	if c.XML.Empty() {
		return codec.DefaultXML()
	}
	return c.XML
}
