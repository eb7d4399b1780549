/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package value implements the tagged-union Value type the design notes
// (spec.md §9, "Pointer-heavy opaque containers → strongly-typed
// request/response abstractions") call for: a single type capable of
// carrying every shape the JSON/XML codecs emit — scalars, byte-strings,
// nested mappings, ordered sequences — plus the four accessor traits
// (get/add for request objects, get/add for response objects).
package value

// Kind discriminates which field of Value is meaningful.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindBytes
	KindBool
	KindInt
	KindFloat
	KindMap
	KindSlice
)

// Value is the tagged union passed across the codec hook boundary (spec.md
// §6) and through the request/response accessor trait (§9). Only the field
// matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Str   string
	Bytes []byte
	Bool  bool
	Int   int64
	Float float64
	Map   map[string]Value
	Slice []Value
}

func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Bytes(b []byte) Value   { return Value{Kind: KindBytes, Bytes: b} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func Int(i int64) Value      { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value  { return Value{Kind: KindFloat, Float: f} }
func MapOf(m map[string]Value) Value { return Value{Kind: KindMap, Map: m} }
func SliceOf(s []Value) Value        { return Value{Kind: KindSlice, Slice: s} }

// AsString returns the best-effort string rendering of v — used by the GET
// handler to hand query arguments to RPC functions (spec.md §4.6), which
// are always decoded as strings.
func (v Value) AsString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindBytes:
		return string(v.Bytes)
	default:
		return ""
	}
}
