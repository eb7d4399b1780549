/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

// dispatchTable is the two-level namespace -> function name -> callable
// table built once at Create time and never mutated afterward (spec.md
// §3, §4.1 step 1). Keys are matched case-sensitively.
type dispatchTable map[string]map[string]Func

func buildDispatch(descs []NamespaceDesc) dispatchTable {
	t := make(dispatchTable, len(descs))
	for _, ns := range descs {
		funcs := make(map[string]Func, len(ns.Functions))
		for _, fn := range ns.Functions {
			funcs[fn.Name] = fn.Fn
		}
		t[ns.Name] = funcs
	}
	return t
}

// lookup returns the registered callable for namespace/function, and
// whether the namespace itself is registered at all — the latter lets
// callers distinguish "unknown web service" from "unknown operation"
// when deciding whether OPTIONS should answer (SPEC_FULL.md §10.3).
func (t dispatchTable) lookup(namespace, function string) (fn Func, namespaceKnown bool) {
	funcs, ok := t[namespace]
	if !ok {
		return nil, false
	}
	return funcs[function], true
}
