/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package mime

import (
	"sort"
	"strings"
	"sync"
)

type entry struct {
	ext string
	typ string
}

var (
	once    sync.Once
	sorted  []entry
	byExt   map[string]string
	initErr bool
)

// ensureInit builds the read-only lookup structures exactly once, at first use
// (spec.md §4.10, design note in §9: "Global mutable MIME table →
// once-initialized read-only map"). A sorted slice is kept alongside the
// map so a binary-search lookup remains available if the map build ever
// fails — mirroring the source's defensive fallback.
func ensureInit() {
	once.Do(func() {
		byExt = make(map[string]string, len(table))
		sorted = make([]entry, 0, len(table))
		for ext, typ := range table {
			low := strings.ToLower(ext)
			byExt[low] = typ
			sorted = append(sorted, entry{ext: low, typ: typ})
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ext < sorted[j].ext })
		initErr = byExt == nil
	})
}

// ByExtension returns the content-type registered for ext (case-insensitive,
// with or without the leading dot), or "text/plain" if unknown.
func ByExtension(ext string) string {
	ensureInit()
	if ext == "" {
		return defaultType
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	low := strings.ToLower(ext)

	if !initErr {
		if t, ok := byExt[low]; ok {
			return t
		}
		return defaultType
	}
	return bsearch(low)
}

func bsearch(ext string) string {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i].ext >= ext })
	if i < len(sorted) && sorted[i].ext == ext {
		return sorted[i].typ
	}
	return defaultType
}
