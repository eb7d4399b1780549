/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package rpcserver embeds an HTTP/1.1 server: build a Config, register
// namespaced RPC functions, call Create, and the listener starts accepting
// connections on its own goroutine. Call Destroy to shut it down.
package rpcserver
