/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Command exampleserver is a minimal host application demonstrating one
// listener with a single registered namespace (spec.md §1: "the example
// server binary" is explicitly out of core scope, kept here only as a
// usage sample).
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	rpcserver "github.com/skymond-software/rest-server-sub004"
	"github.com/skymond-software/rest-server-sub004/value"
)

func echo(req value.Request) value.Response {
	resp := value.NewParams()
	s := ""
	if v, ok := req.Get("s"); ok {
		s = v.AsString()
	}
	resp.Add("type", value.String("ok"))
	resp.Add("received", value.String(s))
	return resp
}

func main() {
	logger := logrus.StandardLogger()

	cfg := &rpcserver.Config{
		Name:   "exampleserver",
		Root:   "./public",
		Listen: "127.0.0.1:8999",
		Logger: logger,
		Dispatch: []rpcserver.NamespaceDesc{
			{
				Name: "webService",
				Functions: []rpcserver.FunctionDesc{
					{Name: "echo", Fn: echo},
				},
			},
		},
	}

	handle, err := rpcserver.Create(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to start listener")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	rpcserver.Destroy(handle)
}
