/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies the category of a core error (spec.md §7's error
// categories table), so a host application can switch on it without
// string-matching.
type Code int

const (
	ErrNone Code = iota
	ErrConfigInvalid
	ErrBind
	ErrPortInUse
	ErrAccept
	ErrCodecIncomplete
	ErrDispatch
	ErrShutdownTimeout
)

// Error is the typed error every exported failure path in this package
// returns. Code lets callers branch on failure category (spec.md §7);
// the message and wrapped cause remain available through Error()/Unwrap().
type Error struct {
	code  Code
	msg   string
	cause error
}

func newError(code Code, msg string) error {
	return errors.WithStack(&Error{code: code, msg: msg})
}

func wrapError(code Code, msg string, cause error) error {
	return errors.WithStack(&Error{code: code, msg: msg, cause: cause})
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() Code { return e.code }

// CodeOf extracts the Code from err if it (or something it wraps) is an
// *Error, returning ErrNone otherwise.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ErrNone
}
