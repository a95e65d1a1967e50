// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grr provides easy, context-wrapped error handling in Go.
// Errors created or wrapped through grr remember the chain of
// functions that produced them, and still work with [errors.Is]
// and [errors.As] through [Error.Unwrap].
package grr

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"
)

// MaxStack is the maximum number of function names recorded
// in the [Error.Stack] of a newly wrapped error.
var MaxStack = 4

// Error is the main type of grr and represents an error with
// a base error and a stack trace.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an error object with
// a stack trace. It returns nil if the given error is nil.
// If it is not nil, the result is guaranteed to be of type [*Error].
// Errors that are already of type [*Error] are returned unchanged,
// so wrapping at every package boundary does not grow the stack.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var ge *Error
	if errors.As(err, &ge) {
		return err
	}
	return &Error{
		Base:  err,
		Stack: callers(3),
	}
}

// New returns a new error with the given text, wrapped with
// a stack trace via [Wrap]. The result guaranteed to be of
// type [*Error]. It is the grr equivalent of [errors.New].
func New(text string) error {
	return &Error{Base: errors.New(text), Stack: callers(3)}
}

// Errorf returns a new error with the given format and arguments,
// wrapped with a stack trace. The result guaranteed to be of
// type [*Error]. It is the grr equivalent of [fmt.Errorf], and
// supports %w for sentinel errors. If an argument is already an
// [*Error], the result keeps its stack and shows it only once.
func Errorf(format string, a ...any) error {
	a = slices.Clone(a)
	var stack []string
	for i, v := range a {
		ge, ok := v.(*Error)
		if !ok {
			continue
		}
		if stack == nil {
			stack = ge.Stack
		}
		a[i] = &inner{ge}
	}
	if stack == nil {
		stack = callers(3)
	}
	return &Error{Base: fmt.Errorf(format, a...), Stack: stack}
}

// inner is an [*Error] formatted inside of another one,
// without its stack.
type inner struct {
	err *Error
}

func (e *inner) Error() string { return e.err.Base.Error() }

func (e *inner) Unwrap() error { return e.err }

// Error returns the error as a string, wrapping the string of
// the base error with the stack trace.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// String returns the error as a string, wrapping the string of
// the base error with the stack trace.
func (e *Error) String() string {
	return e.Error()
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Log logs the given error at the error level if it is non-nil,
// and returns it unchanged, so it can be used inline:
//
//	return grr.Log(doSomething())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Must panics if the given error is non-nil, and otherwise
// returns the value. It is for errors that indicate a
// programmer mistake, such as malformed embedded data.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// callers returns the short names of up to [MaxStack] functions
// on the call stack, outermost first, starting skip frames up.
func callers(skip int) []string {
	pcs := make([]uintptr, MaxStack)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stack []string
	for {
		fr, more := frames.Next()
		name := fr.Function
		if li := strings.LastIndex(name, "/"); li >= 0 {
			name = name[li+1:]
		}
		if name != "" && !strings.HasPrefix(name, "runtime.") && !strings.HasPrefix(name, "testing.") {
			stack = append(stack, name)
		}
		if !more {
			break
		}
	}
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}
