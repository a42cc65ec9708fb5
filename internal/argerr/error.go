// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package argerr

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an aggregated argument error. Message is the primary message and
// Errors holds the individual problems, in the order they were found.
type Error struct {
	Message  string
	Errors   []string
	Multiple bool
}

// New creates a single-error value with no secondary messages.
func New(message string) *Error {
	return &Error{Message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// NewMultiple creates an aggregated error. The errs slice is copied.
func NewMultiple(message string, errs []string) *Error {
	e := &Error{Message: message}
	if len(errs) > 0 {
		e.Errors = append([]string(nil), errs...)
		e.Multiple = true
	}
	return e
}

// Error renders the primary message followed by one "- " line per problem.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Errors) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s:\n- %s", e.Message, strings.Join(e.Errors, "\n- "))
}

// Messages returns every message carried by the error, primary first.
func (e *Error) Messages() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Errors)+1)
	if strings.TrimSpace(e.Message) != "" {
		out = append(out, e.Message)
	}
	return append(out, e.Errors...)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var argErr *Error
	if errors.As(err, &argErr) && argErr != nil {
		return argErr, true
	}
	return nil, false
}
