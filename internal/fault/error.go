// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fault

import "fmt"

// Error tags an underlying error with a [Kind].
type Error struct {
	Kind Kind
	Err  error
}

// New returns an [Error] of the given [Kind] wrapping err.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Errorf returns an [Error] of the given [Kind] wrapping an error created by
// [fmt.Errorf] with the given format and arguments.
func Errorf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Errorf(format, args...))
}

// Error implements the [error] interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return e.Kind.String() + ": " + e.Err.Error()
}

// Is reports whether other is the same [Kind] or an [Error] of the same
// [Kind].
func (e *Error) Is(other error) bool {
	switch o := other.(type) {
	case Kind:
		return o == e.Kind
	case *Error:
		return o.Kind == e.Kind
	default:
		return false
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
