// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fault

// Worst walks the error tree of err and returns the most severe [Kind] in it.
//
// Fatal kinds take precedence over non-fatal ones. Among kinds of the same
// class the first one found in depth-first order wins. The second return
// value reports if any [Kind] was found at all. The third one is true if the
// tree contains a leaf error that is not classified.
func Worst(err error) (Kind, bool, bool) {
	var (
		worst        Kind
		found        bool
		unclassified bool
	)

	walk(err, func(e error) bool {
		var kind Kind

		switch typed := e.(type) {
		case *Error:
			kind = typed.Kind
		case Kind:
			kind = typed
		default:
			if unwrapsNothing(e) {
				unclassified = true
			}

			return true
		}

		if !found || (kind.Fatal() && !worst.Fatal()) {
			worst = kind
			found = true
		}

		// Do not descend into classified errors. Their causes are
		// details of the same failure.
		return false
	})

	return worst, found, unclassified
}

// ExitCode returns the process exit status for the given error.
//
// It is 0 for nil and for errors that only contain non-fatal kinds. If the
// tree contains a fatal [Kind], its [Kind.ExitCode] is returned. Any other
// error results in 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	kind, found, unclassified := Worst(err)

	switch {
	case found && kind.Fatal():
		return kind.ExitCode()
	case unclassified:
		return 1
	case found:
		return kind.ExitCode()
	default:
		return 1
	}
}

func walk(err error, fn func(error) bool) {
	if err == nil || !fn(err) {
		return
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, child := range e.Unwrap() {
			walk(child, fn)
		}
	case interface{ Unwrap() error }:
		walk(e.Unwrap(), fn)
	}
}

func unwrapsNothing(err error) bool {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		return len(e.Unwrap()) == 0
	case interface{ Unwrap() error }:
		return e.Unwrap() == nil
	default:
		return true
	}
}
