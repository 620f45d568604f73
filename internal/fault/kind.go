// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fault

import "strconv"

// Kind identifies the class of a failure.
//
// A Kind is an error itself, so it can be used as target for [errors.Is]:
//
//	if errors.Is(err, fault.NoFreeVT) {
//		...
//	}
type Kind int

const (
	// JournalOpen is returned if the local journal can not be opened.
	JournalOpen Kind = iota + 1
	// BootIDUnavailable is returned if the current boot ID can not be read.
	BootIDUnavailable
	// FilterInstall is returned if a match term can not be installed.
	FilterInstall
	// JournalSeek is returned if seeking to the journal head fails.
	JournalSeek
	// JournalRead is returned if advancing, waiting or reading a field fails.
	JournalRead
	// Empty is returned in non-wait mode if no matching record exists.
	Empty
	// OutOfMemory is returned if a field value can not be allocated.
	OutOfMemory
	// TTYOpen is returned if a terminal device can not be opened.
	TTYOpen
	// VTQuery is returned if the VT state can not be queried.
	VTQuery
	// NoFreeVT is returned if all VTs are in use.
	NoFreeVT
	// VTActivate is returned if switching to the target VT fails.
	VTActivate
	// TTYWrite is returned if the banner can not be written.
	TTYWrite
	// VTRestore is returned if switching back to the original VT fails.
	VTRestore
	// Winsize is returned if the window size is unavailable. Informational.
	Winsize
	// Usage is returned for invalid command line arguments.
	Usage
)

var kindNames = map[Kind]string{
	JournalOpen:       "journal open",
	BootIDUnavailable: "boot id unavailable",
	FilterInstall:     "filter install",
	JournalSeek:       "journal seek",
	JournalRead:       "journal read",
	Empty:             "no matching record",
	OutOfMemory:       "out of memory",
	TTYOpen:           "tty open",
	VTQuery:           "vt query",
	NoFreeVT:          "no free vt",
	VTActivate:        "vt activate",
	TTYWrite:          "tty write",
	VTRestore:         "vt restore",
	Winsize:           "window size",
	Usage:             "usage",
}

// String returns the human readable name of the Kind.
func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Error implements the [error] interface.
func (k Kind) Error() string {
	return k.String()
}

// Fatal reports whether the Kind aborts the run.
//
// [VTRestore] happens after the operator acknowledged the message and
// [Winsize] has a safe default, so neither changes the exit status.
func (k Kind) Fatal() bool {
	switch k {
	case VTRestore, Winsize:
		return false
	default:
		return true
	}
}

// ExitCode returns the process exit status for the Kind.
func (k Kind) ExitCode() int {
	switch k {
	case VTRestore, Winsize:
		return 0
	case Usage:
		return 2
	case JournalOpen:
		return 10
	case BootIDUnavailable:
		return 11
	case FilterInstall:
		return 12
	case JournalSeek:
		return 13
	case JournalRead:
		return 14
	case Empty:
		return 15
	case OutOfMemory:
		return 16
	case TTYOpen:
		return 20
	case VTQuery:
		return 21
	case NoFreeVT:
		return 22
	case VTActivate:
		return 23
	case TTYWrite:
		return 24
	default:
		return 1
	}
}
