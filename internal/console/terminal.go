// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import (
	"io"
	"time"
)

// Size is the window size of a terminal in character cells.
type Size struct {
	Rows int
	Cols int
}

// Terminal is an open virtual terminal device.
type Terminal interface {
	io.ReadWriteCloser

	// SetReadDeadline sets the deadline for pending and future reads.
	SetReadDeadline(t time.Time) error

	// VTState returns the current VT inventory.
	VTState() (Inventory, error)

	// Activate switches to the given VT number and waits until the switch
	// is complete.
	Activate(vt int) error

	// Size returns the window size.
	Size() (Size, error)

	// MakeRaw puts the terminal into raw mode, so single key presses can be
	// read. The returned function restores the previous mode.
	MakeRaw() (func() error, error)
}

// OpenFunc opens the terminal device at the given path.
type OpenFunc func(path string) (Terminal, error)
