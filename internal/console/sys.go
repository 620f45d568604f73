// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import (
	"fmt"
	"math"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// VT ioctl requests from linux/vt.h.
const (
	vtGetState   = 0x5603
	vtActivate   = 0x5606
	vtWaitActive = 0x5607
)

// vtStat is struct vt_stat from linux/vt.h.
type vtStat struct {
	active uint16
	signal uint16
	state  uint16
}

// inventory converts the kernel's VT state.
//
// The kernel state word is only 16 bits wide. The state of VTs beyond is
// unknown, so they are reported busy.
func (s vtStat) inventory() Inventory {
	return Inventory{
		Active: int(s.active),
		Busy:   uint64(s.state) | ^uint64(math.MaxUint16),
	}
}

type tty struct {
	*os.File
}

var _ Terminal = (*tty)(nil)

// OpenTTY opens the terminal device at the given path read-write, without
// making it the controlling terminal.
func OpenTTY(path string) (Terminal, error) {
	file, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &tty{file}, nil
}

// control runs fn with the raw file descriptor. Unlike [os.File.Fd] it keeps
// the descriptor in non-blocking mode, so read deadlines keep working.
func (t *tty) control(fn func(fd int) error) error {
	rawConn, err := t.SyscallConn()
	if err != nil {
		return fmt.Errorf("syscall conn: %w", err)
	}

	var opErr error

	err = rawConn.Control(func(fd uintptr) {
		opErr = fn(int(fd))
	})
	if err != nil {
		return fmt.Errorf("control: %w", err)
	}

	return opErr
}

func (t *tty) VTState() (Inventory, error) {
	var state vtStat

	err := t.control(func(fd int) error {
		_, _, errno := unix.Syscall(
			unix.SYS_IOCTL,
			uintptr(fd),
			vtGetState,
			uintptr(unsafe.Pointer(&state)),
		)
		if errno != 0 {
			return errno
		}

		return nil
	})
	if err != nil {
		return Inventory{}, fmt.Errorf("VT_GETSTATE: %w", err)
	}

	return state.inventory(), nil
}

func (t *tty) Activate(vt int) error {
	return t.control(func(fd int) error {
		if err := unix.IoctlSetInt(fd, vtActivate, vt); err != nil {
			return fmt.Errorf("VT_ACTIVATE: %w", err)
		}

		if err := unix.IoctlSetInt(fd, vtWaitActive, vt); err != nil {
			return fmt.Errorf("VT_WAITACTIVE: %w", err)
		}

		return nil
	})
}

func (t *tty) Size() (Size, error) {
	var size Size

	err := t.control(func(fd int) error {
		cols, rows, err := term.GetSize(fd)
		if err != nil {
			return fmt.Errorf("TIOCGWINSZ: %w", err)
		}

		size = Size{Rows: rows, Cols: cols}

		return nil
	})

	return size, err
}

func (t *tty) MakeRaw() (func() error, error) {
	var state *term.State

	err := t.control(func(fd int) error {
		var err error

		state, err = term.MakeRaw(fd)

		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("make raw: %w", err)
	}

	restore := func() error {
		return t.control(func(fd int) error {
			return term.Restore(fd, state) //nolint:wrapcheck
		})
	}

	return restore, nil
}
