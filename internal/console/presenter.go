// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import (
	"context"
	"errors"
	"io"

	"github.com/aibor/emergwait/internal/fault"
	"github.com/aibor/emergwait/internal/journal"
	"github.com/sirupsen/logrus"
)

// DefaultConsole is the terminal the VT inventory is queried on.
const DefaultConsole = "/dev/tty1"

// Presenter shows a [journal.Record] on a free VT.
type Presenter struct {
	// Open opens terminal devices. Defaults to [OpenTTY].
	Open OpenFunc

	// Console is the terminal used for querying the VT state. Defaults to
	// [DefaultConsole].
	Console string

	// PlaceholderID is shown instead of a missing message ID. Nothing is
	// shown if empty.
	PlaceholderID string

	// Logger receives diagnostics. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// Present paints the record on the lowest free VT and waits for a key press.
//
// The VT that was active before is activated again on return. If that fails,
// an error of kind [fault.VTRestore] is returned, joined with any other
// error. If the context is done while waiting for the key press, Present
// returns the context's error.
func (p *Presenter) Present(ctx context.Context, record journal.Record) (err error) {
	logger := p.logger()

	inventory, err := p.inventory()
	if err != nil {
		return err
	}

	idx, found := inventory.FreeVT()
	if !found {
		return fault.Errorf(fault.NoFreeVT, "busy mask %#x", inventory.Busy)
	}

	var cleanup cleanupStack

	defer func() {
		err = errors.Join(err, cleanup.run())
	}()

	sess, err := p.openSession(idx+1, inventory.Active, &cleanup)
	if err != nil {
		return err
	}

	logger = logger.WithFields(logrus.Fields{
		"vt":          sess.target,
		"original_vt": sess.original,
	})

	sess.rows = terminalRows(sess.terminal, logger)

	cleanup.push(func() error {
		if _, err := io.WriteString(sess.terminal, seqResetStyle+seqHomeClear); err != nil {
			logger.WithError(err).Warn("reset terminal, ignoring")
		}

		return nil
	})

	if err := sess.paint(Banner(record, p.PlaceholderID), logger); err != nil {
		return err
	}

	logger.Info("emergency message displayed, waiting for acknowledgement")

	restoreMode, err := sess.terminal.MakeRaw()
	if err != nil {
		logger.WithError(err).Warn("set raw mode, ignoring")
	} else {
		cleanup.push(func() error {
			if err := restoreMode(); err != nil {
				logger.WithError(err).Warn("restore terminal mode, ignoring")
			}

			return nil
		})
	}

	if err := awaitAcknowledgement(ctx, sess.terminal, logger); err != nil {
		return err
	}

	logger.Info("emergency message acknowledged")

	return nil
}

func (p *Presenter) open(path string) (Terminal, error) {
	if p.Open == nil {
		return OpenTTY(path)
	}

	return p.Open(path)
}

func (p *Presenter) console() string {
	if p.Console == "" {
		return DefaultConsole
	}

	return p.Console
}

func (p *Presenter) logger() logrus.FieldLogger {
	if p.Logger == nil {
		return logrus.StandardLogger()
	}

	return p.Logger
}

// inventory queries the VT state on the console terminal, which is closed
// again before returning.
func (p *Presenter) inventory() (Inventory, error) {
	path := p.console()

	terminal, err := p.open(path)
	if err != nil {
		return Inventory{}, fault.Errorf(fault.TTYOpen, "%s: %w", path, err)
	}

	inventory, err := terminal.VTState()

	if closeErr := terminal.Close(); closeErr != nil {
		p.logger().WithError(closeErr).Warn("close " + path)
	}

	if err != nil {
		return Inventory{}, fault.New(fault.VTQuery, err)
	}

	return inventory, nil
}

// openSession opens and activates the target VT.
//
// The release of the descriptor and the activation of the original VT are
// pushed to the given cleanup stack as soon as they are owed.
func (p *Presenter) openSession(target, original int, cleanup *cleanupStack) (*session, error) {
	path := ttyPath(target)

	terminal, err := p.open(path)
	if err != nil {
		return nil, fault.Errorf(fault.TTYOpen, "%s: %w", path, err)
	}

	cleanup.push(func() error {
		if err := terminal.Close(); err != nil {
			p.logger().WithError(err).Warn("close " + path)
		}

		return nil
	})

	// Armed before activation, since a failed activation may still have
	// switched the VT.
	cleanup.push(func() error {
		if err := terminal.Activate(original); err != nil {
			return fault.Errorf(fault.VTRestore, "vt %d: %w", original, err)
		}

		return nil
	})

	if err := terminal.Activate(target); err != nil {
		return nil, fault.Errorf(fault.VTActivate, "vt %d: %w", target, err)
	}

	return &session{
		terminal: terminal,
		target:   target,
		original: original,
	}, nil
}

// terminalRows returns the height of the terminal or [DefaultRows] if it is unknown.
func terminalRows(terminal Terminal, logger logrus.FieldLogger) int {
	size, err := terminal.Size()
	if err != nil {
		logger.WithError(fault.New(fault.Winsize, err)).Debug("using default rows")
		return DefaultRows
	}

	if size.Rows <= 0 {
		logger.WithError(fault.New(fault.Winsize, nil)).Debug("using default rows")
		return DefaultRows
	}

	return size.Rows
}
