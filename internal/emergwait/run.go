// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package emergwait

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aibor/emergwait/internal/journal"
	"github.com/sirupsen/logrus"
)

// Selector acquires the emergency record.
type Selector interface {
	AcquireFirst(wait bool) (journal.Record, error)
}

// Presenter shows the emergency record to the operator.
type Presenter interface {
	Present(ctx context.Context, record journal.Record) error
}

// Config defines the behaviour of [Run].
type Config struct {
	// Wait blocks until an emergency record is written, if there is none
	// yet.
	Wait bool

	// Signals cancel the presentation, so the original VT is restored
	// before the process terminates. They are only handled while the record
	// is presented.
	Signals []os.Signal
}

// DefaultSignals returns the signals that terminate the process by default.
func DefaultSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGABRT,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	}
}

// DefaultConfig returns the configuration matching the invocation without
// arguments.
func DefaultConfig() Config {
	return Config{
		Wait:    true,
		Signals: DefaultSignals(),
	}
}

// Run acquires the first emergency record with the given [Selector] and
// passes it to the given [Presenter].
//
// The presenter is not called if the selector fails. Panics of both are
// recovered and returned as error wrapping [ErrPanic].
func Run(
	ctx context.Context,
	cfg Config,
	selector Selector,
	presenter Presenter,
	logger logrus.FieldLogger,
) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		if recoveredErr, ok := rec.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanic, recoveredErr)
		} else {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	record, err := selector.AcquireFirst(cfg.Wait)
	if err != nil {
		return fmt.Errorf("acquire emergency record: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"message":    record.Message,
		"message_id": record.MessageID,
	}).Info("emergency record acquired")

	if len(cfg.Signals) > 0 {
		var stop context.CancelFunc

		ctx, stop = signal.NotifyContext(ctx, cfg.Signals...)
		defer stop()
	}

	if err := presenter.Present(ctx, record); err != nil {
		return fmt.Errorf("present emergency record: %w", err)
	}

	return nil
}
