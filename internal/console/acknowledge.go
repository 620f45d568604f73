// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// awaitAcknowledgement reads a single byte from the terminal.
//
// Any byte, end of input and read errors conclude the wait. A byte that is
// read counts even if the context is done at the same time. If the context is
// done before, the pending read is interrupted and the context's error is
// returned. The read deadline used for the interruption is cleared again
// before returning.
func awaitAcknowledgement(
	ctx context.Context,
	terminal Terminal,
	logger logrus.FieldLogger,
) error {
	var (
		group       errgroup.Group
		interrupted bool
	)

	done := make(chan struct{})

	group.Go(func() error {
		defer close(done)

		n, err := terminal.Read(make([]byte, 1))

		switch {
		case n > 0:
			return nil
		case ctx.Err() != nil:
			return fmt.Errorf("await acknowledgement: %w", ctx.Err())
		case err == nil, errors.Is(err, io.EOF):
			return nil
		default:
			logger.WithError(err).Warn("read acknowledgement, continuing")
			return nil
		}
	})

	group.Go(func() error {
		select {
		case <-done:
		case <-ctx.Done():
			interrupted = true

			if err := terminal.SetReadDeadline(time.Now()); err != nil {
				logger.WithError(err).Warn("interrupt acknowledgement read")
			}
		}

		return nil
	})

	err := group.Wait()

	if interrupted {
		if resetErr := terminal.SetReadDeadline(time.Time{}); resetErr != nil {
			logger.WithError(resetErr).Warn("clear read deadline")
		}
	}

	return err //nolint:wrapcheck
}
