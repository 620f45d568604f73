// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import (
	"io"

	"github.com/aibor/emergwait/internal/fault"
	"github.com/sirupsen/logrus"
)

// session is an activated target VT.
type session struct {
	terminal Terminal
	target   int
	original int
	rows     int
}

// paint writes the banner centred vertically on a blue background.
//
// Failing to set the colour or to clear the screen is logged only. Failing to
// position the cursor or to write the banner is fatal.
func (s *session) paint(banner string, logger logrus.FieldLogger) error {
	if _, err := io.WriteString(s.terminal, seqBackgroundBlue); err != nil {
		logger.WithError(err).Warn("set background colour, ignoring")
	}

	if _, err := io.WriteString(s.terminal, seqHomeClear); err != nil {
		logger.WithError(err).Warn("clear terminal, ignoring")
	}

	if err := setCursorRow(s.terminal, s.rows/2); err != nil {
		return fault.Errorf(fault.TTYWrite, "set cursor row: %w", err)
	}

	if _, err := io.WriteString(s.terminal, banner); err != nil {
		return fault.Errorf(fault.TTYWrite, "write message: %w", err)
	}

	return nil
}
