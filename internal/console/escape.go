// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/aibor/emergwait/internal/journal"
	"github.com/charmbracelet/x/ansi"
)

// Escape sequences written to the terminal.
const (
	seqBackgroundBlue = "\x1b[44m"
	seqHomeClear      = ansi.CursorHomePosition + ansi.EraseEntireScreen
	seqResetStyle     = "\x1b[0m"
)

// DefaultRows is used if the terminal does not report its height.
const DefaultRows = 24

func setCursorRow(w io.Writer, row int) error {
	_, err := fmt.Fprintf(w, "\x1b[%dH", row)
	return err //nolint:wrapcheck
}

// Banner returns the text painted for the given record.
//
// It is the message followed by a space and the message ID. If the record has
// no message ID, the placeholder is used instead. If that is empty as well,
// the banner is just the message. See [Sanitize] for how journal data is
// made safe to paint.
func Banner(record journal.Record, placeholder string) string {
	message := Sanitize(record.Message)

	id := placeholder
	if record.HasMessageID() {
		id = record.MessageID
	}

	id = Sanitize(id)
	if id == "" {
		return message
	}

	return message + " " + id
}

// Sanitize replaces invalid UTF-8 and control characters that could alter the
// terminal state with [utf8.RuneError]. Tabs and newlines are kept. No text
// is removed, so the banner always shows the complete message.
func Sanitize(s string) string {
	return strings.Map(
		func(r rune) rune {
			if isUnsafeControl(r) {
				return utf8.RuneError
			}

			return r
		},
		strings.ToValidUTF8(s, string(utf8.RuneError)),
	)
}

// isUnsafeControl reports C0 controls except tab and newline, DEL and C1
// controls.
func isUnsafeControl(r rune) bool {
	switch {
	case r == '\t', r == '\n':
		return false
	case r < 0x20, r == 0x7f:
		return true
	default:
		return r >= 0x80 && r <= 0x9f
	}
}
