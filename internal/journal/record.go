// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package journal

// Record is an emergency journal record.
type Record struct {
	// Message is the value of the MESSAGE field. It may be empty.
	Message string
	// MessageID is the value of the MESSAGE_ID field. It is empty if the
	// record has no or an empty MESSAGE_ID field.
	MessageID string
}

// HasMessageID returns true if the record carries a message ID.
func (r Record) HasMessageID() bool {
	return r.MessageID != ""
}
