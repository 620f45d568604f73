// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package journal

import (
	"strconv"

	"github.com/aibor/emergwait/internal/fault"
)

// Journal fields used for filtering and extraction.
const (
	FieldBootID    = "_BOOT_ID"
	FieldUID       = "_UID"
	FieldPriority  = "PRIORITY"
	FieldMessage   = "MESSAGE"
	FieldMessageID = "MESSAGE_ID"
)

// PriorityEmergency is the most severe syslog priority.
const PriorityEmergency = 0

// RootUID is the user ID of the superuser.
const RootUID = 0

// Match is a field equality term.
type Match struct {
	Field string
	Value string
}

// String returns the term in the journal's "FIELD=value" form.
func (m Match) String() string {
	return m.Field + "=" + m.Value
}

// Filter is a conjunction of [Match] terms.
type Filter []Match

// EmergencyFilter returns the filter for emergency records logged by root
// during the boot with the given ID.
func EmergencyFilter(bootID string) Filter {
	return Filter{
		{Field: FieldBootID, Value: bootID},
		{Field: FieldUID, Value: strconv.Itoa(RootUID)},
		{Field: FieldPriority, Value: strconv.Itoa(PriorityEmergency)},
	}
}

// Matcher installs match terms on a journal query.
type Matcher interface {
	AddMatch(match string) error
	AddConjunction() error
}

// Install adds all terms to the given [Matcher].
//
// Each term is followed by a conjunction, so terms on the same field are
// never ORed.
func (f Filter) Install(matcher Matcher) error {
	for _, match := range f {
		if err := matcher.AddMatch(match.String()); err != nil {
			return fault.Errorf(fault.FilterInstall, "add match %s: %w", match, err)
		}

		if err := matcher.AddConjunction(); err != nil {
			return fault.Errorf(fault.FilterInstall, "conjunction after %s: %w", match, err)
		}
	}

	return nil
}

// Matches returns true if every term of the filter has the exact value
// returned by getData for its field.
func (f Filter) Matches(getData DataFunc) bool {
	for _, match := range f {
		value, err := fieldValue(getData, match.Field)
		if err != nil || value != match.Value {
			return false
		}
	}

	return true
}
