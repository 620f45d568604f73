// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package journal_test

import (
	"errors"
	"strings"
	"time"

	"github.com/aibor/emergwait/internal/journal"
)

const testBootID = "0123456789abcdef0123456789abcdef"

var errNoEntry = errors.New("no current entry")

type entry map[string]string

func emergency(message, messageID string) entry {
	e := entry{
		journal.FieldBootID:   testBootID,
		journal.FieldUID:      "0",
		journal.FieldPriority: "0",
		journal.FieldMessage:  message,
	}

	if messageID != "" {
		e[journal.FieldMessageID] = messageID
	}

	return e
}

func (e entry) with(field, value string) entry {
	c := entry{}
	for k, v := range e {
		c[k] = v
	}

	c[field] = value

	return c
}

// fakeJournal is an in-memory journal. Each opened session shares its
// entries.
type fakeJournal struct {
	entries []entry

	// pending is appended to entries on each Wait, one batch per call.
	pending [][]entry

	// ignoreMatches makes sessions yield every entry.
	ignoreMatches bool

	openErr     error
	matchErr    error
	conjErr     error
	seekErr     error
	nextErr     error
	waitErrno   int
	missingData map[string]bool

	sessions []*fakeSession
}

func (j *fakeJournal) open() (journal.Reader, error) {
	if j.openErr != nil {
		return nil, j.openErr
	}

	s := &fakeSession{journal: j, current: -1}
	j.sessions = append(j.sessions, s)

	return s, nil
}

func (j *fakeJournal) closed() int {
	var count int

	for _, s := range j.sessions {
		count += s.closeCalls
	}

	return count
}

type fakeSession struct {
	journal *fakeJournal

	matches      []string
	conjunctions int
	position     int
	current      int
	waits        int
	closeCalls   int
}

func (s *fakeSession) AddMatch(match string) error {
	if s.journal.matchErr != nil {
		return s.journal.matchErr
	}

	s.matches = append(s.matches, match)

	return nil
}

func (s *fakeSession) AddConjunction() error {
	if s.journal.conjErr != nil {
		return s.journal.conjErr
	}

	s.conjunctions++

	return nil
}

func (s *fakeSession) SeekHead() error {
	if s.journal.seekErr != nil {
		return s.journal.seekErr
	}

	s.position = 0
	s.current = -1

	return nil
}

func (s *fakeSession) Next() (uint64, error) {
	if s.journal.nextErr != nil {
		return 0, s.journal.nextErr
	}

	for idx := s.position; idx < len(s.journal.entries); idx++ {
		if !s.journal.ignoreMatches && !s.matchesAll(s.journal.entries[idx]) {
			continue
		}

		s.position = idx + 1
		s.current = idx

		return 1, nil
	}

	s.position = len(s.journal.entries)
	s.current = -1

	return 0, nil
}

func (s *fakeSession) matchesAll(e entry) bool {
	for _, match := range s.matches {
		field, value, _ := strings.Cut(match, "=")
		if actual, exists := e[field]; !exists || actual != value {
			return false
		}
	}

	return true
}

func (s *fakeSession) Wait(_ time.Duration) int {
	s.waits++

	if s.journal.waitErrno != 0 {
		return -s.journal.waitErrno
	}

	if len(s.journal.pending) == 0 {
		panic("wait without pending entries would block forever")
	}

	s.journal.entries = append(s.journal.entries, s.journal.pending[0]...)
	s.journal.pending = s.journal.pending[1:]

	return 1
}

func (s *fakeSession) GetData(field string) (string, error) {
	if s.current < 0 {
		return "", errNoEntry
	}

	value, exists := s.journal.entries[s.current][field]
	if !exists || s.journal.missingData[field] {
		return "", errors.New("field not found")
	}

	return field + "=" + value, nil
}

func (s *fakeSession) Close() error {
	s.closeCalls++
	return nil
}
