// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// IndefiniteWait makes [Reader.Wait] block until the journal changes.
const IndefiniteWait time.Duration = 1<<63 - 1

// ErrMalformedField is returned if field data does not start with the field
// name followed by "=".
var ErrMalformedField = errors.New("malformed field data")

// Reader is a query session on a journal.
//
// It matches the methods of [github.com/coreos/go-systemd/v22/sdjournal.Journal]
// that are required for selecting records.
type Reader interface {
	Matcher

	// SeekHead moves before the first entry.
	SeekHead() error

	// Next advances to the next matching entry. It returns 0 if there is
	// none.
	Next() (uint64, error)

	// Wait blocks until the journal changes or the timeout is reached. It
	// returns a negative errno on failure.
	Wait(timeout time.Duration) int

	// GetData returns the given field of the current entry as "FIELD=value".
	GetData(field string) (string, error)

	Close() error
}

// OpenFunc opens a [Reader].
type OpenFunc func() (Reader, error)

// DataFunc returns the raw "FIELD=value" data of a field.
type DataFunc func(field string) (string, error)

func fieldValue(getData DataFunc, field string) (string, error) {
	data, err := getData(field)
	if err != nil {
		return "", err
	}

	value, found := strings.CutPrefix(data, field+"=")
	if !found {
		return "", fmt.Errorf("%s: %w", field, ErrMalformedField)
	}

	return value, nil
}
