// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux && cgo

package journal

import "github.com/coreos/go-systemd/v22/sdjournal"

var _ Reader = (*sdjournal.Journal)(nil)

// OpenLocal opens the journal files of the local machine only.
func OpenLocal() (Reader, error) {
	j, err := sdjournal.NewJournal()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return j, nil
}
