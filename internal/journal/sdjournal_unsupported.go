// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux || !cgo

package journal

import (
	"errors"
	"fmt"
)

// OpenLocal fails, since reading the journal requires libsystemd via cgo.
func OpenLocal() (Reader, error) {
	return nil, fmt.Errorf("journal requires cgo on linux: %w", errors.ErrUnsupported)
}
