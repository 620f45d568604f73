// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package journal

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// BootIDFile is the kernel interface exposing the ID of the running boot.
const BootIDFile = "/proc/sys/kernel/random/boot_id"

// BootIDFunc returns the ID of the current boot.
type BootIDFunc func() (string, error)

// BootIDFrom returns a [BootIDFunc] that reads the boot ID from the given file.
func BootIDFrom(path string) BootIDFunc {
	return func() (string, error) {
		return ReadBootID(path)
	}
}

// ReadBootID reads the boot ID from the given file and returns it in the
// journal's format.
func ReadBootID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read boot id: %w", err)
	}

	return ParseBootID(string(bytes.TrimSpace(data)))
}

// ParseBootID parses a boot ID in any of the common UUID notations and returns
// it as 32 lowercase hex characters, as the journal stores it.
func ParseBootID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse boot id %q: %w", s, err)
	}

	return hex.EncodeToString(id[:]), nil
}
