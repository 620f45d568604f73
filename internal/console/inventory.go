// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import "strconv"

// MaxVT is the highest VT number the kernel supports.
const MaxVT = 63

// Inventory is a snapshot of the kernel's VT state.
type Inventory struct {
	// Active is the number of the active VT, starting at 1.
	Active int

	// Busy has the bit of each VT index set that is in use.
	Busy uint64
}

// FreeVT returns the lowest index whose bit is clear in [Inventory.Busy].
//
// The VT number of an index is index + 1. Indexes whose VT number is the
// active VT or above [MaxVT] are skipped. It returns false if there is no
// free index.
func (i Inventory) FreeVT() (int, bool) {
	for idx := range 64 {
		if i.Busy&(1<<idx) != 0 {
			continue
		}

		vt := idx + 1
		if vt == i.Active || vt > MaxVT {
			continue
		}

		return idx, true
	}

	return 0, false
}

func ttyPath(vt int) string {
	return "/dev/tty" + strconv.Itoa(vt)
}
