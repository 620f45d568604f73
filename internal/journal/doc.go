// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package journal selects the first emergency record of the current boot from
// the local systemd journal.
//
// The [Selector] installs a conjunctive filter on the boot ID, the root user
// and the emergency priority, reads the journal from its head and returns the
// first matching [Record]. In wait mode it blocks in the journal's wait
// primitive until such a record is written.
package journal
