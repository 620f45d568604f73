// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package console presents a journal record full-screen on a free virtual
// terminal.
//
// The [Presenter] picks the lowest unused VT, switches to it, paints the
// record centred vertically on a blue background and waits for a single key
// press. Afterwards it switches back to the VT that was active before. The
// switch back happens on every exit path once the target VT is activated,
// including errors, panics and context cancellation.
package console
