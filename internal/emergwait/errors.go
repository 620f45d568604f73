// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package emergwait

import "errors"

// ErrPanic is returned if a stage panicked.
var ErrPanic = errors.New("stage panicked")
