// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package emergwait composes the journal selection and the console
// presentation of the first emergency record of the current boot.
package emergwait
