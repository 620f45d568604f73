// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fault classifies the failures of the emergency message pipeline.
//
// Every failure is tagged with a [Kind] at the step it originates from. The
// entry point maps the most severe [Kind] found in an error tree to the
// process exit status with [ExitCode].
package fault
