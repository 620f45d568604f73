// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import "errors"

// cleanupStack collects release functions of acquired resources.
type cleanupStack []func() error

func (c *cleanupStack) push(fn func() error) {
	*c = append(*c, fn)
}

// run calls all functions in reverse order of their addition, even if some of
// them fail. Errors are joined.
func (c *cleanupStack) run() error {
	fns := *c
	*c = nil

	var errs []error

	for idx := len(fns) - 1; idx >= 0; idx-- {
		if err := fns[idx](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
