// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// newLogger creates the diagnostics logger writing to the given writer.
//
// Output is human readable on terminals and JSON otherwise, e.g. when the
// service manager forwards it to the journal.
func newLogger(output io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.JSONFormatter{})

	if file, ok := output.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
