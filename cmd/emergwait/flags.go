// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io"

	"github.com/aibor/emergwait/internal/console"
	"github.com/aibor/emergwait/internal/journal"
	"github.com/spf13/pflag"
)

type config struct {
	noWait        bool
	console       string
	placeholderID string
	bootIDFile    string
	debug         bool
	version       bool
}

func newConfig() config {
	return config{
		console:    console.DefaultConsole,
		bootIDFile: journal.BootIDFile,
	}
}

func (cfg *config) parseArgs(args []string, output io.Writer) error {
	fsName := args[0]
	fs := pflag.NewFlagSet(fsName, pflag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags]\n\n", fsName)
		fmt.Fprintln(output, "Show the first emergency journal record of the current boot on a free VT.")
		fmt.Fprintln(output)
		fs.PrintDefaults()
	}

	fs.BoolVar(
		&cfg.noWait,
		"no-wait",
		cfg.noWait,
		"fail instead of waiting if there is no emergency record yet",
	)

	fs.StringVar(
		&cfg.console,
		"console",
		cfg.console,
		"terminal used for querying the VT state",
	)

	fs.StringVar(
		&cfg.placeholderID,
		"placeholder-id",
		cfg.placeholderID,
		"message ID shown for records without one",
	)

	fs.StringVar(
		&cfg.bootIDFile,
		"boot-id-file",
		cfg.bootIDFile,
		"file to read the current boot ID from",
	)

	fs.BoolVar(
		&cfg.debug,
		"debug",
		cfg.debug,
		"enable debug output",
	)

	fs.BoolVar(
		&cfg.version,
		"version",
		cfg.version,
		"show version and exit",
	)

	if err := fs.Parse(args[1:]); err != nil {
		return err //nolint:wrapcheck
	}

	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %q", fs.Args())
		fmt.Fprintln(output, err)

		return err
	}

	return nil
}
