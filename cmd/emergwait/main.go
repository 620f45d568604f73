// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aibor/emergwait/internal/console"
	"github.com/aibor/emergwait/internal/emergwait"
	"github.com/aibor/emergwait/internal/fault"
	"github.com/aibor/emergwait/internal/journal"
	"github.com/spf13/pflag"
)

// Set on build.
var (
	version = "dev"     //nolint:gochecknoglobals
	commit  = "none"    //nolint:gochecknoglobals
	date    = "unknown" //nolint:gochecknoglobals
)

func run(args []string, stdout, stderr io.Writer) int {
	return runWithJournal(journal.OpenLocal, args, stdout, stderr)
}

func runWithJournal(
	openJournal journal.OpenFunc,
	args []string,
	stdout, stderr io.Writer,
) int {
	cfg := newConfig()

	if err := cfg.parseArgs(args, stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		return fault.Usage.ExitCode()
	}

	if cfg.version {
		fmt.Fprintf(stdout, "emergwait %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}

	logger := newLogger(stderr, cfg.debug)

	selector := &journal.Selector{
		Open:   openJournal,
		BootID: journal.BootIDFrom(cfg.bootIDFile),
		Logger: logger,
	}

	presenter := &console.Presenter{
		Console:       cfg.console,
		PlaceholderID: cfg.placeholderID,
		Logger:        logger,
	}

	runCfg := emergwait.DefaultConfig()
	runCfg.Wait = !cfg.noWait

	err := emergwait.Run(context.Background(), runCfg, selector, presenter, logger)

	exitCode := fault.ExitCode(err)

	switch {
	case err == nil:
	case exitCode == 0:
		logger.WithError(err).Warn("emergency record presented with errors")
	default:
		logger.WithError(err).WithField("exit_code", exitCode).Error("failed")
	}

	return exitCode
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
