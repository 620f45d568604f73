// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package journal

import (
	"github.com/aibor/emergwait/internal/fault"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Selector acquires the first emergency record of the current boot.
type Selector struct {
	// Open opens the journal. Defaults to [OpenLocal].
	Open OpenFunc

	// BootID returns the ID of the current boot. Defaults to reading
	// [BootIDFile].
	BootID BootIDFunc

	// Logger receives diagnostics. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// AcquireFirst returns the first record from the head of the journal that was
// logged by root with emergency priority during the current boot.
//
// If there is none and wait is true, it blocks until such a record is written.
// There is no timeout. If wait is false, an error of kind [fault.Empty] is
// returned instead.
//
// The journal is closed before AcquireFirst returns.
func (s *Selector) AcquireFirst(wait bool) (Record, error) {
	logger := s.logger()

	reader, err := s.open()
	if err != nil {
		return Record{}, fault.New(fault.JournalOpen, err)
	}

	defer func() {
		if err := reader.Close(); err != nil {
			logger.WithError(err).Warn("close journal")
		}
	}()

	bootID, err := s.bootID()
	if err != nil {
		return Record{}, fault.New(fault.BootIDUnavailable, err)
	}

	filter := EmergencyFilter(bootID)

	if err := filter.Install(reader); err != nil {
		return Record{}, err
	}

	if err := reader.SeekHead(); err != nil {
		return Record{}, fault.Errorf(fault.JournalSeek, "seek head: %w", err)
	}

	if err := advance(reader, filter, wait, logger); err != nil {
		return Record{}, err
	}

	return readRecord(reader, logger)
}

func (s *Selector) open() (Reader, error) {
	if s.Open == nil {
		return OpenLocal()
	}

	return s.Open()
}

func (s *Selector) bootID() (string, error) {
	if s.BootID == nil {
		return ReadBootID(BootIDFile)
	}

	return s.BootID()
}

func (s *Selector) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}

	return s.Logger
}

// advance moves the reader to the next record that matches the filter.
//
// Records yielded by the reader are checked against the filter again, so a
// record with disagreeing fields is never selected.
func advance(reader Reader, filter Filter, wait bool, logger logrus.FieldLogger) error {
	for {
		n, err := reader.Next()
		if err != nil {
			return fault.Errorf(fault.JournalRead, "next: %w", err)
		}

		if n == 0 {
			if !wait {
				return fault.New(fault.Empty, nil)
			}

			logger.Debug("waiting for emergency record")

			if r := reader.Wait(IndefiniteWait); r < 0 {
				return fault.Errorf(fault.JournalRead, "wait: %w", unix.Errno(-r))
			}

			continue
		}

		if !filter.Matches(reader.GetData) {
			logger.Debug("skipping record not matching filter")
			continue
		}

		return nil
	}
}

func readRecord(reader Reader, logger logrus.FieldLogger) (Record, error) {
	message, err := fieldValue(reader.GetData, FieldMessage)
	if err != nil {
		return Record{}, fault.Errorf(fault.JournalRead, "read %s: %w", FieldMessage, err)
	}

	messageID, err := fieldValue(reader.GetData, FieldMessageID)
	if err != nil {
		logger.WithError(err).Debug("record has no message id")

		messageID = ""
	}

	return Record{
		Message:   message,
		MessageID: messageID,
	}, nil
}
