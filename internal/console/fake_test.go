// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package console_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aibor/emergwait/internal/console"
)

// events records the operations on all fake terminals in order.
type events struct {
	mu   sync.Mutex
	list []string
}

func (e *events) add(format string, args ...any) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.list = append(e.list, fmt.Sprintf(format, args...))
}

func (e *events) all() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.list...)
}

type fakeTerminal struct {
	path   string
	events *events

	inventory   console.Inventory
	stateErr    error
	activateErr map[int]error
	size        console.Size
	sizeErr     error
	rawErr      error
	restoreErr  error
	deadlineErr error

	// writeErrs fails the n-th write, starting at 1.
	writeErrs map[int]error

	// input is returned by Read. If empty, Read returns io.EOF, unless
	// blockRead is set.
	input     []byte
	blockRead bool

	mu          sync.Mutex
	writes      int
	output      bytes.Buffer
	activations []int
	closeCalls  int
	raw         bool
	deadline    chan struct{}
	// deadlineCleared counts calls with the zero time.
	deadlineCleared int
}

func (f *fakeTerminal) Read(p []byte) (int, error) {
	f.events.add("%s read", f.path)

	if f.blockRead {
		<-f.deadlineChan()
		return 0, os.ErrDeadlineExceeded
	}

	if len(f.input) == 0 {
		return 0, io.EOF
	}

	return copy(p, f.input), nil
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.writes++
	if err := f.writeErrs[f.writes]; err != nil {
		return 0, err
	}

	f.events.add("%s write %q", f.path, p)

	return f.output.Write(p)
}

func (f *fakeTerminal) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closeCalls++
	f.events.add("%s close", f.path)

	return nil
}

func (f *fakeTerminal) deadlineChan() chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deadline == nil {
		f.deadline = make(chan struct{})
	}

	return f.deadline
}

func (f *fakeTerminal) SetReadDeadline(deadline time.Time) error {
	if f.deadlineErr != nil {
		return f.deadlineErr
	}

	if deadline.IsZero() {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.deadlineCleared++
		f.deadline = nil

		return nil
	}

	expired := f.deadlineChan()

	select {
	case <-expired:
	default:
		close(expired)
	}

	return nil
}

func (f *fakeTerminal) VTState() (console.Inventory, error) {
	f.events.add("%s state", f.path)
	return f.inventory, f.stateErr
}

func (f *fakeTerminal) Activate(vt int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.activations = append(f.activations, vt)
	f.events.add("%s activate %d", f.path, vt)

	return f.activateErr[vt]
}

func (f *fakeTerminal) Size() (console.Size, error) {
	return f.size, f.sizeErr
}

func (f *fakeTerminal) MakeRaw() (func() error, error) {
	if f.rawErr != nil {
		return nil, f.rawErr
	}

	f.raw = true

	return func() error {
		f.raw = false
		return f.restoreErr
	}, nil
}

func (f *fakeTerminal) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.output.String()
}

// fakeDevices maps paths to fake terminals.
type fakeDevices struct {
	events    *events
	terminals map[string]*fakeTerminal
	opened    []string
}

func newFakeDevices(terminals ...*fakeTerminal) *fakeDevices {
	devices := &fakeDevices{
		events:    &events{},
		terminals: map[string]*fakeTerminal{},
	}

	for _, terminal := range terminals {
		terminal.events = devices.events
		devices.terminals[terminal.path] = terminal
	}

	return devices
}

func (d *fakeDevices) open(path string) (console.Terminal, error) {
	d.opened = append(d.opened, path)

	terminal, exists := d.terminals[path]
	if !exists {
		return nil, os.ErrNotExist
	}

	d.events.add("%s open", path)

	return terminal, nil
}

// leaked returns the paths of terminals that were opened but not closed.
func (d *fakeDevices) leaked() []string {
	var leaked []string

	for _, path := range d.opened {
		terminal, exists := d.terminals[path]
		if exists && terminal.closeCalls == 0 {
			leaked = append(leaked, path)
		}
	}

	return leaked
}

func seq(parts ...string) string {
	return strings.Join(parts, "")
}
