// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"qbsview/cli/internal/bridge"
	"qbsview/cli/internal/bridge/model"
	"qbsview/cli/internal/logging"
	"qbsview/cli/internal/project"

	"github.com/pterm/pterm"
)

// Session consumes a build-tool message stream.
type Session struct {
	logger   *pterm.Logger
	progress *Progress

	mu        sync.Mutex
	project   *project.Project
	failures  []Event
	skipped   int
	listeners []func(*project.Project)
}

// New creates a session reporting decode failures to logger. A nil logger
// discards them.
func New(logger *pterm.Logger) *Session {
	return &Session{logger: logger, progress: NewProgress()}
}

// Project returns the most recently resolved project, or nil.
func (s *Session) Project() *project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.project
}

// OnProjectResolved registers fn to run whenever a new project is resolved.
func (s *Session) OnProjectResolved(fn func(*project.Project)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Progress returns the session's task tracker.
func (s *Session) Progress() *Progress { return s.progress }

// Failures returns the events that reported an error, in order.
func (s *Session) Failures() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.failures...)
}

// Skipped returns how many messages failed to decode.
func (s *Session) Skipped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skipped
}

// Run reads src until it is exhausted, handing each decoded event to sink.
// It returns nil at the end of the stream and the source's error otherwise.
func (s *Session) Run(ctx context.Context, src bridge.Source, sink func(Event)) error {
	for {
		raw, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read session message: %w", err)
		}
		ev, err := s.handle(raw)
		if err != nil {
			s.mu.Lock()
			s.skipped++
			s.mu.Unlock()
			logging.ReportDecodeFailure(s.logger, err)
			continue
		}
		if sink != nil {
			sink(ev)
		}
	}
}

// handle decodes and applies a single raw message.
func (s *Session) handle(raw model.Raw) (Event, error) {
	ev, err := Decode(raw)
	if err != nil {
		return Event{}, err
	}
	s.apply(ev)
	return ev, nil
}

func (s *Session) apply(ev Event) {
	// A handshake opens a new build session on the same stream.
	if ev.Hello != nil {
		s.progress.Reset()
	}
	s.progress.Apply(ev)

	s.mu.Lock()
	if ev.Failed() {
		s.failures = append(s.failures, ev)
	}
	var listeners []func(*project.Project)
	if ev.Project != nil {
		s.project = ev.Project
		listeners = append(listeners, s.listeners...)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ev.Project)
	}
}
