// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"sync"

	"qbsview/cli/internal/bridge/model"
)

// Progress tracks the task the build tool is currently working on.
type Progress struct {
	description string
	progress    int
	max         int
	active      bool
	// done lists finished task descriptions in order of completion
	done []string
	// mu protects concurrent access to all fields
	mu sync.Mutex
}

// Snapshot is a consistent copy of the tracked progress.
type Snapshot struct {
	Description string
	Progress    int
	Max         int
	Active      bool
}

// Percent returns progress as a percentage clamped to [0, 100]. A task without
// a maximum reports 0.
func (s Snapshot) Percent() int {
	if s.Max <= 0 {
		return 0
	}
	p := s.Progress * 100 / s.Max
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// NewProgress creates an idle tracker.
func NewProgress() *Progress {
	return &Progress{done: []string{}}
}

// Apply updates the tracker from a decoded event. Events unrelated to task
// progress are ignored, except job-done messages which finish the current task.
func (p *Progress) Apply(ev Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case ev.TaskStarted != nil:
		p.finishLocked()
		p.description = ev.TaskStarted.Description
		p.max = ev.TaskStarted.MaxProgress
		p.progress = 0
		p.active = true
	case ev.TaskProgress != nil:
		p.progress = ev.TaskProgress.Progress
	case ev.MaxProgress != nil:
		p.max = ev.MaxProgress.MaxProgress
	default:
		switch ev.Type {
		case model.TypeProjectResolved, model.TypeProjectBuilt, model.TypeProjectCleaned, model.TypeInstallDone:
			p.finishLocked()
		}
	}
}

func (p *Progress) finishLocked() {
	if !p.active {
		return
	}
	p.done = append(p.done, p.description)
	p.active = false
	p.description = ""
	p.progress = 0
	p.max = 0
}

// Snapshot returns the current state.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{Description: p.description, Progress: p.progress, Max: p.max, Active: p.active}
}

// Completed returns the descriptions of finished tasks in order.
func (p *Progress) Completed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.done...)
}

// Reset clears all progress state.
func (p *Progress) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.description = ""
	p.progress = 0
	p.max = 0
	p.active = false
	p.done = []string{}
}
