// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"testing"

	"qbsview/cli/internal/bridge/model"
)

func TestProgressLifecycle(t *testing.T) {
	p := NewProgress()
	if p.Snapshot().Active {
		t.Fatal("new tracker is active")
	}

	p.Apply(Event{TaskStarted: &model.TaskStartedResult{Description: "Building", MaxProgress: 8}})
	p.Apply(Event{TaskProgress: &model.TaskProgressResult{Progress: 2}})
	if s := p.Snapshot(); !s.Active || s.Percent() != 25 {
		t.Errorf("snapshot = %+v, percent %d", s, s.Percent())
	}

	p.Apply(Event{MaxProgress: &model.TaskMaxProgressResult{MaxProgress: 4}})
	if got := p.Snapshot().Percent(); got != 50 {
		t.Errorf("percent after new max = %d, want 50", got)
	}

	p.Apply(Event{Type: model.TypeProjectBuilt})
	if s := p.Snapshot(); s.Active {
		t.Errorf("task still active after project-built: %+v", s)
	}
	if got := p.Completed(); len(got) != 1 || got[0] != "Building" {
		t.Errorf("Completed() = %v", got)
	}

	p.Reset()
	if len(p.Completed()) != 0 {
		t.Error("Reset() kept completed tasks")
	}
}

func TestSnapshotPercent(t *testing.T) {
	tests := []struct {
		name string
		s    Snapshot
		want int
	}{
		{name: "no maximum", s: Snapshot{Progress: 3}, want: 0},
		{name: "half", s: Snapshot{Progress: 5, Max: 10}, want: 50},
		{name: "overshoot", s: Snapshot{Progress: 12, Max: 10}, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Percent(); got != tt.want {
				t.Errorf("Percent() = %d, want %d", got, tt.want)
			}
		})
	}
}
