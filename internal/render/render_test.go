// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"qbsview/cli/internal/bridge/model"
	"qbsview/cli/internal/explorer"
	"qbsview/cli/internal/project"
	"qbsview/cli/internal/session"

	"github.com/pterm/pterm"
)

func texts(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestLinesProcessResult(t *testing.T) {
	ev := session.Event{
		Type: model.TypeProcessResult,
		Process: &model.ProcessResult{
			Executable:       "/usr/bin/curl",
			Arguments:        []string{"--token", "abc", "https://u:p@example.com/x"},
			WorkingDirectory: "/build",
			StdOutput:        []string{"ok"},
			StdError:         []string{},
			Success:          false,
		},
	}
	got := texts(Lines(ev, false))
	want := []string{
		"$ /usr/bin/curl --token *** https://*:*@example.com/x",
		"  ok",
		"process /usr/bin/curl failed in /build",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}

	ev.Process.Success = true
	if lines := Lines(ev, true); len(lines) != 0 {
		t.Errorf("quiet mode printed a successful process: %q", texts(lines))
	}
}

func TestLinesErrorInfo(t *testing.T) {
	info := &model.ErrorInfoResult{Entries: []model.ErrorInfoItem{
		{Description: "bad token", FilePath: "a.qbs", Line: 7},
		{Description: "oops", Line: -1},
	}}

	warn := Lines(session.Event{Type: model.TypeWarning, ErrorInfo: info}, true)
	if len(warn) != 2 || warn[0].Level != LevelWarning || warn[0].Text != "a.qbs:7:bad token" {
		t.Errorf("warning lines = %+v", warn)
	}

	failed := Lines(session.Event{Type: model.TypeProjectBuilt, ErrorInfo: info}, false)
	if len(failed) != 2 || failed[1].Level != LevelError || failed[1].Text != "oops" {
		t.Errorf("build failure lines = %+v", failed)
	}
}

func TestLinesProjectResolved(t *testing.T) {
	p := &project.Project{
		Name:        "root",
		Products:    []project.Product{{Name: "app"}},
		SubProjects: []*project.Project{{Name: "lib", Products: []project.Product{{Name: "core"}}}},
	}
	got := Lines(session.Event{Type: model.TypeProjectResolved, Project: p}, false)
	if len(got) != 1 || got[0].Text != "project root resolved (2 products)" {
		t.Errorf("Lines() = %+v", got)
	}
}

func TestProgressText(t *testing.T) {
	tests := []struct {
		name string
		s    session.Snapshot
		want string
	}{
		{name: "idle", s: session.Snapshot{}, want: ""},
		{name: "no maximum", s: session.Snapshot{Description: "Resolving", Active: true}, want: "Resolving"},
		{name: "counted", s: session.Snapshot{Description: "Building", Progress: 1, Max: 4, Active: true}, want: "Building  25% (1/4)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressText(tt.s); got != tt.want {
				t.Errorf("ProgressText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Print(session.Event{Type: model.TypeLogData, Message: &model.MessageResult{Description: "hello from qbs"}}, session.Snapshot{})
	p.Close()
	if !strings.Contains(buf.String(), "hello from qbs") {
		t.Errorf("output = %q", buf.String())
	}
}

func sampleTree() *project.Project {
	return &project.Project{
		Name:     "root",
		Location: project.Location{FilePath: "/src/root.qbs", Line: 1},
		Products: []project.Product{{
			Name:      "app",
			Location:  project.Location{FilePath: "/src/app.qbs", Line: 3},
			IsEnabled: false,
			Groups: []project.Group{{
				Name:            "sources",
				IsEnabled:       true,
				Location:        project.Location{FilePath: "/src/app.qbs", Line: 9},
				SourceArtifacts: []project.SourceArtifact{{FilePath: "/src/run.sh", IsExecutable: true}},
			}},
		}},
	}
}

func TestTreeNode(t *testing.T) {
	tree := explorer.Expand(explorer.NewProjectNode(sampleTree(), true), 0)
	n := TreeNode(tree, 0)

	if n.Text != "root" || len(n.Children) != 2 {
		t.Fatalf("root = %+v", n)
	}
	product := n.Children[1]
	if product.Text != "app (disabled)" {
		t.Errorf("product label = %q", product.Text)
	}
	group := product.Children[1]
	if got := []string{group.Children[0].Text, group.Children[1].Text}; !reflect.DeepEqual(got, []string{"app.qbs:9", "run.sh*"}) {
		t.Errorf("group children = %v", got)
	}
}

func TestTreeMarksFailuresAndTruncation(t *testing.T) {
	root := sampleTree()
	root.SubProjects = []*project.Project{root}

	n := TreeNode(explorer.Expand(explorer.NewProjectNode(root, true), 0), 0)
	cyc := n.Children[2]
	if !strings.HasPrefix(cyc.Text, "⚠ root: cycle_detected") {
		t.Errorf("cyclic branch label = %q", cyc.Text)
	}

	shallow := TreeNode(explorer.Expand(explorer.NewProjectNode(sampleTree(), true), 1), 0)
	if got := shallow.Children[1].Text; got != "app (disabled) …" {
		t.Errorf("truncated label = %q", got)
	}
}

func TestTreeRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out, err := Tree(explorer.Expand(explorer.NewProjectNode(sampleTree(), true), 0), 12)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "root" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(out, "app (disabl…") {
		t.Errorf("label not truncated to width:\n%s", out)
	}
}
