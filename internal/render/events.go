// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render turns session events and project trees into terminal output.
// Formatting is kept apart from printing: Lines and TreeNode build plain data
// that tests can inspect, while the printers add pterm styling.
package render

import (
	"fmt"
	"io"
	"strings"

	"qbsview/cli/internal/bridge/model"
	"qbsview/cli/internal/explorer"
	"qbsview/cli/internal/logging"
	"qbsview/cli/internal/session"
	"qbsview/cli/internal/terminal"

	"github.com/pterm/pterm"
)

// Level selects how a line is styled.
type Level int

const (
	LevelPlain Level = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// Line is one line of event output.
type Line struct {
	Level Level
	Text  string
}

// Lines formats ev. In quiet mode only warnings, errors and failed processes
// are kept.
func Lines(ev session.Event, quiet bool) []Line {
	var out []Line
	add := func(l Level, format string, a ...any) {
		out = append(out, Line{Level: l, Text: fmt.Sprintf(format, a...)})
	}

	switch ev.Type {
	case model.TypeHello:
		if ev.Hello != nil && !quiet {
			add(LevelInfo, "connected to build session (API level %d, compatible with %d)", ev.Hello.APILevel, ev.Hello.APICompatibilityLevel)
		}
	case model.TypeProcessResult:
		if p := ev.Process; p != nil && (!quiet || !p.Success) {
			add(LevelPlain, "$ %s", commandLine(p))
			for _, l := range p.StdOutput {
				add(LevelPlain, "  %s", logging.Mask(l))
			}
			for _, l := range p.StdError {
				add(LevelWarning, "  %s", logging.Mask(l))
			}
			if !p.Success {
				add(LevelError, "process %s failed in %s", p.Executable, p.WorkingDirectory)
			}
		}
	case model.TypeTaskStarted:
		if ev.TaskStarted != nil && !quiet {
			add(LevelInfo, "%s", ev.TaskStarted.Description)
		}
	case model.TypeLogData, model.TypeCommandDescription:
		if ev.Message != nil && !quiet {
			add(LevelPlain, "%s", logging.Mask(ev.Message.Description))
		}
	case model.TypeProjectResolved:
		if p := ev.Project; p != nil && !quiet {
			names, err := explorer.NewProjectNode(p, true).DependentProductNames()
			if err != nil {
				add(LevelError, "project %s resolved with an invalid structure: %v", p.Name, err)
			} else {
				add(LevelSuccess, "project %s resolved (%d products)", p.Name, len(names))
			}
		}
	case model.TypeProjectBuilt, model.TypeProjectCleaned, model.TypeInstallDone:
		if !ev.Failed() && !quiet {
			add(LevelSuccess, "%s", doneText(ev.Type))
		}
	}

	if ev.ErrorInfo != nil {
		lvl := LevelError
		if ev.Type == model.TypeWarning {
			lvl = LevelWarning
		}
		for _, e := range ev.ErrorInfo.Entries {
			add(lvl, "%s", logging.Mask(e.String()))
		}
	}
	return out
}

func commandLine(p *model.ProcessResult) string {
	parts := append([]string{p.Executable}, logging.MaskArgs(p.Arguments)...)
	return strings.Join(parts, " ")
}

func doneText(t model.MessageType) string {
	switch t {
	case model.TypeProjectBuilt:
		return "build finished"
	case model.TypeProjectCleaned:
		return "clean finished"
	default:
		return "install finished"
	}
}

// ProgressText formats the current task for the progress line.
func ProgressText(s session.Snapshot) string {
	if !s.Active {
		return ""
	}
	if s.Max <= 0 {
		return s.Description
	}
	return fmt.Sprintf("%s %3d%% (%d/%d)", s.Description, s.Percent(), s.Progress, s.Max)
}

// Printer writes events to w, keeping the progress line below regular output.
type Printer struct {
	w     io.Writer
	quiet bool
	line  *terminal.ProgressLine
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer, quiet bool) *Printer {
	return &Printer{w: w, quiet: quiet, line: terminal.NewProgressLine(w)}
}

// Print renders ev and then redraws the progress line from progress.
func (p *Printer) Print(ev session.Event, progress session.Snapshot) {
	lines := Lines(ev, p.quiet)
	if len(lines) > 0 {
		p.line.Clear()
	}
	for _, l := range lines {
		p.printLine(l)
	}
	if text := ProgressText(progress); text != "" && !p.quiet {
		p.line.Update(text)
	} else {
		p.line.Clear()
	}
}

// Close removes the progress line.
func (p *Printer) Close() { p.line.Clear() }

func (p *Printer) printLine(l Line) {
	switch l.Level {
	case LevelInfo:
		pterm.Info.WithWriter(p.w).Println(l.Text)
	case LevelSuccess:
		pterm.Success.WithWriter(p.w).Println(l.Text)
	case LevelWarning:
		pterm.Warning.WithWriter(p.w).Println(l.Text)
	case LevelError:
		pterm.Error.WithWriter(p.w).Println(l.Text)
	default:
		pterm.Fprintln(p.w, l.Text)
	}
}
