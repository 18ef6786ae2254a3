// Package terminal provides utilities for terminal output: width detection,
// label truncation and a single repainted progress line.
package terminal

import (
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of w, or DefaultWidth when unknown.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}

// Truncate shortens s to at most limit runes, marking the cut with an ellipsis.
// A limit of zero or less disables truncation.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == limit-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString("…")
	return b.String()
}

// ProgressLine is a single status line that is redrawn in place. It is inert
// when the output is not a terminal, so piped output stays free of escape codes.
type ProgressLine struct {
	w       io.Writer
	enabled bool
	mu      sync.Mutex
	area    *pterm.AreaPrinter
}

// NewProgressLine returns a progress line for w.
func NewProgressLine(w io.Writer) *ProgressLine {
	return &ProgressLine{w: w, enabled: IsTerminal(w)}
}

// Update replaces the line's text, starting the line on first use.
func (p *ProgressLine) Update(text string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.area == nil {
		cursor.Hide()
		area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
		if err != nil {
			cursor.Show()
			p.enabled = false
			return
		}
		p.area = area
	}
	p.area.Update(Truncate(text, Width(p.w)-1))
}

// Clear removes the line so regular output can be printed.
func (p *ProgressLine) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.area == nil {
		return
	}
	_ = p.area.Stop()
	p.area = nil
	cursor.Show()
}
