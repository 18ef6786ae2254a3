package terminal

import (
	"bytes"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "fits", in: "main.cpp", max: 10, want: "main.cpp"},
		{name: "exact", in: "main.cpp", max: 8, want: "main.cpp"},
		{name: "cut", in: "main.cpp", max: 5, want: "main…"},
		{name: "multibyte", in: "ünïcödé", max: 4, want: "ünï…"},
		{name: "one", in: "abc", max: 1, want: "…"},
		{name: "disabled", in: "abc", max: 0, want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestWidthFallback(t *testing.T) {
	if got := Width(&bytes.Buffer{}); got != DefaultWidth {
		t.Errorf("Width() = %d, want %d", got, DefaultWidth)
	}
}

func TestProgressLineInertOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressLine(&buf)
	p.Update("Building 50%")
	p.Clear()
	if buf.Len() != 0 || p.area != nil {
		t.Error("progress line wrote to a non-terminal")
	}
}

func TestProgressLineMeasuresItsOwnWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressLine(&buf)
	if p.w != &buf {
		t.Fatal("progress line does not keep its writer")
	}
	if got := Width(p.w); got != DefaultWidth {
		t.Errorf("Width = %d, want %d", got, DefaultWidth)
	}
}
