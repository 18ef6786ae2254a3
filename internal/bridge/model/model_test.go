// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package model

import (
	"encoding/json"
	"reflect"
	"testing"

	qerrors "qbsview/cli/internal/errors"
)

func TestDecodeHello(t *testing.T) {
	tests := []struct {
		name     string
		raw      Raw
		want     HelloResult
		wantKind qerrors.Kind
	}{
		{
			name: "stringified levels",
			raw:  Raw{"type": "hello", "api-level": "5", "api-compat-level": "2"},
			want: HelloResult{APILevel: 5, APICompatibilityLevel: 2},
		},
		{
			name: "native numbers",
			raw:  Raw{"api-level": json.Number("4"), "api-compat-level": json.Number("4")},
			want: HelloResult{APILevel: 4, APICompatibilityLevel: 4},
		},
		{
			name:     "non-numeric level",
			raw:      Raw{"api-level": "five", "api-compat-level": "2"},
			wantKind: qerrors.MalformedField,
		},
		{
			name:     "negative level",
			raw:      Raw{"api-level": "-1", "api-compat-level": "2"},
			wantKind: qerrors.MalformedField,
		},
		{
			name:     "missing compat level",
			raw:      Raw{"api-level": "1"},
			wantKind: qerrors.MissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHello(tt.raw)
			if tt.wantKind != "" {
				if !qerrors.Is(err, tt.wantKind) {
					t.Fatalf("DecodeHello() error = %v, want %s", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeHello() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeHello() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeProcessResultSuccess(t *testing.T) {
	for _, literal := range []string{"true", "false"} {
		t.Run(literal, func(t *testing.T) {
			raw := Raw{
				"executable-file-path": "/usr/bin/gcc",
				"working-directory":    "/build",
				"arguments":            []any{"-c", "main.c"},
				"stdout":               []any{"ok"},
				"stderr":               []any{},
				"success":              literal,
			}
			got, err := DecodeProcessResult(raw)
			if err != nil {
				t.Fatalf("DecodeProcessResult() error: %v", err)
			}
			if got.Success != (literal == "true") {
				t.Errorf("Success = %v for %q", got.Success, literal)
			}
			if got.Executable != "/usr/bin/gcc" || got.WorkingDirectory != "/build" {
				t.Errorf("paths = %q, %q", got.Executable, got.WorkingDirectory)
			}
			if !reflect.DeepEqual(got.Arguments, []string{"-c", "main.c"}) {
				t.Errorf("Arguments = %q", got.Arguments)
			}
			if !reflect.DeepEqual(got.StdOutput, []string{"ok"}) || len(got.StdError) != 0 {
				t.Errorf("output = %q / %q", got.StdOutput, got.StdError)
			}
		})
	}
}

func TestDecodeProcessResultErrors(t *testing.T) {
	base := func() Raw {
		return Raw{
			"executable-file-path": "/bin/true",
			"working-directory":    "/",
			"success":              "true",
		}
	}

	tests := []struct {
		name     string
		mutate   func(Raw)
		wantKind qerrors.Kind
		field    string
	}{
		{name: "bad success literal", mutate: func(r Raw) { r["success"] = "yes" }, wantKind: qerrors.MalformedField, field: "success"},
		{name: "missing success", mutate: func(r Raw) { delete(r, "success") }, wantKind: qerrors.MissingField, field: "success"},
		{name: "missing executable", mutate: func(r Raw) { delete(r, "executable-file-path") }, wantKind: qerrors.MissingField, field: "executable-file-path"},
		{name: "arguments not a list", mutate: func(r Raw) { r["arguments"] = "-v" }, wantKind: qerrors.MalformedField, field: "arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := base()
			tt.mutate(raw)
			_, err := DecodeProcessResult(raw)
			e, ok := qerrors.As(err)
			if !ok || e.Kind != tt.wantKind {
				t.Fatalf("DecodeProcessResult() error = %v, want %s", err, tt.wantKind)
			}
			if e.Field != tt.field || e.MessageType != string(TypeProcessResult) {
				t.Errorf("error tagged %q/%q, want %s/%s", e.MessageType, e.Field, TypeProcessResult, tt.field)
			}
		})
	}

	got, err := DecodeProcessResult(base())
	if err != nil {
		t.Fatalf("minimal process result: %v", err)
	}
	if got.Arguments == nil || got.StdOutput == nil || got.StdError == nil {
		t.Error("absent lists should decode as empty, not nil")
	}
}

func TestDecodeTaskMessages(t *testing.T) {
	started, err := DecodeTaskStarted(Raw{"description": "Resolving", "max-progress": "10"})
	if err != nil || started != (TaskStartedResult{Description: "Resolving", MaxProgress: 10}) {
		t.Errorf("DecodeTaskStarted() = %+v, %v", started, err)
	}

	progress, err := DecodeTaskProgress(Raw{"progress": "3"})
	if err != nil || progress.Progress != 3 {
		t.Errorf("DecodeTaskProgress() = %+v, %v", progress, err)
	}

	maxProgress, err := DecodeTaskMaxProgress(Raw{"max-progress": "20"})
	if err != nil || maxProgress.MaxProgress != 20 {
		t.Errorf("DecodeTaskMaxProgress() = %+v, %v", maxProgress, err)
	}

	msg, err := DecodeMessage(Raw{"message": "compiling main.c"}, TypeLogData)
	if err != nil || msg.Description != "compiling main.c" {
		t.Errorf("DecodeMessage() = %+v, %v", msg, err)
	}
}

func TestNonNumericMaxProgressIsMalformed(t *testing.T) {
	for _, v := range []any{"", "ten", "1e3", "NaN", true} {
		if _, err := DecodeTaskStarted(Raw{"description": "x", "max-progress": v}); !qerrors.Is(err, qerrors.MalformedField) {
			t.Errorf("DecodeTaskStarted(max-progress=%v) error = %v, want malformed_field", v, err)
		}
		if _, err := DecodeTaskMaxProgress(Raw{"max-progress": v}); !qerrors.Is(err, qerrors.MalformedField) {
			t.Errorf("DecodeTaskMaxProgress(max-progress=%v) error = %v, want malformed_field", v, err)
		}
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	raw := Raw{"executable-file-path": "cc", "working-directory": "/", "arguments": []any{"a"}, "success": "false"}
	first, err := DecodeProcessResult(raw)
	if err != nil {
		t.Fatal(err)
	}
	second, err := DecodeProcessResult(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("decoding twice differs: %+v vs %+v", first, second)
	}
}
