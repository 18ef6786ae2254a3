// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package model

import (
	"encoding/json"
	"testing"

	qerrors "qbsview/cli/internal/errors"
)

func TestErrorInfoItemFromString(t *testing.T) {
	item, err := DecodeErrorInfoItem(RawMessage("oops"))
	if err != nil {
		t.Fatalf("DecodeErrorInfoItem() error: %v", err)
	}
	if item.Description != "oops" || item.FilePath != "" || item.Line != -1 {
		t.Errorf("item = %+v", item)
	}
	if got := item.String(); got != "oops" {
		t.Errorf("String() = %q, want %q", got, "oops")
	}
}

func TestErrorInfoItemString(t *testing.T) {
	tests := []struct {
		name   string
		fields Raw
		want   string
	}{
		{
			name: "file and line",
			fields: Raw{
				"description": "bad token",
				"location":    map[string]any{"file-path": "a.qbs", "line": json.Number("7")},
			},
			want: "a.qbs:7:bad token",
		},
		{
			name: "stringified line",
			fields: Raw{
				"description": "bad token",
				"location":    map[string]any{"file-path": "a.qbs", "line": "7"},
			},
			want: "a.qbs:7:bad token",
		},
		{
			name: "file without line",
			fields: Raw{
				"description": "unreadable",
				"location":    map[string]any{"file-path": "b.qbs"},
			},
			want: "b.qbs:unreadable",
		},
		{
			name: "unknown line",
			fields: Raw{
				"description": "unreadable",
				"location":    map[string]any{"file-path": "b.qbs", "line": "-1"},
			},
			want: "b.qbs:unreadable",
		},
		{
			name:   "no location",
			fields: Raw{"description": "generic failure"},
			want:   "generic failure",
		},
		{
			name: "line without file",
			fields: Raw{
				"description": "orphan",
				"location":    map[string]any{"line": 3},
			},
			want: "orphan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := DecodeErrorInfoItem(StructuredMessage(tt.fields))
			if err != nil {
				t.Fatalf("DecodeErrorInfoItem() error: %v", err)
			}
			if got := item.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorInfoItemErrors(t *testing.T) {
	_, err := DecodeErrorInfoItem(StructuredMessage(Raw{"location": map[string]any{}}))
	if !qerrors.Is(err, qerrors.MissingField) {
		t.Errorf("missing description: error = %v", err)
	}

	_, err = DecodeErrorInfoItem(StructuredMessage(Raw{
		"description": "x",
		"location":    map[string]any{"file-path": "a.qbs", "line": "seven"},
	}))
	e, ok := qerrors.As(err)
	if !ok || e.Kind != qerrors.MalformedField || e.Field != "location.line" {
		t.Errorf("bad line: error = %v", err)
	}

	if _, err := DecodeErrorInfoItem(ErrorPayload{}); !qerrors.Is(err, qerrors.MalformedField) {
		t.Errorf("zero payload: error = %v", err)
	}
}

func TestErrorInfoResult(t *testing.T) {
	empty, err := DecodeErrorInfo(StructuredMessage(Raw{"items": []any{}}))
	if err != nil {
		t.Fatal(err)
	}
	if empty.HasError() {
		t.Error("HasError() = true for empty items")
	}

	noItems, err := DecodeErrorInfo(StructuredMessage(Raw{}))
	if err != nil || noItems.HasError() {
		t.Errorf("absent items: %+v, %v", noItems, err)
	}

	one, err := DecodeErrorInfo(StructuredMessage(Raw{"items": []any{
		map[string]any{"description": "bad token", "location": map[string]any{"file-path": "a.qbs", "line": "7"}},
	}}))
	if err != nil {
		t.Fatal(err)
	}
	if !one.HasError() {
		t.Error("HasError() = false for one item")
	}
	if one.Entries[0].Description != "bad token" {
		t.Errorf("entry not decoded: %+v", one.Entries[0])
	}

	single, err := DecodeErrorInfo(RawMessage("connection lost"))
	if err != nil || len(single.Entries) != 1 || single.String() != "connection lost" {
		t.Errorf("string payload: %+v, %v", single, err)
	}
}

func TestErrorInfoResultString(t *testing.T) {
	r, err := DecodeErrorInfo(StructuredMessage(Raw{"items": []any{
		map[string]any{"description": "first", "location": map[string]any{"file-path": "a.qbs", "line": "1"}},
		map[string]any{"description": "second"},
		"third",
	}}))
	if err != nil {
		t.Fatal(err)
	}
	want := "a.qbs:1:first\nsecond\nthird"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestErrorInfoResultItemFieldPath(t *testing.T) {
	_, err := DecodeErrorInfo(StructuredMessage(Raw{"items": []any{
		map[string]any{"description": "ok"},
		map[string]any{"location": map[string]any{}},
	}}))
	e, ok := qerrors.As(err)
	if !ok || e.Field != "items[1].description" {
		t.Errorf("error = %v, want field items[1].description", err)
	}

	_, err = DecodeErrorInfo(StructuredMessage(Raw{"items": []any{42}}))
	e, ok = qerrors.As(err)
	if !ok || e.Kind != qerrors.MalformedField || e.Field != "items[0]" {
		t.Errorf("error = %v, want malformed items[0]", err)
	}
}

func TestParseErrorPayload(t *testing.T) {
	p, err := ParseErrorPayload("x")
	if err != nil || p.Kind() != PayloadRaw || p.Text() != "x" {
		t.Errorf("string: %+v, %v", p, err)
	}
	p, err = ParseErrorPayload(map[string]any{"items": []any{}})
	if err != nil || p.Kind() != PayloadStructured || p.Fields() == nil {
		t.Errorf("object: %+v, %v", p, err)
	}
	if _, err := ParseErrorPayload(12); !qerrors.Is(err, qerrors.MalformedField) {
		t.Errorf("number: error = %v", err)
	}
}
