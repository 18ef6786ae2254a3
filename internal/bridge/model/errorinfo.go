// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package model

import (
	"fmt"
	"strconv"
	"strings"

	"qbsview/cli/internal/bridge/wire"
	qerrors "qbsview/cli/internal/errors"
)

// PayloadKind discriminates the two wire shapes of an error report.
type PayloadKind int

const (
	// PayloadRaw is a bare string message.
	PayloadRaw PayloadKind = iota + 1
	// PayloadStructured is an object with description/location or items.
	PayloadStructured
)

// ErrorPayload is an error report as sent by the build tool: either a bare
// string or a structured object, depending on the severity of the problem.
// Build one with RawMessage, StructuredMessage or ParseErrorPayload.
type ErrorPayload struct {
	kind   PayloadKind
	text   string
	fields Raw
}

// RawMessage returns a bare string payload.
func RawMessage(text string) ErrorPayload {
	return ErrorPayload{kind: PayloadRaw, text: text}
}

// StructuredMessage returns an object payload.
func StructuredMessage(fields Raw) ErrorPayload {
	return ErrorPayload{kind: PayloadStructured, fields: fields}
}

// ParseErrorPayload classifies a freshly deserialized value.
func ParseErrorPayload(v any) (ErrorPayload, error) {
	switch p := v.(type) {
	case string:
		return RawMessage(p), nil
	case map[string]any:
		return StructuredMessage(p), nil
	default:
		return ErrorPayload{}, qerrors.Malformed("", "", fmt.Sprintf("error payload must be a string or an object, got %T", v), nil)
	}
}

// Kind reports which variant p holds. The zero ErrorPayload has kind 0.
func (p ErrorPayload) Kind() PayloadKind { return p.kind }

// Text returns the message of a PayloadRaw payload.
func (p ErrorPayload) Text() string { return p.text }

// Fields returns the object of a PayloadStructured payload.
func (p ErrorPayload) Fields() Raw { return p.fields }

// ErrorInfoItem is one diagnostic. FilePath is empty and Line is -1 when unknown.
type ErrorInfoItem struct {
	Description string
	FilePath    string
	Line        int
}

// String renders "<file>:<line>:<description>", omitting unknown parts.
func (i ErrorInfoItem) String() string {
	s := i.FilePath
	if s != "" && i.Line != -1 {
		s += ":" + strconv.Itoa(i.Line)
	}
	if s != "" {
		s += ":"
	}
	return s + i.Description
}

// DecodeErrorInfoItem decodes a single diagnostic.
func DecodeErrorInfoItem(p ErrorPayload) (ErrorInfoItem, error) {
	switch p.kind {
	case PayloadRaw:
		return ErrorInfoItem{Description: p.text, Line: -1}, nil
	case PayloadStructured:
		desc, err := wire.String(p.fields, "", "description")
		if err != nil {
			return ErrorInfoItem{}, err
		}
		item := ErrorInfoItem{Description: desc, Line: -1}
		loc, ok, err := wire.Object(p.fields, "", "location")
		if err != nil || !ok {
			return item, err
		}
		if item.FilePath, err = wire.OptionalString(loc, "", "file-path", ""); err != nil {
			return ErrorInfoItem{}, qerrors.PrefixField(err, "location.")
		}
		if item.Line, err = wire.OptionalInt(loc, "", "line", -1); err != nil {
			return ErrorInfoItem{}, qerrors.PrefixField(err, "location.")
		}
		return item, nil
	default:
		return ErrorInfoItem{}, qerrors.Malformed("", "", "empty error payload", nil)
	}
}

// ErrorInfoResult is an ordered list of diagnostics.
type ErrorInfoResult struct {
	Entries []ErrorInfoItem
}

// HasError reports whether any diagnostic is present.
func (r ErrorInfoResult) HasError() bool { return len(r.Entries) > 0 }

// String renders one diagnostic per line.
func (r ErrorInfoResult) String() string {
	list := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		list = append(list, e.String())
	}
	return strings.Join(list, "\n")
}

// DecodeErrorInfo decodes an error report. A bare string becomes a single
// entry; an object contributes one entry per element of its "items" list.
func DecodeErrorInfo(p ErrorPayload) (ErrorInfoResult, error) {
	switch p.kind {
	case PayloadRaw:
		item, err := DecodeErrorInfoItem(p)
		if err != nil {
			return ErrorInfoResult{}, err
		}
		return ErrorInfoResult{Entries: []ErrorInfoItem{item}}, nil
	case PayloadStructured:
		items, err := wire.List(p.fields, "", "items")
		if err != nil {
			return ErrorInfoResult{}, err
		}
		entries := make([]ErrorInfoItem, 0, len(items))
		for i, v := range items {
			itemPayload, err := ParseErrorPayload(v)
			if err != nil {
				return ErrorInfoResult{}, qerrors.PrefixField(err, fmt.Sprintf("items[%d]", i))
			}
			entry, err := DecodeErrorInfoItem(itemPayload)
			if err != nil {
				return ErrorInfoResult{}, qerrors.PrefixField(err, fmt.Sprintf("items[%d].", i))
			}
			entries = append(entries, entry)
		}
		return ErrorInfoResult{Entries: entries}, nil
	default:
		return ErrorInfoResult{}, qerrors.Malformed("", "", "empty error payload", nil)
	}
}
