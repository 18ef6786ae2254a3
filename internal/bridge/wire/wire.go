// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package wire extracts typed fields from raw, loosely typed session messages.
//
// The build-tool session protocol stringifies most scalars ("42", "true"), but
// transcripts decoded from JSON or YAML may carry native numbers and booleans as
// well. Every accessor accepts both and reports failures as *errors.E values of
// kind MissingField or MalformedField, tagged with the message type and key.
package wire

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	qerrors "qbsview/cli/internal/errors"
)

// Raw is an untyped, string-keyed payload as delivered by the session protocol.
type Raw = map[string]any

// String returns the required string value at key.
func String(raw Raw, msgType, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", qerrors.Missing(msgType, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", qerrors.Malformed(msgType, key, fmt.Sprintf("expected a string, got %T", v), nil)
	}
	return s, nil
}

// OptionalString returns the string value at key, or def when the key is absent.
func OptionalString(raw Raw, msgType, key, def string) (string, error) {
	if v, ok := raw[key]; !ok || v == nil {
		return def, nil
	}
	return String(raw, msgType, key)
}

// Int returns the required integer value at key.
func Int(raw Raw, msgType, key string) (int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, qerrors.Missing(msgType, key)
	}
	n, err := ParseInt(v)
	if err != nil {
		return 0, qerrors.Malformed(msgType, key, "not a base-10 integer", err)
	}
	return n, nil
}

// OptionalInt returns the integer value at key, or def when the key is absent.
func OptionalInt(raw Raw, msgType, key string, def int) (int, error) {
	if v, ok := raw[key]; !ok || v == nil {
		return def, nil
	}
	return Int(raw, msgType, key)
}

// Count returns the required non-negative integer value at key.
func Count(raw Raw, msgType, key string) (int, error) {
	n, err := Int(raw, msgType, key)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, qerrors.Malformed(msgType, key, fmt.Sprintf("negative value %d", n), nil)
	}
	return n, nil
}

// Bool returns the required boolean value at key.
func Bool(raw Raw, msgType, key string) (bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return false, qerrors.Missing(msgType, key)
	}
	b, err := ParseBool(v)
	if err != nil {
		return false, qerrors.Malformed(msgType, key, "not a boolean literal", err)
	}
	return b, nil
}

// OptionalBool returns the boolean value at key, or def when the key is absent.
func OptionalBool(raw Raw, msgType, key string, def bool) (bool, error) {
	if v, ok := raw[key]; !ok || v == nil {
		return def, nil
	}
	return Bool(raw, msgType, key)
}

// Strings returns the list of strings at key. An absent key yields an empty list.
func Strings(raw Raw, msgType, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return []string{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			return append([]string{}, ss...), nil
		}
		return nil, qerrors.Malformed(msgType, key, fmt.Sprintf("expected a list, got %T", v), nil)
	}
	out := make([]string, 0, len(list))
	for i, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, qerrors.Malformed(msgType, key, fmt.Sprintf("element %d: expected a string, got %T", i, e), nil)
		}
		out = append(out, s)
	}
	return out, nil
}

// Lines returns captured output at key. The value may be a list of lines or a
// single newline-separated string. An absent key yields no lines.
func Lines(raw Raw, msgType, key string) ([]string, error) {
	if s, ok := raw[key].(string); ok {
		if s == "" {
			return []string{}, nil
		}
		return strings.Split(strings.TrimSuffix(s, "\n"), "\n"), nil
	}
	return Strings(raw, msgType, key)
}

// Object returns the nested mapping at key. ok is false when the key is absent.
func Object(raw Raw, msgType, key string) (obj Raw, ok bool, err error) {
	v, present := raw[key]
	if !present || v == nil {
		return nil, false, nil
	}
	obj, ok = v.(map[string]any)
	if !ok {
		return nil, false, qerrors.Malformed(msgType, key, fmt.Sprintf("expected an object, got %T", v), nil)
	}
	return obj, true, nil
}

// List returns the list at key. An absent key yields an empty list.
func List(raw Raw, msgType, key string) ([]any, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return []any{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, qerrors.Malformed(msgType, key, fmt.Sprintf("expected a list, got %T", v), nil)
	}
	return list, nil
}

// Objects returns the list of mappings at key. An absent key yields an empty list.
func Objects(raw Raw, msgType, key string) ([]Raw, error) {
	list, err := List(raw, msgType, key)
	if err != nil {
		return nil, err
	}
	out := make([]Raw, 0, len(list))
	for i, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, qerrors.Malformed(msgType, key, fmt.Sprintf("element %d: expected an object, got %T", i, e), nil)
		}
		out = append(out, m)
	}
	return out, nil
}

// ParseInt converts a wire scalar to an int. Strings are parsed as base-10
// integers; numeric values must be integral.
func ParseInt(v any) (int, error) {
	switch n := v.(type) {
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", n, strconv.ErrSyntax)
		}
		return i, nil
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 0)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", n.String(), strconv.ErrSyntax)
		}
		return int(i), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("value %d: %w", n, strconv.ErrRange)
		}
		return int(n), nil
	case float64:
		// -MinInt is the first power of two past MaxInt and is exact as a float.
		if math.Trunc(n) != n || n >= -math.MinInt || n < math.MinInt {
			return 0, fmt.Errorf("value %v: %w", n, strconv.ErrSyntax)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// ParseBool converts a wire scalar to a bool. Strings must be exactly the
// JSON literals "true" or "false".
func ParseBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch b {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, fmt.Errorf("parse %q: %w", b, strconv.ErrSyntax)
	default:
		return false, fmt.Errorf("unsupported type %T", v)
	}
}
