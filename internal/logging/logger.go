// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"strings"

	qerrors "qbsview/cli/internal/errors"

	"github.com/pterm/pterm"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var levels = map[string]pterm.LogLevel{
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"warning":  pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
	"disabled": pterm.LogLevelDisabled,
	"off":      pterm.LogLevelDisabled,
}

// ParseLevel maps a level name to a pterm log level. Empty means info.
func ParseLevel(s string) (pterm.LogLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return pterm.LogLevelInfo, nil
	}
	lvl, ok := levels[s]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// New builds a logger writing to w. format is "text" (colorful) or "json".
func New(level, format string, w io.Writer) (*pterm.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	var f pterm.LogFormatter
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		f = pterm.LogFormatterColorful
	case FormatJSON:
		f = pterm.LogFormatterJSON
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return pterm.DefaultLogger.WithLevel(lvl).WithFormatter(f).WithWriter(w), nil
}

// ReportDecodeFailure logs a message that could not be decoded, naming the
// message type and the field that failed so the offending value can be found.
func ReportDecodeFailure(logger *pterm.Logger, err error) {
	if logger == nil || err == nil {
		return
	}
	e, ok := qerrors.As(err)
	if !ok {
		logger.Warn("decode failed", logger.Args("error", Mask(err.Error())))
		return
	}
	args := []any{"kind", string(e.Kind)}
	if e.MessageType != "" {
		args = append(args, "message_type", e.MessageType)
	}
	if e.Field != "" {
		args = append(args, "field", e.Field)
	}
	args = append(args, "error", Mask(err.Error()))
	logger.Warn("decode failed", logger.Args(args...))
}
