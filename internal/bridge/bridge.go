// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bridge defines the boundary between captured build-tool session traffic
// and the decoders. A Source yields raw, untyped messages one at a time; how they
// were framed on disk is an implementation detail of the Source.
//
// Live transport (sockets, child processes) stays outside this package: a
// transcript is anything already written to a file or piped to stdin.
package bridge

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"qbsview/cli/internal/bridge/model"
	"qbsview/cli/internal/bridge/packet"
	qerrors "qbsview/cli/internal/errors"
)

// Source yields raw session messages. Next returns io.EOF after the last one.
type Source interface {
	Next(ctx context.Context) (model.Raw, error)
}

// Format names a transcript framing.
type Format string

const (
	// FormatPacket is the native "qbsmsg:<len>\n<base64>" framing.
	FormatPacket Format = "qbsmsg"
	// FormatJSONLines is one JSON object per line.
	FormatJSONLines Format = "jsonl"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPacket, FormatJSONLines:
		return f, nil
	case "":
		return FormatPacket, nil
	default:
		return "", fmt.Errorf("unknown transcript format %q (want %s or %s)", s, FormatPacket, FormatJSONLines)
	}
}

// New returns a Source reading r in the given format.
func New(r io.Reader, format Format) (Source, error) {
	switch format {
	case FormatPacket, "":
		return packet.NewReader(r), nil
	case FormatJSONLines:
		return NewLineSource(r), nil
	default:
		return nil, fmt.Errorf("unknown transcript format %q", format)
	}
}

// LineSource reads one JSON object per line. Blank lines are skipped.
type LineSource struct {
	sc   *bufio.Scanner
	line int
}

// NewLineSource returns a LineSource over r.
func NewLineSource(r io.Reader) *LineSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64<<20)
	return &LineSource{sc: sc}
}

// Next returns the message on the next non-blank line.
func (s *LineSource) Next(ctx context.Context) (model.Raw, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return nil, qerrors.Wrap(qerrors.FrameInvalid, fmt.Sprintf("reading line %d", s.line+1), err)
			}
			return nil, io.EOF
		}
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" {
			continue
		}
		raw, err := packet.DecodeJSON([]byte(text))
		if err != nil {
			return nil, qerrors.Wrap(qerrors.FrameInvalid, fmt.Sprintf("line %d", s.line), err)
		}
		return raw, nil
	}
}
