// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package packet reads and writes the build tool's session packet framing.
//
// Each packet is the ASCII magic "qbsmsg:", the decimal length of the payload,
// a newline, and the payload itself: the compact JSON message encoded as
// standard base64. Packets follow each other with no separator.
package packet

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"qbsview/cli/internal/bridge/model"
	qerrors "qbsview/cli/internal/errors"
)

// Magic prefixes every packet header.
const Magic = "qbsmsg:"

// maxPayload bounds a single packet so a corrupt header cannot exhaust memory.
const maxPayload = 64 << 20

// Reader decodes packets from a byte stream.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next message. It returns io.EOF at a clean end of stream.
func (p *Reader) Next(ctx context.Context) (model.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var header string
	for header == "" {
		line, err := p.r.ReadString('\n')
		if err != nil {
			if err == io.EOF && strings.TrimSpace(line) == "" {
				return nil, io.EOF
			}
			return nil, qerrors.Wrap(qerrors.FrameInvalid, "reading packet header", io.ErrUnexpectedEOF)
		}
		// Line breaks between packets are tolerated.
		header = strings.TrimSpace(line)
	}
	if !strings.HasPrefix(header, Magic) {
		return nil, qerrors.New(qerrors.FrameInvalid, fmt.Sprintf("header %q lacks %q prefix", header, Magic))
	}
	n, err := strconv.Atoi(strings.TrimPrefix(header, Magic))
	if err != nil || n < 0 || n > maxPayload {
		return nil, qerrors.New(qerrors.FrameInvalid, fmt.Sprintf("invalid payload length in header %q", header))
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(p.r, payload); err != nil {
		return nil, qerrors.Wrap(qerrors.FrameInvalid, "reading packet payload", err)
	}
	data, err := base64.StdEncoding.DecodeString(string(payload))
	if err != nil {
		return nil, qerrors.Wrap(qerrors.FrameInvalid, "decoding base64 payload", err)
	}
	raw, err := DecodeJSON(data)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.FrameInvalid, "decoding packet JSON", err)
	}
	return raw, nil
}

// Writer encodes messages as packets.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write frames one message.
func (p *Writer) Write(msg model.Raw) error {
	b, err := Encode(msg)
	if err != nil {
		return err
	}
	_, err = p.w.Write(b)
	return err
}

// Encode returns the framed bytes of one message.
func Encode(msg model.Raw) ([]byte, error) {
	js, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	payload := base64.StdEncoding.EncodeToString(js)
	var buf bytes.Buffer
	buf.Grow(len(Magic) + len(payload) + 12)
	buf.WriteString(Magic)
	buf.WriteString(strconv.Itoa(len(payload)))
	buf.WriteByte('\n')
	buf.WriteString(payload)
	return buf.Bytes(), nil
}

// DecodeJSON decodes a single JSON object, keeping numbers as json.Number so
// integer fields survive without float rounding.
func DecodeJSON(data []byte) (model.Raw, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw model.Raw
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("message is not a JSON object")
	}
	return raw, nil
}
