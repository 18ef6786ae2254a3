// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"

	qerrors "qbsview/cli/internal/errors"

	"github.com/pterm/pterm"
)

// FormatDecodeError formats a decode or load failure in a user-friendly way.
func FormatDecodeError(err error) string {
	if err == nil {
		return ""
	}
	e, _ := qerrors.As(err)
	kind := qerrors.KindOf(err)

	var builder strings.Builder

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(title(kind)))
	builder.WriteString("\n\n")

	switch kind {
	case qerrors.MalformedField:
		builder.WriteString("A field in a build-tool message has a value that could not be parsed.\n")
		builder.WriteString("Numbers may be sent as JSON numbers or as decimal strings, and\n")
		builder.WriteString("booleans must be true or false.\n")
	case qerrors.MissingField:
		builder.WriteString("A build-tool message is missing a key it must carry.\n")
		builder.WriteString("The transcript may have been produced by an incompatible qbs version.\n")
	case qerrors.CycleDetected:
		builder.WriteString("The project data references a project that contains itself.\n")
		builder.WriteString("The affected branch was not expanded.\n")
	case qerrors.UnknownMessage:
		builder.WriteString("The transcript contains a message type this tool does not know.\n")
	case qerrors.FrameInvalid:
		builder.WriteString("The transcript could not be split into messages.\n")
		builder.WriteString("Check that --format matches the file (qbsmsg or jsonl).\n")
	case qerrors.LoadFailed:
		builder.WriteString("The project data file could not be read.\n")
		builder.WriteString("Supported formats are JSON, JSON with comments and YAML.\n")
	default:
		builder.WriteString("The operation failed.\n")
	}

	if e != nil && (e.MessageType != "" || e.Field != "") {
		builder.WriteString("\n")
		if e.MessageType != "" {
			builder.WriteString(fmt.Sprintf("  Message: %s\n", e.MessageType))
		}
		if e.Field != "" {
			builder.WriteString(fmt.Sprintf("  Field:   %s\n", e.Field))
		}
	}

	builder.WriteString("\n")
	builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(err.Error())))

	return builder.String()
}

func title(kind qerrors.Kind) string {
	switch kind {
	case qerrors.MalformedField:
		return "Malformed Field"
	case qerrors.MissingField:
		return "Missing Field"
	case qerrors.CycleDetected:
		return "Project Cycle"
	case qerrors.UnknownMessage:
		return "Unknown Message"
	case qerrors.FrameInvalid:
		return "Invalid Transcript"
	case qerrors.LoadFailed:
		return "Cannot Load Project"
	default:
		return "Error"
	}
}

// PresentDecodeError displays a formatted decode error.
func PresentDecodeError(err error) {
	pterm.Println()
	pterm.Println(FormatDecodeError(err))
	pterm.Println()
}

// PresentError formats an error as a single masked line. An empty context
// yields the message alone.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	msg := Mask(err.Error())
	if context == "" {
		return msg
	}
	return context + ": " + msg
}
