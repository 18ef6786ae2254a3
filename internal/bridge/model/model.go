// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package model defines the typed results decoded from build-tool session messages.
// It provides one decode function per result kind, turning raw, partially
// stringified payloads into immutable values that the rendering and logging
// layers consume.
//
// Decoders are one-shot and fail fast: a missing key or an unparsable scalar is
// reported as an error instead of producing a partially valid result.
package model

import "qbsview/cli/internal/bridge/wire"

// Raw is an untyped, string-keyed message payload.
type Raw = wire.Raw

// MessageType is the value of the "type" key of a session message.
type MessageType string

const (
	TypeHello              MessageType = "hello"
	TypeProcessResult      MessageType = "process-result"
	TypeTaskStarted        MessageType = "task-started"
	TypeTaskProgress       MessageType = "task-progress"
	TypeNewMaxProgress     MessageType = "new-max-progress"
	TypeLogData            MessageType = "log-data"
	TypeCommandDescription MessageType = "command-description"
	TypeWarning            MessageType = "warning"
	TypeProtocolError      MessageType = "protocol-error"
	TypeProjectResolved    MessageType = "project-resolved"
	TypeProjectBuilt       MessageType = "project-built"
	TypeProjectCleaned     MessageType = "project-cleaned"
	TypeInstallDone        MessageType = "install-done"
)

// HelloResult is the session handshake.
type HelloResult struct {
	APILevel              int
	APICompatibilityLevel int
}

// ProcessResult describes a process the build tool ran on the session's behalf.
type ProcessResult struct {
	Executable       string
	Arguments        []string
	WorkingDirectory string
	StdOutput        []string
	StdError         []string
	Success          bool
}

// TaskStartedResult announces a new long-running task.
type TaskStartedResult struct {
	Description string
	MaxProgress int
}

// TaskProgressResult reports progress of the current task.
type TaskProgressResult struct {
	Progress int
}

// TaskMaxProgressResult changes the progress ceiling of the current task.
type TaskMaxProgressResult struct {
	MaxProgress int
}

// MessageResult is a single log line.
type MessageResult struct {
	Description string
}
