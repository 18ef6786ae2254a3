// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session decodes a stream of build-tool session messages into typed
// events and tracks what the session has reported so far: the current task's
// progress, the failures it announced, and the most recently resolved project.
//
// A session is driven by a bridge.Source. Messages that fail to decode are
// reported to the logger with their type and offending field and then skipped;
// only a failing source ends the run early.
package session

import (
	"qbsview/cli/internal/bridge/model"
	"qbsview/cli/internal/project"
)

// Event is a generic container for decoded session messages.
// Only the fields matching Type are set.
type Event struct {
	Type model.MessageType

	Hello        *model.HelloResult
	Process      *model.ProcessResult
	TaskStarted  *model.TaskStartedResult
	TaskProgress *model.TaskProgressResult
	MaxProgress  *model.TaskMaxProgressResult
	Message      *model.MessageResult

	// ErrorInfo carries the "error" of process-result and the job-done
	// messages, the "warning" of warning and the "error" of protocol-error.
	ErrorInfo *model.ErrorInfoResult

	// Project is set by project-resolved when it carries project data.
	Project *project.Project
}

// Failed reports whether the event announces an error. Warnings are not failures.
func (e Event) Failed() bool {
	if e.Type == model.TypeWarning {
		return false
	}
	if e.ErrorInfo != nil && e.ErrorInfo.HasError() {
		return true
	}
	return e.Process != nil && !e.Process.Success
}
