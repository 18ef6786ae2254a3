// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package model

import (
	"qbsview/cli/internal/bridge/wire"
)

// DecodeHello decodes the handshake message.
func DecodeHello(raw Raw) (HelloResult, error) {
	const t = string(TypeHello)
	level, err := wire.Count(raw, t, "api-level")
	if err != nil {
		return HelloResult{}, err
	}
	compat, err := wire.Count(raw, t, "api-compat-level")
	if err != nil {
		return HelloResult{}, err
	}
	return HelloResult{APILevel: level, APICompatibilityLevel: compat}, nil
}

// DecodeProcessResult decodes a process-result message. The argument and
// output lists default to empty when absent.
func DecodeProcessResult(raw Raw) (ProcessResult, error) {
	const t = string(TypeProcessResult)
	var (
		r   ProcessResult
		err error
	)
	if r.Executable, err = wire.String(raw, t, "executable-file-path"); err != nil {
		return ProcessResult{}, err
	}
	if r.WorkingDirectory, err = wire.String(raw, t, "working-directory"); err != nil {
		return ProcessResult{}, err
	}
	if r.Arguments, err = wire.Strings(raw, t, "arguments"); err != nil {
		return ProcessResult{}, err
	}
	if r.StdOutput, err = wire.Lines(raw, t, "stdout"); err != nil {
		return ProcessResult{}, err
	}
	if r.StdError, err = wire.Lines(raw, t, "stderr"); err != nil {
		return ProcessResult{}, err
	}
	if r.Success, err = wire.Bool(raw, t, "success"); err != nil {
		return ProcessResult{}, err
	}
	return r, nil
}

// DecodeTaskStarted decodes a task-started message.
func DecodeTaskStarted(raw Raw) (TaskStartedResult, error) {
	const t = string(TypeTaskStarted)
	desc, err := wire.String(raw, t, "description")
	if err != nil {
		return TaskStartedResult{}, err
	}
	maxProgress, err := wire.Count(raw, t, "max-progress")
	if err != nil {
		return TaskStartedResult{}, err
	}
	return TaskStartedResult{Description: desc, MaxProgress: maxProgress}, nil
}

// DecodeTaskProgress decodes a task-progress message.
func DecodeTaskProgress(raw Raw) (TaskProgressResult, error) {
	progress, err := wire.Count(raw, string(TypeTaskProgress), "progress")
	if err != nil {
		return TaskProgressResult{}, err
	}
	return TaskProgressResult{Progress: progress}, nil
}

// DecodeTaskMaxProgress decodes a new-max-progress message.
func DecodeTaskMaxProgress(raw Raw) (TaskMaxProgressResult, error) {
	maxProgress, err := wire.Count(raw, string(TypeNewMaxProgress), "max-progress")
	if err != nil {
		return TaskMaxProgressResult{}, err
	}
	return TaskMaxProgressResult{MaxProgress: maxProgress}, nil
}

// DecodeMessage decodes a log line. msgType tags errors and is normally
// TypeLogData or TypeCommandDescription.
func DecodeMessage(raw Raw, msgType MessageType) (MessageResult, error) {
	if msgType == "" {
		msgType = TypeLogData
	}
	desc, err := wire.String(raw, string(msgType), "message")
	if err != nil {
		return MessageResult{}, err
	}
	return MessageResult{Description: desc}, nil
}
