// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"fmt"

	"qbsview/cli/internal/bridge/model"
	"qbsview/cli/internal/bridge/wire"
	qerrors "qbsview/cli/internal/errors"
	"qbsview/cli/internal/project"
)

// Decode turns a raw session message into an Event, dispatching on its "type".
// Every error identifies the message type and, where one applies, the field.
func Decode(raw model.Raw) (Event, error) {
	typ, err := wire.String(raw, "", "type")
	if err != nil {
		return Event{}, err
	}
	t := model.MessageType(typ)
	ev := Event{Type: t}

	switch t {
	case model.TypeHello:
		r, err := model.DecodeHello(raw)
		if err != nil {
			return Event{}, err
		}
		ev.Hello = &r
	case model.TypeProcessResult:
		r, err := model.DecodeProcessResult(raw)
		if err != nil {
			return Event{}, err
		}
		ev.Process = &r
		if ev.ErrorInfo, err = errorInfo(raw, t, "error", false); err != nil {
			return Event{}, err
		}
	case model.TypeTaskStarted:
		r, err := model.DecodeTaskStarted(raw)
		if err != nil {
			return Event{}, err
		}
		ev.TaskStarted = &r
	case model.TypeTaskProgress:
		r, err := model.DecodeTaskProgress(raw)
		if err != nil {
			return Event{}, err
		}
		ev.TaskProgress = &r
	case model.TypeNewMaxProgress:
		r, err := model.DecodeTaskMaxProgress(raw)
		if err != nil {
			return Event{}, err
		}
		ev.MaxProgress = &r
	case model.TypeLogData, model.TypeCommandDescription:
		r, err := model.DecodeMessage(raw, t)
		if err != nil {
			return Event{}, err
		}
		ev.Message = &r
	case model.TypeWarning:
		if ev.ErrorInfo, err = errorInfo(raw, t, "warning", true); err != nil {
			return Event{}, err
		}
	case model.TypeProtocolError:
		if ev.ErrorInfo, err = errorInfo(raw, t, "error", true); err != nil {
			return Event{}, err
		}
	case model.TypeProjectResolved:
		if ev.ErrorInfo, err = errorInfo(raw, t, "error", false); err != nil {
			return Event{}, err
		}
		data, ok, err := wire.Object(raw, typ, "project-data")
		if err != nil {
			return Event{}, err
		}
		if ok {
			p, err := project.Parse(data)
			if err != nil {
				return Event{}, fmt.Errorf("project-data: %w", err)
			}
			ev.Project = p
		}
	case model.TypeProjectBuilt, model.TypeProjectCleaned, model.TypeInstallDone:
		if ev.ErrorInfo, err = errorInfo(raw, t, "error", false); err != nil {
			return Event{}, err
		}
	default:
		return Event{}, &qerrors.E{Kind: qerrors.UnknownMessage, Message: "unrecognized message type", MessageType: typ}
	}
	return ev, nil
}

// errorInfo decodes the error report stored under key. An absent optional
// report yields nil.
func errorInfo(raw model.Raw, t model.MessageType, key string, required bool) (*model.ErrorInfoResult, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		if required {
			return nil, qerrors.Missing(string(t), key)
		}
		return nil, nil
	}
	p, err := model.ParseErrorPayload(v)
	if err != nil {
		return nil, tag(err, t, key)
	}
	r, err := model.DecodeErrorInfo(p)
	if err != nil {
		return nil, tag(err, t, key)
	}
	return &r, nil
}

func tag(err error, t model.MessageType, key string) error {
	prefix := key
	if e, ok := qerrors.As(err); ok && e.Field != "" {
		prefix += "."
	}
	return qerrors.WithMessageType(qerrors.PrefixField(err, prefix), string(t))
}
