// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. Decode failures additionally carry the protocol message
// type and the wire field that failed, so the logging layer can point at the exact
// offending value.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import (
	goerrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// MalformedField indicates a numeric or boolean field that failed to parse,
	// or a field whose value has the wrong shape.
	MalformedField Kind = "malformed_field"
	// MissingField indicates an expected key is absent from a raw message.
	MissingField Kind = "missing_field"
	// CycleDetected indicates a project graph traversal revisited a project.
	CycleDetected Kind = "cycle_detected"
	// UnknownMessage indicates a raw message with an unrecognized type.
	UnknownMessage Kind = "unknown_message"
	// FrameInvalid indicates a transcript frame that could not be read.
	FrameInvalid Kind = "frame_invalid"
	// LoadFailed indicates a project data file could not be loaded.
	LoadFailed Kind = "load_failed"
)

// E wraps an error with kind and human-friendly message.
// MessageType and Field are set for decode failures.
type E struct {
	Kind        Kind
	Message     string
	MessageType string
	Field       string
	Err         error
}

func (e *E) Error() string {
	prefix := string(e.Kind)
	if e.MessageType != "" {
		prefix += " [" + e.MessageType + "]"
	}
	if e.Field != "" {
		prefix += " " + e.Field
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Missing reports an absent key in a raw message.
func Missing(messageType, field string) *E {
	return &E{Kind: MissingField, Message: "required key is absent", MessageType: messageType, Field: field}
}

// Malformed reports a field value that could not be decoded.
func Malformed(messageType, field, msg string, err error) *E {
	return &E{Kind: MalformedField, Message: msg, MessageType: messageType, Field: field, Err: err}
}

// WithMessageType returns a copy of err tagged with messageType when err is an *E
// that does not carry one yet. Other errors are returned unchanged.
func WithMessageType(err error, messageType string) error {
	var e *E
	if !goerrors.As(err, &e) || e.MessageType != "" {
		return err
	}
	c := *e
	c.MessageType = messageType
	return &c
}

// PrefixField returns a copy of err with prefix prepended to its field path.
// Errors that are not an *E are returned unchanged.
func PrefixField(err error, prefix string) error {
	var e *E
	if !goerrors.As(err, &e) {
		return err
	}
	c := *e
	c.Field = prefix + c.Field
	return &c
}

// KindOf returns the kind of the first *E in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *E
	if goerrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// As returns the first *E in err's chain.
func As(err error) (*E, bool) {
	var e *E
	ok := goerrors.As(err, &e)
	return e, ok
}
