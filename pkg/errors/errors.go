package errors

import (
	stdErrors "errors"
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardKind classifies why a clipboard write failed.
type ClipboardKind string

const (
	// ClipboardUnavailable means no clipboard could be reached at all.
	ClipboardUnavailable ClipboardKind = "unavailable"
	// ClipboardPermissionDenied means a clipboard exists but refused the write.
	ClipboardPermissionDenied ClipboardKind = "permission_denied"
)

var (
	// ErrClipboardUnavailable matches any ClipboardError of kind ClipboardUnavailable.
	ErrClipboardUnavailable = stdErrors.New("clipboard unavailable")
	// ErrClipboardPermission matches any ClipboardError of kind ClipboardPermissionDenied.
	ErrClipboardPermission = stdErrors.New("clipboard permission denied")
)

// ClipboardError reports a failed clipboard write. It is recoverable and never retried.
type ClipboardError struct {
	Backend string
	Kind    ClipboardKind
	Err     error
}

// NewClipboardError constructs a ClipboardError.
func NewClipboardError(backend string, kind ClipboardKind, err error) error {
	return &ClipboardError{Backend: backend, Kind: kind, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	reason := "clipboard unavailable"
	if e.Kind == ClipboardPermissionDenied {
		reason = "clipboard permission denied"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", reason, e.Backend, e.Err)
	}
	return fmt.Sprintf("%s [%s]", reason, e.Backend)
}

// Unwrap exposes the underlying error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets callers match on the kind sentinels.
func (e *ClipboardError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrClipboardUnavailable:
		return e.Kind == ClipboardUnavailable
	case ErrClipboardPermission:
		return e.Kind == ClipboardPermissionDenied
	}
	return false
}
