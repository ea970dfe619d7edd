// Package toolerrs provides structured error types for tool invocation
// failures. ToolError preserves error chains and supports errors.Is/As while
// staying serializable, so failure envelopes handed back to the calling SDK
// carry the full diagnostic context.
package toolerrs

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ToolError represents a structured tool failure that preserves message
	// and causal context while still implementing the standard error
	// interface. Errors may be nested via Cause to retain diagnostics across
	// adapter hops.
	ToolError struct {
		// Message is the human-readable summary of the failure.
		Message string
		// Cause links to the underlying tool error, enabling error chains
		// with errors.Is/As.
		Cause *ToolError
	}

	// FieldIssue records a single argument validation problem. Constraint
	// values follow the schema validator kinds: missing_field,
	// invalid_field_type, invalid_enum_value.
	FieldIssue struct {
		// Field is the parameter name, or a JSON pointer into it for nested
		// array elements.
		Field string
		// Constraint names the violated rule.
		Constraint string
		// Allowed lists the permitted values for enum violations.
		Allowed []string
	}

	// ArgumentError reports that a caller-supplied argument bag failed the
	// validating projection before the tool body ran.
	ArgumentError struct {
		// Tool is the name of the tool whose arguments were rejected.
		Tool string
		// Issues holds one entry per violated constraint.
		Issues []FieldIssue
	}
)

// New constructs a ToolError with the provided message. Use when the failure
// does not wrap an underlying error but still requires structured reporting.
func New(message string) *ToolError {
	if message == "" {
		message = "tool error"
	}
	return &ToolError{Message: message}
}

// NewWithCause constructs a ToolError that wraps an underlying error. The
// cause is converted into a ToolError chain so metadata survives
// serialization while still supporting errors.Is/As through Unwrap.
func NewWithCause(message string, cause error) *ToolError {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return &ToolError{Message: message, Cause: FromError(cause)}
}

// FromError converts an arbitrary error into a ToolError chain.
func FromError(err error) *ToolError {
	if err == nil {
		return nil
	}
	var te *ToolError
	if errors.As(err, &te) {
		return te
	}
	return &ToolError{
		Message: err.Error(),
		Cause:   FromError(errors.Unwrap(err)),
	}
}

// Errorf formats according to a format specifier and returns the string as a
// ToolError.
func Errorf(format string, args ...any) *ToolError {
	return New(fmt.Sprintf(format, args...))
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap returns the underlying tool error to support errors.Is/As.
func (e *ToolError) Unwrap() error {
	if e == nil || e.Cause == nil {
		return nil
	}
	return e.Cause
}

// Error implements the error interface. The message enumerates every issue
// so a single log line captures the full rejection.
func (e *ArgumentError) Error() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if len(is.Allowed) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s (allowed: %s)",
				is.Field, is.Constraint, strings.Join(is.Allowed, ", ")))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", is.Field, is.Constraint))
	}
	return fmt.Sprintf("invalid arguments for tool %q: %s", e.Tool, strings.Join(parts, "; "))
}
