package schemaerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrReference indicates a deferred resource reference failure.
	ErrReference = errors.New("reference error")

	// ErrUnknownReference indicates a reference to a resource title that no
	// resource in the set registers.
	ErrUnknownReference = errors.New("unknown resource reference")

	// ErrUnresolvedReference indicates a reference that was dereferenced before
	// its target schema was built.
	ErrUnresolvedReference = errors.New("unresolved resource reference")

	// ErrValidation indicates a value does not conform to its schema.
	ErrValidation = errors.New("validation error")

	// ErrParse indicates resource metadata could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ReferenceError represents a failure to dereference a resource by title.
type ReferenceError struct {
	// Title is the resource title that was looked up
	Title string
	// Path is the location of the value being checked when the lookup happened (may be empty)
	Path string
	// Unresolved is true when the title is registered but its schema is not built yet
	Unresolved bool
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := ErrUnknownReference.Error()
	if e.Unresolved {
		msg = ErrUnresolvedReference.Error()
	}
	if e.Title != "" {
		msg += fmt.Sprintf(" %q", e.Title)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ReferenceError has no underlying cause.
func (e *ReferenceError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrReference, and ErrUnknownReference or ErrUnresolvedReference
// depending on the Unresolved flag.
func (e *ReferenceError) Is(target error) bool {
	switch target {
	case ErrReference:
		return true
	case ErrUnresolvedReference:
		return e.Unresolved
	case ErrUnknownReference:
		return !e.Unresolved
	}
	return false
}

// ValidationError represents a value that does not conform to a schema.
type ValidationError struct {
	// Path is the location of the first failing value (e.g., "$.author.@type")
	Path string
	// Message describes the first failure
	Message string
	// Count is the total number of failures found (0 if unknown)
	Count int
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Count > 1 {
		msg += fmt.Sprintf(" (and %d more)", e.Count-1)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ParseError represents a failure to decode resource metadata.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the decoding failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
