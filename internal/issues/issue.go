// Package issues provides the issue record produced when a value is checked
// against a schema.
package issues

import (
	"fmt"

	"github.com/erraggy/hydraschema/internal/severity"
)

// Kind classifies a failure so callers can tell, for example, a wrong type
// apart from a wrong @type literal or a missing key.
type Kind string

// Issue kinds.
const (
	KindType      Kind = "type"
	KindLiteral   Kind = "literal"
	KindEnum      Kind = "enum"
	KindRequired  Kind = "required"
	KindFormat    Kind = "format"
	KindBound     Kind = "bound"
	KindNull      Kind = "null"
	KindUnknown   Kind = "unknown_property"
	KindReference Kind = "reference"
)

// Issue represents a single problem found while checking a value.
type Issue struct {
	// Path is the location of the offending value (e.g., "$.author.books[0].@type")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Kind classifies the issue
	Kind Kind
	// Value is the offending value (omitted when values are redacted)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses "✗" for errors and "ℹ" for informational notices.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}

// IsFailure reports whether this issue rejects the checked value.
func (i Issue) IsFailure() bool {
	return i.Severity.IsFailure()
}

// Failures returns the issues that reject the checked value, preserving order.
func Failures(list []Issue) []Issue {
	var out []Issue
	for _, i := range list {
		if i.IsFailure() {
			out = append(out, i)
		}
	}
	return out
}
