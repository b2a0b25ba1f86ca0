// Package severity provides severity level constants for issues reported by
// the schema check engine.
//
//   - SeverityError: the value does not conform; the check fails
//   - SeverityInfo: a notice that does not affect the outcome, such as an
//     unrecognized property that was accepted and kept
package severity

// Severity indicates the severity level of an issue found while checking a value.
type Severity int

const (
	// SeverityError indicates a conformance failure. Any issue at this level
	// makes the checked value invalid.
	SeverityError Severity = iota

	// SeverityInfo indicates an informational notice. Values carrying only
	// info issues are still accepted.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// IsFailure reports whether an issue at this level rejects the value.
func (s Severity) IsFailure() bool {
	return s == SeverityError
}
