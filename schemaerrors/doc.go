// Package schemaerrors provides structured error types for hydraschema.
//
// Import path: github.com/erraggy/hydraschema/schemaerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a broken resource graph apart from a value that simply
// does not conform to its schema.
//
// # Error Types
//
//   - [ReferenceError]: a deferred resource reference could not be resolved
//   - [ValidationError]: a value does not conform to a schema
//   - [ParseError]: resource metadata could not be decoded
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrUnknownReference]: Matches [ReferenceError] whose title was never registered
//   - [ErrUnresolvedReference]: Matches [ReferenceError] whose title is registered but not built yet
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	accepted, err := v.Parse(value, result.Schemas["books"])
//	if errors.Is(err, schemaerrors.ErrUnknownReference) {
//	    // the resource graph is incomplete: fix the metadata, not the value
//	}
package schemaerrors
