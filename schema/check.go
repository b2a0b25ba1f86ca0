package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/hydraschema/internal/issues"
	"github.com/erraggy/hydraschema/internal/severity"
	"github.com/erraggy/hydraschema/internal/stringutil"
	"github.com/erraggy/hydraschema/schemaerrors"
)

// ValidationError represents a single issue found while checking a value.
type ValidationError = issues.Issue

// IssueKind classifies a ValidationError.
type IssueKind = issues.Kind

// Severity levels for validation errors.
type Severity = severity.Severity

// Severity constants re-exported for convenience.
const (
	SeverityError = severity.SeverityError
	SeverityInfo  = severity.SeverityInfo
)

// Issue kinds re-exported for convenience.
const (
	IssueType      = issues.KindType
	IssueLiteral   = issues.KindLiteral
	IssueEnum      = issues.KindEnum
	IssueRequired  = issues.KindRequired
	IssueFormat    = issues.KindFormat
	IssueBound     = issues.KindBound
	IssueNull      = issues.KindNull
	IssueUnknown   = issues.KindUnknown
	IssueReference = issues.KindReference
)

// maxLazyHops bounds how many Lazy nodes may be followed without consuming
// any structure of the value.
const maxLazyHops = 32

// Validator checks values against schemas.
//
// Values are expected in the shape encoding/json produces (map[string]any,
// []any, float64, string, bool, nil); Go integer kinds and json.Number are
// accepted as numbers too. A Validator is safe for concurrent use as long as
// its fields are not changed while checks run.
type Validator struct {
	// ReportUnknownKeys adds an info issue for every object property that the
	// schema does not declare. Such properties are accepted either way.
	ReportUnknownKeys bool

	// redactValues controls whether actual values appear in messages.
	redactValues bool
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// NewRedactingValidator creates a Validator that omits actual values from
// messages and issues.
func NewRedactingValidator() *Validator {
	return &Validator{redactValues: true}
}

// Validate checks data against s and returns every issue found, using path
// as the location of data ("$" when empty).
//
// The error is non-nil only when a Lazy node cannot be resolved; it is a
// *schemaerrors.ReferenceError and checking stops at that point.
func (v *Validator) Validate(data any, s *Schema, path string) ([]ValidationError, error) {
	_, found, err := v.run(data, s, path)
	return found, err
}

// Parse checks data against s and returns the accepted value. Preprocessing
// steps are applied and unknown object properties are kept.
//
// A non-conforming value yields a *schemaerrors.ValidationError describing the
// first failure; an unresolvable reference yields a *schemaerrors.ReferenceError.
func (v *Validator) Parse(data any, s *Schema) (any, error) {
	out, found, err := v.run(data, s, issues.RootPath)
	if err != nil {
		return nil, err
	}
	if failures := issues.Failures(found); len(failures) > 0 {
		return nil, &schemaerrors.ValidationError{
			Path:    failures[0].Path,
			Message: failures[0].Message,
			Count:   len(failures),
		}
	}
	return out, nil
}

// Conforms reports whether data is accepted by s. Reference failures are
// returned rather than folded into the result.
func (v *Validator) Conforms(data any, s *Schema) (bool, error) {
	found, err := v.Validate(data, s, issues.RootPath)
	if err != nil {
		return false, err
	}
	return len(issues.Failures(found)) == 0, nil
}

func (v *Validator) run(data any, s *Schema, path string) (any, []ValidationError, error) {
	if path == "" {
		path = issues.RootPath
	}
	c := &checker{v: v}
	out := c.check(data, s, path)
	if c.err != nil {
		return nil, c.found, c.err
	}
	return out, c.found, nil
}

// checker holds the state of one Validate call.
type checker struct {
	v     *Validator
	found []ValidationError
	err   error
}

func (c *checker) fail(path string, kind IssueKind, msg string, value any) {
	if c.v.redactValues {
		value = nil
	}
	c.found = append(c.found, ValidationError{
		Path:     path,
		Message:  msg,
		Severity: SeverityError,
		Kind:     kind,
		Value:    value,
	})
}

func (c *checker) note(path string, kind IssueKind, msg string) {
	c.found = append(c.found, ValidationError{
		Path:     path,
		Message:  msg,
		Severity: SeverityInfo,
		Kind:     kind,
	})
}

// check validates data and returns the value to keep in the parsed output.
func (c *checker) check(data any, s *Schema, path string) any {
	if s == nil || c.err != nil {
		return data
	}
	if s.Preprocess != nil {
		data = s.Preprocess(data)
	}

	switch s.Kind {
	case KindLazy:
		target, err := c.resolve(s, path)
		if err != nil {
			c.err = err
			return data
		}
		return c.check(data, target, path)
	case KindOptional:
		// Absence is handled by the enclosing object; a present value must match.
		return c.check(data, s.Elem, path)
	case KindNullable:
		if data == nil {
			return nil
		}
		return c.check(data, s.Elem, path)
	}

	if data == nil {
		c.fail(path, IssueNull, "value cannot be null", nil)
		return nil
	}

	switch s.Kind {
	case KindString:
		c.checkString(data, s, path)
	case KindInteger:
		c.checkInteger(data, s, path)
	case KindNumber:
		if _, ok := toFloat64(data); !ok {
			c.failType(path, "number", data)
		}
	case KindBoolean:
		if _, ok := data.(bool); !ok {
			c.failType(path, "boolean", data)
		}
	case KindLiteral:
		if !literalEqual(data, s.Value) {
			msg := fmt.Sprintf("expected literal %s", formatLiteral(s.Value))
			if !c.v.redactValues {
				msg += fmt.Sprintf(" but got %s", formatLiteral(data))
			}
			c.fail(path, IssueLiteral, msg, data)
		}
	case KindEnum:
		c.checkEnum(data, s, path)
	case KindArray:
		return c.checkArray(data, s, path)
	case KindObject:
		return c.checkObject(data, s, path)
	}
	return data
}

// resolve follows Lazy nodes until a concrete schema is reached.
func (c *checker) resolve(s *Schema, path string) (*Schema, error) {
	for hops := 0; s.Kind == KindLazy; hops++ {
		if hops == maxLazyHops {
			return nil, &schemaerrors.ReferenceError{
				Title:   s.Ref,
				Path:    path,
				Message: "reference chain does not reach a schema",
			}
		}
		target, err := s.Resolve()
		if err != nil {
			var refErr *schemaerrors.ReferenceError
			if errors.As(err, &refErr) {
				refErr.Path = path
			}
			return nil, err
		}
		s = target
	}
	return s, nil
}

func (c *checker) failType(path, expected string, data any) {
	c.fail(path, IssueType, fmt.Sprintf("expected type %s but got %s", expected, getDataType(data)), data)
}

func (c *checker) checkString(data any, s *Schema, path string) {
	str, ok := data.(string)
	if !ok {
		c.failType(path, "string", data)
		return
	}
	if s.Format == FormatNone || validFormat(str, s.Format) {
		return
	}
	msg := fmt.Sprintf("value is not a valid %s", s.Format)
	if !c.v.redactValues {
		msg = fmt.Sprintf("%q is not a valid %s", str, s.Format)
	}
	c.fail(path, IssueFormat, msg, str)
}

func (c *checker) checkInteger(data any, s *Schema, path string) {
	n, ok := toRat(data)
	if !ok {
		c.failType(path, "integer", data)
		return
	}
	if !n.IsInt() {
		msg := "value must be an integer"
		if !c.v.redactValues {
			msg = fmt.Sprintf("value must be an integer, got %v", data)
		}
		c.fail(path, IssueType, msg, data)
		return
	}
	if s.Minimum != nil && n.Cmp(new(big.Rat).SetInt64(*s.Minimum)) < 0 {
		msg := fmt.Sprintf("value is less than minimum %d", *s.Minimum)
		if !c.v.redactValues {
			msg = fmt.Sprintf("value %v is less than minimum %d", data, *s.Minimum)
		}
		c.fail(path, IssueBound, msg, data)
	}
	if s.Maximum != nil && n.Cmp(new(big.Rat).SetInt64(*s.Maximum)) > 0 {
		msg := fmt.Sprintf("value exceeds maximum %d", *s.Maximum)
		if !c.v.redactValues {
			msg = fmt.Sprintf("value %v exceeds maximum %d", data, *s.Maximum)
		}
		c.fail(path, IssueBound, msg, data)
	}
}

func (c *checker) checkEnum(data any, s *Schema, path string) {
	for _, allowed := range s.Values {
		if literalEqual(data, allowed) {
			return
		}
	}
	msg := "value is not one of the allowed values"
	if !c.v.redactValues {
		msg = fmt.Sprintf("value %s is not one of the allowed values", formatLiteral(data))
	}
	c.fail(path, IssueEnum, msg, data)
}

func (c *checker) checkArray(data any, s *Schema, path string) any {
	arr, ok := toSlice(data)
	if !ok {
		c.failType(path, "array", data)
		return data
	}
	out := make([]any, len(arr))
	for i, item := range arr {
		out[i] = c.check(item, s.Elem, issues.IndexPath(path, i))
		if c.err != nil {
			return data
		}
	}
	return out
}

func (c *checker) checkObject(data any, s *Schema, path string) any {
	obj, ok := data.(map[string]any)
	if !ok {
		c.failType(path, "object", data)
		return data
	}

	out := make(map[string]any, len(obj))
	for name, value := range obj {
		out[name] = value
	}

	for _, name := range s.PropertyNames() {
		prop, _ := s.Property(name)
		propPath := issues.KeyPath(path, name)
		value, present := obj[name]
		if !present {
			if prop == nil || !prop.AcceptsAbsent() {
				c.fail(propPath, IssueRequired, fmt.Sprintf("required property %q is missing", name), nil)
			}
			continue
		}
		out[name] = c.check(value, prop, propPath)
		if c.err != nil {
			return data
		}
	}

	if c.v.ReportUnknownKeys {
		for _, name := range slices.Sorted(maps.Keys(obj)) {
			if _, declared := s.Property(name); !declared {
				c.note(issues.KeyPath(path, name), IssueUnknown, fmt.Sprintf("unrecognized property %q accepted", name))
			}
		}
	}
	return out
}

func validFormat(s string, f Format) bool {
	switch f {
	case FormatEmail:
		return stringutil.IsValidEmail(s)
	case FormatURL:
		return stringutil.IsValidURL(s)
	case FormatUUID:
		return stringutil.IsValidUUID(s)
	case FormatDate:
		return stringutil.IsValidDate(s)
	case FormatDateTime:
		return stringutil.IsValidDateTime(s)
	case FormatTime:
		return stringutil.IsValidTime(s)
	}
	// Unknown formats are not checked
	return true
}

// getDataType returns the JSON type name of a Go value.
func getDataType(data any) string {
	if data == nil {
		return "null"
	}

	switch data.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case json.Number:
		return "number"
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	}
	return "unknown"
}

// toFloat64 converts numeric values to float64. Strings are never coerced.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32:
		f := rv.Float()
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return 0, false
}

// maxExactExponent bounds the decimal exponent of a json.Number that is
// compared exactly. Anything beyond it is outside float64 range.
const maxExactExponent = 400

// toRat converts numeric values to an exact rational. json.Number literals
// keep every digit, so 1.5 or 9007199254740992.5 never round to a whole number.
func toRat(v any) (*big.Rat, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		if hugeExponent(string(n)) {
			return new(big.Rat).SetFloat64(f), true
		}
		return new(big.Rat).SetString(string(n))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Rat).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Rat).SetInt(new(big.Int).SetUint64(rv.Uint())), true
	}

	f, ok := toFloat64(v)
	if !ok {
		return nil, false
	}
	return new(big.Rat).SetFloat64(f), true
}

func hugeExponent(lit string) bool {
	i := strings.IndexAny(lit, "eE")
	if i < 0 {
		return false
	}
	exp, err := strconv.Atoi(lit[i+1:])
	return err != nil || exp > maxExactExponent || exp < -maxExactExponent
}

// toSlice returns the elements of any Go slice or array.
func toSlice(v any) ([]any, bool) {
	if arr, ok := v.([]any); ok {
		return arr, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// literalEqual compares two literals, treating all numeric representations
// of the same number as equal.
func literalEqual(a, b any) bool {
	if fa, ok := toFloat64(a); ok {
		fb, ok := toFloat64(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func formatLiteral(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
