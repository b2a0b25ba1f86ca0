package schema

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies a Schema node type.
type Kind int

const (
	// KindString accepts strings, optionally refined by a Format.
	KindString Kind = iota
	// KindInteger accepts whole numbers, optionally bounded.
	KindInteger
	// KindNumber accepts any finite number.
	KindNumber
	// KindBoolean accepts true and false.
	KindBoolean
	// KindLiteral accepts exactly one value.
	KindLiteral
	// KindEnum accepts one of a fixed list of values.
	KindEnum
	// KindObject accepts objects with the declared properties. Unknown
	// properties are always accepted and kept.
	KindObject
	// KindArray accepts arrays whose every element matches Elem.
	KindArray
	// KindNullable accepts null or a value matching Elem.
	KindNullable
	// KindOptional accepts a value matching Elem, or absence of the property.
	KindOptional
	// KindLazy defers to the schema registered in a Context under Ref.
	KindLazy
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindNullable:
		return "nullable"
	case KindOptional:
		return "optional"
	case KindLazy:
		return "lazy"
	default:
		return "unknown"
	}
}

// Format refines a string schema.
type Format string

// String formats.
const (
	FormatNone     Format = ""
	FormatEmail    Format = "email"
	FormatURL      Format = "url"
	FormatUUID     Format = "uuid"
	FormatDate     Format = "date"
	FormatDateTime Format = "date-time"
	FormatTime     Format = "time"
)

// Properties holds the named sub-schemas of an object, in declaration order.
type Properties = orderedmap.OrderedMap[string, *Schema]

// Schema describes the values a node accepts.
//
// Schemas are built once and then only read; a finished schema may be shared
// between goroutines.
type Schema struct {
	Kind Kind

	// Format refines KindString.
	Format Format
	// Minimum and Maximum bound KindInteger (inclusive).
	Minimum *int64
	Maximum *int64

	// Value is the accepted value of KindLiteral.
	Value any
	// Values are the accepted values of KindEnum, in order.
	Values []any

	// Properties of KindObject.
	Properties *Properties

	// Elem is the element schema of KindArray and the wrapped schema of
	// KindNullable and KindOptional.
	Elem *Schema

	// Ref is the title a KindLazy node resolves in its context.
	Ref     string
	context *Context

	// Description is carried into exported documents.
	Description string

	// Preprocess, when set, transforms the value before it is checked.
	Preprocess func(any) any
}

// String returns a plain string schema.
func String() *Schema {
	return &Schema{Kind: KindString}
}

// StringFormat returns a string schema refined by f.
func StringFormat(f Format) *Schema {
	return &Schema{Kind: KindString, Format: f}
}

// Integer returns an unbounded integer schema.
func Integer() *Schema {
	return &Schema{Kind: KindInteger}
}

// IntegerMin returns an integer schema accepting values >= minimum.
func IntegerMin(minimum int64) *Schema {
	return &Schema{Kind: KindInteger, Minimum: &minimum}
}

// IntegerMax returns an integer schema accepting values <= maximum.
func IntegerMax(maximum int64) *Schema {
	return &Schema{Kind: KindInteger, Maximum: &maximum}
}

// Number returns a floating-point number schema.
func Number() *Schema {
	return &Schema{Kind: KindNumber}
}

// Boolean returns a boolean schema.
func Boolean() *Schema {
	return &Schema{Kind: KindBoolean}
}

// Literal returns a schema accepting exactly v.
func Literal(v any) *Schema {
	return &Schema{Kind: KindLiteral, Value: v}
}

// Enum returns a schema accepting any of values. Values are compared as
// opaque literals; no coercion is applied.
func Enum(values ...any) *Schema {
	return &Schema{Kind: KindEnum, Values: slices.Clone(values)}
}

// Object returns an object schema with no declared properties.
func Object() *Schema {
	return &Schema{Kind: KindObject, Properties: orderedmap.New[string, *Schema]()}
}

// Array returns a schema accepting arrays of elem.
func Array(elem *Schema) *Schema {
	return &Schema{Kind: KindArray, Elem: elem}
}

// Nullable returns a schema accepting null or a value matching inner.
func Nullable(inner *Schema) *Schema {
	return &Schema{Kind: KindNullable, Elem: inner}
}

// Optional returns a schema accepting absence or a value matching inner.
func Optional(inner *Schema) *Schema {
	return &Schema{Kind: KindOptional, Elem: inner}
}

// Lazy returns a schema resolved against ctx under title when a value is
// checked, not when the schema is built. This is what lets resources embed
// each other.
func Lazy(ctx *Context, title string) *Schema {
	return &Schema{Kind: KindLazy, Ref: title, context: ctx}
}

// Preprocessed returns a shallow copy of inner that applies fn to values
// before checking them.
func Preprocessed(fn func(any) any, inner *Schema) *Schema {
	out := *inner
	out.Preprocess = fn
	return &out
}

// Set declares property name on an object schema. Setting a name twice
// replaces the earlier schema and keeps its original position.
// It returns s for chaining.
func (s *Schema) Set(name string, prop *Schema) *Schema {
	if s.Properties == nil {
		s.Properties = orderedmap.New[string, *Schema]()
	}
	s.Properties.Set(name, prop)
	return s
}

// Property returns the schema declared for name on an object schema.
func (s *Schema) Property(name string) (*Schema, bool) {
	if s.Properties == nil {
		return nil, false
	}
	return s.Properties.Get(name)
}

// PropertyNames returns the declared property names in order.
func (s *Schema) PropertyNames() []string {
	if s.Properties == nil {
		return nil
	}
	names := make([]string, 0, s.Properties.Len())
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// AcceptsAbsent reports whether a property with this schema may be missing
// from its object.
func (s *Schema) AcceptsAbsent() bool {
	switch s.Kind {
	case KindOptional:
		return true
	case KindNullable:
		return s.Elem != nil && s.Elem.AcceptsAbsent()
	default:
		return false
	}
}

// Context returns the resolution context of a KindLazy schema.
func (s *Schema) Context() *Context {
	return s.context
}

// Resolve returns the schema a KindLazy node points at. Any other node
// resolves to itself.
func (s *Schema) Resolve() (*Schema, error) {
	if s.Kind != KindLazy {
		return s, nil
	}
	return s.context.Lookup(s.Ref)
}
