package builder

import (
	"github.com/erraggy/hydraschema/apidoc"
	"github.com/erraggy/hydraschema/schema"
)

// baseTypes maps base type tags to schema constructors. Tags are case
// sensitive; anything not listed maps to a plain string.
var baseTypes = map[string]func() *schema.Schema{
	"string":       schema.String,
	"password":     schema.String,
	"byte":         schema.String,
	"binary":       schema.String,
	"hexBinary":    schema.String,
	"base64Binary": schema.String,
	"duration":     schema.String,

	"email": func() *schema.Schema { return schema.StringFormat(schema.FormatEmail) },
	"url":   func() *schema.Schema { return schema.StringFormat(schema.FormatURL) },
	"uuid":  func() *schema.Schema { return schema.StringFormat(schema.FormatUUID) },

	"integer":            schema.Integer,
	"positiveInteger":    func() *schema.Schema { return schema.IntegerMin(1) },
	"negativeInteger":    func() *schema.Schema { return schema.IntegerMax(-1) },
	"nonNegativeInteger": func() *schema.Schema { return schema.IntegerMin(0) },
	"nonPositiveInteger": func() *schema.Schema { return schema.IntegerMax(0) },

	"number":  schema.Number,
	"decimal": schema.Number,
	"double":  schema.Number,
	"float":   schema.Number,

	"boolean": schema.Boolean,

	"date":     func() *schema.Schema { return schema.StringFormat(schema.FormatDate) },
	"dateTime": func() *schema.Schema { return schema.StringFormat(schema.FormatDateTime) },
	"time":     func() *schema.Schema { return schema.StringFormat(schema.FormatTime) },
}

// MapBaseType returns the schema for a base type tag. Unknown and empty tags
// map to a plain string.
func MapBaseType(tag string) *schema.Schema {
	if fn, ok := baseTypes[tag]; ok {
		return fn()
	}
	return schema.String()
}

// MapField returns the schema for one property value described by field.
// Embedded resources become Lazy nodes against ctx. MapField never fails:
// malformed metadata degrades to a plain string.
//
// The first matching source wins: enum, then reference (an opaque IRI
// string), then embedded resource, then the base type. The result is then
// wrapped, in this order, in an array when the field holds many values, in
// a nullable wrapper, and in an optional wrapper when not required.
func MapField(field apidoc.Field, ctx *schema.Context) *schema.Schema {
	var s *schema.Schema
	switch {
	case field.Enum != nil:
		s = schema.Enum(field.Enum...)
	case field.Reference != nil:
		s = schema.String()
	case field.Embedded != nil:
		s = schema.Lazy(ctx, field.Embedded.TypeName())
	default:
		s = MapBaseType(field.BaseType())
	}

	if field.IsMany() {
		if field.ArrayType != "" {
			s = schema.Array(MapBaseType(field.ArrayType))
		} else {
			s = schema.Array(s)
		}
	}
	if field.Nullable {
		s = schema.Nullable(s)
	}
	if !field.IsRequired() {
		s = schema.Optional(s)
	}

	s.Description = field.Description
	return s
}
