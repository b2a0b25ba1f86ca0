package schema

import (
	"slices"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/erraggy/hydraschema/internal/naming"
)

// jsonTypeNull is the JSON Schema type of null.
const jsonTypeNull = "null"

// jsonFormats maps string refinements to JSON Schema format names.
var jsonFormats = map[Format]string{
	FormatEmail:    "email",
	FormatURL:      "uri",
	FormatUUID:     "uuid",
	FormatDate:     "date",
	FormatDateTime: "date-time",
	FormatTime:     "time",
}

// JSONSchema converts s to a JSON Schema (draft 2020-12) node.
//
// Lazy nodes become "$ref": "#/$defs/<title>"; the caller is expected to put
// the referenced schemas under $defs (see builder.Result.Document). Object
// schemas leave additionalProperties unset, so unknown keys stay allowed.
// Preprocess steps have no JSON Schema equivalent: the export describes
// values after preprocessing.
func (s *Schema) JSONSchema() *jsonschema.Schema {
	if s == nil {
		return &jsonschema.Schema{}
	}

	var out *jsonschema.Schema
	switch s.Kind {
	case KindString:
		out = &jsonschema.Schema{Type: "string", Format: jsonFormats[s.Format]}
	case KindInteger:
		out = &jsonschema.Schema{Type: "integer"}
		if s.Minimum != nil {
			minimum := float64(*s.Minimum)
			out.Minimum = &minimum
		}
		if s.Maximum != nil {
			maximum := float64(*s.Maximum)
			out.Maximum = &maximum
		}
	case KindNumber:
		out = &jsonschema.Schema{Type: "number"}
	case KindBoolean:
		out = &jsonschema.Schema{Type: "boolean"}
	case KindLiteral:
		value := s.Value
		out = &jsonschema.Schema{Const: &value}
	case KindEnum:
		if len(s.Values) == 0 {
			// An enum with no members admits nothing.
			out = &jsonschema.Schema{Not: &jsonschema.Schema{}}
			break
		}
		out = &jsonschema.Schema{Enum: slices.Clone(s.Values)}
	case KindObject:
		out = objectJSONSchema(s)
	case KindArray:
		out = &jsonschema.Schema{Type: "array", Items: s.Elem.JSONSchema()}
	case KindNullable:
		out = nullableJSONSchema(s.Elem.JSONSchema())
	case KindOptional:
		// Absence is expressed by the parent's required list.
		out = s.Elem.JSONSchema()
	case KindLazy:
		out = &jsonschema.Schema{Ref: naming.DefinitionRef(s.Ref)}
	default:
		out = &jsonschema.Schema{}
	}

	if s.Description != "" && out.Description == "" {
		out.Description = s.Description
	}
	return out
}

func objectJSONSchema(s *Schema) *jsonschema.Schema {
	out := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema),
	}
	for _, name := range s.PropertyNames() {
		prop, _ := s.Property(name)
		out.Properties[name] = prop.JSONSchema()
		if prop == nil || !prop.AcceptsAbsent() {
			out.Required = append(out.Required, name)
		}
	}
	return out
}

// nullableJSONSchema widens inner to also accept null. Plain typed nodes get a
// type list; anything else is wrapped in anyOf.
func nullableJSONSchema(inner *jsonschema.Schema) *jsonschema.Schema {
	if inner.Type != "" && inner.Ref == "" && inner.Const == nil && inner.Enum == nil {
		inner.Types = []string{inner.Type, jsonTypeNull}
		inner.Type = ""
		return inner
	}
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{inner, {Type: jsonTypeNull}},
	}
}
