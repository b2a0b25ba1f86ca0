package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/hydraschema/apidoc"
	"github.com/erraggy/hydraschema/schema"
)

func accepts(t *testing.T, s *schema.Schema, value any) bool {
	t.Helper()
	ok, err := schema.NewValidator().Conforms(value, s)
	require.NoError(t, err)
	return ok
}

// acceptsProperty checks value as the sole property "v" of an object, so
// that optional wrappers see absence the way they do inside a resource.
func acceptsProperty(t *testing.T, field apidoc.Field, value any, present bool) bool {
	t.Helper()
	obj := schema.Object().Set("v", MapField(field, schema.NewContext()))
	data := map[string]any{}
	if present {
		data["v"] = value
	}
	return accepts(t, obj, data)
}

func TestMapField_BaseTypes(t *testing.T) {
	tests := []struct {
		tag    string
		good   any
		bad    []any
		kind   schema.Kind
		format schema.Format
	}{
		{"string", "hello", []any{42.0}, schema.KindString, schema.FormatNone},
		{"password", "s3cret", []any{true}, schema.KindString, schema.FormatNone},
		{"byte", "U3dhZ2dlcg==", []any{1.0}, schema.KindString, schema.FormatNone},
		{"binary", "\x00\x01", []any{1.0}, schema.KindString, schema.FormatNone},
		{"hexBinary", "0fb8", []any{15.0}, schema.KindString, schema.FormatNone},
		{"base64Binary", "aGk=", []any{false}, schema.KindString, schema.FormatNone},
		{"duration", "P1D", []any{86400.0}, schema.KindString, schema.FormatNone},
		{"email", "jane@example.com", []any{"not-an-email", 1.0}, schema.KindString, schema.FormatEmail},
		{"url", "https://example.com/", []any{"example", 1.0}, schema.KindString, schema.FormatURL},
		{"uuid", "f47ac10b-58cc-4372-a567-0e02b2c3d479", []any{"1234", 1.0}, schema.KindString, schema.FormatUUID},
		{"integer", 42.0, []any{3.14, "42"}, schema.KindInteger, schema.FormatNone},
		{"positiveInteger", 1.0, []any{0.0, -1.0}, schema.KindInteger, schema.FormatNone},
		{"negativeInteger", -1.0, []any{0.0, 1.0}, schema.KindInteger, schema.FormatNone},
		{"nonNegativeInteger", 0.0, []any{-1.0}, schema.KindInteger, schema.FormatNone},
		{"nonPositiveInteger", 0.0, []any{1.0}, schema.KindInteger, schema.FormatNone},
		{"number", 3.14, []any{"3.14"}, schema.KindNumber, schema.FormatNone},
		{"decimal", 10.5, []any{"10.5"}, schema.KindNumber, schema.FormatNone},
		{"double", 1e10, []any{true}, schema.KindNumber, schema.FormatNone},
		{"float", 0.5, []any{nil}, schema.KindNumber, schema.FormatNone},
		{"boolean", true, []any{"true", 1.0}, schema.KindBoolean, schema.FormatNone},
		{"date", "2024-05-01", []any{"2024-05-01T10:00:00Z", 1.0}, schema.KindString, schema.FormatDate},
		{"dateTime", "2024-05-01T10:00:00Z", []any{"yesterday"}, schema.KindString, schema.FormatDateTime},
		{"time", "10:00:00", []any{"10 o'clock"}, schema.KindString, schema.FormatTime},
		{"Integer", "case matters", []any{42.0}, schema.KindString, schema.FormatNone},
		{"geoPoint", "anything", []any{42.0}, schema.KindString, schema.FormatNone},
		{"", "absent tag", []any{42.0}, schema.KindString, schema.FormatNone},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			s := MapField(apidoc.Field{Name: "v", Type: tt.tag}, schema.NewContext())
			assert.Equal(t, tt.kind, s.Kind)
			assert.Equal(t, tt.format, s.Format)
			assert.True(t, accepts(t, s, tt.good), "should accept %v", tt.good)
			for _, bad := range tt.bad {
				assert.False(t, accepts(t, s, bad), "should reject %v", bad)
			}
		})
	}
}

func TestMapField_RangeFallback(t *testing.T) {
	s := MapField(apidoc.Field{Name: "v", Range: "integer"}, nil)
	assert.Equal(t, schema.KindInteger, s.Kind)

	s = MapField(apidoc.Field{Name: "v", Type: "boolean", Range: "integer"}, nil)
	assert.Equal(t, schema.KindBoolean, s.Kind, "type wins over range")
}

func TestMapField_Precedence(t *testing.T) {
	ctx := schema.NewContext()
	ref := &apidoc.ResourceRef{Name: "authors", Title: "Author"}

	t.Run("enum wins over everything", func(t *testing.T) {
		s := MapField(apidoc.Field{
			Name: "v", Type: "integer",
			Enum:      []any{"draft", "published", "archived"},
			Reference: ref, Embedded: ref,
		}, ctx)
		assert.Equal(t, schema.KindEnum, s.Kind)
		assert.Equal(t, []any{"draft", "published", "archived"}, s.Values)
	})

	t.Run("reference is an opaque string", func(t *testing.T) {
		s := MapField(apidoc.Field{Name: "v", Type: "integer", Reference: ref, Embedded: ref}, ctx)
		assert.Equal(t, schema.KindString, s.Kind)
		assert.True(t, accepts(t, s, "/authors/1"))
	})

	t.Run("embedded defers by title", func(t *testing.T) {
		s := MapField(apidoc.Field{Name: "v", Type: "integer", Embedded: ref}, ctx)
		assert.Equal(t, schema.KindLazy, s.Kind)
		assert.Equal(t, "Author", s.Ref)
		assert.Same(t, ctx, s.Context())
	})

	t.Run("embedded falls back to name", func(t *testing.T) {
		s := MapField(apidoc.Field{Name: "v", Embedded: &apidoc.ResourceRef{Name: "authors"}}, ctx)
		assert.Equal(t, "authors", s.Ref)
	})

	t.Run("empty enum is still an enum", func(t *testing.T) {
		s := MapField(apidoc.Field{Name: "v", Enum: []any{}}, ctx)
		assert.Equal(t, schema.KindEnum, s.Kind)
		assert.False(t, accepts(t, s, "anything"))
	})
}

func TestMapField_Enum(t *testing.T) {
	field := apidoc.Field{Name: "v", Enum: []any{"draft", "published", "archived"}}
	assert.True(t, acceptsProperty(t, field, "draft", true))
	assert.True(t, acceptsProperty(t, field, "published", true))
	assert.False(t, acceptsProperty(t, field, "unknown", true))
}

func TestMapField_Wrapping(t *testing.T) {
	t.Run("nullable", func(t *testing.T) {
		field := apidoc.Field{Name: "v", Type: "integer", Nullable: true}
		assert.True(t, acceptsProperty(t, field, 1.0, true))
		assert.True(t, acceptsProperty(t, field, nil, true))
		assert.False(t, acceptsProperty(t, field, "1", true))
		assert.False(t, acceptsProperty(t, field, nil, false), "nullable alone is still required")
	})

	t.Run("optional", func(t *testing.T) {
		field := apidoc.Field{Name: "v", Type: "integer", Required: apidoc.Bool(false)}
		assert.True(t, acceptsProperty(t, field, 1.0, true))
		assert.True(t, acceptsProperty(t, field, nil, false))
		assert.False(t, acceptsProperty(t, field, "1", true))
	})

	t.Run("explicit required", func(t *testing.T) {
		field := apidoc.Field{Name: "v", Required: apidoc.Bool(true)}
		assert.False(t, acceptsProperty(t, field, nil, false))
	})

	t.Run("array", func(t *testing.T) {
		field := apidoc.Field{Name: "v", Type: "integer", MaxCardinality: apidoc.Int(0)}
		assert.True(t, acceptsProperty(t, field, []any{1.0, 2.0}, true))
		assert.True(t, acceptsProperty(t, field, []any{}, true))
		assert.False(t, acceptsProperty(t, field, 1.0, true))
		assert.False(t, acceptsProperty(t, field, []any{1.0, "2"}, true))
	})

	t.Run("single cardinality is not an array", func(t *testing.T) {
		s := MapField(apidoc.Field{Name: "v", MaxCardinality: apidoc.Int(1)}, nil)
		assert.Equal(t, schema.KindString, s.Kind)
	})

	t.Run("array type overrides element", func(t *testing.T) {
		s := MapField(apidoc.Field{Name: "v", Type: "string", MaxCardinality: apidoc.Int(5), ArrayType: "integer"}, nil)
		require.Equal(t, schema.KindArray, s.Kind)
		assert.Equal(t, schema.KindInteger, s.Elem.Kind)
	})

	t.Run("array of enum keeps enum", func(t *testing.T) {
		s := MapField(apidoc.Field{Name: "v", Enum: []any{"a", "b"}, MaxCardinality: apidoc.Int(2)}, nil)
		require.Equal(t, schema.KindArray, s.Kind)
		assert.Equal(t, schema.KindEnum, s.Elem.Kind)
	})

	t.Run("optional nullable array composes in order", func(t *testing.T) {
		field := apidoc.Field{
			Name: "v", Type: "string",
			MaxCardinality: apidoc.Int(-1),
			Nullable:       true,
			Required:       apidoc.Bool(false),
		}
		s := MapField(field, nil)
		require.Equal(t, schema.KindOptional, s.Kind)
		require.Equal(t, schema.KindNullable, s.Elem.Kind)
		require.Equal(t, schema.KindArray, s.Elem.Elem.Kind)
		assert.Equal(t, schema.KindString, s.Elem.Elem.Elem.Kind)

		assert.True(t, acceptsProperty(t, field, nil, false))
		assert.True(t, acceptsProperty(t, field, nil, true))
		assert.True(t, acceptsProperty(t, field, []any{"a"}, true))
		assert.False(t, acceptsProperty(t, field, "a", true))
	})
}

func TestMapField_Description(t *testing.T) {
	s := MapField(apidoc.Field{Name: "v", Description: "The ISBN.", Required: apidoc.Bool(false)}, nil)
	assert.Equal(t, "The ISBN.", s.Description)
}

func TestMapBaseType_FreshNodes(t *testing.T) {
	a := MapBaseType("positiveInteger")
	b := MapBaseType("positiveInteger")
	assert.NotSame(t, a, b)
	a.Description = "changed"
	assert.Empty(t, b.Description)
}
