package schema

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchema_Scalars(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		check  func(t *testing.T, js *jsonschema.Schema)
	}{
		{
			name:   "string",
			schema: String(),
			check: func(t *testing.T, js *jsonschema.Schema) {
				assert.Equal(t, "string", js.Type)
				assert.Empty(t, js.Format)
			},
		},
		{
			name:   "url format",
			schema: StringFormat(FormatURL),
			check: func(t *testing.T, js *jsonschema.Schema) {
				assert.Equal(t, "uri", js.Format)
			},
		},
		{
			name:   "bounded integer",
			schema: IntegerMin(1),
			check: func(t *testing.T, js *jsonschema.Schema) {
				assert.Equal(t, "integer", js.Type)
				require.NotNil(t, js.Minimum)
				assert.InDelta(t, 1.0, *js.Minimum, 0)
				assert.Nil(t, js.Maximum)
			},
		},
		{
			name:   "literal",
			schema: Literal("Book"),
			check: func(t *testing.T, js *jsonschema.Schema) {
				require.NotNil(t, js.Const)
				assert.Equal(t, "Book", *js.Const)
			},
		},
		{
			name:   "enum",
			schema: Enum("a", "b"),
			check: func(t *testing.T, js *jsonschema.Schema) {
				assert.Equal(t, []any{"a", "b"}, js.Enum)
			},
		},
		{
			name:   "empty enum",
			schema: Enum(),
			check: func(t *testing.T, js *jsonschema.Schema) {
				assert.Nil(t, js.Enum)
				require.NotNil(t, js.Not)
				assert.Equal(t, &jsonschema.Schema{}, js.Not)
			},
		},
		{
			name:   "nullable string",
			schema: Nullable(String()),
			check: func(t *testing.T, js *jsonschema.Schema) {
				assert.Empty(t, js.Type)
				assert.Equal(t, []string{"string", "null"}, js.Types)
			},
		},
		{
			name:   "nullable lazy",
			schema: Nullable(Lazy(NewContext(), "Author")),
			check: func(t *testing.T, js *jsonschema.Schema) {
				require.Len(t, js.AnyOf, 2)
				assert.Equal(t, "#/$defs/Author", js.AnyOf[0].Ref)
				assert.Equal(t, "null", js.AnyOf[1].Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.schema.JSONSchema())
		})
	}
}

func TestJSONSchema_ObjectRequired(t *testing.T) {
	s := Object().
		Set("@id", String()).
		Set("title", String()).
		Set("subtitle", Optional(String())).
		Set("tags", Optional(Nullable(Array(String()))))
	s.Description = "A book."

	js := s.JSONSchema()
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, "A book.", js.Description)
	assert.Equal(t, []string{"@id", "title"}, js.Required)
	assert.Len(t, js.Properties, 4)
	assert.Equal(t, "array", js.Properties["tags"].Types[0])
}

// The exported document must accept and reject the same values as the
// native validator.
func TestJSONSchema_AgreesWithValidator(t *testing.T) {
	ctx := NewContext()
	author := Object().
		Set("@type", Literal("Author")).
		Set("name", String()).
		Set("books", Optional(Array(Lazy(ctx, "Book"))))
	book := Object().
		Set("@type", Literal("Book")).
		Set("pages", IntegerMin(1)).
		Set("author", Nullable(Lazy(ctx, "Author")))
	ctx.Set("Author", author)
	ctx.Set("Book", book)

	root := Lazy(ctx, "Book").JSONSchema()
	root.Defs = map[string]*jsonschema.Schema{
		"Author": author.JSONSchema(),
		"Book":   book.JSONSchema(),
	}
	resolved, err := root.Resolve(&jsonschema.ResolveOptions{})
	require.NoError(t, err)

	values := []struct {
		name  string
		value any
		want  bool
	}{
		{"minimal book", map[string]any{"@type": "Book", "pages": 10.0, "author": nil}, true},
		{"nested author", map[string]any{
			"@type": "Book", "pages": 10.0,
			"author": map[string]any{"@type": "Author", "name": "Le Guin"},
		}, true},
		{"cycle through array", map[string]any{
			"@type": "Book", "pages": 10.0,
			"author": map[string]any{
				"@type": "Author", "name": "Le Guin",
				"books": []any{map[string]any{"@type": "Book", "pages": 300.0, "author": nil}},
			},
		}, true},
		{"extra keys", map[string]any{"@type": "Book", "pages": 1.0, "author": nil, "isbn": "x"}, true},
		{"zero pages", map[string]any{"@type": "Book", "pages": 0.0, "author": nil}, false},
		{"wrong type tag", map[string]any{"@type": "Author", "pages": 1.0, "author": nil}, false},
		{"missing author", map[string]any{"@type": "Book", "pages": 1.0}, false},
		{"bad nested name", map[string]any{
			"@type": "Book", "pages": 1.0,
			"author": map[string]any{"@type": "Author", "name": 7.0},
		}, false},
	}

	for _, tt := range values {
		t.Run(tt.name, func(t *testing.T) {
			native, err := NewValidator().Conforms(tt.value, Lazy(ctx, "Book"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, native)

			exported := resolved.Validate(tt.value) == nil
			assert.Equal(t, tt.want, exported)
		})
	}
}

func TestJSONSchema_Nil(t *testing.T) {
	var s *Schema
	assert.NotNil(t, s.JSONSchema())
}

func TestJSONSchema_EmptyEnumAcceptsNothing(t *testing.T) {
	s := Enum()
	resolved, err := s.JSONSchema().Resolve(&jsonschema.ResolveOptions{})
	require.NoError(t, err)

	for _, value := range []any{"a", 1.0, true, nil, map[string]any{}} {
		assert.False(t, conforms(t, value, s), "%v", value)
		assert.Error(t, resolved.Validate(value), "%v", value)
	}
}
