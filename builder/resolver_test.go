package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/hydraschema/apidoc"
	"github.com/erraggy/hydraschema/schema"
	"github.com/erraggy/hydraschema/schemaerrors"
)

// circularResources returns Book and Author embedding each other, Author
// through an array of books.
func circularResources() []apidoc.Resource {
	return []apidoc.Resource{
		{
			Name:  "books",
			Title: "Book",
			Fields: []apidoc.Field{
				{Name: "title"},
				{Name: "author", Embedded: &apidoc.ResourceRef{Name: "authors", Title: "Author"}},
			},
		},
		{
			Name:  "authors",
			Title: "Author",
			Fields: []apidoc.Field{
				{Name: "name"},
				{
					Name:           "books",
					Embedded:       &apidoc.ResourceRef{Name: "books", Title: "Book"},
					MaxCardinality: apidoc.Int(0),
				},
			},
		},
	}
}

func TestResolve_Circular(t *testing.T) {
	result, err := SchemasFromResources(circularResources())
	require.NoError(t, err)

	assert.Equal(t, []string{"books", "authors"}, result.Names)
	require.Contains(t, result.Schemas, "books")
	require.Contains(t, result.Schemas, "authors")
	require.Contains(t, result.Collections, "books")
	require.Contains(t, result.Collections, "authors")

	book := map[string]any{
		"@id":   "/books/1",
		"@type": "Book",
		"title": "The Dispossessed",
		"author": map[string]any{
			"@id":   "/authors/1",
			"@type": "Author",
			"name":  "Ursula K. Le Guin",
			"books": []any{},
		},
	}
	assert.True(t, accepts(t, result.Schemas["books"], book))

	deeper := map[string]any{
		"@id": "/authors/1", "@type": "Author", "name": "Le Guin",
		"books": []any{map[string]any{
			"@id": "/books/2", "@type": "Book", "title": "Lavinia",
			"author": map[string]any{"@id": "/authors/1", "@type": "Author", "name": "Le Guin", "books": []any{}},
		}},
	}
	assert.True(t, accepts(t, result.Schemas["authors"], deeper))

	broken := map[string]any{
		"@id": "/books/1", "@type": "Book", "title": "x",
		"author": map[string]any{"@id": "/authors/1", "@type": "Book", "name": "x", "books": []any{}},
	}
	found, err := schema.NewValidator().Validate(broken, result.Schemas["books"], "$")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "$.author.@type", found[0].Path)
	assert.Equal(t, schema.IssueLiteral, found[0].Kind)
}

func TestResolve_SelfReference(t *testing.T) {
	resources := []apidoc.Resource{{
		Name: "categories",
		Fields: []apidoc.Field{
			{Name: "label"},
			{Name: "parent", Embedded: &apidoc.ResourceRef{Name: "categories"}, Nullable: true},
		},
	}}
	result, err := SchemasFromResources(resources)
	require.NoError(t, err)

	value := map[string]any{
		"@id": "/categories/2", "@type": "categories", "label": "SF",
		"parent": map[string]any{"@id": "/categories/1", "@type": "categories", "label": "Fiction", "parent": nil},
	}
	assert.True(t, accepts(t, result.Schemas["categories"], value))
}

func TestResolve_ContextState(t *testing.T) {
	result, err := SchemasFromResources(circularResources())
	require.NoError(t, err)

	assert.Equal(t, []string{"Book", "Author"}, result.Context.Titles())
	for _, title := range result.Context.Titles() {
		assert.True(t, result.Context.Built(title), title)
	}

	s, err := result.Context.Lookup("Author")
	require.NoError(t, err)
	assert.Same(t, result.Schemas["authors"], s)
}

func TestResolve_UnknownReferenceFailsAtCheckTime(t *testing.T) {
	resources := []apidoc.Resource{{
		Name: "books",
		Fields: []apidoc.Field{
			{Name: "publisher", Embedded: &apidoc.ResourceRef{Title: "Publisher"}},
		},
	}}
	result, err := SchemasFromResources(resources)
	require.NoError(t, err, "lenient mode builds anyway")

	_, err = schema.NewValidator().Parse(map[string]any{
		"@id": "/books/1", "@type": "books", "publisher": map[string]any{},
	}, result.Schemas["books"])
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrUnknownReference)
	assert.Contains(t, err.Error(), `unknown resource reference "Publisher"`)
}

func TestResolve_StrictReferences(t *testing.T) {
	resources := []apidoc.Resource{{
		Name: "books",
		Fields: []apidoc.Field{
			{Name: "publisher", Embedded: &apidoc.ResourceRef{Title: "Publisher"}},
		},
	}}
	_, err := SchemasFromResources(resources, WithStrictReferences(true))
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrUnknownReference)

	var refErr *schemaerrors.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Publisher", refErr.Title)

	_, err = SchemasFromResources(circularResources(), WithStrictReferences(true))
	assert.NoError(t, err)

	overridden := []apidoc.Resource{{
		Name: "books",
		Fields: []apidoc.Field{{
			Name:           "publishers",
			Embedded:       &apidoc.ResourceRef{Title: "Publisher"},
			MaxCardinality: apidoc.Int(0),
			ArrayType:      "url",
		}},
	}}
	_, err = SchemasFromResources(overridden, WithStrictReferences(true))
	assert.NoError(t, err, "array type override drops the embedded reference")
}

func TestResolve_Duplicates(t *testing.T) {
	resources := []apidoc.Resource{
		{Name: "books", Title: "Book", Fields: []apidoc.Field{{Name: "isbn"}}},
		{Name: "novels", Title: "Book", Fields: []apidoc.Field{{Name: "genre"}}},
		{Name: "books", Title: "Volume", Fields: []apidoc.Field{{Name: "number", Type: "integer"}}},
	}
	rec := &recordingLogger{}
	result, err := SchemasFromResources(resources, WithLogger(rec))
	require.NoError(t, err)

	assert.Equal(t, []string{"books", "novels"}, result.Names)
	assert.Len(t, result.Schemas, 2)
	assert.Equal(t, []string{"@id", "@type", "number"}, result.Schemas["books"].PropertyNames(), "last name wins")

	book, err := result.Context.Lookup("Book")
	require.NoError(t, err)
	assert.Equal(t, []string{"@id", "@type", "genre"}, book.PropertyNames(), "last title wins")

	assert.Len(t, rec.warn, 2)
	assert.NotEmpty(t, rec.debug)
}

func TestResolve_CollectionPrefix(t *testing.T) {
	value := map[string]any{
		"@id":              "/books",
		"@type":            "hydra:Collection",
		"hydra:totalItems": 1.0,
		"hydra:member":     []any{validBook()},
		"hydra:view": map[string]any{
			"@id": "/books?page=1", "@type": "hydra:PartialCollectionView", "hydra:next": "/books?page=2",
		},
	}

	result, err := SchemasFromResources([]apidoc.Resource{bookResource()})
	require.NoError(t, err)

	out, err := schema.NewValidator().Parse(value, result.Collections["books"])
	require.NoError(t, err)
	parsed := out.(map[string]any)
	assert.Contains(t, parsed, "member")
	assert.Contains(t, parsed, "totalItems")
	assert.NotContains(t, parsed, "hydra:member")
	assert.Equal(t, "hydra:Collection", parsed["@type"], "values are not rewritten")

	t.Run("disabled", func(t *testing.T) {
		plain, err := SchemasFromResources([]apidoc.Resource{bookResource()}, WithCollectionPrefix(""))
		require.NoError(t, err)
		assert.False(t, accepts(t, plain.Collections["books"], value))
		assert.Nil(t, plain.Collections["books"].Preprocess)
	})

	t.Run("custom", func(t *testing.T) {
		custom, err := SchemasFromResources([]apidoc.Resource{bookResource()}, WithCollectionPrefix("ns:"))
		require.NoError(t, err)
		assert.True(t, accepts(t, custom.Collections["books"], map[string]any{
			"@id": "/books", "@type": "Collection", "ns:totalItems": 0.0, "ns:member": []any{},
		}))
	})
}

func TestResolve_Idempotent(t *testing.T) {
	first, err := SchemasFromResources(circularResources())
	require.NoError(t, err)
	second, err := SchemasFromResources(circularResources())
	require.NoError(t, err)

	assert.NotSame(t, first.Schemas["books"], second.Schemas["books"])

	samples := []any{
		map[string]any{"@id": "/books/1", "@type": "Book", "title": "x",
			"author": map[string]any{"@id": "/a/1", "@type": "Author", "name": "y", "books": []any{}}},
		map[string]any{"@id": "/books/1", "@type": "Author", "title": "x"},
		map[string]any{"@id": "/books/1", "@type": "Book"},
		"not an object",
		nil,
	}
	for _, name := range first.Names {
		for _, sample := range samples {
			a, errA := schema.NewValidator().Conforms(sample, first.Schemas[name])
			b, errB := schema.NewValidator().Conforms(sample, second.Schemas[name])
			assert.Equal(t, errA == nil, errB == nil)
			assert.Equal(t, a, b)

			a, errA = schema.NewValidator().Conforms(sample, first.Collections[name])
			b, errB = schema.NewValidator().Conforms(sample, second.Collections[name])
			assert.Equal(t, errA == nil, errB == nil)
			assert.Equal(t, a, b)
		}
	}
}

func TestResolve_Empty(t *testing.T) {
	result, err := SchemasFromResources(nil)
	require.NoError(t, err)
	assert.Empty(t, result.Schemas)
	assert.Empty(t, result.Collections)
	assert.Empty(t, result.Names)
}

func TestNew_InvalidOption(t *testing.T) {
	_, err := New(WithCollectionPrefix(" hydra:"))
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrConfig)
}
