package builder

import (
	"github.com/erraggy/hydraschema/schema"
)

// Collection envelope keys, after prefix stripping.
const (
	KeyTotalItems = "totalItems"
	KeyMember     = "member"
	KeyView       = "view"
	KeySearch     = "search"
)

// WrapCollection returns the schema of a paginated collection of item:
// required "@id", "@type", "totalItems" and "member", plus optional "view"
// paging links and an optional "search" IRI template.
func WrapCollection(item *schema.Schema) *schema.Schema {
	return schema.Object().
		Set(KeyID, schema.String()).
		Set(KeyType, schema.String()).
		Set(KeyTotalItems, schema.Integer()).
		Set(KeyMember, schema.Array(item)).
		Set(KeyView, schema.Optional(viewSchema())).
		Set(KeySearch, schema.Optional(searchSchema()))
}

func viewSchema() *schema.Schema {
	return schema.Object().
		Set(KeyID, schema.String()).
		Set(KeyType, schema.String()).
		Set("first", schema.Optional(schema.String())).
		Set("last", schema.Optional(schema.String())).
		Set("previous", schema.Optional(schema.String())).
		Set("next", schema.Optional(schema.String()))
}

func searchSchema() *schema.Schema {
	mapping := schema.Object().
		Set(KeyType, schema.String()).
		Set("variable", schema.String()).
		Set("property", schema.Optional(schema.Nullable(schema.String()))).
		Set("required", schema.Optional(schema.Boolean()))

	return schema.Object().
		Set(KeyType, schema.String()).
		Set("template", schema.Optional(schema.String())).
		Set("variableRepresentation", schema.Optional(schema.String())).
		Set("mapping", schema.Optional(schema.Array(mapping)))
}
