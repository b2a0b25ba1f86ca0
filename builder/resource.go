package builder

import (
	"github.com/erraggy/hydraschema/apidoc"
	"github.com/erraggy/hydraschema/schema"
)

// Keys every resource representation carries.
const (
	KeyID   = "@id"
	KeyType = "@type"
)

// MapResource returns the object schema for resource: "@id" as a string,
// "@type" as the literal resource title, then one property per checkable
// field in declaration order. A later field with the same name replaces an
// earlier one.
func MapResource(resource apidoc.Resource, ctx *schema.Context) *schema.Schema {
	s := schema.Object().
		Set(KeyID, schema.String()).
		Set(KeyType, schema.Literal(resource.TypeName()))
	for _, field := range resource.CheckableFields() {
		s.Set(field.Name, MapField(field, ctx))
	}
	s.Description = resource.Description
	return s
}
