package builder

import (
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/erraggy/hydraschema/internal/naming"
)

// JSONSchemaDialect is the $schema of exported documents.
const JSONSchemaDialect = "https://json-schema.org/draft/2020-12/schema"

// Document exports the result as one JSON Schema document with every schema
// under $defs: resource schemas by title, collection schemas by
// naming.CollectionName of the resource name (e.g. "BooksCollection").
// Titles keep their keys; a collection key that is already taken gets the
// first free numeric suffix ("BookReviewsCollection2").
//
// Key prefix stripping has no JSON Schema equivalent; exported collection
// definitions describe values after stripping.
func (r *Result) Document() *jsonschema.Schema {
	defs := make(map[string]*jsonschema.Schema, r.Context.Len()+len(r.Collections))
	for _, title := range r.Context.Titles() {
		s, err := r.Context.Lookup(title)
		if err != nil {
			continue
		}
		defs[title] = s.JSONSchema()
	}
	keys := r.collectionKeys()
	for _, name := range r.Names {
		defs[keys[name]] = r.Collections[name].JSONSchema()
	}
	return &jsonschema.Schema{
		Schema: JSONSchemaDialect,
		Defs:   defs,
	}
}

// DocumentFor exports a document whose root references the schema of the
// resource named name, or its collection schema when collection is true.
func (r *Result) DocumentFor(name string, collection bool) (*jsonschema.Schema, error) {
	s, ok := r.Schemas[name]
	if !ok {
		return nil, fmt.Errorf("builder: no resource named %q", name)
	}
	doc := r.Document()
	if collection {
		doc.Ref = naming.DefinitionRef(r.collectionKeys()[name])
		return doc, nil
	}
	// Schemas are stored under their title, which may differ from name.
	title := name
	if typ, ok := s.Property(KeyType); ok {
		if t, isString := typ.Value.(string); isString {
			title = t
		}
	}
	doc.Ref = naming.DefinitionRef(title)
	return doc, nil
}

// collectionKeys assigns each resource name its collection $defs key.
func (r *Result) collectionKeys() map[string]string {
	taken := make(map[string]bool, r.Context.Len()+len(r.Names))
	for _, title := range r.Context.Titles() {
		taken[title] = true
	}
	keys := make(map[string]string, len(r.Names))
	for _, name := range r.Names {
		base := naming.CollectionName(name)
		key := base
		for i := 2; taken[key]; i++ {
			key = base + strconv.Itoa(i)
		}
		taken[key] = true
		keys[name] = key
	}
	return keys
}
