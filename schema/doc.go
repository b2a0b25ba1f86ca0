// Package schema provides the structural schema descriptions built from API
// resource metadata, and the engine that checks values against them.
//
// # Nodes
//
// A [Schema] is a tree of nodes: primitives (string with an optional format,
// bounded integer, number, boolean), literals, enums, objects, arrays, and the
// nullable and optional wrappers. Object schemas never reject or strip
// properties they do not declare.
//
// # Deferred references
//
// Resources may embed each other. A [Lazy] node names a resource by title and
// is resolved against a [Context] only when a value is checked:
//
//	ctx := schema.NewContext()
//	ctx.Register("Author")
//	book := schema.Object().
//	    Set("@id", schema.String()).
//	    Set("@type", schema.Literal("Book")).
//	    Set("author", schema.Lazy(ctx, "Author"))
//	// ... build Author, then:
//	ctx.Set("Author", author)
//
// Dereferencing a title that was never registered, or one that is registered
// but not built yet, fails with a *schemaerrors.ReferenceError.
//
// # Checking values
//
//	v := schema.NewValidator()
//	found, err := v.Validate(value, book, "$")
//	accepted, err := v.Parse(value, book)
//
// Issues carry a path, a message and a kind (type, literal, required, ...),
// so a wrong @type is distinguishable from a missing key.
//
// # Export
//
// [Schema.JSONSchema] converts a node to a JSON Schema document node.
package schema
