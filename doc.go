// Package hydraschema builds structural schemas from Hydra / API Platform
// resource metadata and checks JSON values against them.
//
// # Overview
//
// An API documented with Hydra describes each resource as a list of fields
// with a type or range, cardinality, nullability, enums, and links to other
// resources. hydraschema turns that metadata into schemas that can check
// response bodies at runtime:
//
//   - apidoc: Load resource metadata from YAML or JSON
//   - schema: The schema tree, the checker, and key prefix normalization
//   - builder: Map fields and resources to schemas, wrap collections, and
//     resolve references between resources (including cycles)
//   - schemaerrors: Typed errors shared by all packages
//
// # Installation
//
//	go get github.com/erraggy/hydraschema
//
// # Quick Start
//
// Build the schemas for a metadata file and check a value:
//
//	doc, err := apidoc.ParseWithOptions(apidoc.WithFilePath("resources.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := builder.SchemasFromResources(doc.Resources)
//	if err != nil {
//		log.Fatal(err)
//	}
//	book, _ := result.Schema("books")
//	issues, err := schema.NewValidator().Validate(value, book, "$")
//
// Check one page of a collection. Collection schemas strip the "hydra:" key
// prefix before checking, so compact and prefixed payloads both conform:
//
//	page, _ := result.Collection("books")
//	ok, err := schema.NewValidator().Conforms(body, page)
//
// # Circular References
//
// Resources may embed each other (a Book embeds its Author, which lists its
// Books). Embedded fields become lazy references that are looked up by
// resource title when a value is checked, so every schema can be built before
// any of the resources it names. A reference to a title that was never built
// fails the check with a *schemaerrors.ReferenceError; build with
// builder.WithStrictReferences(true) to reject such metadata up front.
//
// # JSON Schema Export
//
// builder.(*Result).Document returns a JSON Schema (draft 2020-12) document
// with one $defs entry per resource and per collection. Lazy references
// become $ref pointers into $defs.
//
// # Error Handling
//
// All errors wrap one of the sentinels in schemaerrors and can be matched
// with errors.Is:
//
//	if errors.Is(err, schemaerrors.ErrUnknownReference) {
//		// metadata names a resource it does not describe
//	}
//
// Issues found while checking a value are not errors. Validate returns them
// as a list, each with a JSON path, a message, a kind, and a severity.
//
// # Command-Line Interface
//
// The hydraschema command wraps the library:
//
//	hydraschema build resources.yaml --format json
//	hydraschema check resources.yaml books book.json
//	hydraschema mcp
//
// Flags can also be set with HYDRASCHEMA_PREFIX, HYDRASCHEMA_STRICT,
// HYDRASCHEMA_FORMAT and HYDRASCHEMA_VERBOSE.
package hydraschema
