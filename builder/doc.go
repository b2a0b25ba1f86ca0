// Package builder turns API resource metadata into structural schemas.
//
// # Quick Start
//
// Load the resource metadata and build one object schema and one collection
// schema per resource:
//
//	doc, err := apidoc.ParseWithOptions(apidoc.WithFilePath("bookshop.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := builder.SchemasFromResources(doc.Resources)
//	if err != nil {
//		log.Fatal(err)
//	}
//	accepted, err := schema.NewValidator().Parse(value, result.Schemas["books"])
//
// # Options
//
// [New] and [SchemasFromResources] accept functional options:
//   - [WithLogger] receives pass progress (debug) and duplicate titles or names (warn)
//   - [WithCollectionPrefix] sets the key prefix collection schemas strip ("" disables)
//   - [WithStrictReferences] rejects embedded fields naming an unknown resource
//
//	r, err := builder.New(
//	    builder.WithLogger(builder.NewSlogAdapter(slog.Default())),
//	    builder.WithStrictReferences(true),
//	)
//
// # Field Mapping
//
// [MapField] picks the first matching source: an enum, a reference (an
// opaque IRI string), an embedded resource (a Lazy node by title), or the
// base type tag:
//   - string, password, byte, binary, hexBinary, base64Binary, duration → string
//   - email, url, uuid, date, dateTime, time → string with a format
//   - integer → integer
//   - positiveInteger, nonNegativeInteger → integer with minimum 1 or 0
//   - negativeInteger, nonPositiveInteger → integer with maximum -1 or 0
//   - number, decimal, double, float → number
//   - boolean → boolean
//   - anything else → string
//
// The result is then wrapped in an array (maxCardinality other than 1), a
// nullable wrapper, and an optional wrapper (required: false), in that order.
//
// # Resources and Cycles
//
// [MapResource] declares "@id" and "@type" (the literal resource title) plus
// every readable field. Resources that embed each other are resolved by
// [Resolver.Resolve] in three passes over the input: register all titles,
// build all resources, wrap all collections. Lazy nodes are only followed
// when a value is checked, so cycles never recurse at build time.
//
// Duplicate field names, titles and names are not errors: the later
// definition wins.
//
// # Collections
//
// [WrapCollection] describes the paginated envelope ("@id", "@type",
// "totalItems", "member", optional "view" and "search"). Collection schemas
// built by the resolver strip the "hydra:" key prefix before checking; see
// [WithCollectionPrefix].
//
// # Export
//
// [Result.Document] exports every schema as a JSON Schema (draft 2020-12)
// document with the schemas under $defs.
package builder
