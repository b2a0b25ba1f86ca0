// Package apidoc defines the resource metadata that schemas are built from
// and decodes it from YAML or JSON.
//
// The metadata normally comes from a documentation parser (Hydra or OpenAPI)
// and may be incomplete. Types here make every optional attribute explicit so
// the default policies are visible in code: a field without a type is a
// string, a field without "required" is required, and a resource with
// readableFields exposes only those.
//
// # Input format
//
//	title: Bookshop
//	resources:
//	  - name: books
//	    title: Book
//	    fields:
//	      - name: isbn
//	      - name: status
//	        enum: [draft, published, archived]
//	      - name: author
//	        embedded: {name: authors, title: Author}
//	  - name: authors
//	    title: Author
//	    fields:
//	      - name: books
//	        embedded: {name: books, title: Book}
//	        maxCardinality: 0
//
// A bare list of resources is accepted as well.
//
// # Options
//
// [ParseWithOptions] reads from exactly one source, [WithFilePath],
// [WithReader] or [WithBytes]. [WithSourceName] names non-file sources in
// errors, and [WithMaxFileSize] caps how much is read.
//
//	doc, err := apidoc.ParseWithOptions(
//	    apidoc.WithReader(os.Stdin),
//	    apidoc.WithSourceName("stdin"),
//	)
package apidoc
