// Package naming derives definition names and references for exported
// schema documents.
//
// Item schemas are exported under their resource title; collection schemas
// under the PascalCase resource name followed by "Collection" (e.g., "books"
// becomes "BooksCollection").
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
