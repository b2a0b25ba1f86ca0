package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefsPrefix is the JSON pointer prefix of exported definitions.
const DefsPrefix = "#/$defs/"

// collectionSuffix is appended to collection definition names.
const collectionSuffix = "Collection"

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space) split words; each word is
// title cased and the rest of the word is kept as-is.
// Example: "book_reviews" -> "BookReviews"
// Example: "parchment" -> "Parchment"
func ToPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == '/' || r == ' '
	})

	// Use golang.org/x/text/cases for proper Unicode title casing (strings.Title is deprecated).
	// A Caser is stateful, so one is created per call.
	titleCaser := cases.Title(language.English, cases.NoLower)

	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(titleCaser.String(w))
	}
	return sb.String()
}

// CollectionName returns the definition name of a resource's collection schema.
// Example: "books" -> "BooksCollection"
func CollectionName(resourceName string) string {
	return ToPascalCase(resourceName) + collectionSuffix
}

// EscapePointerToken escapes a JSON pointer reference token (RFC 6901).
func EscapePointerToken(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// DefinitionRef returns the $ref pointing at a named definition.
// Example: "Book" -> "#/$defs/Book"
func DefinitionRef(name string) string {
	return DefsPrefix + EscapePointerToken(name)
}
