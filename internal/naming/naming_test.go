package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"books", "Books"},
		{"book_reviews", "BookReviews"},
		{"top-books", "TopBooks"},
		{"Book", "Book"},
		{"camelCase", "CamelCase"},
		{"", ""},
		{"__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestCollectionName(t *testing.T) {
	assert.Equal(t, "BooksCollection", CollectionName("books"))
	assert.Equal(t, "BookReviewsCollection", CollectionName("book_reviews"))
}

func TestDefinitionRef(t *testing.T) {
	assert.Equal(t, "#/$defs/Book", DefinitionRef("Book"))
	assert.Equal(t, "#/$defs/a~1b~0c", DefinitionRef("a/b~c"))
}
