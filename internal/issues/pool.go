package issues

import (
	"strconv"
	"strings"
	"sync"
)

// RootPath is the path of the top-level checked value.
const RootPath = "$"

var stringBuilderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// getStringBuilder retrieves a builder from the pool and resets it.
func getStringBuilder() *strings.Builder {
	sb := stringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// putStringBuilder returns a builder to the pool.
func putStringBuilder(sb *strings.Builder) {
	if sb == nil {
		return
	}
	stringBuilderPool.Put(sb)
}

// KeyPath appends an object key to a path: ("$", "author") -> "$.author".
func KeyPath(base, key string) string {
	if base == "" {
		base = RootPath
	}
	sb := getStringBuilder()
	sb.WriteString(base)
	sb.WriteByte('.')
	sb.WriteString(key)
	result := sb.String()
	putStringBuilder(sb)
	return result
}

// IndexPath appends an array index to a path: ("$.books", 2) -> "$.books[2]".
func IndexPath(base string, index int) string {
	if base == "" {
		base = RootPath
	}
	sb := getStringBuilder()
	sb.WriteString(base)
	sb.WriteByte('[')
	sb.WriteString(strconv.Itoa(index))
	sb.WriteByte(']')
	result := sb.String()
	putStringBuilder(sb)
	return result
}
