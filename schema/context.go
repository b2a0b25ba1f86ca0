package schema

import (
	"github.com/erraggy/hydraschema/schemaerrors"
)

// Context maps resource titles to their object schemas. A title is first
// registered with no schema and filled in once the schema is built, so that
// Lazy nodes can name a resource before it exists.
//
// A Context is owned by the resolver that builds it. Once building is done it
// is only read and may be shared between goroutines.
type Context struct {
	entries map[string]*Schema
	order   []string
}

// NewContext returns an empty resolution context.
func NewContext() *Context {
	return &Context{entries: make(map[string]*Schema)}
}

// Register records title as known but not built yet. Registering a title
// again clears any schema set for it.
func (c *Context) Register(title string) {
	if _, ok := c.entries[title]; !ok {
		c.order = append(c.order, title)
	}
	c.entries[title] = nil
}

// Set stores the finished schema for title, replacing whatever was there.
func (c *Context) Set(title string, s *Schema) {
	if _, ok := c.entries[title]; !ok {
		c.order = append(c.order, title)
	}
	c.entries[title] = s
}

// Has reports whether title has been registered.
func (c *Context) Has(title string) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[title]
	return ok
}

// Built reports whether a schema has been set for title.
func (c *Context) Built(title string) bool {
	if c == nil {
		return false
	}
	return c.entries[title] != nil
}

// Lookup returns the schema set for title.
// It fails with ErrUnknownReference when title was never registered and with
// ErrUnresolvedReference when it is registered but not built yet.
func (c *Context) Lookup(title string) (*Schema, error) {
	if c == nil {
		return nil, &schemaerrors.ReferenceError{Title: title, Message: "no resolution context"}
	}
	s, ok := c.entries[title]
	if !ok {
		return nil, &schemaerrors.ReferenceError{Title: title}
	}
	if s == nil {
		return nil, &schemaerrors.ReferenceError{Title: title, Unresolved: true}
	}
	return s, nil
}

// Titles returns the registered titles in first-registration order.
func (c *Context) Titles() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Len returns the number of registered titles.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
