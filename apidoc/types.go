package apidoc

// defaultBaseType is used when a field declares neither type nor range.
const defaultBaseType = "string"

// Document is a parsed API documentation: the entrypoint it was read from and
// its resources, in documentation order.
type Document struct {
	Entrypoint string     `json:"entrypoint,omitempty" yaml:"entrypoint,omitempty"`
	Title      string     `json:"title,omitempty"      yaml:"title,omitempty"`
	Resources  []Resource `json:"resources"            yaml:"resources"`
}

// ResourceRef names another resource from a field. Title is the display key
// used for schema resolution; Name is the machine key.
type ResourceRef struct {
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// TypeName returns the key the referenced resource is registered under:
// its title, or its name when the title is empty.
func (r ResourceRef) TypeName() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Field describes one resource property.
//
// Optional attributes use pointers or nil slices so that "absent" is distinct
// from a zero value: a nil Required means required, a nil Enum means no
// enumeration, a nil MaxCardinality means a single value.
type Field struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Type is the base type tag (e.g. "string", "positiveInteger", "dateTime").
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Range is the RDF range, used when Type is empty.
	Range string `json:"range,omitempty" yaml:"range,omitempty"`

	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`
	Nullable bool  `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// Enum lists the allowed literal values, in order.
	Enum []any `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Reference marks the field as an IRI pointing at another resource.
	Reference *ResourceRef `json:"reference,omitempty" yaml:"reference,omitempty"`
	// Embedded marks the field as carrying another resource's full value.
	Embedded *ResourceRef `json:"embedded,omitempty" yaml:"embedded,omitempty"`

	// MaxCardinality other than exactly 1 makes the field an array.
	MaxCardinality *int `json:"maxCardinality,omitempty" yaml:"maxCardinality,omitempty"`
	// ArrayType overrides the element base type of an array field.
	ArrayType string `json:"arrayType,omitempty" yaml:"arrayType,omitempty"`
}

// IsRequired reports whether the field must be present. Fields are required
// unless Required is explicitly false.
func (f Field) IsRequired() bool {
	return f.Required == nil || *f.Required
}

// IsMany reports whether the field holds an array of values.
func (f Field) IsMany() bool {
	return f.MaxCardinality != nil && *f.MaxCardinality != 1
}

// BaseType returns Type, else Range, else "string".
func (f Field) BaseType() string {
	switch {
	case f.Type != "":
		return f.Type
	case f.Range != "":
		return f.Range
	default:
		return defaultBaseType
	}
}

// Resource is a named entity of the documented API.
type Resource struct {
	Name        string `json:"name"                  yaml:"name"`
	Title       string `json:"title,omitempty"       yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	// ReadableFields, when present, is the subset of fields exposed on read.
	// It takes precedence over Fields even when empty.
	ReadableFields []Field `json:"readableFields,omitempty" yaml:"readableFields,omitempty"`
}

// TypeName returns the resource title, or its name when the title is empty.
// It is the value of @type in resource representations.
func (r Resource) TypeName() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// CheckableFields returns ReadableFields when set, otherwise Fields.
func (r Resource) CheckableFields() []Field {
	if r.ReadableFields != nil {
		return r.ReadableFields
	}
	return r.Fields
}

// Bool returns a pointer to b, for building Field.Required literals.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to n, for building Field.MaxCardinality literals.
func Int(n int) *int {
	return &n
}
