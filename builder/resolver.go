package builder

import (
	"fmt"

	"github.com/erraggy/hydraschema/apidoc"
	"github.com/erraggy/hydraschema/schema"
	"github.com/erraggy/hydraschema/schemaerrors"
)

// Result holds the schemas built from one resource set.
//
// A Result is read-only once returned and may be used for concurrent checks.
type Result struct {
	// Schemas maps resource names to their object schemas.
	Schemas map[string]*schema.Schema
	// Collections maps resource names to their collection schemas. Collection
	// schemas strip the configured key prefix before checking.
	Collections map[string]*schema.Schema
	// Names lists the distinct resource names in input order.
	Names []string
	// Context resolves the Lazy nodes of the schemas by resource title.
	Context *schema.Context
}

// Schema returns the object schema built for the resource named name.
func (r *Result) Schema(name string) (*schema.Schema, bool) {
	s, ok := r.Schemas[name]
	return s, ok
}

// Collection returns the collection schema built for the resource named name.
func (r *Result) Collection(name string) (*schema.Schema, bool) {
	s, ok := r.Collections[name]
	return s, ok
}

// Resolver builds schemas for whole resource sets, resolving references
// between resources.
type Resolver struct {
	cfg *config
}

// New creates a Resolver configured by opts.
func New(opts ...Option) (*Resolver, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("builder: invalid options: %w", err)
	}
	return &Resolver{cfg: cfg}, nil
}

// SchemasFromResources is a convenience function that creates a Resolver
// with opts and resolves resources.
//
// Example:
//
//	result, err := builder.SchemasFromResources(doc.Resources,
//	    builder.WithStrictReferences(true),
//	)
func SchemasFromResources(resources []apidoc.Resource, opts ...Option) (*Result, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Resolve(resources)
}

// Resolve builds an object schema and a collection schema for every resource.
//
// Resources are processed in the given order in three passes. The first
// registers every title in a fresh Context so that embedded fields can name
// any resource, including ones later in the list or the resource itself. The
// second maps every resource and stores its schema under its title and its
// name. The third wraps each schema in a collection envelope.
//
// Later resources with an already seen title or name replace the earlier
// ones. Resolve only fails for invalid reference graphs in strict mode.
func (r *Resolver) Resolve(resources []apidoc.Resource) (*Result, error) {
	log := r.cfg.logger
	ctx := schema.NewContext()

	for i, res := range resources {
		title := res.TypeName()
		if ctx.Has(title) {
			log.Warn("duplicate resource title, later resource wins", "title", title, "index", i)
		}
		ctx.Register(title)
	}
	log.Debug("registered resources", "count", len(resources), "titles", ctx.Len())

	if r.cfg.strictRefs {
		if err := checkReferences(resources, ctx); err != nil {
			log.Error("unknown resource reference", "error", err)
			return nil, err
		}
	}

	result := &Result{
		Schemas:     make(map[string]*schema.Schema, len(resources)),
		Collections: make(map[string]*schema.Schema, len(resources)),
		Context:     ctx,
	}
	for i, res := range resources {
		s := MapResource(res, ctx)
		ctx.Set(res.TypeName(), s)
		if _, seen := result.Schemas[res.Name]; seen {
			log.Warn("duplicate resource name, later resource wins", "name", res.Name, "index", i)
		} else {
			result.Names = append(result.Names, res.Name)
		}
		result.Schemas[res.Name] = s
		log.Debug("built resource schema", "name", res.Name, "title", res.TypeName(), "properties", len(s.PropertyNames()))
	}

	for _, name := range result.Names {
		collection := WrapCollection(result.Schemas[name])
		if r.cfg.collectionPrefix != "" {
			collection = schema.Preprocessed(schema.KeyPrefixStripper(r.cfg.collectionPrefix), collection)
		}
		result.Collections[name] = collection
	}
	log.Debug("built collection schemas", "count", len(result.Collections), "prefix", r.cfg.collectionPrefix)

	return result, nil
}

// checkReferences reports the first embedded field that names a title no
// resource registers.
func checkReferences(resources []apidoc.Resource, ctx *schema.Context) error {
	for _, res := range resources {
		for _, field := range res.CheckableFields() {
			// Only fields that MapField turns into a Lazy node count.
			if field.Embedded == nil || field.Enum != nil || field.Reference != nil ||
				(field.IsMany() && field.ArrayType != "") {
				continue
			}
			title := field.Embedded.TypeName()
			if !ctx.Has(title) {
				return &schemaerrors.ReferenceError{
					Title:   title,
					Message: fmt.Sprintf("embedded by field %q of resource %q", field.Name, res.Name),
				}
			}
		}
	}
	return nil
}
