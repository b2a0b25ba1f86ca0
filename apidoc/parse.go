package apidoc

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/hydraschema/internal/options"
	"github.com/erraggy/hydraschema/schemaerrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Source identification
	sourceName string

	// Resource limits (0 means use default)
	maxFileSize int64
}

// DefaultMaxFileSize is the largest metadata document accepted (10 MiB).
const DefaultMaxFileSize int64 = 10 << 20

// ParseWithOptions decodes API documentation metadata using functional options.
// Both YAML and JSON are accepted. The input is either a document object
// with a "resources" list or a bare list of resources.
//
// Example:
//
//	doc, err := apidoc.ParseWithOptions(
//	    apidoc.WithFilePath("resources.yaml"),
//	)
func ParseWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("apidoc: invalid options: %w", err)
	}

	var data []byte
	source := cfg.sourceName
	switch {
	case cfg.filePath != nil:
		if source == "" {
			source = *cfg.filePath
		}
		data, err = readFile(*cfg.filePath, cfg.maxFileSize)
	case cfg.reader != nil:
		data, err = readAll(cfg.reader, cfg.maxFileSize)
	default:
		data = cfg.bytes
	}
	if err != nil {
		return nil, &schemaerrors.ParseError{Path: source, Message: "reading metadata", Cause: err}
	}

	return decode(data, source)
}

// ParseBytes decodes metadata from data. It is shorthand for
// ParseWithOptions(WithBytes(data)).
func ParseBytes(data []byte) (*Document, error) {
	return ParseWithOptions(WithBytes(data))
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"apidoc: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"apidoc: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &schemaerrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &schemaerrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourceName sets the name reported in parse errors and recorded as the
// document entrypoint when the document does not declare one.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithMaxFileSize limits the size of file and reader inputs.
// Default: DefaultMaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(cfg *parseConfig) error {
		if n <= 0 {
			return &schemaerrors.ConfigError{Option: "maxFileSize", Value: n, Message: "must be positive"}
		}
		cfg.maxFileSize = n
		return nil
	}
}

func readFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // G304: reading user-specified metadata is the purpose of this function
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return readAll(f, limit)
}

func readAll(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("input exceeds %d bytes", limit)
	}
	return data, nil
}

// decode accepts either a Document mapping or a bare sequence of resources.
func decode(data []byte, source string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &schemaerrors.ParseError{Path: source, Message: "decoding metadata", Cause: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &schemaerrors.ParseError{Path: source, Message: "empty document"}
	}

	doc := &Document{}
	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&doc.Resources); err != nil {
			return nil, &schemaerrors.ParseError{Path: source, Message: "decoding resource list", Cause: err}
		}
	case yaml.MappingNode:
		if err := node.Decode(doc); err != nil {
			return nil, &schemaerrors.ParseError{Path: source, Message: "decoding document", Cause: err}
		}
	default:
		return nil, &schemaerrors.ParseError{
			Path:    source,
			Message: "expected a document object or a list of resources",
		}
	}

	if doc.Entrypoint == "" {
		doc.Entrypoint = source
	}
	return doc, nil
}
