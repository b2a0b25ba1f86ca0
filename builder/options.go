package builder

import (
	"strings"

	"github.com/erraggy/hydraschema/schema"
	"github.com/erraggy/hydraschema/schemaerrors"
)

// Option configures a Resolver.
type Option func(*config) error

// config holds resolver configuration applied via options.
type config struct {
	logger           Logger
	collectionPrefix string
	strictRefs       bool
}

// defaultConfig returns the configuration used when no options are given:
// no logging, the "hydra:" collection key prefix and lazy reference checks.
func defaultConfig() *config {
	return &config{
		logger:           NopLogger{},
		collectionPrefix: schema.HydraPrefix,
	}
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger for resolver diagnostics.
// Passing nil restores the no-op logger.
func WithLogger(l Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithCollectionPrefix sets the namespace prefix stripped from object keys
// of collection values before they are checked. The default is "hydra:".
// An empty prefix disables stripping.
func WithCollectionPrefix(prefix string) Option {
	return func(cfg *config) error {
		if strings.TrimSpace(prefix) != prefix {
			return &schemaerrors.ConfigError{
				Option:  "collection prefix",
				Value:   prefix,
				Message: "must not have leading or trailing whitespace",
			}
		}
		cfg.collectionPrefix = prefix
		return nil
	}
}

// WithStrictReferences makes Resolve fail when an embedded field names a
// title that no resource registers. By default such references are left in
// place and fail when a value is checked against them.
func WithStrictReferences(strict bool) Option {
	return func(cfg *config) error {
		cfg.strictRefs = strict
		return nil
	}
}
