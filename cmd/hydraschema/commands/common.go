// Package commands provides the cobra commands of the hydraschema CLI.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/hydraschema/apidoc"
	"github.com/erraggy/hydraschema/builder"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
//
// Values whose JSON form differs from their Go shape (such as JSON Schema
// documents) are normalized through JSON first, so both formats agree.
func OutputStructured(w io.Writer, data any, format string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	switch format {
	case FormatJSON:
		Writef(w, "%s\n", raw)
		return nil
	case FormatYAML:
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("marshaling to %s: %w", format, err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("marshaling to %s: %w", format, err)
		}
		Writef(w, "%s", out)
		return nil
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
}

// Writef writes formatted output to w, reporting write failures on stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// loadResult parses the metadata at path ("-" for stdin) and builds its schemas.
func loadResult(path string, stdin io.Reader, s Settings, logger builder.Logger) (*builder.Result, error) {
	opts := []apidoc.Option{apidoc.WithFilePath(path)}
	if path == StdinFilePath {
		opts = []apidoc.Option{apidoc.WithReader(stdin), apidoc.WithSourceName("stdin")}
	}

	doc, err := apidoc.ParseWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}

	result, err := builder.SchemasFromResources(doc.Resources,
		builder.WithCollectionPrefix(s.Prefix),
		builder.WithStrictReferences(s.Strict),
		builder.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("building schemas: %w", err)
	}
	return result, nil
}
