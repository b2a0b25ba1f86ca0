package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/hydraschema/schema"
)

// ErrNotConforming is returned by the check command when the value has at
// least one failing issue.
var ErrNotConforming = errors.New("value does not conform")

type checkFlags struct {
	collection    bool
	reportUnknown bool
	redact        bool
}

// CheckIssue is one issue in structured check output.
type CheckIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
}

// CheckOutput is the structured (json/yaml) output of the check command.
type CheckOutput struct {
	Resource   string       `json:"resource"`
	Collection bool         `json:"collection,omitempty"`
	Valid      bool         `json:"valid"`
	Issues     []CheckIssue `json:"issues"`
}

func newCheckCommand(a *app) *cobra.Command {
	flags := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check [flags] <metadata-file> <resource> <value-file|->",
		Short: "Check a JSON value against the schema of one resource",
		Long: `Check a JSON value against the schema built for one resource, or against
its paginated collection schema with --collection.

Unknown properties are always accepted. Use --report-unknown to list them.

Examples:
  hydraschema check resources.yaml books book.json
  curl -s https://api.example.com/books | hydraschema check --collection resources.yaml books -
  hydraschema check --format json resources.yaml books book.json | jq '.valid'

Exit Codes:
  0    The value conforms
  1    The value does not conform, or the check could not run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.collection, "collection", false, "check against the collection schema of the resource")
	cmd.Flags().BoolVar(&flags.reportUnknown, "report-unknown", false, "list properties the schema does not declare")
	cmd.Flags().BoolVar(&flags.redact, "redact", false, "omit actual values from issue messages")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	metadataPath, resource, valuePath := args[0], args[1], args[2]
	if metadataPath == StdinFilePath && valuePath == StdinFilePath {
		return fmt.Errorf("only one of the metadata and value may be read from stdin")
	}

	result, err := loadResult(metadataPath, cmd.InOrStdin(), a.settings, a.logger)
	if err != nil {
		return err
	}

	target, ok := result.Schema(resource)
	if flags.collection {
		target, ok = result.Collection(resource)
	}
	if !ok {
		return fmt.Errorf("no resource named %q (available: %s)", resource, strings.Join(result.Names, ", "))
	}

	value, err := readValue(valuePath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	v := schema.NewValidator()
	if flags.redact {
		v = schema.NewRedactingValidator()
	}
	v.ReportUnknownKeys = flags.reportUnknown

	found, err := v.Validate(value, target, "$")
	if err != nil {
		return fmt.Errorf("checking value: %w", err)
	}

	output := CheckOutput{
		Resource:   resource,
		Collection: flags.collection,
		Issues:     make([]CheckIssue, 0, len(found)),
	}
	failures := 0
	for _, f := range found {
		if f.IsFailure() {
			failures++
		}
		output.Issues = append(output.Issues, CheckIssue{
			Path:     f.Path,
			Message:  f.Message,
			Kind:     string(f.Kind),
			Severity: f.Severity.String(),
		})
	}

	output.Valid = failures == 0

	out := cmd.OutOrStdout()
	if a.settings.Format == FormatText {
		for _, f := range found {
			Writef(out, "%s\n", f.String())
		}
		if output.Valid {
			Writef(out, "✓ value conforms to %s\n", describeTarget(resource, flags.collection))
		}
	} else if err := OutputStructured(out, output, a.settings.Format); err != nil {
		return err
	}

	if !output.Valid {
		return fmt.Errorf("%w to %s: %d issue(s)", ErrNotConforming, describeTarget(resource, flags.collection), failures)
	}
	return nil
}

func describeTarget(resource string, collection bool) string {
	if collection {
		return fmt.Sprintf("the %s collection", resource)
	}
	return resource
}

// readValue decodes the single JSON value at path ("-" for stdin). Numbers
// keep their literal form so integers are checked exactly.
func readValue(path string, stdin io.Reader) (any, error) {
	r := stdin
	if path != StdinFilePath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading value: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("decoding value %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding value %s: unexpected data after the JSON value", path)
	}
	return value, nil
}
