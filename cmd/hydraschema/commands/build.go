package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/hydraschema/builder"
	"github.com/erraggy/hydraschema/internal/naming"
	"github.com/erraggy/hydraschema/schema"
)

type buildFlags struct {
	resource   string
	collection bool
}

func newBuildCommand(a *app) *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build [flags] <file|->",
		Short: "Build the schemas of every resource in a metadata file",
		Long: `Build the structural schemas of every resource described in a metadata file
(YAML or JSON) and print them.

The text format lists each resource with its properties. The json and yaml
formats print a JSON Schema (draft 2020-12) document with one $defs entry per
resource and per collection; embedded resources become $ref.

Examples:
  hydraschema build resources.yaml
  hydraschema build --format json resources.yaml
  hydraschema build --format yaml --resource books --collection resources.yaml
  cat resources.json | hydraschema build -f json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.resource, "resource", "r", "", "root the exported document at this resource")
	cmd.Flags().BoolVar(&flags.collection, "collection", false, "root the exported document at the collection of --resource")

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, path string, flags *buildFlags) error {
	if flags.collection && flags.resource == "" {
		return fmt.Errorf("--collection requires --resource")
	}

	result, err := loadResult(path, cmd.InOrStdin(), a.settings, a.logger)
	if err != nil {
		return err
	}
	if flags.resource != "" {
		if _, ok := result.Schema(flags.resource); !ok {
			return fmt.Errorf("no resource named %q (available: %s)", flags.resource, strings.Join(result.Names, ", "))
		}
	}

	out := cmd.OutOrStdout()
	if a.settings.Format == FormatText {
		names := result.Names
		if flags.resource != "" {
			names = []string{flags.resource}
		}
		for _, name := range names {
			writeSummary(cmd, result, name)
		}
		return nil
	}

	doc := result.Document()
	if flags.resource != "" {
		if doc, err = result.DocumentFor(flags.resource, flags.collection); err != nil {
			return err
		}
	}
	return OutputStructured(out, doc, a.settings.Format)
}

// writeSummary prints one resource as a header line followed by its
// properties, marking the ones a value may omit.
func writeSummary(cmd *cobra.Command, result *builder.Result, name string) {
	out := cmd.OutOrStdout()
	s := result.Schemas[name]

	typeName := name
	if typ, ok := s.Property(builder.KeyType); ok {
		typeName = fmt.Sprint(typ.Value)
	}
	Writef(out, "%s (%s) collection %s\n", name, typeName, naming.CollectionName(name))
	for _, prop := range s.PropertyNames() {
		p, _ := s.Property(prop)
		marker := " "
		if p.AcceptsAbsent() {
			marker = "?"
		}
		Writef(out, "  %s %s: %s\n", marker, prop, describe(p))
	}
}

// describe renders a schema as a compact one-line type expression.
func describe(s *schema.Schema) string {
	switch s.Kind {
	case schema.KindOptional:
		return describe(s.Elem)
	case schema.KindNullable:
		return describe(s.Elem) + " | null"
	case schema.KindArray:
		return "[]" + describe(s.Elem)
	case schema.KindLazy:
		return "ref " + s.Ref
	case schema.KindLiteral:
		return fmt.Sprintf("literal %q", fmt.Sprint(s.Value))
	case schema.KindEnum:
		return fmt.Sprintf("enum %v", s.Values)
	case schema.KindString:
		if s.Format != schema.FormatNone {
			return "string(" + string(s.Format) + ")"
		}
	case schema.KindInteger:
		var bounds []string
		if s.Minimum != nil {
			bounds = append(bounds, fmt.Sprintf(">=%d", *s.Minimum))
		}
		if s.Maximum != nil {
			bounds = append(bounds, fmt.Sprintf("<=%d", *s.Maximum))
		}
		if len(bounds) > 0 {
			return "integer(" + strings.Join(bounds, ",") + ")"
		}
	}
	return s.Kind.String()
}
