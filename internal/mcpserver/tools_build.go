package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/hydraschema/builder"
	"github.com/erraggy/hydraschema/internal/naming"
)

type buildInput struct {
	Doc        docInput `json:"doc"                   jsonschema:"The resource metadata to build schemas from"`
	Prefix     *string  `json:"prefix,omitempty"      jsonschema:"Key prefix stripped from collection values before checking (default hydra:, empty disables)"`
	Strict     *bool    `json:"strict,omitempty"      jsonschema:"Fail when an embedded field names a resource that is not in the metadata"`
	JSONSchema bool     `json:"json_schema,omitempty" jsonschema:"Include the JSON Schema document of all schemas"`
}

type resourceSummary struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Properties []string `json:"properties"`
	Required   []string `json:"required,omitempty"`
	Collection string   `json:"collection"`
}

type buildOutput struct {
	ResourceCount int               `json:"resource_count"`
	Resources     []resourceSummary `json:"resources,omitempty"`
	Document      map[string]any    `json:"document,omitempty"`
}

func handleBuildSchemas(_ context.Context, _ *mcp.CallToolRequest, input buildInput) (*mcp.CallToolResult, buildOutput, error) {
	result, err := input.Doc.resolve(settingsFor(input.Prefix, input.Strict))
	if err != nil {
		return errResult(err), buildOutput{}, nil
	}

	output := buildOutput{
		ResourceCount: len(result.Names),
		Resources:     makeSlice[resourceSummary](len(result.Names)),
	}
	for _, name := range result.Names {
		output.Resources = append(output.Resources, summarize(name, result))
	}

	if input.JSONSchema {
		doc, err := documentMap(result)
		if err != nil {
			return errResult(err), buildOutput{}, nil
		}
		output.Document = doc
	}
	return nil, output, nil
}

func summarize(name string, result *builder.Result) resourceSummary {
	s := result.Schemas[name]
	summary := resourceSummary{
		Name:       name,
		Properties: s.PropertyNames(),
		Collection: naming.CollectionName(name),
	}
	if typ, ok := s.Property(builder.KeyType); ok {
		summary.Type = fmt.Sprint(typ.Value)
	}
	for _, prop := range summary.Properties {
		if p, _ := s.Property(prop); p != nil && !p.AcceptsAbsent() {
			summary.Required = append(summary.Required, prop)
		}
	}
	return summary
}

// documentMap returns the exported JSON Schema document as a generic map, so
// it can travel as structured tool output.
func documentMap(result *builder.Result) (map[string]any, error) {
	data, err := json.Marshal(result.Document())
	if err != nil {
		return nil, fmt.Errorf("exporting JSON Schema: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("exporting JSON Schema: %w", err)
	}
	return out, nil
}
