package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/hydraschema/schema"
)

type checkInput struct {
	Doc           docInput `json:"doc"                      jsonschema:"The resource metadata to build schemas from"`
	Resource      string   `json:"resource"                 jsonschema:"Name of the resource whose schema the value is checked against"`
	Value         any      `json:"value"                    jsonschema:"The JSON value to check"`
	Collection    bool     `json:"collection,omitempty"     jsonschema:"Check against the paginated collection schema of the resource"`
	Prefix        *string  `json:"prefix,omitempty"         jsonschema:"Key prefix stripped from collection values before checking (default hydra:)"`
	Strict        *bool    `json:"strict,omitempty"         jsonschema:"Fail when an embedded field names a resource that is not in the metadata"`
	ReportUnknown bool     `json:"report_unknown,omitempty" jsonschema:"List properties the schema does not declare as info issues"`
	Offset        int      `json:"offset,omitempty"         jsonschema:"Skip the first N issues (for pagination)"`
	Limit         int      `json:"limit,omitempty"          jsonschema:"Maximum number of issues to return (default 100)"`
}

type checkIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
}

type checkOutput struct {
	Valid      bool         `json:"valid"`
	IssueCount int          `json:"issue_count"`
	Returned   int          `json:"returned"`
	Issues     []checkIssue `json:"issues,omitempty"`
}

func handleCheckValue(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	result, err := input.Doc.resolve(settingsFor(input.Prefix, input.Strict))
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	target, ok := result.Schema(input.Resource)
	if input.Collection {
		target, ok = result.Collection(input.Resource)
	}
	if !ok {
		return errResult(fmt.Errorf("no resource named %q (available: %v)", input.Resource, result.Names)), checkOutput{}, nil
	}

	v := schema.NewValidator()
	if cfg.Redact {
		v = schema.NewRedactingValidator()
	}
	v.ReportUnknownKeys = input.ReportUnknown

	found, err := v.Validate(input.Value, target, "$")
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	output := checkOutput{Valid: true, IssueCount: len(found)}
	issues := makeSlice[checkIssue](len(found))
	for _, f := range found {
		if f.IsFailure() {
			output.Valid = false
		}
		issues = append(issues, checkIssue{
			Path:     f.Path,
			Message:  f.Message,
			Kind:     string(f.Kind),
			Severity: f.Severity.String(),
		})
	}
	output.Issues = paginate(issues, input.Offset, input.Limit)
	output.Returned = len(output.Issues)
	return nil, output, nil
}
