// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes hydraschema capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/hydraschema"
)

const serverInstructions = `hydraschema MCP server: builds structural schemas from Hydra API resource metadata and checks values against them.

Configuration: All defaults are configurable via HYDRASCHEMA_* environment variables set in your MCP client config.

Key settings:
- HYDRASCHEMA_PREFIX (default: hydra:) - key prefix stripped from collection values before checking
- HYDRASCHEMA_STRICT (default: false) - fail builds on embedded references to unknown resources
- HYDRASCHEMA_REDACT (default: false) - omit checked values from issue messages
- HYDRASCHEMA_ISSUE_LIMIT (default: 100) - default number of issues returned by check_value
- HYDRASCHEMA_CACHE_ENABLED (default: true) - disable build result caching entirely
- HYDRASCHEMA_CACHE_TTL (default: 15m) - cache TTL for build results

Caching: Build results are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by hash. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		resultCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "hydraschema", Version: hydraschema.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_schemas",
		Description: "Build structural schemas from Hydra resource metadata. Returns one summary per resource (name, @type title, property names, required properties). Set json_schema=true to also get a JSON Schema (draft 2020-12) document with every resource and collection schema under $defs. Embedded resources become $ref. Strict reference checking and the collection key prefix default to HYDRASCHEMA_STRICT and HYDRASCHEMA_PREFIX.",
	}, handleBuildSchemas)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_value",
		Description: "Check a JSON value against the schema of one resource, or of its paginated collection with collection=true. Returns whether the value conforms and the issues found, each with a JSON path, message and kind (type, literal, required, enum, format, bound, null). Unknown properties are always accepted; set report_unknown=true to list them as info issues. Use offset/limit to paginate through issues.",
	}, handleCheckValue)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// settingsFor applies config defaults to omitted (nil) tool inputs.
func settingsFor(prefix *string, strict *bool) buildSettings {
	s := buildSettings{prefix: cfg.Prefix, strict: cfg.Strict}
	if prefix != nil {
		s.prefix = *prefix
	}
	if strict != nil {
		s.strict = *strict
	}
	return s
}
