package mcp

import (
	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/newscatcher/catchall-mcp/internal/domain/catchall"
)

// TemplateToMCPOptions converts a tool template's argument specs into MCP
// tool options for the mark3labs MCP server SDK.
func TemplateToMCPOptions(description string, args []catchall.ArgSpec) []mcpgo.ToolOption {
	opts := []mcpgo.ToolOption{
		mcpgo.WithDescription(description),
	}

	for _, spec := range args {
		var propertyOpts []mcpgo.PropertyOption
		if spec.Required {
			propertyOpts = append(propertyOpts, mcpgo.Required())
		}
		if spec.Description != "" {
			propertyOpts = append(propertyOpts, mcpgo.Description(spec.Description))
		}

		switch spec.Type {
		case catchall.ArgInteger:
			opts = append(opts, mcpgo.WithNumber(spec.Name, propertyOpts...))
		default:
			opts = append(opts, mcpgo.WithString(spec.Name, propertyOpts...))
		}
	}

	return opts
}
