package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/medhakimbedhief/pragent/internal/catalog"
)

// GetTemplatesTool handles the get_pr_templates MCP tool. It returns
// the full template catalog — filename, type label, and content — in
// catalog order.
type GetTemplatesTool struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

// NewGetTemplatesTool creates a GetTemplatesTool.
func NewGetTemplatesTool(c *catalog.Catalog, log *zap.Logger) *GetTemplatesTool {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetTemplatesTool{catalog: c, log: log}
}

// Definition returns the MCP tool definition for registration.
func (t *GetTemplatesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_pr_templates",
		mcp.WithDescription("List available PR templates with their content."),
	)
}

// Handle processes the get_pr_templates tool call. A catalog load
// failure (any missing or unreadable template file) comes back as one
// aggregate {"error": ...} payload.
func (t *GetTemplatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templates, err := t.catalog.Load()
	if err != nil {
		t.log.Debug("template catalog load failed",
			zap.String("dir", t.catalog.Dir()),
			zap.Error(err))
		return mcp.NewToolResultText(errorPayload(err.Error())), nil
	}
	return mcp.NewToolResultText(toJSON(templates)), nil
}
