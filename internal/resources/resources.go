// Package resources implements MCP resource handlers for pragent.
//
// Resources provide read-only data that the host can consume for
// context. They use URI-based addressing (pr-templates://...) following
// MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/medhakimbedhief/pragent/internal/catalog"
)

// catalogURI addresses the full template catalog.
const catalogURI = "pr-templates://catalog"

// Handler manages pragent resource endpoints.
type Handler struct {
	catalog *catalog.Catalog
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

// CatalogResource returns the MCP resource definition for the template
// catalog.
func (h *Handler) CatalogResource() mcp.Resource {
	return mcp.NewResource(
		catalogURI,
		"PR Template Catalog",
		mcp.WithResourceDescription("All available PR templates with filename, type, and content"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCatalog returns the template catalog as JSON.
func (h *Handler) HandleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	templates, err := h.catalog.Load()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
