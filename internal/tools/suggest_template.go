package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/medhakimbedhief/pragent/internal/recommend"
)

// SuggestTemplateTool handles the suggest_template MCP tool. The
// caller analyzes the change set itself and supplies a summary plus a
// free-text classification; the tool maps the classification onto
// exactly one catalog template.
type SuggestTemplateTool struct {
	recommender *recommend.Recommender
	log         *zap.Logger
}

// NewSuggestTemplateTool creates a SuggestTemplateTool.
func NewSuggestTemplateTool(r *recommend.Recommender, log *zap.Logger) *SuggestTemplateTool {
	if log == nil {
		log = zap.NewNop()
	}
	return &SuggestTemplateTool{recommender: r, log: log}
}

// Definition returns the MCP tool definition for registration.
func (t *SuggestTemplateTool) Definition() mcp.Tool {
	return mcp.NewTool("suggest_template",
		mcp.WithDescription(
			"Analyze the changes and suggest the most appropriate PR template. "+
				"Call analyze_file_changes first, summarize what the changes do, "+
				"then pass your summary and the change type you identified.",
		),
		mcp.WithString("changes_summary",
			mcp.Required(),
			mcp.Description("Your analysis of what the changes do."),
		),
		mcp.WithString("change_type",
			mcp.Required(),
			mcp.Description("The type of change you've identified (bug, feature, docs, refactor, test, etc.)."),
		),
	)
}

// Handle processes the suggest_template tool call. Recommendation
// failures (the catalog failing to load) come back as an
// {"error": ...} payload.
func (t *SuggestTemplateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary := req.GetString("changes_summary", "")
	changeType := req.GetString("change_type", "")

	if summary == "" {
		return mcp.NewToolResultError("'changes_summary' is required — describe what the changes do"), nil
	}
	if changeType == "" {
		return mcp.NewToolResultError("'change_type' is required — classify the change (bug, feature, docs, ...)"), nil
	}

	rec, err := t.recommender.Recommend(summary, changeType)
	if err != nil {
		t.log.Debug("template recommendation failed",
			zap.String("change_type", changeType),
			zap.Error(err))
		return mcp.NewToolResultText(errorPayload(err.Error())), nil
	}

	t.log.Debug("template recommended",
		zap.String("change_type", changeType),
		zap.String("template", rec.RecommendedTemplate.Filename))
	return mcp.NewToolResultText(toJSON(rec)), nil
}
