package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/medhakimbedhief/pragent/internal/analyze"
)

// AnalyzeChangesTool handles the analyze_file_changes MCP tool.
// It resolves a working directory, runs the git inspection queries,
// and returns the assembled change report as JSON.
type AnalyzeChangesTool struct {
	analyzer     *analyze.Analyzer
	defaultBase  string
	maxDiffLines int
	log          *zap.Logger
}

// NewAnalyzeChangesTool creates an AnalyzeChangesTool. defaultBase and
// maxDiffLines fill in when the caller omits the parameters.
func NewAnalyzeChangesTool(a *analyze.Analyzer, defaultBase string, maxDiffLines int, log *zap.Logger) *AnalyzeChangesTool {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyzeChangesTool{
		analyzer:     a,
		defaultBase:  defaultBase,
		maxDiffLines: maxDiffLines,
		log:          log,
	}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeChangesTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_file_changes",
		mcp.WithDescription(
			"Get the full diff and list of changed files in the current git repository, "+
				"compared against a base branch. Use this before suggesting a PR template "+
				"so the suggestion is grounded in the actual change set.",
		),
		mcp.WithString("base_branch",
			mcp.DefaultString("main"),
			mcp.Description("Base branch to compare against (default: main)."),
		),
		mcp.WithNumber("max_diff_lines",
			mcp.Description("Maximum number of diff lines to return — large diffs can easily exceed this (default: 500)."),
		),
		mcp.WithBoolean("include_diff",
			mcp.Description("Include the full diff content (default: true)."),
		),
		mcp.WithString("working_directory",
			mcp.Description("Optional working directory to run git commands in (default: the client's first workspace root, or the server's CWD)."),
		),
	)
}

// Handle processes the analyze_file_changes tool call. Git failures on
// the strictly-checked file-list query come back as an {"error": ...}
// payload; the handler itself never fails.
func (t *AnalyzeChangesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	request := analyze.Request{
		BaseBranch:       req.GetString("base_branch", t.defaultBase),
		MaxDiffLines:     intArg(req, "max_diff_lines", t.maxDiffLines),
		IncludeDiff:      boolArg(req, "include_diff", true),
		WorkingDirectory: req.GetString("working_directory", ""),
	}

	report, err := t.analyzer.Analyze(ctx, request)
	if err != nil {
		t.log.Debug("change analysis failed",
			zap.String("base_branch", request.BaseBranch),
			zap.Error(err))
		return mcp.NewToolResultText(errorPayload(err.Error())), nil
	}

	t.log.Debug("change analysis complete",
		zap.String("base_branch", report.BaseBranch),
		zap.Int("total_diff_lines", report.TotalDiffLines),
		zap.Bool("truncated", report.Truncated))
	return mcp.NewToolResultText(toJSON(report)), nil
}
