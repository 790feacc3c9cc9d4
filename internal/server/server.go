// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates concrete implementations
// and injects them into the tools/prompts/resources that depend on
// abstractions. No business logic lives here — only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/medhakimbedhief/pragent/internal/analyze"
	"github.com/medhakimbedhief/pragent/internal/catalog"
	"github.com/medhakimbedhief/pragent/internal/config"
	"github.com/medhakimbedhief/pragent/internal/gitrun"
	"github.com/medhakimbedhief/pragent/internal/prompts"
	"github.com/medhakimbedhief/pragent/internal/recommend"
	"github.com/medhakimbedhief/pragent/internal/resources"
	"github.com/medhakimbedhief/pragent/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
func New(log *zap.Logger) (*server.MCPServer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	log.Debug("configuration loaded",
		zap.String("templates_dir", cfg.TemplatesDir),
		zap.String("default_base_branch", cfg.DefaultBase),
		zap.Int("default_max_diff_lines", cfg.MaxDiffLines))

	// --- Create shared dependencies ---

	templateCatalog := catalog.New(cfg.TemplatesDir)
	runner := gitrun.NewExecRunner(cfg.GitTimeout())
	roots := analyze.NewStdioRootsProvider()
	analyzer := analyze.NewAnalyzer(runner, roots, log)
	recommender := recommend.New(templateCatalog)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"pragent",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	analyzeTool := tools.NewAnalyzeChangesTool(analyzer, cfg.DefaultBase, cfg.MaxDiffLines, log)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	templatesTool := tools.NewGetTemplatesTool(templateCatalog, log)
	s.AddTool(templatesTool.Definition(), templatesTool.Handle)

	suggestTool := tools.NewSuggestTemplateTool(recommender, log)
	s.AddTool(suggestTool.Definition(), suggestTool.Handle)

	// --- Register prompts ---

	createPR := prompts.NewCreatePRPrompt()
	s.AddPrompt(createPR.Definition(), createPR.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(templateCatalog)
	s.AddResource(resourceHandler.CatalogResource(), resourceHandler.HandleCatalog)

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use pragent effectively.
func serverInstructions() string {
	return `You have access to pragent, an MCP server for preparing pull requests.

## WHEN TO USE pragent

Use pragent when the user:
- Asks to create, draft, or prepare a pull request
- Asks "what changed on my branch" or wants a change summary
- Asks which PR template fits their work

## Workflow

1. Call analyze_file_changes to get the changed files, statistics,
   commits, and diff against the base branch (default: main).
2. Read the output and classify the change yourself: bug, feature,
   docs, refactor, test, performance, or security.
3. Call suggest_template with a one-sentence summary of the changes
   and the type you identified. The server maps your classification
   onto a concrete template and returns its content.
4. Fill in the returned template using the ACTUAL changes — reference
   real files, commits, and behavior. Never leave placeholder text.

## Important Rules

- ALWAYS analyze before suggesting — base the classification on the
  real diff, not on the branch name or the user's wording alone.
- The diff is truncated at max_diff_lines (default 500). If the output
  says it was truncated and you need more, call analyze_file_changes
  again with a higher max_diff_lines.
- If git reports an error (not a repository, unknown base branch),
  surface it to the user instead of guessing.
- get_pr_templates lists every available template when the user wants
  to browse or pick manually.`
}
