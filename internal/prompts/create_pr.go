// Package prompts implements MCP prompt handlers for pragent.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreatePRPrompt handles the create-pr MCP prompt. It walks the AI
// through the analyze/list/suggest tool sequence and asks it to fill
// in the selected template from the actual diff.
type CreatePRPrompt struct{}

// NewCreatePRPrompt creates a CreatePRPrompt.
func NewCreatePRPrompt() *CreatePRPrompt {
	return &CreatePRPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *CreatePRPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("create-pr",
		mcp.WithPromptDescription(
			"Prepare a pull request description for the current branch. "+
				"Analyzes the working tree against a base branch, picks the "+
				"best-matching PR template, and fills it in from the diff.",
		),
		mcp.WithArgument("base_branch",
			mcp.ArgumentDescription("Base branch to compare against (default: main)"),
		),
		mcp.WithArgument("change_type",
			mcp.ArgumentDescription(
				"Override the change classification (bug, feature, docs, refactor, test, performance, security). "+
					"Leave empty to classify from the diff.",
			),
		),
	)
}

// Handle processes the create-pr prompt request.
func (p *CreatePRPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	baseBranch := "main"
	if args := req.Params.Arguments; args != nil {
		if b, ok := args["base_branch"]; ok && b != "" {
			baseBranch = b
		}
	}

	classification := "2. Classify the change yourself from the file list and diff (bug, feature, docs, refactor, test, performance, or security)\n"
	if args := req.Params.Arguments; args != nil {
		if ct, ok := args["change_type"]; ok && ct != "" {
			classification = fmt.Sprintf("2. Treat the change as a '%s' change\n", ct)
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Create PR description against %s", baseBranch),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to prepare a pull request description for my current branch.\n\n"+
						"Please:\n"+
						"1. Run `analyze_file_changes` with base_branch='%s' to see what changed\n"+
						"%s"+
						"3. Run `suggest_template` with a one-sentence summary of the changes and the change type\n"+
						"4. Fill in the suggested template using the actual commits and diff — "+
						"no placeholder text, reference real files and behavior\n"+
						"5. Show me the completed PR description",
					baseBranch, classification,
				)),
			},
		},
	}, nil
}
