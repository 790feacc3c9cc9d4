// Package analyze resolves a working directory and assembles a change
// report from a fixed sequence of git queries against a base branch.
//
// The analyzer is stateless: every call builds a fresh Report from its
// inputs and shares no mutable state with other calls.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/medhakimbedhief/pragent/internal/gitrun"
)

// DiffPlaceholder is the diff field's fixed value when the caller opts
// out of diff content.
const DiffPlaceholder = "Diff not included (set include_diff=true to see full diff)"

// Request carries the parameters of one analysis call.
type Request struct {
	BaseBranch       string
	MaxDiffLines     int
	IncludeDiff      bool
	WorkingDirectory string
}

// Report is the assembled change summary for one analysis call.
// Field names match the serialized payload contract.
type Report struct {
	BaseBranch     string      `json:"base_branch"`
	FilesChanged   string      `json:"files_changed"`
	Statistics     string      `json:"statistics"`
	Commits        string      `json:"commits"`
	Diff           string      `json:"diff"`
	Truncated      bool        `json:"truncated"`
	TotalDiffLines int         `json:"total_diff_lines"`
	Debug          Diagnostics `json:"_debug"`
}

// GitError is the structured failure of the strictly-checked file-list
// query. Its Error text is exactly what the error payload carries.
type GitError struct {
	Text string
}

func (e *GitError) Error() string {
	return "Git error: " + e.Text
}

// Analyzer runs the change-inspection query sequence.
type Analyzer struct {
	runner gitrun.Runner
	roots  RootsProvider
	log    *zap.Logger
}

// NewAnalyzer creates an Analyzer with its collaborators.
func NewAnalyzer(runner gitrun.Runner, roots RootsProvider, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{runner: runner, roots: roots, log: log}
}

// Analyze resolves the working directory and runs the four queries.
//
// Only the name-status file-list query is strictly checked: a failure
// there aborts the whole analysis with a GitError. The stat, diff, and
// log queries degrade to empty text on failure — if the file list
// succeeded, the repository and base branch are usable, and a partial
// report is more useful than none.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Report, error) {
	dir, diag := ResolveWorkDir(ctx, req.WorkingDirectory, a.roots)
	a.log.Debug("resolved working directory",
		zap.String("dir", dir),
		zap.String("base_branch", req.BaseBranch))

	files, err := a.runner.DiffNameStatus(ctx, dir, req.BaseBranch)
	if err != nil {
		var cmdErr *gitrun.CommandError
		if errors.As(err, &cmdErr) {
			return nil, &GitError{Text: cmdErr.Message()}
		}
		return nil, &GitError{Text: err.Error()}
	}

	stats, err := a.runner.DiffStat(ctx, dir, req.BaseBranch)
	if err != nil {
		a.log.Debug("diff stat query failed", zap.Error(err))
		stats = ""
	}

	diff := DiffPlaceholder
	totalLines := 0
	truncated := false
	if req.IncludeDiff {
		raw, err := a.runner.Diff(ctx, dir, req.BaseBranch)
		if err != nil {
			a.log.Debug("diff query failed", zap.Error(err))
			raw = ""
		}
		diff, totalLines, truncated = truncateDiff(raw, req.MaxDiffLines)
	}

	commits, err := a.runner.LogOneline(ctx, dir, req.BaseBranch)
	if err != nil {
		a.log.Debug("log query failed", zap.Error(err))
		commits = ""
	}

	return &Report{
		BaseBranch:     req.BaseBranch,
		FilesChanged:   files,
		Statistics:     stats,
		Commits:        commits,
		Diff:           diff,
		Truncated:      truncated,
		TotalDiffLines: totalLines,
		Debug:          diag,
	}, nil
}

// truncateDiff bounds the diff to maxLines. When truncation happens the
// output is exactly the first maxLines lines plus a two-part notice
// stating how much is shown and how to see more.
func truncateDiff(raw string, maxLines int) (diff string, totalLines int, truncated bool) {
	lines := strings.Split(raw, "\n")
	totalLines = len(lines)

	if totalLines <= maxLines {
		return raw, totalLines, false
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(lines[:maxLines], "\n"))
	fmt.Fprintf(&sb, "\n\n... Output truncated. Showing %d of %d lines ...", maxLines, totalLines)
	sb.WriteString("\n... Use max_diff_lines parameter to see more ...")
	return sb.String(), totalLines, true
}
