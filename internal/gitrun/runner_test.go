package gitrun

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a temporary git repository with a "main" branch
// holding one commit and returns its path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	gitIn(t, dir, "init")
	gitIn(t, dir, "config", "user.email", "test@example.com")
	gitIn(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "README.md", "# test repo\n")
	gitIn(t, dir, "add", ".")
	gitIn(t, dir, "commit", "-m", "initial commit")
	gitIn(t, dir, "branch", "-M", "main")

	return dir
}

// branchWithChange creates a feature branch with one modified file and
// one new commit on top of main.
func branchWithChange(t *testing.T, dir string) {
	t.Helper()
	gitIn(t, dir, "checkout", "-b", "feature")
	writeFile(t, dir, "README.md", "# test repo\n\nmore content\n")
	gitIn(t, dir, "add", ".")
	gitIn(t, dir, "commit", "-m", "expand readme")
}

func gitIn(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDiffNameStatus_ListsChangedFiles(t *testing.T) {
	dir := setupTestRepo(t)
	branchWithChange(t, dir)

	r := NewExecRunner(10 * time.Second)
	out, err := r.DiffNameStatus(context.Background(), dir, "main")
	require.NoError(t, err)
	assert.Contains(t, out, "M")
	assert.Contains(t, out, "README.md")
}

func TestDiffNameStatus_NoChanges(t *testing.T) {
	dir := setupTestRepo(t)

	r := NewExecRunner(10 * time.Second)
	out, err := r.DiffNameStatus(context.Background(), dir, "main")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiff_ReturnsPatchText(t *testing.T) {
	dir := setupTestRepo(t)
	branchWithChange(t, dir)

	r := NewExecRunner(10 * time.Second)
	out, err := r.Diff(context.Background(), dir, "main")
	require.NoError(t, err)
	assert.Contains(t, out, "diff --git")
	assert.Contains(t, out, "+more content")
}

func TestDiffStat_ReturnsStatistics(t *testing.T) {
	dir := setupTestRepo(t)
	branchWithChange(t, dir)

	r := NewExecRunner(10 * time.Second)
	out, err := r.DiffStat(context.Background(), dir, "main")
	require.NoError(t, err)
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "changed")
}

func TestLogOneline_ListsBranchCommits(t *testing.T) {
	dir := setupTestRepo(t)
	branchWithChange(t, dir)

	r := NewExecRunner(10 * time.Second)
	out, err := r.LogOneline(context.Background(), dir, "main")
	require.NoError(t, err)
	assert.Contains(t, out, "expand readme")
	assert.NotContains(t, out, "initial commit")
}

func TestRun_BadRevisionReturnsCommandError(t *testing.T) {
	dir := setupTestRepo(t)

	r := NewExecRunner(10 * time.Second)
	_, err := r.DiffNameStatus(context.Background(), dir, "no-such-branch")
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Contains(t, cmdErr.Stderr, "no-such-branch")
	assert.Contains(t, cmdErr.Message(), "no-such-branch")
}

func TestRun_NotARepositoryReturnsCommandError(t *testing.T) {
	dir := t.TempDir()

	r := NewExecRunner(10 * time.Second)
	_, err := r.DiffNameStatus(context.Background(), dir, "main")
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.NotEmpty(t, cmdErr.Message())
}

func TestCommandError_MessageFallsBackToLaunchError(t *testing.T) {
	err := &CommandError{
		Args: []string{"diff"},
		Err:  errors.New(`exec: "git": executable file not found in $PATH`),
	}
	assert.Contains(t, err.Message(), "executable file not found")
}
