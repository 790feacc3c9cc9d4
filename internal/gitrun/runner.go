// Package gitrun executes read-only git queries against a working tree.
//
// Every query shells out to the real git binary: the raw stderr text and
// exit status of each command are part of the payload contract upstream,
// so an in-process git implementation is not a substitute.
package gitrun

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandError describes a git invocation that could not be launched or
// exited non-zero. Stderr carries the raw error text git printed.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.Args, " "), e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Message returns the text callers surface to the user: git's stderr
// when present, otherwise the underlying launch error.
func (e *CommandError) Message() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Err.Error()
}

// Runner is the interface for the four change-inspection queries.
// All queries are read-only; none mutate repository state.
type Runner interface {
	// DiffNameStatus returns the name+status file list for base...HEAD.
	DiffNameStatus(ctx context.Context, dir, base string) (string, error)

	// DiffStat returns the diff statistics for base...HEAD.
	DiffStat(ctx context.Context, dir, base string) (string, error)

	// Diff returns the full diff text for base...HEAD.
	Diff(ctx context.Context, dir, base string) (string, error)

	// LogOneline returns the one-line commit log for base..HEAD.
	LogOneline(ctx context.Context, dir, base string) (string, error)
}

// ExecRunner implements Runner by invoking the git binary.
type ExecRunner struct {
	timeout time.Duration
}

// NewExecRunner creates an ExecRunner. Each query runs under the given
// timeout; zero means no bound beyond the caller's context.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{timeout: timeout}
}

// run executes one git command in dir and returns its raw stdout.
// Output is returned untrimmed — line counts downstream depend on the
// exact text git produced.
func (r *ExecRunner) run(ctx context.Context, dir string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.String(), nil
}

func (r *ExecRunner) DiffNameStatus(ctx context.Context, dir, base string) (string, error) {
	return r.run(ctx, dir, "diff", "--name-status", base+"...HEAD")
}

func (r *ExecRunner) DiffStat(ctx context.Context, dir, base string) (string, error) {
	return r.run(ctx, dir, "diff", "--stat", base+"...HEAD")
}

func (r *ExecRunner) Diff(ctx context.Context, dir, base string) (string, error) {
	return r.run(ctx, dir, "diff", base+"...HEAD")
}

func (r *ExecRunner) LogOneline(ctx context.Context, dir, base string) (string, error) {
	return r.run(ctx, dir, "log", "--oneline", base+"..HEAD")
}
