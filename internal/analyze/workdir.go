package analyze

import (
	"context"
	"errors"
	"os"
)

// Root is a filesystem root advertised by the client.
type Root struct {
	// URI is the root's original URI (typically file://...).
	URI string
	// Path is the root's filesystem path.
	Path string
	// Name is an optional display name.
	Name string
}

// RootsProvider lists the client's workspace roots. It is an explicit
// injected collaborator, never an ambient lookup, so resolution can be
// exercised in tests with canned roots or forced errors.
type RootsProvider interface {
	ListRoots(ctx context.Context) ([]Root, error)
}

// ErrNoRootsProvider is reported in diagnostics when resolution runs
// without a provider wired in.
var ErrNoRootsProvider = errors.New("no roots provider configured")

// RootsCheck records the outcome of querying the roots provider.
type RootsCheck struct {
	Found bool     `json:"found"`
	Count int      `json:"count,omitempty"`
	Roots []string `json:"roots,omitempty"`
	Error string   `json:"error,omitempty"`
}

// Diagnostics captures how the working directory was resolved. It is
// embedded verbatim in the analysis payload under "_debug" and never
// causes the operation to fail.
type Diagnostics struct {
	ProvidedWorkingDirectory string     `json:"provided_working_directory,omitempty"`
	ResolvedDirectory        string     `json:"actual_cwd"`
	ServerProcessCwd         string     `json:"server_process_cwd"`
	RootsCheck               RootsCheck `json:"roots_check"`
}

// ResolveWorkDir picks the directory git queries run in.
//
// Priority order: a non-empty explicit directory wins verbatim; next the
// first root returned by the provider; finally the process working
// directory. The provider is queried unconditionally so its outcome is
// always visible in diagnostics, and any provider error is downgraded to
// diagnostic text.
func ResolveWorkDir(ctx context.Context, explicit string, provider RootsProvider) (string, Diagnostics) {
	cwd, _ := os.Getwd()
	diag := Diagnostics{
		ProvidedWorkingDirectory: explicit,
		ServerProcessCwd:         cwd,
	}

	var roots []Root
	var err error
	if provider == nil {
		err = ErrNoRootsProvider
	} else {
		roots, err = provider.ListRoots(ctx)
	}

	if err != nil {
		diag.RootsCheck = RootsCheck{Found: false, Error: err.Error()}
	} else {
		check := RootsCheck{Found: true, Count: len(roots)}
		for _, r := range roots {
			check.Roots = append(check.Roots, r.URI)
		}
		diag.RootsCheck = check
	}

	dir := explicit
	if dir == "" && err == nil && len(roots) > 0 {
		dir = roots[0].Path
	}
	if dir == "" {
		dir = cwd
	}

	diag.ResolvedDirectory = dir
	return dir, diag
}
