package analyze

import (
	"context"
	"errors"
)

// errRootsUnsupported is what stdio resolution records in diagnostics.
var errRootsUnsupported = errors.New("client roots are not available over the stdio transport")

// StdioRootsProvider is the production RootsProvider for the stdio
// transport. Stdio clients do not expose a server-initiated roots/list
// round trip, so it always reports roots as unavailable; the resolver
// records the failure in diagnostics and falls back to the explicit
// directory or the process CWD.
type StdioRootsProvider struct{}

// NewStdioRootsProvider creates a StdioRootsProvider.
func NewStdioRootsProvider() *StdioRootsProvider {
	return &StdioRootsProvider{}
}

// ListRoots always fails with a fixed unsupported-transport error.
func (p *StdioRootsProvider) ListRoots(ctx context.Context) ([]Root, error) {
	return nil, errRootsUnsupported
}
