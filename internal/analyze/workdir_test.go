package analyze

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRoots is a canned RootsProvider for resolver tests.
type stubRoots struct {
	roots []Root
	err   error
}

func (s *stubRoots) ListRoots(ctx context.Context) ([]Root, error) {
	return s.roots, s.err
}

func TestResolveWorkDir_ExplicitWins(t *testing.T) {
	provider := &stubRoots{roots: []Root{{URI: "file:///workspace", Path: "/workspace"}}}

	dir, diag := ResolveWorkDir(context.Background(), "/explicit/dir", provider)

	assert.Equal(t, "/explicit/dir", dir)
	assert.Equal(t, "/explicit/dir", diag.ProvidedWorkingDirectory)
	assert.Equal(t, "/explicit/dir", diag.ResolvedDirectory)
	// The provider is still queried for diagnostics even when explicit wins.
	assert.True(t, diag.RootsCheck.Found)
	assert.Equal(t, 1, diag.RootsCheck.Count)
}

func TestResolveWorkDir_FirstRootUsed(t *testing.T) {
	provider := &stubRoots{roots: []Root{
		{URI: "file:///first", Path: "/first"},
		{URI: "file:///second", Path: "/second"},
	}}

	dir, diag := ResolveWorkDir(context.Background(), "", provider)

	assert.Equal(t, "/first", dir)
	assert.True(t, diag.RootsCheck.Found)
	assert.Equal(t, 2, diag.RootsCheck.Count)
	assert.Equal(t, []string{"file:///first", "file:///second"}, diag.RootsCheck.Roots)
}

func TestResolveWorkDir_ProviderErrorFallsBackToCwd(t *testing.T) {
	provider := &stubRoots{err: errors.New("roots unavailable")}
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dir, diag := ResolveWorkDir(context.Background(), "", provider)

	assert.Equal(t, cwd, dir)
	assert.False(t, diag.RootsCheck.Found)
	assert.Equal(t, "roots unavailable", diag.RootsCheck.Error)
	assert.Equal(t, cwd, diag.ServerProcessCwd)
}

func TestResolveWorkDir_EmptyRootsFallsBackToCwd(t *testing.T) {
	provider := &stubRoots{}
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dir, diag := ResolveWorkDir(context.Background(), "", provider)

	assert.Equal(t, cwd, dir)
	assert.True(t, diag.RootsCheck.Found)
	assert.Equal(t, 0, diag.RootsCheck.Count)
}

func TestResolveWorkDir_NilProvider(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dir, diag := ResolveWorkDir(context.Background(), "", nil)

	assert.Equal(t, cwd, dir)
	assert.False(t, diag.RootsCheck.Found)
	assert.Equal(t, ErrNoRootsProvider.Error(), diag.RootsCheck.Error)
}
