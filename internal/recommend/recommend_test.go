package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhakimbedhief/pragent/internal/catalog"
)

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()
	for _, name := range catalog.Filenames() {
		content := "template body for " + name + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return catalog.New(dir)
}

func TestRecommend_EveryAliasResolvesToItsTarget(t *testing.T) {
	r := New(fixtureCatalog(t))

	for token, want := range catalog.Aliases() {
		rec, err := r.Recommend("some summary", token)
		require.NoError(t, err, "change type %q", token)
		assert.Equal(t, want, rec.RecommendedTemplate.Filename, "change type %q", token)
		assert.Equal(t, rec.RecommendedTemplate.Content, rec.TemplateContent)
	}
}

func TestRecommend_FixMapsToBugTemplate(t *testing.T) {
	r := New(fixtureCatalog(t))

	rec, err := r.Recommend("fixed a nil pointer dereference", "fix")
	require.NoError(t, err)
	assert.Equal(t, "bug.md", rec.RecommendedTemplate.Filename)
	assert.Equal(t, "Bug Fix", rec.RecommendedTemplate.Type)
}

func TestRecommend_MatchNotFirstIsNotOverridden(t *testing.T) {
	// security.md is the last catalog entry; a correct scan must select
	// it rather than fall back to the first element after visiting
	// non-matching entries.
	r := New(fixtureCatalog(t))

	rec, err := r.Recommend("hardened token validation", "security")
	require.NoError(t, err)
	assert.Equal(t, "security.md", rec.RecommendedTemplate.Filename)
}

func TestRecommend_UnknownTypeDefaultsToFeature(t *testing.T) {
	r := New(fixtureCatalog(t))

	rec, err := r.Recommend("added a new endpoint", "chore")
	require.NoError(t, err)
	assert.Equal(t, "feature.md", rec.RecommendedTemplate.Filename)
}

func TestRecommend_ReasoningInterpolatesVerbatim(t *testing.T) {
	r := New(fixtureCatalog(t))

	rec, err := r.Recommend("rewrote the cache layer", "refactor")
	require.NoError(t, err)
	assert.Equal(t,
		"Based on your analysis: 'rewrote the cache layer', this appears to be a refactor change.",
		rec.Reasoning)
	assert.Contains(t, rec.Suggestion, "fill out this template")
}

func TestRecommend_CatalogFailurePropagates(t *testing.T) {
	r := New(catalog.New(t.TempDir())) // empty dir: every read fails

	rec, err := r.Recommend("summary", "fix")
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.Contains(t, err.Error(), "loading templates")
}

func TestSelectTemplate_ExhaustionFallsBackToFirst(t *testing.T) {
	templates := []catalog.Template{
		{Filename: "docs.md", Type: "Documentation"},
		{Filename: "test.md", Type: "Test"},
	}

	got := selectTemplate(templates, "absent.md")
	assert.Equal(t, "docs.md", got.Filename)
}

func TestSelectTemplate_ExactMatchWins(t *testing.T) {
	templates := []catalog.Template{
		{Filename: "docs.md"},
		{Filename: "test.md"},
		{Filename: "security.md"},
	}

	got := selectTemplate(templates, "security.md")
	assert.Equal(t, "security.md", got.Filename)
}
