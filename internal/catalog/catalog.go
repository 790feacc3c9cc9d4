// Package catalog holds the fixed set of pull-request template documents
// and the alias table that maps free-text change classifications onto them.
//
// The catalog table and the alias table are immutable configuration data:
// they are declared once at package level and never mutated. Consumers
// receive freshly loaded copies from Load, so concurrent calls share no
// mutable state.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Template is one catalog record: a template file, its human-readable
// category, and the full text body read from disk.
type Template struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Content  string `json:"content"`
}

// entry is one row of the fixed catalog table.
type entry struct {
	filename  string
	typeLabel string
}

// entries is the catalog table. Order is significant: the recommender
// falls back to the first entry when a lookup exhausts the list.
var entries = []entry{
	{"bug.md", "Bug Fix"},
	{"feature.md", "Feature"},
	{"docs.md", "Documentation"},
	{"refactor.md", "Refactor"},
	{"test.md", "Test"},
	{"performance.md", "Performance"},
	{"security.md", "Security"},
}

// aliases maps lowercase change-type tokens to template filenames.
// Every target filename must exist in the entries table.
var aliases = map[string]string{
	"bug":           "bug.md",
	"fix":           "bug.md",
	"feature":       "feature.md",
	"enhancement":   "feature.md",
	"docs":          "docs.md",
	"documentation": "docs.md",
	"refactor":      "refactor.md",
	"cleanup":       "refactor.md",
	"test":          "test.md",
	"testing":       "test.md",
	"performance":   "performance.md",
	"optimization":  "performance.md",
	"security":      "security.md",
}

// DefaultTarget is the filename a change type resolves to when it has
// no alias entry.
const DefaultTarget = "feature.md"

// Catalog loads template documents from a templates directory.
type Catalog struct {
	dir string
}

// New creates a Catalog reading from the given directory.
func New(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the templates directory this catalog reads from.
func (c *Catalog) Dir() string {
	return c.dir
}

// Load reads every catalog entry from disk and returns the records in
// declaration order. If any file is missing or unreadable, the whole
// load fails with one aggregate error and no templates — a partial list
// would silently break the alias-table invariant.
func (c *Catalog) Load() ([]Template, error) {
	var merr *multierror.Error
	out := make([]Template, 0, len(entries))

	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(c.dir, e.filename))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("reading template %s: %w", e.filename, err))
			continue
		}
		out = append(out, Template{
			Filename: e.filename,
			Type:     e.typeLabel,
			Content:  string(data),
		})
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveAlias maps a free-text change type to a template filename.
// Matching is case-insensitive; unknown types resolve to DefaultTarget.
func ResolveAlias(changeType string) string {
	if filename, ok := aliases[strings.ToLower(changeType)]; ok {
		return filename
	}
	return DefaultTarget
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// Filenames returns the catalog filenames in declaration order.
func Filenames() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.filename)
	}
	return out
}
