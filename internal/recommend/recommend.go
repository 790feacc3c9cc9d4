// Package recommend selects one pull-request template for a classified
// change set.
package recommend

import (
	"fmt"

	"github.com/medhakimbedhief/pragent/internal/catalog"
)

// Recommendation pairs the selected template with the reasoning and the
// fixed fill-out hint shown to the caller.
type Recommendation struct {
	RecommendedTemplate catalog.Template `json:"recommended_template"`
	Reasoning           string           `json:"reasoning"`
	TemplateContent     string           `json:"template_content"`
	Suggestion          string           `json:"suggestion"`
}

// fillOutHint closes every recommendation payload.
const fillOutHint = "Claude can help you fill out this template based on the specific changes in your PR."

// Recommender maps free-text change types onto catalog templates.
type Recommender struct {
	catalog *catalog.Catalog
}

// New creates a Recommender backed by the given catalog.
func New(c *catalog.Catalog) *Recommender {
	return &Recommender{catalog: c}
}

// Recommend loads the catalog and selects the template the change type
// resolves to. The caller-supplied summary and type are interpolated
// verbatim into the reasoning string.
func (r *Recommender) Recommend(changesSummary, changeType string) (*Recommendation, error) {
	templates, err := r.catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("template catalog is empty")
	}

	target := catalog.ResolveAlias(changeType)
	selected := selectTemplate(templates, target)

	return &Recommendation{
		RecommendedTemplate: selected,
		Reasoning: fmt.Sprintf("Based on your analysis: '%s', this appears to be a %s change.",
			changesSummary, changeType),
		TemplateContent: selected.Content,
		Suggestion:      fillOutHint,
	}, nil
}

// selectTemplate picks the record whose filename matches target. The
// first element is the fallback only when the scan exhausts the list
// without a match — a match is never overridden by list order.
func selectTemplate(templates []catalog.Template, target string) catalog.Template {
	for _, t := range templates {
		if t.Filename == target {
			return t
		}
	}
	return templates[0]
}
