// Package extract scans free text for taxonomy skill tokens.
package extract

import (
	"strings"

	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

// Extractor finds taxonomy skills in text. It is stateless apart from the
// injected catalogue and safe for concurrent use.
type Extractor struct {
	tax *taxonomy.Taxonomy
}

// New creates an Extractor over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Extractor {
	return &Extractor{tax: tax}
}

// Extract returns the skills found in text, grouped by category in taxonomy
// order. Matching is substring containment against the lowercased text, with
// no word-boundary check: "go" matches inside "mango". That is a known
// limitation kept for compatibility with existing clients; see DESIGN.md.
//
// The same input always yields the same output, ordering included. Empty
// text yields a SkillSet with every category mapped to an empty list.
func (e *Extractor) Extract(text string) types.SkillSet {
	lowered := strings.ToLower(text)

	found := make(types.SkillSet, len(e.tax.Categories()))
	for _, cat := range e.tax.Categories() {
		tokens := e.tax.Skills(cat)
		hits := []string{}
		for _, token := range tokens {
			if strings.Contains(lowered, token) {
				hits = append(hits, token)
			}
		}
		found[cat] = hits
	}
	return found
}

// Flatten collapses a SkillSet into a single token list in taxonomy order.
// Category information is discarded; the aggregator counts frequencies
// category-agnostically.
func (e *Extractor) Flatten(set types.SkillSet) []string {
	var out []string
	for _, cat := range e.tax.Categories() {
		out = append(out, set[cat]...)
	}
	return out
}

// ContainsKeywords returns the keywords from list that appear as substrings
// of the lowercased text, in list order. Shared helper for the education and
// experience scans.
func ContainsKeywords(text string, keywords []string) []string {
	lowered := strings.ToLower(text)
	var hits []string
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			hits = append(hits, kw)
		}
	}
	return hits
}
