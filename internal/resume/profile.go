// Package resume builds structured profiles from résumé text and decodes
// uploaded résumé files (PDF, DOCX, plain text) into that text.
package resume

import (
	"regexp"
	"sort"

	"github.com/jonathan/career-compass/internal/extract"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

var (
	// RFC-lenient: local@domain.tld with a 2+ character TLD.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// 3-3-4 digit grouping with optional parentheses, dashes, dots, spaces.
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Builder extracts a ResumeProfile from raw résumé text.
type Builder struct {
	tax       *taxonomy.Taxonomy
	extractor *extract.Extractor
}

// NewBuilder creates a Builder over the given taxonomy.
func NewBuilder(tax *taxonomy.Taxonomy) *Builder {
	return &Builder{
		tax:       tax,
		extractor: extract.New(tax),
	}
}

// BuildProfile extracts contacts, skills, education, and experience keywords
// from rawText. Empty input is valid and yields a profile with empty
// collections. The builder has no other failure modes; file decoding errors
// are surfaced by Decode before this is ever called.
func (b *Builder) BuildProfile(rawText string) *types.ResumeProfile {
	return &types.ResumeProfile{
		Contact: types.ContactInfo{
			Emails: allMatches(emailPattern, rawText),
			Phones: allMatches(phonePattern, rawText),
		},
		Skills:     b.extractor.Extract(rawText),
		Education:  b.education(rawText),
		Experience: b.experience(rawText),
		TextLength: len(rawText),
	}
}

// allMatches returns every non-overlapping match in order of appearance.
// Duplicates are kept: a phone number repeated twice yields two entries.
func allMatches(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// education returns the deduplicated education keyword hits. The result is a
// set; it is sorted only to keep JSON output stable.
func (b *Builder) education(text string) []string {
	hits := extract.ContainsKeywords(text, b.tax.EducationKeywords())
	seen := make(map[string]bool, len(hits))
	out := []string{}
	for _, h := range hits {
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	sort.Strings(out)
	return out
}

// experience returns seniority-level and role keyword hits, each in
// keyword-list order. The lists contain no duplicates so no dedup is needed.
func (b *Builder) experience(text string) types.Experience {
	levels := extract.ContainsKeywords(text, b.tax.ExperienceLevels())
	roles := extract.ContainsKeywords(text, b.tax.ExperienceRoles())
	if levels == nil {
		levels = []string{}
	}
	if roles == nil {
		roles = []string{}
	}
	return types.Experience{Levels: levels, Roles: roles}
}
