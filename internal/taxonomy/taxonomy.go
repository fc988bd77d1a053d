// Package taxonomy provides the static skill catalogue that drives all
// keyword extraction: skill tokens grouped by category plus the education
// and experience keyword lists.
//
// The catalogue is embedded as a JSON asset, loaded once, and passed into
// consumers explicitly. Both résumé parsing and job-requirement extraction
// read the same catalogue, so the two sides can never drift apart.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

//go:embed data/taxonomy.json
var taxonomyJSON []byte

// Taxonomy is the immutable skill catalogue. Construct it with Load; do not
// mutate the returned slices.
type Taxonomy struct {
	version    string
	categories []types.SkillCategory
	skills     map[types.SkillCategory][]string

	education        []string
	experienceLevels []string
	experienceRoles  []string
}

// asset mirrors the embedded JSON layout.
type asset struct {
	Version    string `json:"version"`
	Categories []struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	} `json:"categories"`
	EducationKeywords []string `json:"education_keywords"`
	ExperienceLevels  []string `json:"experience_levels"`
	ExperienceRoles   []string `json:"experience_roles"`
}

// Load parses the embedded catalogue and validates it.
func Load() (*Taxonomy, error) {
	return parse(taxonomyJSON)
}

func parse(data []byte) (*Taxonomy, error) {
	var a asset
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy asset: %w", err)
	}
	if len(a.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy asset has no categories")
	}

	t := &Taxonomy{
		version:          a.Version,
		skills:           make(map[types.SkillCategory][]string, len(a.Categories)),
		education:        a.EducationKeywords,
		experienceLevels: a.ExperienceLevels,
		experienceRoles:  a.ExperienceRoles,
	}

	for _, c := range a.Categories {
		cat := types.SkillCategory(c.Name)
		if _, dup := t.skills[cat]; dup {
			return nil, fmt.Errorf("duplicate taxonomy category: %s", c.Name)
		}
		for _, token := range c.Skills {
			if token == "" {
				return nil, fmt.Errorf("category %s contains an empty token", c.Name)
			}
			if token != strings.ToLower(token) {
				return nil, fmt.Errorf("category %s: token %q is not lowercase", c.Name, token)
			}
		}
		t.categories = append(t.categories, cat)
		t.skills[cat] = c.Skills
	}

	return t, nil
}

// Version returns the catalogue version string.
func (t *Taxonomy) Version() string {
	return t.version
}

// Categories returns the category names in catalogue order.
func (t *Taxonomy) Categories() []types.SkillCategory {
	return t.categories
}

// Skills returns the canonical tokens for a category, in catalogue order.
// Unknown categories yield nil.
func (t *Taxonomy) Skills(cat types.SkillCategory) []string {
	return t.skills[cat]
}

// EducationKeywords returns the education keyword list (degree levels,
// institution words, field names).
func (t *Taxonomy) EducationKeywords() []string {
	return t.education
}

// ExperienceLevels returns the seniority keyword list.
func (t *Taxonomy) ExperienceLevels() []string {
	return t.experienceLevels
}

// ExperienceRoles returns the role/title keyword list.
func (t *Taxonomy) ExperienceRoles() []string {
	return t.experienceRoles
}
