// Package gap computes the skills gap between a candidate profile and
// aggregated job-market requirements. Every operation is a pure function of
// its inputs.
package gap

import (
	"math"

	"github.com/jonathan/career-compass/internal/types"
)

// Priority thresholds: a skill demanded by at least highFrequency postings
// is a High gap, mediumFrequency a Medium gap, anything lower is Low.
const (
	highFrequency   = 5
	mediumFrequency = 3
)

// maxMissingSkills caps the missing_skills output.
const maxMissingSkills = 10

// Analyze compares the candidate's skills against the market histogram.
//
// The candidate set is flattened across categories and lowercased again
// defensively: résumé-derived tokens are lowercase by construction, but
// callers posting hand-edited skill lists may not be. When the market table
// is empty the match percentage is defined as 0, never a division error.
func Analyze(resumeSkills types.SkillSet, market types.FrequencyTable) *types.GapAnalysis {
	userSkills := resumeSkills.Lowered()

	matching := []string{}
	var missing []types.MissingSkill
	for _, sc := range market {
		if userSkills[sc.Skill] {
			matching = append(matching, sc.Skill)
			continue
		}
		missing = append(missing, types.MissingSkill{
			Skill:     sc.Skill,
			Frequency: sc.Count,
			Priority:  priorityFor(sc.Count),
		})
	}

	// The table is already sorted descending with first-appearance tie
	// order, and the walk above preserves it, so missing needs no re-sort.
	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}
	if missing == nil {
		missing = []types.MissingSkill{}
	}

	required := len(market)
	percentage := 0.0
	if required > 0 {
		percentage = math.Round(float64(len(matching))/float64(required)*1000) / 10
	}

	return &types.GapAnalysis{
		TotalSkillsRequired:    required,
		SkillsYouHave:          len(matching),
		SkillsMissing:          required - len(matching),
		MatchPercentage:        percentage,
		MatchingSkills:         matching,
		MissingSkills:          missing,
		SkillCategoriesToFocus: categorizeFocus(missing),
	}
}

func priorityFor(frequency int) types.GapPriority {
	switch {
	case frequency >= highFrequency:
		return types.PriorityHigh
	case frequency >= mediumFrequency:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// Focus bucket membership. A missing skill outside every specific bucket
// lands in "Frameworks & Tools"; clients expect that catch-all, not an
// "Other" bucket.
var (
	focusLanguages  = tokenSet("python", "java", "javascript", "typescript", "c++", "go", "rust")
	focusCloud      = tokenSet("aws", "azure", "docker", "kubernetes", "terraform")
	focusDatabases  = tokenSet("mysql", "postgresql", "mongodb", "redis")
	focusSoftSkills = tokenSet("agile", "scrum", "leadership", "communication")
)

const (
	bucketLanguages  = "Programming Languages"
	bucketFrameworks = "Frameworks & Tools"
	bucketCloud      = "Cloud & DevOps"
	bucketDatabases  = "Databases"
	bucketSoftSkills = "Soft Skills"
)

// categorizeFocus buckets missing skills into fixed learning-focus groups.
// Empty buckets are omitted.
func categorizeFocus(missing []types.MissingSkill) map[string][]string {
	buckets := map[string][]string{}
	for _, ms := range missing {
		var bucket string
		switch {
		case focusLanguages[ms.Skill]:
			bucket = bucketLanguages
		case focusCloud[ms.Skill]:
			bucket = bucketCloud
		case focusDatabases[ms.Skill]:
			bucket = bucketDatabases
		case focusSoftSkills[ms.Skill]:
			bucket = bucketSoftSkills
		default:
			bucket = bucketFrameworks
		}
		buckets[bucket] = append(buckets[bucket], ms.Skill)
	}
	return buckets
}

func tokenSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
