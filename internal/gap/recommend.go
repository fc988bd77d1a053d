package gap

import (
	"fmt"

	"github.com/jonathan/career-compass/internal/types"
)

// maxRecommendations caps the learning recommendations list.
const maxRecommendations = 5

// Recommendation templates by skill group.
var (
	recommendLanguages = tokenSet("python", "java", "javascript")
	recommendCloud     = tokenSet("aws", "azure", "docker")
	recommendFrontend  = tokenSet("react", "angular", "vue")
)

// Recommendations produces one templated learning suggestion per missing
// skill, in input order, capped at 5.
func Recommendations(missing []types.MissingSkill) []string {
	recs := []string{}
	for _, ms := range missing {
		if len(recs) == maxRecommendations {
			break
		}
		recs = append(recs, recommendationFor(ms.Skill))
	}
	return recs
}

func recommendationFor(skill string) string {
	switch {
	case recommendLanguages[skill]:
		return fmt.Sprintf("Learn %s: Start with Codecademy or FreeCodeCamp", skill)
	case recommendCloud[skill]:
		return fmt.Sprintf("Get %s certified: Official documentation and hands-on labs", skill)
	case recommendFrontend[skill]:
		return fmt.Sprintf("Build projects with %s: Create portfolio projects", skill)
	default:
		return fmt.Sprintf("Study %s: Find online courses and practice projects", skill)
	}
}
