package types

// GapPriority classifies a missing skill by its market frequency.
type GapPriority string

// Priority tiers. Thresholds are fixed design constants: a frequency of 5 or
// more is High, 3 or 4 is Medium, anything lower is Low.
const (
	PriorityHigh   GapPriority = "High"
	PriorityMedium GapPriority = "Medium"
	PriorityLow    GapPriority = "Low"
)

// MissingSkill is one skill gap: a market-required skill absent from the
// candidate's profile, with its posting frequency and priority tier.
type MissingSkill struct {
	Skill     string      `json:"skill"`
	Frequency int         `json:"frequency"`
	Priority  GapPriority `json:"priority"`
}

// GapAnalysis compares a candidate's skill set against market demand.
// Field names follow the shape existing clients consume.
type GapAnalysis struct {
	TotalSkillsRequired    int                 `json:"total_skills_required"`
	SkillsYouHave          int                 `json:"skills_you_have"`
	SkillsMissing          int                 `json:"skills_missing"`
	MatchPercentage        float64             `json:"match_percentage"`
	MatchingSkills         []string            `json:"matching_skills"`
	MissingSkills          []MissingSkill      `json:"missing_skills"`
	SkillCategoriesToFocus map[string][]string `json:"skill_categories_to_focus"`
}
