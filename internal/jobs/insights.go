package jobs

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// fieldTitles maps short field names accepted by the trending-skills query
// to the job title searched for them.
var fieldTitles = map[string]string{
	"software":  "Software Engineer",
	"data":      "Data Scientist",
	"hardware":  "Hardware Engineer",
	"frontend":  "Frontend Developer",
	"backend":   "Backend Developer",
	"fullstack": "Full Stack Developer",
	"ml":        "Machine Learning Engineer",
}

// emergingSkills are the tokens reported as emerging trends when present in
// a market histogram.
var emergingSkills = map[string]bool{
	"kubernetes":       true,
	"terraform":        true,
	"machine learning": true,
	"ai":               true,
	"blockchain":       true,
}

// ErrUnsupportedField reports a trending-skills field outside the known set.
type ErrUnsupportedField struct {
	Field string
}

func (e *ErrUnsupportedField) Error() string {
	return fmt.Sprintf("unsupported field %q, choose from: %s", e.Field, strings.Join(SupportedFields(), ", "))
}

// SupportedFields lists the accepted trending-skills fields, sorted.
func SupportedFields() []string {
	fields := make([]string, 0, len(fieldTitles))
	for f := range fieldTitles {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// SkillInsights summarizes a trending-skills histogram.
type SkillInsights struct {
	MostDemanded    []string            `json:"most_demanded"`
	EmergingTrends  []string            `json:"emerging_trends"`
	SkillCategories map[string][]string `json:"skill_categories"`
}

// TrendingResult is the response shape for the trending-skills query.
type TrendingResult struct {
	Field            string               `json:"field"`
	JobTitleSearched string               `json:"job_title_searched"`
	Location         string               `json:"location"`
	JobsAnalyzed     int                  `json:"jobs_analyzed"`
	TrendingSkills   types.FrequencyTable `json:"trending_skills"`
	SkillInsights    SkillInsights        `json:"skill_insights"`
}

// TrendingSkills analyzes 20 postings for the given field and reports its
// top skills with quick insights.
func (s *Service) TrendingSkills(ctx context.Context, field, location string) (*TrendingResult, error) {
	title, ok := fieldTitles[strings.ToLower(field)]
	if !ok {
		return nil, &ErrUnsupportedField{Field: field}
	}

	result, err := s.Search(ctx, title, location, 20)
	if err != nil {
		return nil, err
	}

	top := result.TopSkillsRequired.Top(15)
	return &TrendingResult{
		Field:            field,
		JobTitleSearched: title,
		Location:         location,
		JobsAnalyzed:     result.JobsFound,
		TrendingSkills:   top,
		SkillInsights: SkillInsights{
			MostDemanded:    tableSkills(top.Top(5)),
			EmergingTrends:  emergingTrends(top),
			SkillCategories: categorizeSkills(tableSkills(top)),
		},
	}, nil
}

// QuickSummary is the summary block of a quick market analysis.
type QuickSummary struct {
	JobsFound       int                  `json:"jobs_found"`
	TopSkills       types.FrequencyTable `json:"top_skills"`
	AvgSkillsPerJob float64              `json:"avg_skills_per_job"`
}

// MarketInsights is the insight block of a quick market analysis.
type MarketInsights struct {
	SkillDemandLevel string `json:"skill_demand_level"`
	CompetitionLevel string `json:"competition_level"`
}

// QuickAnalysisResult is the response shape for the quick-analysis query.
type QuickAnalysisResult struct {
	JobTitle       string         `json:"job_title"`
	Location       string         `json:"location"`
	Summary        QuickSummary   `json:"summary"`
	MarketInsights MarketInsights `json:"market_insights"`
}

// QuickAnalysis runs a small 5-posting search and reports headline numbers.
// The average-skills rate is defined as 0 when no jobs were found, never a
// division error.
func (s *Service) QuickAnalysis(ctx context.Context, title, location string) (*QuickAnalysisResult, error) {
	result, err := s.Search(ctx, title, location, 5)
	if err != nil {
		return nil, err
	}

	top5 := result.TopSkillsRequired.Top(5)
	avg := 0.0
	if result.JobsFound > 0 {
		avg = round1(float64(result.TotalSkillsMentioned) / float64(result.JobsFound))
	}

	return &QuickAnalysisResult{
		JobTitle: title,
		Location: location,
		Summary: QuickSummary{
			JobsFound:       result.JobsFound,
			TopSkills:       top5,
			AvgSkillsPerJob: avg,
		},
		MarketInsights: MarketInsights{
			SkillDemandLevel: level(len(top5), 8, 5),
			CompetitionLevel: level(sumCounts(top5), 15, 8),
		},
	}, nil
}

func tableSkills(t types.FrequencyTable) []string {
	skills := make([]string, len(t))
	for i, sc := range t {
		skills[i] = sc.Skill
	}
	return skills
}

func emergingTrends(t types.FrequencyTable) []string {
	trends := []string{}
	for _, sc := range t {
		if emergingSkills[sc.Skill] {
			trends = append(trends, sc.Skill)
		}
		if len(trends) == 3 {
			break
		}
	}
	return trends
}

// categorizeSkills buckets skills for display. Unlike the gap analyzer's
// focus buckets, skills outside the known lists are dropped here.
func categorizeSkills(skills []string) map[string][]string {
	buckets := map[string][]string{}
	add := func(bucket, skill string) {
		buckets[bucket] = append(buckets[bucket], skill)
	}
	for _, skill := range skills {
		switch skill {
		case "python", "java", "javascript", "typescript":
			add("Programming", skill)
		case "aws", "azure", "docker", "kubernetes":
			add("Cloud/DevOps", skill)
		case "react", "angular", "django", "flask":
			add("Frameworks", skill)
		case "postgresql", "mongodb", "mysql":
			add("Databases", skill)
		}
	}
	return buckets
}

func sumCounts(t types.FrequencyTable) int {
	total := 0
	for _, sc := range t {
		total += sc.Count
	}
	return total
}

func level(value, high, medium int) string {
	switch {
	case value >= high:
		return "High"
	case value >= medium:
		return "Medium"
	default:
		return "Low"
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
