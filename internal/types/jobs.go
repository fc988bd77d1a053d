package types

// JobPosting is one job listing handed to the aggregator. Only Description
// is inspected; the rest are display fields forwarded untouched.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	URL         string `json:"url"`
}

// JobSummary is the per-posting view returned by a job search: the posting's
// display fields plus the skills extracted from its description.
type JobSummary struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	SkillsRequired []string `json:"skills_required"`
	URL            string   `json:"url"`
	Salary         string   `json:"salary"`
}

// JobSearchResult is the aggregate output of a job search.
type JobSearchResult struct {
	SearchQuery          string         `json:"search_query"`
	JobsFound            int            `json:"jobs_found"`
	JobSummaries         []JobSummary   `json:"job_summaries"`
	TopSkillsRequired    FrequencyTable `json:"top_skills_required"`
	TotalSkillsMentioned int            `json:"total_skills_mentioned"`
}
