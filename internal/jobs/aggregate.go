package jobs

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/extract"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

// Aggregator turns a batch of job postings into a market-requirement
// histogram plus per-posting summaries. Per-posting extraction runs in
// parallel; the merge walks postings in input order, so the result is
// deterministic regardless of scheduling.
type Aggregator struct {
	extractor *extract.Extractor
}

// NewAggregator creates an Aggregator over the given taxonomy.
func NewAggregator(tax *taxonomy.Taxonomy) *Aggregator {
	return &Aggregator{extractor: extract.New(tax)}
}

// Aggregate extracts skills from every posting description, counts token
// frequency across postings, and sorts the table descending by count with
// first-appearance order breaking ties. Category information is discarded
// when counting; frequency is category-agnostic by design.
//
// Zero postings is valid: the result has an empty table and JobsFound 0.
func (a *Aggregator) Aggregate(ctx context.Context, postings []types.JobPosting) (*types.JobSearchResult, error) {
	perJob := make([][]string, len(postings))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, posting := range postings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			set := a.extractor.Extract(posting.Description)
			perJob[i] = a.extractor.Flatten(set)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("job aggregation cancelled: %w", err)
	}

	summaries := make([]types.JobSummary, len(postings))
	counts := make(map[string]int)
	var order []string
	total := 0
	for i, posting := range postings {
		skills := perJob[i]
		if skills == nil {
			skills = []string{}
		}
		summaries[i] = types.JobSummary{
			Title:          posting.Title,
			Company:        posting.Company,
			Location:       posting.Location,
			SkillsRequired: skills,
			URL:            posting.URL,
			Salary:         posting.Salary,
		}
		for _, skill := range skills {
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			counts[skill]++
			total++
		}
	}

	return &types.JobSearchResult{
		JobsFound:            len(postings),
		JobSummaries:         summaries,
		TopSkillsRequired:    buildTable(order, counts),
		TotalSkillsMentioned: total,
	}, nil
}

// buildTable sorts tokens descending by count. Insertion sort over the
// first-appearance order keeps ties stable; taxonomy sizes make the
// quadratic cost irrelevant.
func buildTable(order []string, counts map[string]int) types.FrequencyTable {
	table := make(types.FrequencyTable, 0, len(order))
	for _, skill := range order {
		table = append(table, types.SkillCount{Skill: skill, Count: counts[skill]})
	}
	for i := 1; i < len(table); i++ {
		for j := i; j > 0 && table[j].Count > table[j-1].Count; j-- {
			table[j], table[j-1] = table[j-1], table[j]
		}
	}
	return table
}

// Service composes a posting source with the aggregator to answer job
// searches.
type Service struct {
	source     Source
	aggregator *Aggregator
}

// NewService creates a job-search service.
func NewService(source Source, aggregator *Aggregator) *Service {
	return &Service{source: source, aggregator: aggregator}
}

// Search retrieves postings for the query and aggregates their skill
// requirements.
func (s *Service) Search(ctx context.Context, title, location string, limit int) (*types.JobSearchResult, error) {
	postings, err := s.source.Search(ctx, title, location, limit)
	if err != nil {
		return nil, fmt.Errorf("job search failed: %w", err)
	}

	result, err := s.aggregator.Aggregate(ctx, postings)
	if err != nil {
		return nil, err
	}
	result.SearchQuery = fmt.Sprintf("%s in %s", title, location)
	return result, nil
}
