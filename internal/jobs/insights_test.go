package jobs

import (
	"context"
	"testing"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMockSource(), newAggregator(t))
}

func TestTrendingSkills(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.TrendingSkills(context.Background(), "software", "United States")
	require.NoError(t, err)

	assert.Equal(t, "software", result.Field)
	assert.Equal(t, "Software Engineer", result.JobTitleSearched)
	assert.Equal(t, 20, result.JobsAnalyzed)
	assert.LessOrEqual(t, len(result.TrendingSkills), 15)
	assert.LessOrEqual(t, len(result.SkillInsights.MostDemanded), 5)
	assert.LessOrEqual(t, len(result.SkillInsights.EmergingTrends), 3)
	assert.NotEmpty(t, result.SkillInsights.SkillCategories)
}

func TestTrendingSkills_FieldCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.TrendingSkills(context.Background(), "ML", "Remote")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning Engineer", result.JobTitleSearched)
}

func TestTrendingSkills_UnsupportedField(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.TrendingSkills(context.Background(), "gardening", "Remote")
	require.Error(t, err)

	var fieldErr *ErrUnsupportedField
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "gardening", fieldErr.Field)
	assert.Contains(t, err.Error(), "software")
}

func TestSupportedFields_Sorted(t *testing.T) {
	fields := SupportedFields()
	require.NotEmpty(t, fields)
	for i := 1; i < len(fields); i++ {
		assert.Less(t, fields[i-1], fields[i])
	}
}

func TestQuickAnalysis(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.QuickAnalysis(context.Background(), "Backend Engineer", "Berlin")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", result.JobTitle)
	assert.Equal(t, 5, result.Summary.JobsFound)
	assert.LessOrEqual(t, len(result.Summary.TopSkills), 5)
	assert.Positive(t, result.Summary.AvgSkillsPerJob)
	assert.Contains(t, []string{"High", "Medium", "Low"}, result.MarketInsights.SkillDemandLevel)
	assert.Contains(t, []string{"High", "Medium", "Low"}, result.MarketInsights.CompetitionLevel)
}

func TestQuickAnalysis_ZeroJobsGuard(t *testing.T) {
	// A source returning no postings must not cause a division error.
	svc := NewService(emptySource{}, newAggregator(t))

	result, err := svc.QuickAnalysis(context.Background(), "Anything", "Nowhere")
	require.NoError(t, err)

	assert.Zero(t, result.Summary.JobsFound)
	assert.Zero(t, result.Summary.AvgSkillsPerJob)
	assert.Equal(t, "Low", result.MarketInsights.SkillDemandLevel)
	assert.Equal(t, "Low", result.MarketInsights.CompetitionLevel)
}

type emptySource struct{}

func (emptySource) Search(context.Context, string, string, int) ([]types.JobPosting, error) {
	return nil, nil
}
