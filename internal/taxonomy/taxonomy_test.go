package taxonomy

import (
	"strings"
	"testing"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tax, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, tax.Version())
	assert.Len(t, tax.Categories(), 11)

	// First and last categories keep asset order.
	assert.Equal(t, types.CategoryProgrammingLanguages, tax.Categories()[0])
	assert.Equal(t, types.CategoryEmergingTech, tax.Categories()[10])
}

func TestLoad_AllTokensLowercase(t *testing.T) {
	tax, err := Load()
	require.NoError(t, err)

	for _, cat := range tax.Categories() {
		for _, token := range tax.Skills(cat) {
			assert.Equal(t, strings.ToLower(token), token,
				"category %s token %q must be lowercase", cat, token)
		}
	}
}

func TestLoad_KnownTokens(t *testing.T) {
	tax, err := Load()
	require.NoError(t, err)

	assert.Contains(t, tax.Skills(types.CategoryProgrammingLanguages), "python")
	assert.Contains(t, tax.Skills(types.CategoryFrameworks), "react native")
	assert.Contains(t, tax.Skills(types.CategoryDatabases), "postgresql")
	assert.Contains(t, tax.Skills(types.CategoryCloudDevops), "ci/cd")
	assert.Contains(t, tax.Skills(types.CategoryAiMl), "machine learning")
}

func TestLoad_KeywordLists(t *testing.T) {
	tax, err := Load()
	require.NoError(t, err)

	assert.Contains(t, tax.EducationKeywords(), "bachelor")
	assert.Contains(t, tax.EducationKeywords(), "computer science")
	assert.Equal(t, []string{"intern", "junior", "senior", "lead", "manager", "director"},
		tax.ExperienceLevels())
	assert.Contains(t, tax.ExperienceRoles(), "software engineer")
}

func TestParse_RejectsBadAssets(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{`},
		{"no categories", `{"version":"1","categories":[]}`},
		{"uppercase token", `{"version":"1","categories":[{"name":"frameworks","skills":["React"]}]}`},
		{"empty token", `{"version":"1","categories":[{"name":"frameworks","skills":[""]}]}`},
		{"duplicate category", `{"version":"1","categories":[{"name":"frameworks","skills":["react"]},{"name":"frameworks","skills":["vue"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
