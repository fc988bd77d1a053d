package resume

import (
	"testing"

	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	tax, err := taxonomy.Load()
	require.NoError(t, err)
	return NewBuilder(tax)
}

func TestBuildProfile_Scenario(t *testing.T) {
	b := newBuilder(t)

	text := "Experienced Python and React developer, Bachelor's in Computer Science. Email: a@b.com"
	profile := b.BuildProfile(text)

	assert.Contains(t, profile.Skills[types.CategoryProgrammingLanguages], "python")
	assert.Contains(t, profile.Skills[types.CategoryFrameworks], "react")
	assert.Contains(t, profile.Education, "bachelor")
	assert.Contains(t, profile.Education, "computer science")
	assert.Equal(t, []string{"a@b.com"}, profile.Contact.Emails)
	assert.Equal(t, len(text), profile.TextLength)
}

func TestBuildProfile_EmptyText(t *testing.T) {
	b := newBuilder(t)

	profile := b.BuildProfile("")

	assert.Empty(t, profile.Contact.Emails)
	assert.Empty(t, profile.Contact.Phones)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Experience.Levels)
	assert.Empty(t, profile.Experience.Roles)
	assert.Zero(t, profile.TextLength)
	for cat, tokens := range profile.Skills {
		assert.Empty(t, tokens, "category %s", cat)
	}
}

func TestBuildProfile_PhoneFormats(t *testing.T) {
	b := newBuilder(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashes", "Call 555-123-4567 today", "555-123-4567"},
		{"dots", "Call 555.123.4567 today", "555.123.4567"},
		{"parens", "Call (555) 123-4567 today", "(555) 123-4567"},
		{"spaces", "Call 555 123 4567 today", "555 123 4567"},
		{"bare", "Call 5551234567 today", "5551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := b.BuildProfile(tt.text)
			assert.Equal(t, []string{tt.want}, profile.Contact.Phones)
		})
	}
}

func TestBuildProfile_DuplicateContactsKept(t *testing.T) {
	b := newBuilder(t)

	profile := b.BuildProfile("a@b.com then again a@b.com and 555-123-4567 plus 555-123-4567")

	assert.Equal(t, []string{"a@b.com", "a@b.com"}, profile.Contact.Emails)
	assert.Len(t, profile.Contact.Phones, 2)
}

func TestBuildProfile_EducationDeduplicated(t *testing.T) {
	b := newBuilder(t)

	profile := b.BuildProfile("Bachelor degree and another bachelor degree from a university")

	counts := map[string]int{}
	for _, kw := range profile.Education {
		counts[kw]++
	}
	assert.Equal(t, 1, counts["bachelor"])
	assert.Equal(t, 1, counts["degree"])
	assert.Equal(t, 1, counts["university"])
}

func TestBuildProfile_ExperienceKeywordOrder(t *testing.T) {
	b := newBuilder(t)

	// Text order is senior-then-intern; output follows keyword-list order.
	profile := b.BuildProfile("Senior backend developer, previously intern")

	assert.Equal(t, []string{"intern", "senior"}, profile.Experience.Levels)
	assert.Contains(t, profile.Experience.Roles, "developer")
	assert.Contains(t, profile.Experience.Roles, "backend")
}

func TestBuildProfile_Idempotent(t *testing.T) {
	b := newBuilder(t)
	text := "Senior Go engineer, MSc in Data Science, jane@corp.io, (415) 555-0100"

	assert.Equal(t, b.BuildProfile(text), b.BuildProfile(text))
}
