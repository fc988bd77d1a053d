package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSource_FamilySelection(t *testing.T) {
	src := NewMockSource()

	tests := []struct {
		title     string
		wantFirst string
	}{
		{"Software Engineer", "Software Engineer"},
		{"Junior Developer", "Software Engineer"},
		{"Data Scientist", "Data Scientist"},
		{"ML Engineer", "Data Scientist"},
		{"Machine Learning Engineer", "Data Scientist"},
		{"Hardware Engineer", "Hardware Engineer"},
		{"FPGA Designer", "Hardware Engineer"},
		{"Embedded Engineer", "Hardware Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			postings, err := src.Search(context.Background(), tt.title, "United States", 1)
			require.NoError(t, err)
			require.Len(t, postings, 1)
			assert.Equal(t, tt.wantFirst, postings[0].Title)
		})
	}
}

func TestMockSource_FillsLimitByRepeating(t *testing.T) {
	src := NewMockSource()

	postings, err := src.Search(context.Background(), "Data Scientist", "Austin", 5)
	require.NoError(t, err)
	require.Len(t, postings, 5)

	// The family has two templates; they cycle.
	assert.Equal(t, postings[0].Title, postings[2].Title)
	assert.Equal(t, postings[1].Title, postings[3].Title)
}

func TestMockSource_LocationApplied(t *testing.T) {
	src := NewMockSource()

	postings, err := src.Search(context.Background(), "Software Engineer", "Toronto", 3)
	require.NoError(t, err)
	for _, p := range postings {
		assert.Equal(t, "Toronto", p.Location)
	}
}

func TestMockSource_NonPositiveLimit(t *testing.T) {
	src := NewMockSource()

	postings, err := src.Search(context.Background(), "Software Engineer", "Berlin", 0)
	require.NoError(t, err)
	assert.Empty(t, postings)
}
