package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsum/gitsum/schema"
)

func TestFilterMerges(t *testing.T) {
	commits := []schema.Commit{
		{Hash: "a1", Subject: "fix: crash on empty input"},
		{Hash: "a2", Subject: "Merge branch 'feature/login'"},
		{Hash: "a3", Subject: "Merge branches before release"},
	}

	kept := FilterMerges(commits)

	require.Len(t, kept, 2)
	assert.Equal(t, "a1", kept[0].Hash)
	assert.Equal(t, "a3", kept[1].Hash)
}

func TestComputeFrequency_Degrade(t *testing.T) {
	cases := []struct {
		name    string
		commits int
		days    int
		period  string
		rate    float64
	}{
		{"daily when rate at least one", 30, 10, "day", 3.0},
		{"weekly when daily below one", 3, 10, "week", 2.1},
		{"monthly floor", 3, 30, "month", 3.0},
		{"exact one per day", 10, 10, "day", 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			freq := ComputeFrequency(tc.commits, tc.days)
			require.NotNil(t, freq)
			assert.Equal(t, tc.period, freq.Period)
			assert.InDelta(t, tc.rate, freq.Rate, 1e-9)
		})
	}
}

func TestComputeFrequency_NilOnZero(t *testing.T) {
	assert.Nil(t, ComputeFrequency(0, 30))
	assert.Nil(t, ComputeFrequency(10, 0))
}

func TestDirectoryPrefix(t *testing.T) {
	cases := []struct {
		path  string
		level int
		want  string
	}{
		{"a/b/c.txt", 1, "a"},
		{"a/b/c.txt", 2, "a/b"},
		{"a/b/c.txt", 5, "a/b/c.txt"},
		{"top.txt", 1, "top.txt"},
		{"top.txt", 3, "top.txt"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DirectoryPrefix(tc.path, tc.level))
	}
}

func TestAggregateDirectories(t *testing.T) {
	commits := []schema.Commit{
		{Files: []schema.FileChange{
			{Path: "src/app/main.go", Added: 100, Deleted: 20},
			{Path: "src/app/util.go", Added: 10, Deleted: 0},
		}},
		{Files: []schema.FileChange{
			{Path: "src/app/main.go", Added: 5, Deleted: 5},
			{Path: "docs/readme.md", Added: 40, Deleted: 0},
		}},
	}

	stats := AggregateDirectories(commits, 2)

	require.Len(t, stats, 2)
	assert.Equal(t, "src/app", stats[0].Path)
	assert.Equal(t, 2, stats[0].Files) // main.go counted once
	assert.Equal(t, 115, stats[0].Added)
	assert.Equal(t, 25, stats[0].Deleted)
	assert.Equal(t, 140, stats[0].Impact)
	assert.Equal(t, "docs", stats[1].Path)
	assert.Equal(t, 40, stats[1].Impact)
}

func TestAggregateDirectories_TiesSortByPath(t *testing.T) {
	commits := []schema.Commit{
		{Files: []schema.FileChange{
			{Path: "zeta/a.go", Added: 10},
			{Path: "alpha/b.go", Added: 10},
		}},
	}

	stats := AggregateDirectories(commits, 1)

	require.Len(t, stats, 2)
	assert.Equal(t, "alpha", stats[0].Path)
	assert.Equal(t, "zeta", stats[1].Path)
}

func TestAggregateCategories(t *testing.T) {
	commits := []schema.Commit{
		{Subject: "fix: null pointer", Added: 10, Deleted: 2},
		{Subject: "Add login page", Added: 100, Deleted: 0},
		{Subject: "fix another bug", Added: 5, Deleted: 5},
		{Subject: "update changelog", Added: 3, Deleted: 1},
	}

	stats := AggregateCategories(commits)

	require.Len(t, stats, 3)
	// Alphabetical: Features, Fixes, Other.
	assert.Equal(t, schema.CategoryFeatures, stats[0].Category)
	assert.Equal(t, 1, stats[0].Commits)
	assert.Equal(t, schema.CategoryFixes, stats[1].Category)
	assert.Equal(t, 2, stats[1].Commits)
	assert.Equal(t, 15, stats[1].Added)
	assert.Equal(t, 7, stats[1].Deleted)
	assert.Equal(t, schema.CategoryOther, stats[2].Category)
}

func TestTopCommitsByChurn(t *testing.T) {
	commits := []schema.Commit{
		{Hash: "small", Added: 1, Deleted: 1},
		{Hash: "big", Added: 500, Deleted: 100},
		{Hash: "mid", Added: 50, Deleted: 10},
	}

	top := TopCommitsByChurn(commits, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "big", top[0].Hash)
	assert.Equal(t, "mid", top[1].Hash)
}

func TestRecentActivity(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}
	commits := []schema.Commit{
		{Hash: "a", Date: day("2026-08-01")},
		{Hash: "b", Date: day("2026-08-03")},
		{Hash: "c", Date: day("2026-08-03")},
		{Hash: "d", Date: day("2026-08-02")},
		{Hash: "e"}, // zero date, excluded
	}

	days := RecentActivity(commits, 2)

	require.Len(t, days, 2)
	assert.Equal(t, day("2026-08-03"), days[0].Date)
	assert.Len(t, days[0].Commits, 2)
	assert.Equal(t, day("2026-08-02"), days[1].Date)
}

func TestElapsedDays(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	t.Run("window wins over span", func(t *testing.T) {
		commits := []schema.Commit{{Date: day("2026-08-01")}}
		assert.Equal(t, 90, ElapsedDays(90, commits))
	})

	t.Run("inclusive span of commit dates", func(t *testing.T) {
		commits := []schema.Commit{
			{Date: day("2026-08-01")},
			{Date: day("2026-08-10")},
			{Date: day("2026-08-05")},
		}
		assert.Equal(t, 10, ElapsedDays(0, commits))
	})

	t.Run("single day span", func(t *testing.T) {
		commits := []schema.Commit{{Date: day("2026-08-01")}}
		assert.Equal(t, 1, ElapsedDays(0, commits))
	})

	t.Run("no dated commits", func(t *testing.T) {
		assert.Equal(t, 0, ElapsedDays(0, []schema.Commit{{Hash: "x"}}))
	})
}
