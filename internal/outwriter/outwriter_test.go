package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsum/gitsum/schema"
)

func sampleSummary() *schema.Summary {
	day, _ := time.Parse("2006-01-02", "2026-08-05")
	return &schema.Summary{
		RepoPath:      "/repo",
		ActiveAuthors: []string{"alice@example.com"},
		TotalCommits:  3,
		TotalAdded:    120,
		TotalDeleted:  30,
		ElapsedDays:   30,
		Frequency:     &schema.FrequencyStat{Period: "month", Rate: 3.0},
		Cocomo: schema.CocomoEstimate{
			KLOC:         0.15,
			EffortMonths: 0.33,
			DevTime:      1.64,
			AvgStaff:     0.2,
			Cost:         1375.0,
		},
		Categories: []schema.CategoryStat{
			{Category: schema.CategoryFixes, Commits: 2, Added: 100, Deleted: 25},
			{Category: schema.CategoryOther, Commits: 1, Added: 20, Deleted: 5},
		},
		HeavyCommits: []schema.Commit{
			{Hash: "abcdef1234567890", Subject: "fix: big rewrite", Added: 90, Deleted: 20},
		},
		RecentDays: []schema.DayActivity{
			{Date: day, Commits: []schema.Commit{
				{Hash: "abcdef1234567890", Subject: "fix: big rewrite", Added: 90, Deleted: 20},
			}},
		},
		Directories: []schema.DirectoryStat{
			{Path: "src", Files: 2, Added: 100, Deleted: 25, Impact: 125},
			{Path: "docs", Files: 1, Added: 20, Deleted: 5, Impact: 25},
		},
		DirLevel: 1,
	}
}

func TestWriteSummaryText(t *testing.T) {
	var buf bytes.Buffer
	err := writeSummaryText(&buf, sampleSummary(), NewTheme(false))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "=== Git Commit Summary ===")
	assert.Contains(t, out, "Commits by: alice@example.com")
	assert.Contains(t, out, "Total commits: 3")
	assert.Contains(t, out, "Commit frequency: 3.0 per month")
	assert.Contains(t, out, "+120")
	assert.Contains(t, out, "-30")
	assert.Contains(t, out, "Estimated effort (COCOMO organic):")
	assert.Contains(t, out, "$1375.00")
	assert.Contains(t, out, "Fixes: 2 commits")
	assert.Contains(t, out, "abcdef1 fix: big rewrite (110 lines:")
	assert.Contains(t, out, "2026-08-05:")
	assert.Contains(t, out, "src")
	assert.Contains(t, out, "125")
	// Colors disabled: no escape sequences in the output.
	assert.NotContains(t, out, "\x1b[")
}

func TestWriteSummaryText_NoAuthorsNoFrequency(t *testing.T) {
	s := sampleSummary()
	s.ActiveAuthors = nil
	s.Frequency = nil

	var buf bytes.Buffer
	err := writeSummaryText(&buf, s, NewTheme(false))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "no active users found")
	assert.NotContains(t, out, "Commit frequency:")
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeSummaryCSV(&buf, sampleSummary())
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header, two categories, totals

	assert.Equal(t, []string{"category", "commits", "added", "deleted"}, records[0])
	assert.Equal(t, []string{"Fixes", "2", "100", "25"}, records[1])
	assert.Equal(t, []string{"Other", "1", "20", "5"}, records[2])
	assert.Equal(t, []string{"Total", "3", "120", "30"}, records[3])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, sampleSummary())
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"total_commits": 3`)
	assert.Contains(t, out, `"repo_path": "/repo"`)
}
