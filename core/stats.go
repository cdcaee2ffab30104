package core

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gitsum/gitsum/schema"
)

// avgDaysPerMonth is the mean Gregorian month length used when degrading
// the commit rate to a monthly bucket.
const avgDaysPerMonth = 30.44

// FilterMerges drops branch-merge commits so they never reach any
// aggregate.
func FilterMerges(commits []schema.Commit) []schema.Commit {
	kept := make([]schema.Commit, 0, len(commits))
	for _, c := range commits {
		if c.IsMerge() {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// ComputeFrequency reports commits per day, week or month, choosing the
// coarsest unit whose rate is at least one (month is the floor). A zero
// elapsed-days value or empty commit set yields nil so the report can
// omit the section instead of dividing by zero.
func ComputeFrequency(commitCount, elapsedDays int) *schema.FrequencyStat {
	if commitCount == 0 || elapsedDays == 0 {
		return nil
	}
	perDay := float64(commitCount) / float64(elapsedDays)
	perWeek := perDay * 7
	perMonth := perDay * avgDaysPerMonth

	switch {
	case perDay >= 1:
		return &schema.FrequencyStat{Period: "day", Rate: round1(perDay)}
	case perWeek >= 1:
		return &schema.FrequencyStat{Period: "week", Rate: round1(perWeek)}
	default:
		return &schema.FrequencyStat{Period: "month", Rate: round1(perMonth)}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DirectoryPrefix truncates a path to its first level segments. Paths
// with at most level segments are used whole.
func DirectoryPrefix(path string, level int) string {
	parts := strings.Split(path, "/")
	if len(parts) > level {
		return strings.Join(parts[:level], "/")
	}
	return path
}

// AggregateDirectories attributes every file change to its directory
// prefix and returns per-prefix stats sorted by total impact descending
// (path ascending on ties, for deterministic output).
func AggregateDirectories(commits []schema.Commit, level int) []schema.DirectoryStat {
	type dirAccum struct {
		files   map[string]struct{}
		added   int
		deleted int
	}
	accums := make(map[string]*dirAccum)

	for _, c := range commits {
		for _, fc := range c.Files {
			dir := DirectoryPrefix(fc.Path, level)
			if dir == "" {
				continue
			}
			acc, ok := accums[dir]
			if !ok {
				acc = &dirAccum{files: make(map[string]struct{})}
				accums[dir] = acc
			}
			acc.files[fc.Path] = struct{}{}
			acc.added += fc.Added
			acc.deleted += fc.Deleted
		}
	}

	stats := make([]schema.DirectoryStat, 0, len(accums))
	for dir, acc := range accums {
		stats = append(stats, schema.DirectoryStat{
			Path:    dir,
			Files:   len(acc.files),
			Added:   acc.added,
			Deleted: acc.deleted,
			Impact:  acc.added + acc.deleted,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Impact != stats[j].Impact {
			return stats[i].Impact > stats[j].Impact
		}
		return stats[i].Path < stats[j].Path
	})
	return stats
}

// AggregateCategories classifies every commit and returns per-category
// stats in alphabetical order.
func AggregateCategories(commits []schema.Commit) []schema.CategoryStat {
	byName := make(map[schema.Category]*schema.CategoryStat)
	for _, c := range commits {
		cat := Classify(c.Subject)
		stat, ok := byName[cat]
		if !ok {
			stat = &schema.CategoryStat{Category: cat}
			byName[cat] = stat
		}
		stat.Commits++
		stat.Added += c.Added
		stat.Deleted += c.Deleted
	}

	stats := make([]schema.CategoryStat, 0, len(byName))
	for _, stat := range byName {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// TopCommitsByChurn returns the n highest-churn commits, descending.
func TopCommitsByChurn(commits []schema.Commit, n int) []schema.Commit {
	sorted := make([]schema.Commit, len(commits))
	copy(sorted, commits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Churn() > sorted[j].Churn()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// RecentActivity groups commits by calendar day and returns the n most
// recent days, newest first.
func RecentActivity(commits []schema.Commit, n int) []schema.DayActivity {
	byDate := make(map[time.Time][]schema.Commit)
	for _, c := range commits {
		if c.Date.IsZero() {
			continue
		}
		day := c.Date.Truncate(24 * time.Hour)
		byDate[day] = append(byDate[day], c)
	}

	days := make([]schema.DayActivity, 0, len(byDate))
	for date, group := range byDate {
		days = append(days, schema.DayActivity{Date: date, Commits: group})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	if len(days) > n {
		days = days[:n]
	}
	return days
}

// ElapsedDays derives the elapsed day count: the configured window when
// one was requested, else the inclusive span of the commit dates.
func ElapsedDays(windowDays int, commits []schema.Commit) int {
	if windowDays > 0 {
		return windowDays
	}
	var min, max time.Time
	for _, c := range commits {
		if c.Date.IsZero() {
			continue
		}
		if min.IsZero() || c.Date.Before(min) {
			min = c.Date
		}
		if max.IsZero() || c.Date.After(max) {
			max = c.Date
		}
	}
	if min.IsZero() {
		return 0
	}
	return int(max.Sub(min).Hours()/24) + 1
}
