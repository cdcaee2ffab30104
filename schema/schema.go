// Package schema defines the shared data types for gitsum.
package schema

import "time"

// FileChange is one numstat entry within a commit. Binary files never
// materialize as a FileChange.
type FileChange struct {
	Path    string `json:"path"`
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
}

// Commit is a single parsed log record. It is constructed once by the
// parser and never mutated afterwards.
type Commit struct {
	Hash        string       `json:"hash"`
	Subject     string       `json:"subject"`
	Date        time.Time    `json:"date"`
	AuthorEmail string       `json:"author_email"`
	Files       []FileChange `json:"files,omitempty"`
	Added       int          `json:"added"`
	Deleted     int          `json:"deleted"`
}

// Churn returns the total line impact of the commit.
func (c *Commit) Churn() int {
	return c.Added + c.Deleted
}

// ShortHash returns the abbreviated commit hash for display.
func (c *Commit) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// IsMerge reports whether the commit is a branch merge. Merge commits are
// filtered before aggregation.
func (c *Commit) IsMerge() bool {
	return len(c.Subject) >= len(mergePrefix) && c.Subject[:len(mergePrefix)] == mergePrefix
}

const mergePrefix = "Merge branch"

// Category is a commit classification bucket derived from the subject line.
type Category string

// Known commit categories, in classification priority order.
const (
	CategoryFixes        Category = "Fixes"
	CategoryFeatures     Category = "Features"
	CategoryImprovements Category = "Improvements"
	CategoryTests        Category = "Tests"
	CategoryDocs         Category = "Documentation"
	CategoryOther        Category = "Other"
)

// CategoryStat accumulates per-category commit counts and line changes.
type CategoryStat struct {
	Category Category `json:"category"`
	Commits  int      `json:"commits"`
	Added    int      `json:"added"`
	Deleted  int      `json:"deleted"`
}

// DirectoryStat accumulates line changes attributed to one path prefix.
type DirectoryStat struct {
	Path    string `json:"path"`
	Files   int    `json:"files"`
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
	Impact  int    `json:"impact"`
}

// FrequencyStat is the commit rate reported at the coarsest unit whose
// value is at least one.
type FrequencyStat struct {
	Period string  `json:"period"` // day, week or month
	Rate   float64 `json:"rate"`
}

// CocomoEstimate holds the organic-model effort projection for the
// aggregated line changes.
type CocomoEstimate struct {
	KLOC         float64 `json:"kloc"`
	EffortMonths float64 `json:"effort_months"`
	DevTime      float64 `json:"dev_time_months"`
	AvgStaff     float64 `json:"avg_staff"`
	Cost         float64 `json:"cost"`
	Pure         bool    `json:"pure"`
}

// DayActivity groups the commits of a single calendar day.
type DayActivity struct {
	Date    time.Time `json:"date"`
	Commits []Commit  `json:"commits"`
}

// Summary is the complete aggregation result for one run.
type Summary struct {
	RepoPath      string          `json:"repo_path"`
	ActiveAuthors []string        `json:"active_authors"`
	TotalCommits  int             `json:"total_commits"`
	TotalAdded    int             `json:"total_added"`
	TotalDeleted  int             `json:"total_deleted"`
	ElapsedDays   int             `json:"elapsed_days"`
	Frequency     *FrequencyStat  `json:"frequency,omitempty"`
	Cocomo        CocomoEstimate  `json:"cocomo"`
	Categories    []CategoryStat  `json:"categories"`
	HeavyCommits  []Commit        `json:"heavy_commits"`
	RecentDays    []DayActivity   `json:"recent_days"`
	Directories   []DirectoryStat `json:"directories"`
	DirLevel      int             `json:"dir_level"`
}
