// Package core orchestrates the summary pipeline: fetch, parse,
// aggregate, report, record.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/internal/gitlog"
	"github.com/gitsum/gitsum/internal/outwriter"
	"github.com/gitsum/gitsum/schema"
)

// Display limits for the report sections.
const (
	HeavyCommitLimit = 5
	RecentDayLimit   = 5
)

// GetSummary runs the fetch-parse-aggregate pipeline and returns the
// summary, or nil when no commits matched the filters.
func GetSummary(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.Summary, error) {
	fetcher := gitlog.NewFetcher(client)
	commits, active, err := fetcher.FetchCommits(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, nil
	}
	return BuildSummary(cfg, commits, active), nil
}

// BuildSummary folds parsed commits into the aggregate report structure.
// Merge commits are dropped here and contribute to nothing downstream.
func BuildSummary(cfg *contract.Config, commits []schema.Commit, activeAuthors []string) *schema.Summary {
	kept := FilterMerges(commits)

	var totalAdded, totalDeleted int
	for _, c := range kept {
		totalAdded += c.Added
		totalDeleted += c.Deleted
	}

	elapsed := ElapsedDays(cfg.WindowDays(), kept)

	return &schema.Summary{
		RepoPath:      cfg.RepoPath,
		ActiveAuthors: activeAuthors,
		TotalCommits:  len(kept),
		TotalAdded:    totalAdded,
		TotalDeleted:  totalDeleted,
		ElapsedDays:   elapsed,
		Frequency:     ComputeFrequency(len(kept), elapsed),
		Cocomo:        EstimateCocomo(totalAdded, totalDeleted, cfg.PureCocomo, cfg.YearlySalary),
		Categories:    AggregateCategories(kept),
		HeavyCommits:  TopCommitsByChurn(kept, HeavyCommitLimit),
		RecentDays:    RecentActivity(kept, RecentDayLimit),
		Directories:   AggregateDirectories(kept, cfg.DirLevel),
		DirLevel:      cfg.DirLevel,
	}
}

// ExecuteSummary runs the whole pipeline, writes the report and records
// the run in the store. A run with no matching commits prints a sentinel
// and exits normally.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.StoreManager) error {
	start := time.Now()

	summary, err := GetSummary(ctx, cfg, client)
	if err != nil {
		return err
	}
	if summary == nil {
		fmt.Println("No commits found")
		return nil
	}

	if err := outwriter.WriteSummary(summary, cfg); err != nil {
		return err
	}

	recordRun(cfg, mgr, summary, time.Since(start))
	return nil
}

// recordRun persists the run record. Persistence failures degrade to a
// warning; the report has already been written.
func recordRun(cfg *contract.Config, mgr contract.StoreManager, summary *schema.Summary, duration time.Duration) {
	if mgr == nil {
		return
	}
	store := mgr.GetRunStore()
	if store == nil {
		return
	}

	cfgJSON, _ := json.Marshal(map[string]any{
		"dir_level": cfg.DirLevel,
		"salary":    cfg.YearlySalary,
		"pure":      cfg.PureCocomo,
		"diverged":  cfg.DivergedFrom,
	})
	rec := &schema.RunRecord{
		CreatedAt:    time.Now(),
		RepoPath:     cfg.RepoPath,
		Window:       cfg.Window(),
		AuthorFilter: cfg.AuthorFilter(),
		CommitCount:  summary.TotalCommits,
		TotalAdded:   summary.TotalAdded,
		TotalDeleted: summary.TotalDeleted,
		EffortMonths: summary.Cocomo.EffortMonths,
		Cost:         summary.Cocomo.Cost,
		DurationMs:   duration.Milliseconds(),
		ConfigJSON:   string(cfgJSON),
	}
	if _, err := store.RecordRun(rec); err != nil {
		contract.LogWarn("could not record summary run", err)
	}
}
