// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"strconv"

	"github.com/gitsum/gitsum/schema"
)

// GitClient defines the git operations the summarizer needs.
// This allows the core logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetUserEmail returns the configured user.email for the repository.
	GetUserEmail(ctx context.Context, repoPath string) (string, error)

	// ListAuthorEmails returns every distinct author email in the log.
	ListAuthorEmails(ctx context.Context, repoPath string) ([]string, error)

	// GetCommitLog returns the raw delimited log output for one author email,
	// optionally restricted to a --since window and to commits not reachable
	// from divergedFrom.
	GetCommitLog(ctx context.Context, repoPath, email, since, divergedFrom string) ([]byte, error)
}

// RunStore persists one record per summary run.
type RunStore interface {
	// RecordRun stores a completed run and returns its ID.
	RecordRun(rec *schema.RunRecord) (int64, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.RunRecord, error)

	// GetStatus returns diagnostic information about the store.
	GetStatus() (schema.RunStoreStatus, error)

	// Clear removes all stored runs.
	Clear() error

	Close() error
}

// StoreManager exposes the run store to commands and handlers.
// It exists so the persistence layer can be mocked for testing.
type StoreManager interface {
	GetRunStore() RunStore
}

// WindowLabel renders a time window as the human-readable string stored
// alongside each run, e.g. "30 days" or "all time".
func WindowLabel(days, weeks, months, years int) string {
	switch {
	case days > 0:
		return pluralize(days, "day")
	case weeks > 0:
		return pluralize(weeks, "week")
	case months > 0:
		return pluralize(months, "month")
	case years > 0:
		return pluralize(years, "year")
	default:
		return "all time"
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
