// Package gitlog fetches and parses delimited git log output.
package gitlog

import (
	"context"
	"strings"

	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/schema"
)

// Fetcher retrieves raw commit logs through a GitClient.
type Fetcher struct {
	Client contract.GitClient
}

// NewFetcher creates a Fetcher backed by the given client.
func NewFetcher(client contract.GitClient) *Fetcher {
	return &Fetcher{Client: client}
}

// ResolveEmails expands the author selection into a concrete email list.
// An explicit list wins; a substring filter scans the full author log;
// otherwise the repository's user.email is used.
func (f *Fetcher) ResolveEmails(ctx context.Context, cfg *contract.Config) ([]string, error) {
	if len(cfg.Emails) > 0 {
		return cfg.Emails, nil
	}
	if cfg.EmailContains != "" {
		all, err := f.Client.ListAuthorEmails(ctx, cfg.RepoPath)
		if err != nil {
			return nil, err
		}
		var matched []string
		for _, e := range all {
			if strings.Contains(e, cfg.EmailContains) {
				matched = append(matched, e)
			}
		}
		return matched, nil
	}
	email, err := f.Client.GetUserEmail(ctx, cfg.RepoPath)
	if err != nil {
		return nil, err
	}
	return []string{email}, nil
}

// FetchCommits queries the log once per resolved email and parses the
// output. It returns the commits in log order plus the subset of emails
// that actually produced commits in the window.
func (f *Fetcher) FetchCommits(ctx context.Context, cfg *contract.Config) ([]schema.Commit, []string, error) {
	emails, err := f.ResolveEmails(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var commits []schema.Commit
	var active []string
	for _, email := range emails {
		out, err := f.Client.GetCommitLog(ctx, cfg.RepoPath, email, cfg.Since(), cfg.DivergedFrom)
		if err != nil {
			return nil, nil, err
		}
		raw := strings.TrimSpace(string(out))
		if raw == "" {
			continue
		}
		active = append(active, email)
		parsed, _ := ParseLog(raw)
		commits = append(commits, parsed...)
	}
	return commits, active, nil
}
