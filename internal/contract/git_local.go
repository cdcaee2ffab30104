package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DateFormat is the calendar date layout used by git --date=short.
const DateFormat = "2006-01-02"

// SepToken is the field delimiter embedded in the log pretty-format.
// It must never collide with subject text git would emit verbatim.
const SepToken = "<sep>"

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("git '%v' exit: %s", strings.Join(fullArgs, " "), strings.TrimSpace(string(exitErr.Stderr)))
	} else if err != nil {
		return nil, fmt.Errorf("git '%v' unknown (is git installed and in PATH?): %w", strings.Join(fullArgs, " "), err)
	}
	return out, nil
}

// GetUserEmail implements the GitClient interface via 'git config user.email'.
func (c *LocalGitClient) GetUserEmail(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "config", "user.email")
	if err != nil {
		return "", err
	}
	email := strings.TrimSpace(string(out))
	if email == "" {
		return "", fmt.Errorf("git user.email is not configured in %s", repoPath)
	}
	return email, nil
}

// ListAuthorEmails implements the GitClient interface.
func (c *LocalGitClient) ListAuthorEmails(ctx context.Context, repoPath string) ([]string, error) {
	out, err := c.Run(ctx, repoPath, "log", "--format=%ae")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var emails []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		emails = append(emails, line)
	}
	return emails, nil
}

// GetCommitLog implements the GitClient interface. The output interleaves
// delimited commit headers with numstat lines.
func (c *LocalGitClient) GetCommitLog(ctx context.Context, repoPath, email, since, divergedFrom string) ([]byte, error) {
	format := strings.Join([]string{"%H", "%s", "%ad", "%ae"}, SepToken)
	args := []string{
		"log",
		"--pretty=format:" + format,
		"--date=short",
		"--numstat",
		"--author=" + email,
	}
	if since != "" {
		args = append(args, "--since="+since)
	}
	if divergedFrom != "" {
		args = append(args, divergedFrom+"..HEAD")
	}
	return c.Run(ctx, repoPath, args...)
}
