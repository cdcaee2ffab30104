//go:build basic

// Package integration contains integration tests for gitsum.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGitsumJSONOutput runs a summary over the project's own history and
// verifies the JSON report shape.
func TestGitsumJSONOutput(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	repoPath, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	require.NoError(t, err)
	repoDir := strings.TrimSpace(string(repoPath))

	cmd := exec.Command(getGitsumBinary(),
		"--email-contains", "@",
		"--output", "json",
		"--store-backend", "none",
		repoDir)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run())

	var report struct {
		RepoPath      string   `json:"repo_path"`
		ActiveAuthors []string `json:"active_authors"`
		TotalCommits  int      `json:"total_commits"`
		ElapsedDays   int      `json:"elapsed_days"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))

	assert.Equal(t, repoDir, report.RepoPath)
	assert.NotEmpty(t, report.ActiveAuthors)
	assert.Positive(t, report.TotalCommits)
	assert.Positive(t, report.ElapsedDays)
}

// TestGitsumCSVOutput checks the CSV report has a header and a totals row.
func TestGitsumCSVOutput(t *testing.T) {
	cmd := exec.Command(getGitsumBinary(),
		"--email-contains", "@",
		"--output", "csv",
		"--store-backend", "none")
	cmd.Dir = "../"
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "category,commits,added,deleted", lines[0])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "Total,"))
}
