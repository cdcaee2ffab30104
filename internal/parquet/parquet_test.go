package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsum/gitsum/schema"
)

func classifyStub(subject string) schema.Category {
	if subject == "fix: x" {
		return schema.CategoryFixes
	}
	return schema.CategoryOther
}

func TestConvertCommits(t *testing.T) {
	date, _ := time.Parse("2006-01-02", "2026-08-01")
	commits := []schema.Commit{
		{
			Hash:        "abc",
			Subject:     "fix: x",
			Date:        date,
			AuthorEmail: "alice@example.com",
			Files: []schema.FileChange{
				{Path: "src/a.go", Added: 10, Deleted: 2},
				{Path: "src/b.go", Added: 5, Deleted: 0},
			},
			Added:   15,
			Deleted: 2,
		},
		{Hash: "def", Subject: "misc", Added: 1},
	}

	commitRows, fileRows := ConvertCommits(commits, classifyStub)

	require.Len(t, commitRows, 2)
	assert.Equal(t, "abc", commitRows[0].Hash)
	assert.Equal(t, string(schema.CategoryFixes), commitRows[0].Category)
	assert.EqualValues(t, 2, commitRows[0].FilesTouched)
	assert.EqualValues(t, 15, commitRows[0].Added)
	assert.Equal(t, string(schema.CategoryOther), commitRows[1].Category)

	require.Len(t, fileRows, 2)
	assert.Equal(t, "abc", fileRows[0].Hash)
	assert.Equal(t, "src/a.go", fileRows[0].Path)
	assert.EqualValues(t, 10, fileRows[0].Added)
}

func TestWriteCommitsParquet(t *testing.T) {
	rows := []CommitRow{
		{Hash: "abc", Subject: "fix: x", Category: "Fixes", Added: 10, Deleted: 2},
	}
	path := filepath.Join(t.TempDir(), "commits.parquet")

	require.NoError(t, WriteCommitsParquet(rows, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteFileChangesParquet(t *testing.T) {
	rows := []FileChangeRow{
		{Hash: "abc", Path: "src/a.go", Added: 10, Deleted: 2},
	}
	path := filepath.Join(t.TempDir(), "files.parquet")

	require.NoError(t, WriteFileChangesParquet(rows, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
