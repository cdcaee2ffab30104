// Package parquet exports parsed commit data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/gitsum/gitsum/schema"
	"github.com/parquet-go/parquet-go"
)

// CommitRow is one commit in the exported dataset.
type CommitRow struct {
	Hash         string    `parquet:"hash,snappy"`
	Subject      string    `parquet:"subject,snappy"`
	Date         time.Time `parquet:"date,snappy"`
	AuthorEmail  string    `parquet:"author_email,snappy"`
	Category     string    `parquet:"category,snappy"`
	FilesTouched int32     `parquet:"files_touched,snappy"`
	Added        int32     `parquet:"added,snappy"`
	Deleted      int32     `parquet:"deleted,snappy"`
}

// FileChangeRow is one per-file numstat entry in the exported dataset.
type FileChangeRow struct {
	Hash    string `parquet:"hash,snappy"`
	Path    string `parquet:"path,snappy"`
	Added   int32  `parquet:"added,snappy"`
	Deleted int32  `parquet:"deleted,snappy"`
}

// ConvertCommits maps parsed commits to export rows. The classify
// function is injected so this package stays free of core imports.
func ConvertCommits(commits []schema.Commit, classify func(string) schema.Category) ([]CommitRow, []FileChangeRow) {
	commitRows := make([]CommitRow, 0, len(commits))
	var fileRows []FileChangeRow
	for _, c := range commits {
		commitRows = append(commitRows, CommitRow{
			Hash:         c.Hash,
			Subject:      c.Subject,
			Date:         c.Date,
			AuthorEmail:  c.AuthorEmail,
			Category:     string(classify(c.Subject)),
			FilesTouched: int32(len(c.Files)),
			Added:        int32(c.Added),
			Deleted:      int32(c.Deleted),
		})
		for _, fc := range c.Files {
			fileRows = append(fileRows, FileChangeRow{
				Hash:    c.Hash,
				Path:    fc.Path,
				Added:   int32(fc.Added),
				Deleted: int32(fc.Deleted),
			})
		}
	}
	return commitRows, fileRows
}

// WriteCommitsParquet writes commit rows to a Parquet file.
func WriteCommitsParquet(data []CommitRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteFileChangesParquet writes file change rows to a Parquet file.
func WriteFileChangesParquet(data []FileChangeRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes rows to the file using struct schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}
