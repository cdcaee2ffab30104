package cmd

import (
	"fmt"
	"strings"

	"github.com/gitsum/gitsum/core"
	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/internal/gitlog"
	"github.com/gitsum/gitsum/internal/parquet"
	"github.com/spf13/cobra"
)

// exportCmd writes the parsed commit dataset to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export [repo-path]",
	Short: "Export parsed commits to Parquet files.",
	Long: `Fetch and parse the filtered commit history, then write it as Parquet
for downstream analytics (DuckDB, Spark, pandas).

Writes two files next to --output-file (default gitsum):
- <name>_commits.parquet       one row per commit, with category
- <name>_file_changes.parquet  one row per file change

Examples:
  gitsum export --months 6 --output-file myrepo
  gitsum export -e dev@corp.com --output-file dev2026`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		fetcher := gitlog.NewFetcher(gitClient)
		commits, _, err := fetcher.FetchCommits(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot fetch commits", err)
		}
		if len(commits) == 0 {
			fmt.Println("No commits found")
			return
		}

		base := strings.TrimSuffix(cfg.OutputFile, ".parquet")
		if base == "" {
			base = "gitsum"
		}
		commitRows, fileRows := parquet.ConvertCommits(core.FilterMerges(commits), core.Classify)

		commitsPath := base + "_commits.parquet"
		if err := parquet.WriteCommitsParquet(commitRows, commitsPath); err != nil {
			contract.LogFatal("Cannot write commits parquet", err)
		}
		filesPath := base + "_file_changes.parquet"
		if err := parquet.WriteFileChangesParquet(fileRows, filesPath); err != nil {
			contract.LogFatal("Cannot write file changes parquet", err)
		}
		fmt.Printf("Wrote %d commits to %s and %d file changes to %s\n",
			len(commitRows), commitsPath, len(fileRows), filesPath)
	},
}
