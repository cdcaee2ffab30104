package cmd

import (
	"fmt"
	"strings"

	"github.com/gitsum/gitsum/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// authorsCmd lists distinct author emails from the log.
var authorsCmd = &cobra.Command{
	Use:   "authors [repo-path]",
	Short: "List the distinct author emails in the repository log.",
	Long: `List every distinct author email present in the git log.

Useful for discovering the exact addresses to pass to --emails, or for
checking what a substring filter would match:

  gitsum authors
  gitsum authors --contains @corp.com`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		emails, err := gitClient.ListAuthorEmails(rootCtx, cfg.RepoPath)
		if err != nil {
			contract.LogFatal("Cannot list authors", err)
		}
		contains := viper.GetString("contains")
		for _, e := range emails {
			if contains != "" && !strings.Contains(e, contains) {
				continue
			}
			fmt.Println(e)
		}
	},
}
