package cmd

import (
	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd starts the MCP server over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp [repo-path]",
	Short: "Start the gitsum MCP server.",
	Long: `Start a Model Context Protocol server over stdio so AI assistants can
request commit summaries directly.

Tools exposed:
- summarize_commits: full summary with categories, COCOMO and directory impact
- list_authors: distinct author emails in the log

Add to an MCP client config:
  {"command": "gitsum", "args": ["mcp", "/path/to/repo"]}`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartServer(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot start MCP server", err)
		}
	},
}
