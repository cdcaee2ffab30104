// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gitsum/gitsum/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer initializes and configures the gitsum MCP server without
// starting it. Exposed for unit testing.
func NewServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitsum Summary Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	s.AddTool(mcp.NewTool("summarize_commits",
		mcp.WithDescription("Summarize a developer's git commit history: categories, line changes, COCOMO effort estimate and directory impact."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured repo).")),
		mcp.WithString("email", mcp.Description("Author email to filter commits by.")),
		mcp.WithString("email_contains", mcp.Description("Filter commits by author emails containing this substring.")),
		mcp.WithNumber("days", mcp.Description("Only include commits from the last N days.")),
		mcp.WithNumber("weeks", mcp.Description("Only include commits from the last N weeks.")),
		mcp.WithNumber("months", mcp.Description("Only include commits from the last N months.")),
		mcp.WithNumber("years", mcp.Description("Only include commits from the last N years.")),
		mcp.WithNumber("dir_level", mcp.Description("Directory depth for the impact breakdown. Defaults to 1.")),
		mcp.WithNumber("salary", mcp.Description("Yearly salary used for the COCOMO cost estimate.")),
		mcp.WithBoolean("pure", mcp.Description("Use net added-minus-deleted lines as the COCOMO size basis.")),
	), h.handleSummarizeCommits)

	s.AddTool(mcp.NewTool("list_authors",
		mcp.WithDescription("List the distinct author emails present in the repository log."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("contains", mcp.Description("Only return emails containing this substring.")),
	), h.handleListAuthors)

	return s
}

// StartServer starts the gitsum MCP server over stdio.
func StartServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewServer(baseCfg, client)
	return server.ServeStdio(s)
}
