package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gitsum/gitsum/core"
	"github.com/gitsum/gitsum/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleSummarizeCommits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if e := request.GetString("email", ""); e != "" {
		cfg.Emails = []string{e}
		cfg.EmailContains = ""
	}
	if c := request.GetString("email_contains", ""); c != "" {
		cfg.Emails = nil
		cfg.EmailContains = c
	}
	cfg.Days = request.GetInt("days", cfg.Days)
	cfg.Weeks = request.GetInt("weeks", cfg.Weeks)
	cfg.Months = request.GetInt("months", cfg.Months)
	cfg.Years = request.GetInt("years", cfg.Years)
	if l := request.GetInt("dir_level", 0); l > 0 {
		cfg.DirLevel = l
	}
	if s := request.GetFloat("salary", 0); s > 0 {
		cfg.YearlySalary = s
	}
	cfg.PureCocomo = request.GetBool("pure", cfg.PureCocomo)

	summary, err := core.GetSummary(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}
	if summary == nil {
		return mcp.NewToolResultText("No commits found"), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListAuthors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoPath := request.GetString("repo_path", h.baseCfg.RepoPath)
	contains := request.GetString("contains", "")

	emails, err := h.client.ListAuthorEmails(ctx, repoPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing authors failed: %v", err)), nil
	}
	if contains != "" {
		var matched []string
		for _, e := range emails {
			if strings.Contains(e, contains) {
				matched = append(matched, e)
			}
		}
		emails = matched
	}

	jsonData, _ := json.MarshalIndent(emails, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
