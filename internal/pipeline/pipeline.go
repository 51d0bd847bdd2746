package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leofalp/benchmatch/core/extract"
	"github.com/leofalp/benchmatch/core/filter"
	"github.com/leofalp/benchmatch/core/match"
	"github.com/leofalp/benchmatch/core/report"
	"github.com/leofalp/benchmatch/internal/utils"
	"github.com/leofalp/benchmatch/providers/hub"
	"github.com/leofalp/benchmatch/providers/leaderboard"
)

const (
	// DefaultSourceURL is the leaderboard page the pipeline collects from.
	DefaultSourceURL = "https://www.tbench.ai/leaderboard/terminal-bench/2.0"

	// DefaultAgent is the agent whose runs are kept.
	DefaultAgent = "Terminus 2"

	// DefaultOutputPath is where the JSON report is written.
	DefaultOutputPath = "matched-repos.json"
)

// DefaultExcludedOrgs returns the model orgs excluded for being closed-source.
func DefaultExcludedOrgs() map[string]bool {
	return map[string]bool{
		"OpenAI":    true,
		"Google":    true,
		"xAI":       true,
		"Anthropic": true,
	}
}

// DefaultAliases returns the provider display name → hub owner table.
func DefaultAliases() filter.AliasTable {
	return filter.AliasTable{
		"Kimi":        "moonshotai",
		"Moonshot AI": "moonshotai",
		"Z-AI":        "zai-org",
		"Z.ai":        "zai-org",
		"MiniMax":     "minimaxai",
		"Alibaba":     "Qwen",
	}
}

// Config parameterises one pipeline run. Zero values fall back to the
// package defaults; Searcher defaults to a [hub.Client] built from the
// environment.
type Config struct {
	SourceURL      string
	Agent          string
	ExcludedOrgs   map[string]bool
	Aliases        filter.AliasTable
	SearchLimit    int
	TimeoutSeconds int
	Searcher       match.Searcher
}

func (c *Config) applyDefaults() {
	if c.SourceURL == "" {
		c.SourceURL = DefaultSourceURL
	}
	if c.Agent == "" {
		c.Agent = DefaultAgent
	}
	if c.ExcludedOrgs == nil {
		c.ExcludedOrgs = DefaultExcludedOrgs()
	}
	if c.Aliases == nil {
		c.Aliases = DefaultAliases()
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = match.DefaultLimit
	}
	if c.Searcher == nil {
		c.Searcher = hub.New()
	}
}

// Run executes the pipeline and returns the assembled report. It returns an
// error only for the fatal class of failures: the fetch itself, or a page
// with no results table. Row rejections and search failures are logged and
// excluded from the report instead.
func Run(ctx context.Context, cfg Config) (report.Report, error) {
	cfg.applyDefaults()

	slog.Info("fetching leaderboard", "url", cfg.SourceURL)
	page, err := leaderboard.Fetch(ctx, leaderboard.Input{
		URL:            cfg.SourceURL,
		TimeoutSeconds: cfg.TimeoutSeconds,
	})
	if err != nil {
		return report.Report{}, fmt.Errorf("fetch leaderboard: %w", err)
	}

	rows, err := extract.Rows(page.HTML)
	if err != nil {
		slog.Debug("page content preview", "markdown", utils.TruncateString(page.Markdown, 500))
		return report.Report{}, fmt.Errorf("extract results table from %s: %w", page.URL, err)
	}

	var entries []extract.Entry
	for _, cells := range rows {
		entry, err := extract.ParseEntry(cells)
		if err != nil {
			slog.Debug("skipping unparseable row", "reason", err.Error(), "cells", utils.JSONToString(cells))
			continue
		}
		entries = append(entries, entry)
	}
	slog.Info("parsed leaderboard entries", "count", len(entries))

	kept := filter.Apply(entries, filter.Config{
		Agent:        cfg.Agent,
		ExcludedOrgs: cfg.ExcludedOrgs,
		Aliases:      cfg.Aliases,
	})
	slog.Info("kept entries after filtering", "count", len(kept), "total", len(entries), "agent", cfg.Agent)

	models := filter.UniqueModels(kept)
	slog.Info("unique open-weight models to search", "models", describeModels(models))

	matcher := match.New(cfg.Searcher, cfg.Aliases).WithLimit(cfg.SearchLimit)
	results := make(map[string]match.Result)
	for _, key := range models {
		result, err := matcher.Match(ctx, key.Model, key.Org)
		if err != nil {
			// Degrade to no-match: one unreachable model must not abort the run.
			slog.Warn("model search failed", "model", key.Model, "error", err.Error())
			continue
		}
		if len(result.Candidates) == 0 {
			continue
		}
		results[key.Model] = result
	}

	return report.Build(cfg.SourceURL, kept, results), nil
}

func describeModels(models []filter.ModelKey) string {
	parts := make([]string, 0, len(models))
	for _, m := range models {
		parts = append(parts, fmt.Sprintf("%s (%s)", m.Model, m.Org))
	}
	return strings.Join(parts, ", ")
}
