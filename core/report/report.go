package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leofalp/benchmatch/core/extract"
	"github.com/leofalp/benchmatch/core/match"
	"github.com/leofalp/benchmatch/internal/utils"
)

// Entry is a leaderboard entry enriched with its single hub repository match.
type Entry struct {
	extract.Entry
	HFRepoID string `json:"hf_repo_id"`
	HFURL    string `json:"hf_url"`
}

// Report is the persisted output document. Source records the leaderboard URL
// the entries came from.
type Report struct {
	Source  string  `json:"source"`
	Entries []Entry `json:"entries"`
}

// Build joins entries with their model's match result. Entries whose model is
// missing from matches, or whose result holds no candidate, are dropped.
func Build(source string, entries []extract.Entry, matches map[string]match.Result) Report {
	r := Report{Source: source, Entries: []Entry{}}
	for _, e := range entries {
		mr, ok := matches[e.Model]
		if !ok || len(mr.Candidates) == 0 {
			continue
		}
		repo := mr.Candidates[0]
		r.Entries = append(r.Entries, Entry{
			Entry:    e,
			HFRepoID: repo.RepoID,
			HFURL:    repo.URL,
		})
	}
	return r
}

// WriteFile writes the report to path as JSON with two-space indentation,
// fully replacing any existing file.
func (r Report) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(utils.JSONToString(r, true)), 0o644); err != nil {
		return fmt.Errorf("write report to %s: %w", path, err)
	}
	return nil
}

// Summary prints a fixed-width rank/model/org/repo/accuracy table to w. It is
// informational output only and not part of the persisted contract.
func (r Report) Summary(w io.Writer, agent string) {
	fmt.Fprintf(w, "\n=== %s + Open-Weight Models ===\n\n", agent)
	fmt.Fprintf(w, "%-6s%-22s%-14s%-45s%6s\n", "Rank", "Model", "Model Org", "HF Repo", "Acc")
	fmt.Fprintln(w, strings.Repeat("-", 95))
	for _, e := range r.Entries {
		fmt.Fprintf(w, "%-6d%-22s%-14s%-45s%5.1f%%\n", e.Rank, e.Model, e.ModelOrg, e.HFRepoID, e.Accuracy)
	}
}
