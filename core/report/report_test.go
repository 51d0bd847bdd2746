package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leofalp/benchmatch/core/extract"
	"github.com/leofalp/benchmatch/core/match"
)

func margin(v float64) *float64 { return &v }

func testEntries() []extract.Entry {
	return []extract.Entry{
		{Rank: 1, Agent: "Terminus 2", Model: "Foo-1", Date: "2026-01-15", AgentOrg: "Stanford", ModelOrg: "Kimi", Accuracy: 75.1, ErrorMargin: margin(2.4)},
		{Rank: 2, Agent: "Terminus 2", Model: "Bar-9", Date: "2026-01-10", AgentOrg: "Stanford", ModelOrg: "Z.ai", Accuracy: 60.7},
	}
}

func testMatches() map[string]match.Result {
	return map[string]match.Result{
		"Foo-1": {
			ModelName: "Foo-1",
			ModelOrg:  "Kimi",
			Candidates: []match.Candidate{{
				RepoID:   "moonshotai/foo-1",
				RepoKind: match.KindModel,
				URL:      "https://huggingface.co/moonshotai/foo-1",
			}},
		},
	}
}

func TestBuild_JoinsMatchedEntries(t *testing.T) {
	r := Build("https://example.com/lb", testEntries(), testMatches())

	if r.Source != "https://example.com/lb" {
		t.Errorf("Source = %q", r.Source)
	}
	if len(r.Entries) != 1 {
		t.Fatalf("expected 1 entry (unmatched dropped), got %d", len(r.Entries))
	}

	e := r.Entries[0]
	if e.Model != "Foo-1" || e.HFRepoID != "moonshotai/foo-1" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.HFURL != "https://huggingface.co/moonshotai/foo-1" {
		t.Errorf("HFURL = %q", e.HFURL)
	}
}

func TestBuild_DropsEmptyMatchResult(t *testing.T) {
	matches := testMatches()
	matches["Bar-9"] = match.Result{ModelName: "Bar-9", ModelOrg: "Z.ai"}

	r := Build("src", testEntries(), matches)
	if len(r.Entries) != 1 {
		t.Fatalf("entry with empty candidates must be dropped, got %d entries", len(r.Entries))
	}
}

func TestBuild_EmptyInputStillValid(t *testing.T) {
	r := Build("src", nil, nil)
	if r.Entries == nil {
		t.Fatal("Entries must be an empty slice, not nil, so JSON emits []")
	}
}

func TestWriteFile_Shape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matched-repos.json")
	r := Build("https://example.com/lb", testEntries(), testMatches())

	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"source\"") {
		t.Errorf("expected two-space indentation, got:\n%s", raw)
	}

	var decoded struct {
		Source  string `json:"source"`
		Entries []struct {
			Rank        int      `json:"rank"`
			Model       string   `json:"model"`
			ErrorMargin *float64 `json:"error_margin"`
			HFRepoID    string   `json:"hf_repo_id"`
			HFURL       string   `json:"hf_url"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.Source != "https://example.com/lb" || len(decoded.Entries) != 1 {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}
	if decoded.Entries[0].ErrorMargin == nil || *decoded.Entries[0].ErrorMargin != 2.4 {
		t.Errorf("error_margin not preserved: %v", decoded.Entries[0].ErrorMargin)
	}
}

// A margin of "N/A" is serialised as an explicit null, never omitted and never
// a placeholder string.
func TestWriteFile_NullMargin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	entries := []extract.Entry{{Rank: 1, Agent: "A", Model: "Foo-1", ModelOrg: "Kimi", Accuracy: 60.7}}

	r := Build("src", entries, testMatches())
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(raw), `"error_margin": null`) {
		t.Errorf("expected error_margin: null in output, got:\n%s", raw)
	}
}

func TestSummary(t *testing.T) {
	var sb strings.Builder
	r := Build("src", testEntries(), testMatches())
	r.Summary(&sb, "Terminus 2")

	out := sb.String()
	if !strings.Contains(out, "=== Terminus 2 + Open-Weight Models ===") {
		t.Errorf("missing heading in summary:\n%s", out)
	}
	if !strings.Contains(out, "moonshotai/foo-1") {
		t.Errorf("missing repo id in summary:\n%s", out)
	}
	if !strings.Contains(out, "75.1%") {
		t.Errorf("missing accuracy in summary:\n%s", out)
	}
}
