package match

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leofalp/benchmatch/core/filter"
)

const (
	// DefaultLimit bounds the number of search candidates scanned per model.
	DefaultLimit = 5

	// hubURL is the base URL hub repo pages live under.
	hubURL = "https://huggingface.co"
)

// Kind classifies a hub repository.
type Kind string

const (
	KindModel   Kind = "model"
	KindDataset Kind = "dataset"
	KindSpace   Kind = "space"
)

// Candidate is a single hub repository match.
type Candidate struct {
	RepoID   string `json:"repo_id"`
	RepoKind Kind   `json:"repo_kind"`
	URL      string `json:"url"`
}

// Result holds the hub candidates found for one model. The first-match policy
// caps Candidates at a single element.
type Result struct {
	ModelName  string      `json:"model_name"`
	ModelOrg   string      `json:"model_org"`
	Candidates []Candidate `json:"candidates"`
}

// Searcher is the external search capability: it returns up to limit repo
// identifiers of the form "<owner>/<name>", ranked by popularity.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// Matcher selects hub repositories for (model, organization) pairs. Use
// [New] to construct one.
type Matcher struct {
	searcher Searcher
	aliases  filter.AliasTable
	limit    int
}

// New returns a Matcher that resolves organizations through aliases and
// searches via s, scanning at most [DefaultLimit] candidates per model.
func New(s Searcher, aliases filter.AliasTable) *Matcher {
	return &Matcher{
		searcher: s,
		aliases:  aliases,
		limit:    DefaultLimit,
	}
}

// WithLimit overrides the candidate limit and returns the matcher so calls
// can be chained. Non-positive values are ignored.
func (m *Matcher) WithLimit(limit int) *Matcher {
	if limit > 0 {
		m.limit = limit
	}
	return m
}

// Match resolves modelOrg to its canonical hub owner and scans one search
// call's candidates in ranked order for the first repo owned by that owner.
// Scanning stops at the first hit, so the result holds zero or one candidate.
//
// A missing alias yields an empty Result without error; the filter stage is
// expected to have screened those out already. A failed search is returned as
// an error for the caller to degrade to "no match" — it is never fatal by
// itself.
func (m *Matcher) Match(ctx context.Context, modelName, modelOrg string) (Result, error) {
	result := Result{ModelName: modelName, ModelOrg: modelOrg}

	owner, ok := m.aliases.Resolve(modelOrg)
	if !ok {
		slog.Info("model skipped, no hub alias for org", "model", modelName, "org", modelOrg)
		return result, nil
	}

	ids, err := m.searcher.Search(ctx, modelName, m.limit)
	if err != nil {
		return result, fmt.Errorf("hub search for %q: %w", modelName, err)
	}

	for _, id := range ids {
		repoOwner, _, _ := strings.Cut(id, "/")
		if strings.EqualFold(repoOwner, owner) {
			result.Candidates = append(result.Candidates, Candidate{
				RepoID:   id,
				RepoKind: KindModel,
				URL:      RepoURL(id),
			})
			break
		}
	}

	if len(result.Candidates) > 0 {
		slog.Info("model matched", "model", modelName, "repo", result.Candidates[0].RepoID)
	} else {
		slog.Info("no repo found for model", "model", modelName, "owner", owner)
	}
	return result, nil
}

// RepoURL returns the hub page URL for a repo identifier.
func RepoURL(repoID string) string {
	return hubURL + "/" + repoID
}
