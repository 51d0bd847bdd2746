package filter

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/leofalp/benchmatch/core/extract"
)

// AliasTable maps a model provider's leaderboard display name to its canonical
// hub-owner identifier. It is read-only configuration.
type AliasTable map[string]string

// Resolve returns the canonical hub owner for a display name.
func (t AliasTable) Resolve(displayName string) (string, bool) {
	owner, ok := t[displayName]
	return owner, ok
}

// Config bundles the filtering rules: the agent whose runs are kept, the
// organizations excluded for being closed-source, and the alias table that
// decides which remaining organizations are resolvable on the hub.
type Config struct {
	Agent        string
	ExcludedOrgs map[string]bool
	Aliases      AliasTable
}

// ModelKey identifies a model by name and provider organization. It is the
// unit of work for hub matching.
type ModelKey struct {
	Model string
	Org   string
}

// Apply keeps an entry iff its agent matches cfg.Agent, its model org is not
// excluded, and its model org has an alias-table entry. Entries that pass the
// first two rules but lack an alias are reported once per organization as
// skipped, to distinguish "unmapped" from "closed-source".
func Apply(entries []extract.Entry, cfg Config) []extract.Entry {
	var kept []extract.Entry
	unmapped := make(map[string]bool)

	for _, e := range entries {
		if e.Agent != cfg.Agent || cfg.ExcludedOrgs[e.ModelOrg] {
			continue
		}
		if _, ok := cfg.Aliases.Resolve(e.ModelOrg); !ok {
			unmapped[e.ModelOrg] = true
			continue
		}
		kept = append(kept, e)
	}

	if len(unmapped) > 0 {
		orgs := make([]string, 0, len(unmapped))
		for org := range unmapped {
			orgs = append(orgs, org)
		}
		sort.Strings(orgs)
		slog.Info("skipped model orgs with no hub alias", "orgs", strings.Join(orgs, ", "))
	}

	return kept
}

// UniqueModels returns the distinct (model, org) pairs of entries in
// first-seen order.
func UniqueModels(entries []extract.Entry) []ModelKey {
	seen := make(map[ModelKey]bool)
	var models []ModelKey
	for _, e := range entries {
		key := ModelKey{Model: e.Model, Org: e.ModelOrg}
		if seen[key] {
			continue
		}
		seen[key] = true
		models = append(models, key)
	}
	return models
}
