// Package match resolves free-text model names to hub repositories. A
// [Matcher] issues one popularity-ranked search per model through the
// [Searcher] capability and selects the first candidate whose owner equals the
// model organization's canonical hub owner, compared case-insensitively. At
// most one candidate is ever retained; ties between repositories of the same
// owner are settled by search rank alone.
package match
