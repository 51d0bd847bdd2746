// Package filter narrows parsed leaderboard entries down to the ones worth
// matching against the hub: entries for the target agent whose model provider
// is open-source and has a known hub-owner alias. It also deduplicates the
// survivors to unique (model, organization) pairs so each model is searched
// exactly once.
package filter
