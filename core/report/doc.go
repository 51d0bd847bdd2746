// Package report joins filtered leaderboard entries with their hub matches
// into the final output document. [Build] is a pure join: entries whose model
// has no retained candidate are dropped rather than emitted with empty repo
// fields. The resulting [Report] can be persisted as indented JSON with
// [Report.WriteFile] and summarised for the console with [Report.Summary].
package report
