// Package pipeline runs the leaderboard collection end to end: fetch the
// page, extract and parse the results table, filter and deduplicate the
// entries, match each distinct model to a hub repository, and assemble the
// final report. Execution is sequential and single-pass; only a fetch or
// extraction failure is fatal, everything else degrades to dropping the
// affected unit of data.
package pipeline
