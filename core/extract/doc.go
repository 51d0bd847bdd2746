// Package extract pulls the results table out of a leaderboard page and turns
// its rows into typed entries.
//
// The page is treated as semi-structured markup with a fixed, known schema:
// [Rows] locates the first <table> block with a small tolerant scanner rather
// than a full document parser, strips nested tags from each cell, and skips
// header and structurally empty rows. [ParseEntry] converts one row's cells
// into a [Entry], rejecting malformed rows with a per-row error the caller is
// expected to log and skip.
package extract
