// Package leaderboard fetches a leaderboard web page over HTTP/HTTPS. The
// fetch follows redirects, enforces transport-level and overall timeouts, and
// caps the response body size. Alongside the raw HTML needed by the table
// extractor, [Fetch] returns a Markdown rendering of the page used for log
// diagnostics when extraction fails.
package leaderboard
