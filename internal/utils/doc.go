// Package utils provides shared low-level helpers used throughout the
// benchmatch internals: safe closing of HTTP response bodies, string
// truncation for log output, and JSON pretty-printing.
package utils
