// Package logging provides structured logging helpers for mcp-linode.
//
// The package standardizes slog attribute names across the codebase so that
// log lines from the API client, the retry layer, and the tool handlers can
// be correlated by the same keys. It also provides sanitization helpers for
// values that must never appear in logs verbatim, most importantly API
// tokens.
package logging
