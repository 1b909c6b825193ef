// Package htmlmd converts HTML-shaped tool output or file payloads into
// Markdown, so the aggregated Message text a callback dispatcher hands to
// application code stays readable instead of carrying raw markup.
package htmlmd
