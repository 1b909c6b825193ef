// Package idgen mints the opaque identifiers the adapter attaches to
// messages and synthetic text segments when the upstream runtime or the
// caller does not supply one. A tool-call id is normally the upstream run
// id; one is minted here only when a tool-start event carries no run id.
package idgen
