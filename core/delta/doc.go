// Package delta converts a per-model-run sequence of text chunks, which may
// be cumulative or incremental depending on the upstream provider, into pure
// incremental deltas. It holds the one piece of mutable state that makes the
// delta-concatenation invariant (concatenating every emitted delta
// reconstructs the final text exactly once) provable: the last accumulated
// string observed per run id.
package delta
