// Package upstream classifies items arriving from an agent/LLM orchestration
// runtime into a canonical record the rest of the adapter can act on,
// regardless of which of the three accepted dialects produced them: a plain
// text token, a message-chunk object, or a lifecycle event object.
//
// [Stream] wraps an [iter.Seq2] of [Item]: callers consume it with Iter() for
// real-time processing or Collect() to gather every item (mainly useful in
// tests). [Classify] is the pure function translating one Item into a
// [Record]; the translation engine (core/translate) drives a Stream and
// calls Classify once per item.
package upstream
