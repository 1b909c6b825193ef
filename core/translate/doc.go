// Package translate owns the translation engine: the driver that binds a
// message id, pulls items from an upstream.Stream, routes each through
// core/delta and core/lifecycle, and merges manual emissions from
// core/emit into the same output queue in FIFO order. Engine is an
// immutable object built once from config.Options, the same construction
// shape as an orchestrator client, but it owns a translation pipeline
// instead of a provider call.
package translate
