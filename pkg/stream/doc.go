// Package stream exposes the two request-facing surfaces of the adapter:
// Facade, an async-iterable of chunks or already-serialized protocol
// strings, and ResponseBuilder, which wraps a Facade into an HTTP response
// shape (status, headers, a byte-producing body iterator) with headers
// defaulted per protocol version and merged with caller overrides.
package stream
