// Package utils provides shared low-level helpers used throughout the
// aisdkstream internals: a generic pointer helper for optional struct
// fields ([Ptr]), and a simple elapsed-time timer ([Timer]) used to measure
// total stream duration without pulling in a tracing SDK.
package utils
