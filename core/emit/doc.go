// Package emit implements the manual emission channel: a thin wrapper
// applications use to push their own chunks into the same output queue the
// translation engine writes to, in strict FIFO order relative to the
// engine's own chunks. Manual emission bypasses the lifecycle tracker
// entirely — callers are responsible for keeping their own chunks balanced.
//
// A Channel can be reached two ways: an explicit handle returned by the
// façade at construction, or (when auto_context is enabled) an ambient
// context.Context value, installed and looked up the same way the
// teacher's observability package carries a Provider through context —
// never a package global, so concurrent requests stay isolated.
package emit
