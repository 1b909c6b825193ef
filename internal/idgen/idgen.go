package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// MessageID mints a fresh assistant message id.
func MessageID() string {
	return "msg_" + uuid.NewString()
}

// ToolCallIDFallback mints a tool-call id for the rare case a tool-start
// event arrives with no run id to adopt as its identity.
func ToolCallIDFallback() string {
	return "tool_" + uuid.NewString()
}

var textSegmentCounter atomic.Int64

// TextSegmentID mints a monotonically increasing synthetic text segment id,
// used when a text event arrives with no owning run id to derive one from.
func TextSegmentID() string {
	n := textSegmentCounter.Add(1)
	return "text-" + strconv.FormatInt(n, 10)
}
