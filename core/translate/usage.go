package translate

import (
	"github.com/leofalp/aisdkstream/core/chunk"
	"github.com/leofalp/aisdkstream/internal/utils"
)

// usageAccumulator sums token counts across every model run observed during
// a stream: a run's partial usage must still contribute to the usage
// attached to the terminal finish chunk even if other runs in the same
// message also report it.
type usageAccumulator struct {
	total chunk.Usage
	seen  bool
}

func newUsageAccumulator() *usageAccumulator {
	return &usageAccumulator{}
}

func (u *usageAccumulator) Add(delta *chunk.Usage) {
	if delta == nil {
		return
	}
	u.total.Add(delta)
	u.seen = true
}

// Usage returns the accumulated total, or nil if no run ever reported
// usage — an absent usage block, not a zeroed one, on the finish chunk.
func (u *usageAccumulator) Usage() *chunk.Usage {
	if !u.seen {
		return nil
	}
	return utils.Ptr(u.total)
}
