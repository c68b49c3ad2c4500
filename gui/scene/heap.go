package scene

import "errors"

// ErrNoMemory is returned when the allocator refuses a node's reservation.
// The node is not created and nothing is linked into the tree.
var ErrNoMemory = errors.New("scene: out of memory")

// Allocator budgets the memory held by nodes. Alloc reports false when n
// bytes are not available.
type Allocator interface {
	Alloc(n int) bool
	Free(n int)
}

// Heap is a fixed-size byte budget. A zero limit never refuses.
type Heap struct {
	limit int
	used  int
	peak  int
}

func NewHeap(limit int) *Heap {
	return &Heap{limit: limit}
}

func (h *Heap) Alloc(n int) bool {
	if h.limit > 0 && h.used+n > h.limit {
		return false
	}
	h.used += n
	h.peak = max(h.peak, h.used)
	return true
}

func (h *Heap) Free(n int) {
	h.used = max(h.used-n, 0)
}

func (h *Heap) Used() int { return h.used }
func (h *Heap) Peak() int { return h.peak }
