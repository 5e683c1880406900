package atomic

import "sync/atomic"

// fenceCell sits alone on its cache line so fences never contend with
// neighboring package data.
var fenceCell struct {
	_ [56]byte
	v atomic.Uint64
	_ [56]byte
}

// Fence emits a full sequentially consistent memory barrier, independent of
// any particular Atomic. It changes no stored value; it only pins a single
// global order onto the memory effects around it. Considerably more
// expensive than the per-operation ordering every Atomic method already
// carries; reach for it only when publish patterns need a total order.
func Fence() {
	fenceCell.v.Add(0)
}
