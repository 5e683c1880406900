// Package atomic provides a generic boxed scalar with lock-free atomic
// operations: load, store, swap, compare-and-swap, and a fetch-and-modify
// family, over every integer and floating-point width the target supports.
//
// The supported type set is closed and enforced at compile time through the
// Scalar, Integer and Float constraints. Floating-point fetch operations are
// built from a compare-and-swap retry loop over the value's bit pattern;
// there is no locking anywhere.
//
// Example usage:
//
//	var hits atomic.Atomic[uint64]
//	hits.FetchAdd(1)
//
//	temp := atomic.New[float64](36.6)
//	temp.FetchAdd(0.2)
//
// Widths the target cannot handle atomically are absent from the constraint
// set; see Capabilities for the per-width table and the reasons.
package atomic
