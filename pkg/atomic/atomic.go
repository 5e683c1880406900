package atomic

import (
	"sync/atomic"
	"unsafe"
)

// Atomic holds one scalar of type T at a stable address. The zero value
// holds the zero of T and is ready to use. All operations are at least
// acquire/release ordered; Go's sync/atomic, which backs every operation,
// is sequentially consistent.
//
// The value lives in a single 64-bit cell as its zero-extended bit pattern.
// atomic.Uint64 guarantees the 8-byte alignment 32-bit targets need.
type Atomic[T Scalar] struct {
	_ nocmp
	v atomic.Uint64
}

// New returns an Atomic holding v.
func New[T Scalar](v T) *Atomic[T] {
	a := &Atomic[T]{}
	a.Store(v)
	return a
}

// Load atomically reads the value.
func (a *Atomic[T]) Load() T {
	return fromBits[T](a.v.Load())
}

// Store atomically writes v.
func (a *Atomic[T]) Store(v T) {
	a.v.Store(toBits(v))
}

// Swap atomically stores v and returns the previous value.
func (a *Atomic[T]) Swap(v T) T {
	return fromBits[T](a.v.Swap(toBits(v)))
}

// CompareAndSwap atomically stores desired if the current value is
// bit-identical to expected, and returns the value observed immediately
// before the attempt. The swap happened iff the returned value is
// bit-identical to expected. Comparison is on bit patterns, not on T's ==:
// for floats that makes a NaN CAS against itself succeed and keeps a
// -0.0/+0.0 mix-up from masking a conflicting write.
func (a *Atomic[T]) CompareAndSwap(expected, desired T) T {
	expBits, desBits := toBits(expected), toBits(desired)
	for {
		cur := a.v.Load()
		if cur != expBits {
			return fromBits[T](cur)
		}
		if a.v.CompareAndSwap(expBits, desBits) {
			return expected
		}
	}
}

// FetchAdd atomically adds v to the value and returns the previous value.
// 64-bit integers map to the native atomic add; every other instantiation
// runs the compare-and-swap retry loop, computing the sum in T so integer
// wraparound and float rounding follow T's own arithmetic.
func (a *Atomic[T]) FetchAdd(v T) T {
	if !isFloat[T]() && unsafe.Sizeof(v) == 8 {
		d := toBits(v)
		return fromBits[T](a.v.Add(d) - d)
	}
	return a.fetchUpdate(func(old T) T { return old + v })
}

// FetchSub atomically subtracts v from the value and returns the previous
// value.
func (a *Atomic[T]) FetchSub(v T) T {
	if !isFloat[T]() && unsafe.Sizeof(v) == 8 {
		d := toBits(v)
		return fromBits[T](a.v.Add(-d) + d)
	}
	return a.fetchUpdate(func(old T) T { return old - v })
}

// FetchMax atomically stores the larger of the value and v, returning the
// previous value. The comparison runs in T, so unsigned types compare
// unsigned and signed types compare signed.
func (a *Atomic[T]) FetchMax(v T) T {
	return a.fetchUpdate(func(old T) T { return max(old, v) })
}

// FetchMin atomically stores the smaller of the value and v, returning the
// previous value.
func (a *Atomic[T]) FetchMin(v T) T {
	return a.fetchUpdate(func(old T) T { return min(old, v) })
}

// fetchUpdate applies f under a compare-and-swap retry loop and returns the
// value f was applied to. Success is judged on the cell's bit pattern,
// never on T's value equality: NaN is not value-equal to itself, and -0.0
// is value-equal to +0.0, so judging on T would fail uncontended NaN
// updates and mask conflicting concurrent writes. Lock-free, not
// wait-free: the loop has no retry bound.
func (a *Atomic[T]) fetchUpdate(f func(T) T) T {
	for {
		oldBits := a.v.Load()
		old := fromBits[T](oldBits)
		if a.v.CompareAndSwap(oldBits, toBits(f(old))) {
			return old
		}
	}
}
