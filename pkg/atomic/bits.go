package atomic

import (
	"unsafe"

	"github.com/srediag/atomics/internal/platform"
)

// Integer is the closed set of atomically operable integer types.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the closed set of atomically operable floating-point types.
type Float interface {
	~float32 | ~float64
}

// Scalar is any type an Atomic may hold.
type Scalar interface {
	Integer | Float
}

// nocmp makes types containing it uncomparable, so an Atomic cannot be
// compared with == by accident.
type nocmp [0]func()

// TypeInfo describes how a scalar type maps onto the backing cell.
type TypeInfo struct {
	// Bits is the value's width.
	Bits int
	// Float marks IEEE floating-point types.
	Float bool
	// CompareBits is the width of the unsigned-integer view used for
	// bit-exact comparison in the retry loop. Equal to Bits for every
	// supported type.
	CompareBits int
}

// InfoOf returns the capability entry for T.
func InfoOf[T Scalar]() TypeInfo {
	var v T
	bits := int(unsafe.Sizeof(v)) * 8
	return TypeInfo{Bits: bits, Float: isFloat[T](), CompareBits: bits}
}

// Capability is one row of the target's width-support table.
type Capability struct {
	Bits     int
	Integers bool
	Floats   bool
	// Reason explains an unsupported combination; empty when fully supported.
	Reason string
}

// Capabilities returns the effective width-support table for this target.
// Widths it lists as unsupported have no corresponding Go scalar type, so
// the exclusion is already enforced by the Scalar constraint; the table
// exists so callers can introspect and document the boundary.
func Capabilities() []Capability {
	caps := platform.Capabilities()
	out := make([]Capability, len(caps))
	for i, s := range caps {
		out[i] = Capability{
			Bits:     int(s.Width),
			Integers: s.Integers,
			Floats:   s.Floats,
			Reason:   s.Reason,
		}
	}
	return out
}

// isFloat resolves per instantiation: integer division truncates 1/2 to 0.
func isFloat[T Scalar]() bool {
	return T(1)/T(2) != T(0)
}

// toBits reinterprets v as its zero-extended bit pattern. The size switch
// collapses at instantiation time; there is no runtime type tag.
func toBits[T Scalar](v T) uint64 {
	switch unsafe.Sizeof(v) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&v)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&v)))
	default:
		return *(*uint64)(unsafe.Pointer(&v))
	}
}

// fromBits is the inverse of toBits.
func fromBits[T Scalar](b uint64) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = uint8(b)
	case 2:
		*(*uint16)(unsafe.Pointer(&v)) = uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&v)) = uint32(b)
	default:
		*(*uint64)(unsafe.Pointer(&v)) = b
	}
	return v
}
