// Package platform holds the capability table that decides which scalar
// widths the current target operates on atomically.
//
// The table is assembled once at startup from per-architecture files
// (platform_amd64.go, platform_arm64.go, platform_other.go). Porting to a
// new architecture or toolchain means adding such a file and adjusting the
// rows it contributes; nothing in the core packages needs to change.
package platform

import "github.com/srediag/atomics/internal/debug"

// Width is a scalar bit width.
type Width uint8

const (
	W8   Width = 8
	W16  Width = 16
	W32  Width = 32
	W64  Width = 64
	W128 Width = 128
)

// Support is one row of the capability table.
type Support struct {
	Width    Width
	Integers bool
	Floats   bool
	// Reason explains an unsupported combination; empty when fully supported.
	Reason string
}

var table []Support

func init() {
	table = []Support{
		{Width: W8, Integers: true, Floats: false, Reason: "float8 has no IEEE interchange representation in Go"},
		{Width: W16, Integers: true, Floats: false, Reason: "Go has no float16 scalar type"},
		{Width: W32, Integers: true, Floats: true},
		{Width: W64, Integers: true, Floats: true},
		{Width: W128, Integers: false, Floats: false, Reason: w128Reason()},
	}
	if debug.Enabled() {
		for _, s := range table {
			debug.Debugf("atomics capability: width=%d integers=%v floats=%v %s",
				s.Width, s.Integers, s.Floats, s.Reason)
		}
	}
}

// Capabilities returns a copy of the capability table.
func Capabilities() []Support {
	out := make([]Support, len(table))
	copy(out, table)
	return out
}

// Supported reports whether any scalar of the given width is atomically
// operable on this target.
func Supported(w Width) bool {
	for _, s := range table {
		if s.Width == w {
			return s.Integers || s.Floats
		}
	}
	return false
}

// SupportedWidths returns the widths with at least one operable scalar kind.
func SupportedWidths() []Width {
	var out []Width
	for _, s := range table {
		if s.Integers || s.Floats {
			out = append(out, s.Width)
		}
	}
	return out
}

func w128Reason() string {
	r := "Go has no 128-bit scalar type"
	if cas128Available() {
		return r + " (hardware 128-bit CAS present but unreachable)"
	}
	return r + "; hardware 128-bit CAS absent"
}
