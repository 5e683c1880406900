//go:build amd64

package platform

import "golang.org/x/sys/cpu"

// cas128Available reports whether the CPU offers a 128-bit compare-and-swap
// (CMPXCHG16B). Go cannot express a 128-bit scalar either way; this only
// feeds the capability table's reason text.
func cas128Available() bool {
	return cpu.X86.HasCX16
}
