//go:build arm64

package platform

import "golang.org/x/sys/cpu"

// cas128Available reports whether the CPU offers LSE atomics, which include
// the 128-bit CASP pair instruction.
func cas128Available() bool {
	return cpu.ARM64.HasATOMICS
}
