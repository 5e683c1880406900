package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedWidths(t *testing.T) {
	for _, w := range []Width{W8, W16, W32, W64} {
		assert.True(t, Supported(w), "width %d must be operable", w)
	}
	assert.False(t, Supported(W128))
	assert.False(t, Supported(Width(24)))
}

func TestCapabilityTable(t *testing.T) {
	caps := Capabilities()
	assert.Len(t, caps, 5)

	byWidth := make(map[Width]Support, len(caps))
	for _, s := range caps {
		byWidth[s.Width] = s
	}

	assert.True(t, byWidth[W32].Floats)
	assert.True(t, byWidth[W64].Floats)
	assert.False(t, byWidth[W16].Floats)
	assert.NotEmpty(t, byWidth[W16].Reason)
	assert.False(t, byWidth[W128].Integers)
	assert.NotEmpty(t, byWidth[W128].Reason)

	// Capabilities hands out a copy, not the live table.
	caps[0].Integers = false
	assert.True(t, Supported(W8))
}

func TestSupportedWidthsList(t *testing.T) {
	ws := SupportedWidths()
	assert.Equal(t, []Width{W8, W16, W32, W64}, ws)
}
