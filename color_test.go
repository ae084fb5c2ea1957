package qrsvg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolateHex_Boundaries(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#ff0000", "#0000ff"},
		{"#123456", "#654321"},
	}
	for _, p := range pairs {
		assert.Equal(t, p[0], interpolateHex(p[0], p[1], 0.0))
		assert.Equal(t, p[1], interpolateHex(p[0], p[1], 1.0))
	}
}

func TestInterpolateHex_MidpointTruncates(t *testing.T) {
	// 127.5 truncates to 0x7f, it does not round up to 0x80.
	assert.Equal(t, "#7f7f7f", interpolateHex("#000000", "#ffffff", 0.5))
}

func TestInterpolateHex_ClampsParameter(t *testing.T) {
	assert.Equal(t, "#000000", interpolateHex("#000000", "#ffffff", -2))
	assert.Equal(t, "#ffffff", interpolateHex("#000000", "#ffffff", 3))
}

func TestInterpolateHex_NonHexPassesThrough(t *testing.T) {
	// Non-hex colors silently skip interpolation and keep the start color.
	assert.Equal(t, "red", interpolateHex("red", "#ffffff", 0.5))
	assert.Equal(t, "#00ff00", interpolateHex("#00ff00", "rgb(1,2,3)", 0.5))
	assert.Equal(t, "#12345", interpolateHex("#12345", "#ffffff", 0.5))
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := parseHex("#1a2b3c")
	assert.True(t, ok)
	assert.Equal(t, uint8(0x1a), r)
	assert.Equal(t, uint8(0x2b), g)
	assert.Equal(t, uint8(0x3c), b)

	for _, bad := range []string{"", "#fff", "123456", "#12345g", "#1234567"} {
		_, _, _, ok := parseHex(bad)
		assert.False(t, ok, bad)
	}
}

func TestFmtNum(t *testing.T) {
	assert.Equal(t, "10", fmtNum(10))
	assert.Equal(t, "0", fmtNum(0))
	assert.Equal(t, "-3", fmtNum(-3))
	assert.Equal(t, "0.50", fmtNum(0.5))
	assert.Equal(t, "9.52", fmtNum(200.0/21.0))
	assert.Equal(t, "141.42", fmtNum(141.4213562))
}

func TestFmtPercent(t *testing.T) {
	assert.Equal(t, "0.00%", fmtPercent(0))
	assert.Equal(t, "33.33%", fmtPercent(1.0/3.0))
	assert.Equal(t, "100.00%", fmtPercent(1))
}
