package qrsvg

import (
	"fmt"
	"math"
	"strconv"
)

// parseHex decodes a "#RRGGBB" color string. Anything else is rejected so
// that interpolation can fall back to the verbatim color.
func parseHex(s string) (r, g, b uint8, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(s[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(s[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}

// interpolateHex blends from -> to at parameter t in [0,1], channel by
// channel. Channels truncate toward zero, so the #000000/#ffffff midpoint is
// #7f7f7f. Non-hex inputs return `from` unchanged rather than failing; the
// document must stay valid even when a color is not blendable.
func interpolateHex(from, to string, t float64) string {
	t = clamp01(t)
	r1, g1, b1, ok1 := parseHex(from)
	r2, g2, b2, ok2 := parseHex(to)
	if !ok1 || !ok2 {
		return from
	}
	blend := func(a, b uint8) uint8 {
		v := int(float64(a) + (float64(b)-float64(a))*t)
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return fmt.Sprintf("#%02x%02x%02x", blend(r1, r2), blend(g1, g2), blend(b1, b2))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fmtNum prints whole values as integers and everything else with two
// decimals, keeping the markup compact without losing sub-pixel positions.
func fmtNum(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// fmtPercent prints a [0,1] offset as "NN.NN%".
func fmtPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
