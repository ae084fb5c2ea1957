package qrsvg

import (
	"fmt"
)

// inFinderFootprint reports whether (row, col) lies inside one of the three
// standard 7x7 finder patterns (top-left, top-right, bottom-left).
// Alignment patterns are deliberately not excluded: their true coordinates
// are version-dependent and nothing drawn here needs them.
func inFinderFootprint(row, col, n int) bool {
	if row < 7 && col < 7 {
		return true
	}
	if row < 7 && col >= n-7 {
		return true
	}
	if row >= n-7 && col < 7 {
		return true
	}
	return false
}

// writeLocators repaints the three finder corners with the configured shape.
// Without a locator override the finder patterns stay part of the normal
// module pass and nothing is drawn here.
func (r *renderer) writeLocators() {
	loc := r.cfg.Locator
	if loc == nil {
		return
	}
	size := r.geo.moduleSize * loc.SizeRatio
	symbol := float64(r.geo.n) * r.geo.moduleSize
	// TL, TR, BL corners of the symbol.
	positions := [3][2]float64{
		{r.geo.originX, r.geo.originY},
		{r.geo.originX + symbol - size, r.geo.originY},
		{r.geo.originX, r.geo.originY + symbol - size},
	}
	for _, p := range positions {
		r.writeLocatorShape(p[0], p[1], size, loc)
	}
}

func (r *renderer) writeLocatorShape(x, y, size float64, loc *LocatorOptions) {
	switch loc.Shape.kind {
	case locatorSquare:
		fmt.Fprintf(&r.b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			fmtNum(x), fmtNum(y), fmtNum(size), fmtNum(size), loc.Color)
	case locatorCircle:
		fmt.Fprintf(&r.b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
			fmtNum(x+size/2), fmtNum(y+size/2), fmtNum(size/2), loc.Color)
	case locatorRounded:
		fmt.Fprintf(&r.b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`,
			fmtNum(x), fmtNum(y), fmtNum(size), fmtNum(size),
			fmtNum(size*clampRadiusFactor(loc.Shape.radiusFactor)), loc.Color)
	case locatorClassy:
		// Ring plus center dot, proportioned like the classy-rounded module.
		cx, cy := x+size/2, y+size/2
		outer := size / 2
		inner := outer * 0.6
		strokeWidth := outer - inner
		fmt.Fprintf(&r.b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
			fmtNum(cx), fmtNum(cy), fmtNum(outer-strokeWidth/2), loc.Color, fmtNum(strokeWidth))
		fmt.Fprintf(&r.b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
			fmtNum(cx), fmtNum(cy), fmtNum(inner*0.7), loc.Color)
	}
}
