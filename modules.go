package qrsvg

import (
	"fmt"
	"math"
	"strings"
)

// shouldDraw is the exclusion predicate consulted before every "on" module.
// It must be shared by all drawing algorithms or the batched and per-module
// outputs develop visible seams. A module is skipped when a locator override
// will repaint its finder footprint, or when its center falls inside the
// logo hole.
func (r *renderer) shouldDraw(row, col int) bool {
	if r.cfg.Locator != nil && inFinderFootprint(row, col, r.geo.n) {
		return false
	}
	if hole := r.cfg.Logo.HoleRadius; hole > 0 {
		x, y := r.geo.moduleCenter(row, col)
		if math.Hypot(x-r.geo.width/2, y-r.geo.height/2) < hole {
			return false
		}
	}
	return true
}

func (r *renderer) writeModules() {
	switch shape := r.cfg.Module.effectiveShape(); {
	case shape == ModuleSquare && !r.cfg.Module.Rounded && r.cfg.Advanced.Masking == nil:
		r.writeBatchedSquares()
	case shape == ModuleClassy:
		r.writeClassyRings()
	default:
		r.writeIndividualModules()
	}
}

// moduleRun is a maximal horizontal run of consecutive drawable modules.
type moduleRun struct {
	row, col, length int
}

// collectRuns scans each row and merges adjacent drawable modules. High
// versions exceed 29k modules; emitting one path segment per run instead of
// one element per module keeps the document small.
func collectRuns(mat Matrix, drawable func(row, col int) bool) []moduleRun {
	n := mat.Size()
	runs := make([]moduleRun, 0, n*4)
	for row := 0; row < n; row++ {
		col := 0
		for col < n {
			if !mat.At(row, col) || !drawable(row, col) {
				col++
				continue
			}
			start := col
			for col < n && mat.At(row, col) && drawable(row, col) {
				col++
			}
			runs = append(runs, moduleRun{row: row, col: start, length: col - start})
		}
	}
	return runs
}

// writeBatchedSquares concatenates every run into a single <path> with one
// shared fill.
func (r *renderer) writeBatchedSquares() {
	runs := collectRuns(r.mat, r.shouldDraw)
	if len(runs) == 0 {
		return
	}
	ms := r.geo.moduleSize
	var d strings.Builder
	d.Grow(len(runs) * 32)
	for _, run := range runs {
		x := r.geo.originX + float64(run.col)*ms
		y := r.geo.originY + float64(run.row)*ms
		fmt.Fprintf(&d, "M%s %sH%sV%sH%sZ",
			fmtNum(x), fmtNum(y),
			fmtNum(x+float64(run.length)*ms), fmtNum(y+ms), fmtNum(x))
	}
	fmt.Fprintf(&r.b, `<path d="%s" fill="%s"%s/>`, d.String(), r.moduleFill(), r.outlineAttrs())
}

// writeClassyRings draws each module as a hollow stroked circle. Rings are
// not rectilinear, so there is no batching.
func (r *renderer) writeClassyRings() {
	ms := r.geo.moduleSize
	strokeWidth := ms * 0.2
	radius := ms/2 - strokeWidth/2
	r.eachDrawable(func(row, col int) {
		cx, cy := r.geo.moduleCenter(row, col)
		fmt.Fprintf(&r.b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
			fmtNum(cx), fmtNum(cy), fmtNum(radius), r.maskedFill(cx, cy), fmtNum(strokeWidth))
	})
}

// writeIndividualModules emits one shape per module. Each element carries
// its own fill so gradient masking can vary the color per position.
func (r *renderer) writeIndividualModules() {
	ms := r.geo.moduleSize
	outline := r.outlineAttrs()
	shape := r.cfg.Module.effectiveShape()
	r.eachDrawable(func(row, col int) {
		cx, cy := r.geo.moduleCenter(row, col)
		x := r.geo.originX + float64(col)*ms
		y := r.geo.originY + float64(row)*ms
		fill := r.maskedFill(cx, cy)

		switch shape {
		case ModuleCircle:
			radius := ms * clampRadiusFactor(r.cfg.Module.RadiusFactor)
			fmt.Fprintf(&r.b, `<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`,
				fmtNum(cx), fmtNum(cy), fmtNum(radius), fill, outline)
		case ModuleRounded:
			rx := ms * 0.2
			if r.cfg.Module.Rounded {
				rx = ms * clampRadiusFactor(r.cfg.Module.RadiusFactor)
			}
			r.writeRoundedRect(x, y, ms, rx, fill, outline)
		case ModuleExtraRounded:
			r.writeRoundedRect(x, y, ms, ms*0.45, fill, outline)
		case ModuleClassyRounded:
			r.writeClassyRoundedModule(cx, cy, ms, fill, outline)
		default:
			// Squares land here when rounding is on or masking forces a
			// per-module fill; plain shared-fill squares take the batched path.
			rx := 0.0
			if r.cfg.Module.Rounded {
				rx = ms * clampRadiusFactor(r.cfg.Module.RadiusFactor)
			}
			r.writeRoundedRect(x, y, ms, rx, fill, outline)
		}
	})
}

func (r *renderer) writeRoundedRect(x, y, size, rx float64, fill, outline string) {
	fmt.Fprintf(&r.b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"%s/>`,
		fmtNum(x), fmtNum(y), fmtNum(size), fmtNum(size), fmtNum(rx), fill, outline)
}

// writeClassyRoundedModule is the hybrid style: a stroked rounded-rect ring
// plus a small filled center dot. The ring's outer radius is 0.45 of the
// module, the inner 0.6 of the outer, the stroke their difference. The
// module outline goes on the dot only; the ring's stroke slot already
// carries its color.
func (r *renderer) writeClassyRoundedModule(cx, cy, ms float64, fill, outline string) {
	outer := ms * 0.45
	inner := outer * 0.6
	strokeWidth := outer - inner
	mid := outer - strokeWidth/2
	fmt.Fprintf(&r.b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
		fmtNum(cx-mid), fmtNum(cy-mid), fmtNum(2*mid), fmtNum(2*mid), fmtNum(mid*0.5), fill, fmtNum(strokeWidth))
	fmt.Fprintf(&r.b, `<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`,
		fmtNum(cx), fmtNum(cy), fmtNum(inner*0.7), fill, outline)
}

// eachDrawable visits every on module that passes the exclusion predicate,
// in row-major order so output stays deterministic.
func (r *renderer) eachDrawable(fn func(row, col int)) {
	n := r.mat.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if r.mat.At(row, col) && r.shouldDraw(row, col) {
				fn(row, col)
			}
		}
	}
}

func clampRadiusFactor(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 0.5 {
		return 0.5
	}
	return f
}
