package qrsvg

import (
	"fmt"
	"math"
	"strings"
)

// geometry is the pixel coordinate frame shared by every drawing step.
// Computed once per render from the matrix size and the layout options.
type geometry struct {
	width, height float64
	n             int

	drawableSize  float64
	effectiveSize float64
	moduleSize    float64
	originX       float64
	originY       float64
}

func newGeometry(n int, lo LayoutOptions) geometry {
	g := geometry{width: lo.Width, height: lo.Height, n: n}
	g.drawableSize = math.Min(lo.Width, lo.Height) - 2*lo.Margin
	g.effectiveSize = g.drawableSize
	if lo.CircleShape {
		// Inscribe the square symbol in the circular viewport so no corner
		// gets clipped.
		g.effectiveSize = g.drawableSize / math.Sqrt2
	}
	g.moduleSize = g.effectiveSize / float64(n)
	g.originX = (lo.Width - float64(n)*g.moduleSize) / 2
	g.originY = (lo.Height - float64(n)*g.moduleSize) / 2
	return g
}

// moduleCenter returns the pixel center of the module at (row, col).
func (g geometry) moduleCenter(row, col int) (x, y float64) {
	x = g.originX + (float64(col)+0.5)*g.moduleSize
	y = g.originY + (float64(row)+0.5)*g.moduleSize
	return x, y
}

type renderer struct {
	b   strings.Builder
	mat Matrix
	cfg Config
	geo geometry
}

// Render turns the module matrix and style config into a complete SVG
// document. It assumes the documented preconditions (square matrix, N >= 21,
// positive canvas) and performs no I/O.
func Render(mat Matrix, cfg Config) string {
	r := &renderer{mat: mat, cfg: cfg, geo: newGeometry(mat.Size(), cfg.Layout)}
	r.b.Grow(16 * 1024)

	fmt.Fprintf(&r.b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		fmtNum(r.geo.width), fmtNum(r.geo.height), fmtNum(r.geo.width), fmtNum(r.geo.height))
	r.writeDefs()
	r.writeBackground()
	r.writeBorders()
	r.writeQuietZoneAccent()

	r.openSymbolGroup()
	r.writeLogo()
	r.writeLocators()
	r.writeModules()
	r.b.WriteString(`</g>`)

	r.writeTypography()
	r.b.WriteString(`</svg>`)
	return r.b.String()
}

// openSymbolGroup wraps logo, locators and modules so the circular clip and
// the drop shadow cover the symbol but not background or borders.
func (r *renderer) openSymbolGroup() {
	var attrs []string
	if r.cfg.Layout.CircleShape {
		attrs = append(attrs, `clip-path="url(#clipCircle)"`)
	}
	if r.cfg.Advanced.Shadow != nil {
		attrs = append(attrs, `filter="url(#dropShadow)"`)
	}
	if len(attrs) == 0 {
		r.b.WriteString(`<g>`)
		return
	}
	fmt.Fprintf(&r.b, `<g %s>`, strings.Join(attrs, " "))
}

// moduleFill is the fill shared by all modules when gradient masking is off.
func (r *renderer) moduleFill() string {
	if r.cfg.Gradient != nil {
		return "url(#grad0)"
	}
	return r.cfg.Color.Foreground
}

// maskedFill resolves one module's fill from its pixel center per the
// gradient-masking mode. Falls back to the shared fill when either masking
// color is unset.
func (r *renderer) maskedFill(x, y float64) string {
	m := r.cfg.Advanced.Masking
	if m == nil || m.CenterColor == "" || m.EdgeColor == "" {
		return r.moduleFill()
	}
	cx, cy := r.geo.width/2, r.geo.height/2
	dist := math.Hypot(x-cx, y-cy)
	var ratio float64
	switch m.Type {
	case MaskingConcentric:
		ratio = dist / math.Hypot(cx, cy)
	case MaskingRadial:
		ratio = dist / math.Min(cx, cy)
	case MaskingLinear:
		ratio = x / (2 * cx)
	}
	return interpolateHex(m.CenterColor, m.EdgeColor, clamp01(ratio))
}

// outlineAttrs is the stroke suffix added to filled module elements when the
// module-outline overlay is on. Stroked ring elements keep their stroke slot
// for the module color and are exempt.
func (r *renderer) outlineAttrs() string {
	o := r.cfg.Advanced.Outline
	if o == nil {
		return ""
	}
	return fmt.Sprintf(` stroke="%s" stroke-width="%s"`, o.Color, fmtNum(o.Width))
}
