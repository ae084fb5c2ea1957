package qrsvg

import (
	"fmt"
	"math"
	"strings"
)

// writeDefs emits the declarative resources the drawing steps reference by
// id: bgPattern, dropShadow, grad0, clipCircle and circularPath. The block
// is omitted when no resource is needed.
func (r *renderer) writeDefs() {
	var d strings.Builder

	if p := r.cfg.Advanced.Pattern; p != nil {
		writePattern(&d, p)
	}
	if s := r.cfg.Advanced.Shadow; s != nil {
		writeDropShadow(&d, s)
	}
	if grad := r.cfg.Gradient; grad != nil {
		writeGradient(&d, grad, r.geo)
	}
	if r.cfg.Layout.CircleShape {
		radius := math.Min(r.geo.width, r.geo.height) / 2
		fmt.Fprintf(&d, `<clipPath id="clipCircle"><circle cx="%s" cy="%s" r="%s"/></clipPath>`,
			fmtNum(r.geo.width/2), fmtNum(r.geo.height/2), fmtNum(radius))
	}
	if t := r.cfg.Advanced.Typography; t != nil && t.Path == PathCircular {
		writeCircularPath(&d, t, r.geo)
	}

	if d.Len() == 0 {
		return
	}
	r.b.WriteString(`<defs>`)
	r.b.WriteString(d.String())
	r.b.WriteString(`</defs>`)
}

func writePattern(d *strings.Builder, p *BackgroundPattern) {
	s := p.Size
	op := clamp01(p.Opacity)
	fmt.Fprintf(d, `<pattern id="bgPattern" x="0" y="0" width="%s" height="%s" patternUnits="userSpaceOnUse">`,
		fmtNum(s), fmtNum(s))
	switch p.Type {
	case PatternDots:
		fmt.Fprintf(d, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s"/>`,
			fmtNum(s/2), fmtNum(s/2), fmtNum(s/4), p.Color, fmtNum(op))
	case PatternGrid:
		fmt.Fprintf(d, `<rect x="0" y="0" width="%s" height="%s" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="1"/>`,
			fmtNum(s), fmtNum(s), p.Color, fmtNum(op))
	case PatternDiagonal:
		fmt.Fprintf(d, `<path d="M0 0L%s %sM%s 0L0 %s" stroke="%s" stroke-opacity="%s" stroke-width="1"/>`,
			fmtNum(s), fmtNum(s), fmtNum(s), fmtNum(s), p.Color, fmtNum(op))
	case PatternHexagon:
		fmt.Fprintf(d, `<polygon points="%s" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="1"/>`,
			hexagonPoints(s/2, s/2, s*0.45), p.Color, fmtNum(op))
	}
	d.WriteString(`</pattern>`)
}

// hexagonPoints lists the six vertices of a flat-topped hexagon.
func hexagonPoints(cx, cy, radius float64) string {
	pts := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		angle := math.Pi/6 + float64(i)*math.Pi/3
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		pts = append(pts, fmtNum(x)+","+fmtNum(y))
	}
	return strings.Join(pts, " ")
}

func writeDropShadow(d *strings.Builder, s *DropShadow) {
	fmt.Fprintf(d, `<filter id="dropShadow" x="-20%%" y="-20%%" width="140%%" height="140%%">`+
		`<feGaussianBlur in="SourceAlpha" stdDeviation="%s"/>`+
		`<feOffset dx="%s" dy="%s" result="offsetblur"/>`+
		`<feFlood flood-color="#000000" flood-opacity="%s"/>`+
		`<feComposite in2="offsetblur" operator="in"/>`+
		`<feMerge><feMergeNode/><feMergeNode in="SourceGraphic"/></feMerge>`+
		`</filter>`,
		fmtNum(s.Blur), fmtNum(s.OffsetX), fmtNum(s.OffsetY), fmtNum(clamp01(s.Opacity)))
}

// writeGradient emits the shared module gradient. Linear endpoints come from
// projecting the canvas corners onto the rotated axis so the gradient spans
// the full diagonal at any angle; radial is canvas-centered with radius half
// the longer dimension.
func writeGradient(d *strings.Builder, grad *GradientOptions, g geometry) {
	switch grad.Type {
	case GradientLinear:
		dx := math.Cos(grad.Rotation)
		dy := -math.Sin(grad.Rotation)

		corners := [4][2]float64{
			{0, 0},
			{0, g.height},
			{g.width, 0},
			{g.width, g.height},
		}
		minProj, maxProj := math.Inf(1), math.Inf(-1)
		for _, p := range corners {
			proj := p[0]*dx + p[1]*dy
			minProj = math.Min(minProj, proj)
			maxProj = math.Max(maxProj, proj)
		}
		centerX, centerY := g.width/2, g.height/2
		halfRange := (maxProj - minProj) / 2

		fmt.Fprintf(d, `<linearGradient id="grad0" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			fmtNum(centerX-halfRange*dx), fmtNum(centerY-halfRange*dy),
			fmtNum(centerX+halfRange*dx), fmtNum(centerY+halfRange*dy))
		writeStops(d, grad.Stops)
		d.WriteString(`</linearGradient>`)
	case GradientRadial:
		radius := math.Max(g.width, g.height) / 2
		fmt.Fprintf(d, `<radialGradient id="grad0" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
			fmtNum(g.width/2), fmtNum(g.height/2), fmtNum(radius))
		writeStops(d, grad.Stops)
		d.WriteString(`</radialGradient>`)
	}
}

func writeStops(d *strings.Builder, stops []GradientStop) {
	for _, s := range stops {
		fmt.Fprintf(d, `<stop offset="%s" stop-color="%s"/>`, fmtPercent(clamp01(s.Offset)), s.Color)
	}
}

// writeCircularPath defines the text path: a full circle starting at the top
// center, inset by the font size so glyphs stay on canvas.
func writeCircularPath(d *strings.Builder, t *MicroTypography, g geometry) {
	cx, cy := g.width/2, g.height/2
	radius := math.Min(g.width, g.height)/2 - t.FontSize
	fmt.Fprintf(d, `<path id="circularPath" d="M%s %sA%s %s 0 1 1 %s %sA%s %s 0 1 1 %s %s"/>`,
		fmtNum(cx), fmtNum(cy-radius),
		fmtNum(radius), fmtNum(radius), fmtNum(cx), fmtNum(cy+radius),
		fmtNum(radius), fmtNum(radius), fmtNum(cx), fmtNum(cy-radius))
}
