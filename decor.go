package qrsvg

import (
	"fmt"
	"html"
	"math"
)

// writeBackground fills the canvas. A flat rect is emitted when a background
// color is set; the tiled pattern is layered on top when configured, so it
// also works over a transparent document.
func (r *renderer) writeBackground() {
	if bg := r.cfg.Color.Background; bg != "" {
		fmt.Fprintf(&r.b, `<rect width="%s" height="%s" fill="%s"/>`,
			fmtNum(r.geo.width), fmtNum(r.geo.height), bg)
	}
	if r.cfg.Advanced.Pattern != nil {
		fmt.Fprintf(&r.b, `<rect width="%s" height="%s" fill="url(#bgPattern)"/>`,
			fmtNum(r.geo.width), fmtNum(r.geo.height))
	}
}

// writeBorders draws each border spec as an independent stroke-only
// rectangle. Nested specs are not scaled automatically: Inner steps inward
// past the parent's thickness, Outer draws at the parent's own inset.
func (r *renderer) writeBorders() {
	r.writeBorderSpec(r.cfg.Border, 0)
}

func (r *renderer) writeBorderSpec(spec *BorderOptions, inset float64) {
	if spec == nil || spec.Thickness <= 0 {
		return
	}
	half := spec.Thickness / 2
	x, y := inset+half, inset+half
	w := r.geo.width - 2*(inset+half)
	h := r.geo.height - 2*(inset+half)
	rx := spec.Round * math.Min(w, h) / 2

	r.b.WriteString(`<rect x="` + fmtNum(x) + `" y="` + fmtNum(y) +
		`" width="` + fmtNum(w) + `" height="` + fmtNum(h) + `"`)
	if rx > 0 {
		r.b.WriteString(` rx="` + fmtNum(rx) + `"`)
	}
	fmt.Fprintf(&r.b, ` fill="none" stroke="%s" stroke-width="%s"/>`, spec.Color, fmtNum(spec.Thickness))

	r.writeBorderSpec(spec.Inner, inset+spec.Thickness)
	r.writeBorderSpec(spec.Outer, inset)
}

// writeQuietZoneAccent outlines the quiet zone one module outside the symbol
// bounds.
func (r *renderer) writeQuietZoneAccent() {
	qz := r.cfg.Advanced.QuietZone
	if qz == nil {
		return
	}
	ms := r.geo.moduleSize
	symbol := float64(r.geo.n) * ms
	r.b.WriteString(`<rect x="` + fmtNum(r.geo.originX-ms) + `" y="` + fmtNum(r.geo.originY-ms) +
		`" width="` + fmtNum(symbol+2*ms) + `" height="` + fmtNum(symbol+2*ms) + `"`)
	fmt.Fprintf(&r.b, ` fill="none" stroke="%s" stroke-width="%s"`, qz.Color, fmtNum(qz.Width))
	if len(qz.DashPattern) > 0 {
		r.b.WriteString(` stroke-dasharray="`)
		for i, d := range qz.DashPattern {
			if i > 0 {
				r.b.WriteString(" ")
			}
			r.b.WriteString(fmtNum(d))
		}
		r.b.WriteString(`"`)
	}
	r.b.WriteString(`/>`)
}

// writeLogo embeds the centered logo image. A hole radius without an image
// draws nothing here; it only blanks modules via the exclusion predicate.
func (r *renderer) writeLogo() {
	logo := r.cfg.Logo
	if logo.Image == "" {
		return
	}
	size := r.geo.drawableSize * clamp01(logo.SizeRatio)
	x := (r.geo.width - size) / 2
	y := (r.geo.height - size) / 2
	fmt.Fprintf(&r.b, `<image x="%s" y="%s" width="%s" height="%s" href="%s" preserveAspectRatio="xMidYMid meet"/>`,
		fmtNum(x), fmtNum(y), fmtNum(size), fmtNum(size), logo.Image)
}

// writeTypography renders the caption text after the clip group closes so a
// circular crop never cuts it off.
func (r *renderer) writeTypography() {
	t := r.cfg.Advanced.Typography
	if t == nil || t.Text == "" {
		return
	}
	text := html.EscapeString(t.Text)
	switch t.Path {
	case PathCircular:
		fmt.Fprintf(&r.b, `<text font-size="%s" fill="%s"><textPath href="#circularPath">%s</textPath></text>`,
			fmtNum(t.FontSize), t.Color, text)
	case PathTop:
		fmt.Fprintf(&r.b, `<text x="%s" y="%s" text-anchor="middle" font-size="%s" fill="%s">%s</text>`,
			fmtNum(r.geo.width/2), fmtNum(t.FontSize+2), fmtNum(t.FontSize), t.Color, text)
	case PathBottom:
		fmt.Fprintf(&r.b, `<text x="%s" y="%s" text-anchor="middle" font-size="%s" fill="%s">%s</text>`,
			fmtNum(r.geo.width/2), fmtNum(r.geo.height-t.FontSize/2), fmtNum(t.FontSize), t.Color, text)
	}
}
