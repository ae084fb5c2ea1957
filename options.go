package qrsvg

// ECCLevel is the QR error-correction strength passed to the encoder.
type ECCLevel int

const (
	ECCLow ECCLevel = iota
	ECCMedium
	ECCQuartile
	ECCHigh
)

// QROptions are forwarded to the encoder collaborator. MaskOverride -1 lets
// the encoder pick a mask itself. Setting MinVersion == MaxVersion pins that
// symbol version; a wider range leaves the choice to the encoder.
type QROptions struct {
	Level        ECCLevel
	MaskOverride int
	MinVersion   int
	MaxVersion   int
}

// LayoutOptions size the canvas. CircleShape crops the rendered symbol into
// a circle; the square symbol is then inscribed so no corner is clipped.
type LayoutOptions struct {
	Width       float64
	Height      float64
	Margin      float64
	CircleShape bool
}

// ModuleShape selects the drawing algorithm for data modules.
type ModuleShape int

const (
	ModuleSquare ModuleShape = iota
	ModuleCircle
	ModuleClassy
	ModuleRounded
	ModuleExtraRounded
	ModuleClassyRounded
)

// ModuleOptions style individual modules. RadiusFactor is a fraction of the
// module size in [0, 0.5]. The three booleans refine square and rounded
// shapes: Rounded turns RadiusFactor-driven corner rounding on, ExtraRounded
// escalates to the near-circular geometry and ClassyRounded to the
// ring-plus-dot hybrid. Circle and classy shapes ignore them.
type ModuleOptions struct {
	Shape         ModuleShape
	RadiusFactor  float64
	Rounded       bool
	ExtraRounded  bool
	ClassyRounded bool
}

// effectiveShape resolves the boolean refinements against the base Shape.
// ClassyRounded wins over ExtraRounded when both are set.
func (m ModuleOptions) effectiveShape() ModuleShape {
	switch m.Shape {
	case ModuleSquare, ModuleRounded:
		if m.ClassyRounded {
			return ModuleClassyRounded
		}
		if m.ExtraRounded {
			return ModuleExtraRounded
		}
	}
	return m.Shape
}

// ColorOptions hold the flat fills. An empty Background means no background
// rect at all (transparent document).
type ColorOptions struct {
	Foreground string
	Background string
}

// LogoOptions describe the centered logo. Image is a URL or data URI;
// HoleRadius carves a blank disc out of the modules and works with or
// without an image.
type LogoOptions struct {
	Image      string
	SizeRatio  float64
	HoleRadius float64
}

type locatorKind int

const (
	locatorSquare locatorKind = iota
	locatorCircle
	locatorRounded
	locatorClassy
)

// LocatorShape is the closed set of finder-pattern overrides. Construct one
// with LocatorSquareShape, LocatorCircleShape, LocatorRoundedShape or
// LocatorClassyShape.
type LocatorShape struct {
	kind         locatorKind
	radiusFactor float64
}

func LocatorSquareShape() LocatorShape { return LocatorShape{kind: locatorSquare} }
func LocatorCircleShape() LocatorShape { return LocatorShape{kind: locatorCircle} }
func LocatorClassyShape() LocatorShape { return LocatorShape{kind: locatorClassy} }

// LocatorRoundedShape rounds the corners by radiusFactor of the locator size.
func LocatorRoundedShape(radiusFactor float64) LocatorShape {
	return LocatorShape{kind: locatorRounded, radiusFactor: radiusFactor}
}

// LocatorOptions replace the three finder patterns with a styled shape drawn
// on top; the modules underneath are skipped. SizeRatio is in modules, 7.0
// being the standard finder footprint.
type LocatorOptions struct {
	Shape     LocatorShape
	Color     string
	SizeRatio float64
}

// GradientType selects the global gradient definition.
type GradientType int

const (
	GradientLinear GradientType = iota
	GradientRadial
)

// GradientStop is one (offset, color) pair, offset in [0,1].
type GradientStop struct {
	Offset float64
	Color  string
}

// GradientOptions define one global SVG gradient shared by all modules.
// Rotation is in radians and only affects the linear kind.
type GradientOptions struct {
	Type     GradientType
	Stops    []GradientStop
	Rotation float64
}

// BorderOptions draw a stroke-only rectangle at the canvas edge. Inner and
// Outer nest further independent border specs; each carries its own
// thickness, color and rounding.
type BorderOptions struct {
	Thickness float64
	Color     string
	Round     float64
	Inner     *BorderOptions
	Outer     *BorderOptions
}

// ModuleOutline strokes every module element on top of its fill.
type ModuleOutline struct {
	Color string
	Width float64
}

// QuietZoneAccent draws a rectangle one module outside the symbol bounds.
type QuietZoneAccent struct {
	Color       string
	Width       float64
	DashPattern []float64
}

// DropShadow parameterizes the dropShadow filter applied to the symbol group.
type DropShadow struct {
	Blur    float64
	Opacity float64
	OffsetX float64
	OffsetY float64
}

// PatternType is the tile primitive of a background pattern.
type PatternType int

const (
	PatternDots PatternType = iota
	PatternGrid
	PatternDiagonal
	PatternHexagon
)

// BackgroundPattern tiles the canvas behind the symbol.
type BackgroundPattern struct {
	Type    PatternType
	Color   string
	Opacity float64
	Size    float64
}

// MaskingType selects how the per-module blend ratio is computed.
type MaskingType int

const (
	MaskingConcentric MaskingType = iota
	MaskingRadial
	MaskingLinear
)

// GradientMasking blends each module's fill between CenterColor and
// EdgeColor by its position. Distinct from GradientOptions: the color is
// resolved per module, not shared via a gradient url.
type GradientMasking struct {
	Type        MaskingType
	CenterColor string
	EdgeColor   string
}

// TypographyPath places micro typography on a circle or along an edge.
type TypographyPath int

const (
	PathCircular TypographyPath = iota
	PathTop
	PathBottom
)

// MicroTypography renders small caption text outside the clip group.
type MicroTypography struct {
	Text     string
	FontSize float64
	Color    string
	Path     TypographyPath
}

// AdvancedOptions collect the six independent overlays. Nil means off.
type AdvancedOptions struct {
	Outline    *ModuleOutline
	QuietZone  *QuietZoneAccent
	Shadow     *DropShadow
	Pattern    *BackgroundPattern
	Masking    *GradientMasking
	Typography *MicroTypography
}

// Config is the full style tree consumed by Render. It is a value: derive
// variants with NewConfig or Config.With, never by mutating a shared copy.
type Config struct {
	QR       QROptions
	Layout   LayoutOptions
	Module   ModuleOptions
	Color    ColorOptions
	Logo     LogoOptions
	Locator  *LocatorOptions
	Gradient *GradientOptions
	Border   *BorderOptions
	Advanced AdvancedOptions
}

// DefaultConfig returns a plain black-on-white square-module style.
func DefaultConfig() Config {
	return Config{
		QR: QROptions{
			Level:        ECCQuartile,
			MaskOverride: -1,
			MinVersion:   1,
			MaxVersion:   40,
		},
		Layout: LayoutOptions{
			Width:  300,
			Height: 300,
			Margin: 10,
		},
		Module: ModuleOptions{
			Shape:        ModuleSquare,
			RadiusFactor: 0.5,
		},
		Color: ColorOptions{
			Foreground: "#000000",
			Background: "#ffffff",
		},
		Logo: LogoOptions{
			SizeRatio: 0.2,
		},
	}
}
