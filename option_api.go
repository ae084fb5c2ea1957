package qrsvg

// funcOption wraps a function that edits a Config copy into an Option.
type funcOption struct {
	f func(c *Config)
}

func (fo funcOption) apply(c *Config) { fo.f(c) }

func newFuncOption(f func(c *Config)) Option { return funcOption{f: f} }

// Option adjusts one knob of a Config copy during construction.
type Option interface {
	apply(c *Config)
}

// NewConfig builds a Config from the defaults plus opts.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, o := range opts {
		o.apply(&c)
	}
	return c
}

// With returns a copy of c with opts applied; c itself is untouched.
func (c Config) With(opts ...Option) Config {
	for _, o := range opts {
		o.apply(&c)
	}
	return c
}

// WithErrorCorrectionLevel sets the ECC level handed to the encoder.
func WithErrorCorrectionLevel(level ECCLevel) Option {
	return newFuncOption(func(c *Config) { c.QR.Level = level })
}

// WithMaskOverride forces a mask pattern; -1 restores automatic selection.
func WithMaskOverride(mask int) Option {
	return newFuncOption(func(c *Config) { c.QR.MaskOverride = mask })
}

// WithVersionRange bounds the symbol version the encoder may choose.
func WithVersionRange(min, max int) Option {
	return newFuncOption(func(c *Config) {
		c.QR.MinVersion = min
		c.QR.MaxVersion = max
	})
}

// WithCanvasSize sets the output width and height in pixels.
func WithCanvasSize(width, height float64) Option {
	return newFuncOption(func(c *Config) {
		c.Layout.Width = width
		c.Layout.Height = height
	})
}

// WithMargin sets the blank margin around the symbol in pixels.
func WithMargin(margin float64) Option {
	return newFuncOption(func(c *Config) { c.Layout.Margin = margin })
}

// WithCircleShape crops the symbol group into a circle.
func WithCircleShape() Option {
	return newFuncOption(func(c *Config) { c.Layout.CircleShape = true })
}

// WithModuleShape selects the module drawing style.
func WithModuleShape(shape ModuleShape) Option {
	return newFuncOption(func(c *Config) { c.Module.Shape = shape })
}

// WithRadiusFactor sets the module radius as a fraction of module size.
func WithRadiusFactor(f float64) Option {
	return newFuncOption(func(c *Config) { c.Module.RadiusFactor = f })
}

// WithRounded enables RadiusFactor-driven corner rounding on rounded modules.
func WithRounded() Option {
	return newFuncOption(func(c *Config) { c.Module.Rounded = true })
}

// WithExtraRounded marks the near-circular rounded refinement.
func WithExtraRounded() Option {
	return newFuncOption(func(c *Config) { c.Module.ExtraRounded = true })
}

// WithClassyRounded marks the ring-plus-dot rounded refinement.
func WithClassyRounded() Option {
	return newFuncOption(func(c *Config) { c.Module.ClassyRounded = true })
}

// WithFgColorHex sets the module fill.
func WithFgColorHex(hex string) Option {
	return newFuncOption(func(c *Config) {
		if hex == "" {
			return
		}
		c.Color.Foreground = hex
	})
}

// WithBgColorHex sets the background fill.
func WithBgColorHex(hex string) Option {
	return newFuncOption(func(c *Config) { c.Color.Background = hex })
}

// WithTransparentBackground drops the background rect entirely.
func WithTransparentBackground() Option {
	return newFuncOption(func(c *Config) { c.Color.Background = "" })
}

// WithLogo embeds an image (URL or data URI) sized to sizeRatio of the
// drawable area.
func WithLogo(href string, sizeRatio float64) Option {
	return newFuncOption(func(c *Config) {
		c.Logo.Image = href
		c.Logo.SizeRatio = sizeRatio
	})
}

// WithLogoHole blanks all modules within radius pixels of the canvas center.
// Works without a logo image.
func WithLogoHole(radius float64) Option {
	return newFuncOption(func(c *Config) { c.Logo.HoleRadius = radius })
}

// WithLocator styles the three finder patterns; the standard 7-module
// footprint is skipped by the module pass and redrawn as shape.
func WithLocator(shape LocatorShape, colorHex string) Option {
	return newFuncOption(func(c *Config) {
		c.Locator = &LocatorOptions{Shape: shape, Color: colorHex, SizeRatio: 7}
	})
}

// WithLocatorSizeRatio resizes the locator footprint, in modules.
func WithLocatorSizeRatio(modules float64) Option {
	return newFuncOption(func(c *Config) {
		if c.Locator == nil {
			return
		}
		loc := *c.Locator
		loc.SizeRatio = modules
		c.Locator = &loc
	})
}

// WithLinearGradient fills all modules from one linear gradient rotated by
// rotation radians.
func WithLinearGradient(rotation float64, stops ...GradientStop) Option {
	return newFuncOption(func(c *Config) {
		if len(stops) == 0 {
			return
		}
		c.Gradient = &GradientOptions{Type: GradientLinear, Stops: stops, Rotation: rotation}
	})
}

// WithRadialGradient fills all modules from one canvas-centered radial
// gradient.
func WithRadialGradient(stops ...GradientStop) Option {
	return newFuncOption(func(c *Config) {
		if len(stops) == 0 {
			return
		}
		c.Gradient = &GradientOptions{Type: GradientRadial, Stops: stops}
	})
}

// WithBorder draws stroke-only border rectangles, including any nested
// Inner/Outer specs.
func WithBorder(spec BorderOptions) Option {
	return newFuncOption(func(c *Config) { c.Border = &spec })
}

// WithModuleOutline strokes every module element.
func WithModuleOutline(colorHex string, width float64) Option {
	return newFuncOption(func(c *Config) {
		c.Advanced.Outline = &ModuleOutline{Color: colorHex, Width: width}
	})
}

// WithQuietZoneAccent outlines the quiet zone, optionally dashed.
func WithQuietZoneAccent(colorHex string, width float64, dash ...float64) Option {
	return newFuncOption(func(c *Config) {
		c.Advanced.QuietZone = &QuietZoneAccent{Color: colorHex, Width: width, DashPattern: dash}
	})
}

// WithDropShadow adds a gaussian drop shadow behind the symbol group.
func WithDropShadow(blur, opacity, offsetX, offsetY float64) Option {
	return newFuncOption(func(c *Config) {
		c.Advanced.Shadow = &DropShadow{Blur: blur, Opacity: opacity, OffsetX: offsetX, OffsetY: offsetY}
	})
}

// WithBackgroundPattern tiles the canvas with the given primitive.
func WithBackgroundPattern(t PatternType, colorHex string, opacity, size float64) Option {
	return newFuncOption(func(c *Config) {
		c.Advanced.Pattern = &BackgroundPattern{Type: t, Color: colorHex, Opacity: opacity, Size: size}
	})
}

// WithGradientMasking blends each module between centerHex and edgeHex by
// its position.
func WithGradientMasking(t MaskingType, centerHex, edgeHex string) Option {
	return newFuncOption(func(c *Config) {
		c.Advanced.Masking = &GradientMasking{Type: t, CenterColor: centerHex, EdgeColor: edgeHex}
	})
}

// WithMicroTypography renders caption text on a circular path or along the
// top/bottom edge.
func WithMicroTypography(text string, fontSize float64, colorHex string, path TypographyPath) Option {
	return newFuncOption(func(c *Config) {
		c.Advanced.Typography = &MicroTypography{Text: text, FontSize: fontSize, Color: colorHex, Path: path}
	})
}
