package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/qrsvg/qrsvg"
)

// fileConfig is the TOML schema of a style file. Enums travel as strings and
// are validated here; the core package only ever receives parsed values.
type fileConfig struct {
	QR struct {
		Level      string `toml:"level"`
		Mask       *int   `toml:"mask"`
		MinVersion int    `toml:"min_version"`
		MaxVersion int    `toml:"max_version"`
	} `toml:"qr"`
	Layout struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
		Margin float64 `toml:"margin"`
		Circle bool    `toml:"circle"`
	} `toml:"layout"`
	Module struct {
		Shape         string  `toml:"shape"`
		RadiusFactor  float64 `toml:"radius_factor"`
		Rounded       bool    `toml:"rounded"`
		ExtraRounded  bool    `toml:"extra_rounded"`
		ClassyRounded bool    `toml:"classy_rounded"`
	} `toml:"module"`
	Color struct {
		Foreground string `toml:"foreground"`
		// Pointer so an absent key keeps the default background while an
		// explicit "" means transparent.
		Background *string `toml:"background"`
	} `toml:"color"`
	Logo struct {
		Image      string  `toml:"image"`
		SizeRatio  float64 `toml:"size_ratio"`
		HoleRadius float64 `toml:"hole_radius"`
	} `toml:"logo"`
	Locator *struct {
		Shape        string  `toml:"shape"`
		Color        string  `toml:"color"`
		SizeRatio    float64 `toml:"size_ratio"`
		RadiusFactor float64 `toml:"radius_factor"`
	} `toml:"locator"`
	Gradient *struct {
		Type     string  `toml:"type"`
		Rotation float64 `toml:"rotation"`
		Stops    []struct {
			Offset float64 `toml:"offset"`
			Color  string  `toml:"color"`
		} `toml:"stops"`
	} `toml:"gradient"`
	Border   *fileBorder `toml:"border"`
	Advanced struct {
		Outline *struct {
			Color string  `toml:"color"`
			Width float64 `toml:"width"`
		} `toml:"outline"`
		QuietZone *struct {
			Color string    `toml:"color"`
			Width float64   `toml:"width"`
			Dash  []float64 `toml:"dash"`
		} `toml:"quiet_zone"`
		Shadow *struct {
			Blur    float64 `toml:"blur"`
			Opacity float64 `toml:"opacity"`
			OffsetX float64 `toml:"offset_x"`
			OffsetY float64 `toml:"offset_y"`
		} `toml:"shadow"`
		Pattern *struct {
			Type    string  `toml:"type"`
			Color   string  `toml:"color"`
			Opacity float64 `toml:"opacity"`
			Size    float64 `toml:"size"`
		} `toml:"pattern"`
		Masking *struct {
			Type        string `toml:"type"`
			CenterColor string `toml:"center_color"`
			EdgeColor   string `toml:"edge_color"`
		} `toml:"masking"`
		Typography *struct {
			Text     string  `toml:"text"`
			FontSize float64 `toml:"font_size"`
			Color    string  `toml:"color"`
			Path     string  `toml:"path"`
		} `toml:"typography"`
	} `toml:"advanced"`
}

type fileBorder struct {
	Thickness float64     `toml:"thickness"`
	Color     string      `toml:"color"`
	Round     float64     `toml:"round"`
	Inner     *fileBorder `toml:"inner"`
	Outer     *fileBorder `toml:"outer"`
}

func loadConfigFile(path string) (qrsvg.Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return qrsvg.Config{}, err
	}
	return fc.translate()
}

func (fc fileConfig) translate() (qrsvg.Config, error) {
	var opts []qrsvg.Option

	if fc.QR.Level != "" {
		level, err := parseECCLevel(fc.QR.Level)
		if err != nil {
			return qrsvg.Config{}, err
		}
		opts = append(opts, qrsvg.WithErrorCorrectionLevel(level))
	}
	if fc.QR.Mask != nil {
		opts = append(opts, qrsvg.WithMaskOverride(*fc.QR.Mask))
	}
	if fc.QR.MinVersion > 0 || fc.QR.MaxVersion > 0 {
		min, max := fc.QR.MinVersion, fc.QR.MaxVersion
		if min == 0 {
			min = 1
		}
		if max == 0 {
			max = 40
		}
		opts = append(opts, qrsvg.WithVersionRange(min, max))
	}

	if fc.Layout.Width > 0 && fc.Layout.Height > 0 {
		opts = append(opts, qrsvg.WithCanvasSize(fc.Layout.Width, fc.Layout.Height))
	}
	if fc.Layout.Margin > 0 {
		opts = append(opts, qrsvg.WithMargin(fc.Layout.Margin))
	}
	if fc.Layout.Circle {
		opts = append(opts, qrsvg.WithCircleShape())
	}

	if fc.Module.Shape != "" {
		shape, err := parseModuleShape(fc.Module.Shape)
		if err != nil {
			return qrsvg.Config{}, err
		}
		opts = append(opts, qrsvg.WithModuleShape(shape))
	}
	if fc.Module.RadiusFactor > 0 {
		opts = append(opts, qrsvg.WithRadiusFactor(fc.Module.RadiusFactor))
	}
	if fc.Module.Rounded {
		opts = append(opts, qrsvg.WithRounded())
	}
	if fc.Module.ExtraRounded {
		opts = append(opts, qrsvg.WithExtraRounded())
	}
	if fc.Module.ClassyRounded {
		opts = append(opts, qrsvg.WithClassyRounded())
	}

	if fc.Color.Foreground != "" {
		opts = append(opts, qrsvg.WithFgColorHex(fc.Color.Foreground))
	}
	if fc.Color.Background != nil {
		opts = append(opts, qrsvg.WithBgColorHex(*fc.Color.Background))
	}

	if fc.Logo.Image != "" || fc.Logo.SizeRatio > 0 {
		ratio := fc.Logo.SizeRatio
		if ratio == 0 {
			ratio = 0.2
		}
		opts = append(opts, qrsvg.WithLogo(fc.Logo.Image, ratio))
	}
	if fc.Logo.HoleRadius > 0 {
		opts = append(opts, qrsvg.WithLogoHole(fc.Logo.HoleRadius))
	}

	if fc.Locator != nil {
		shape, err := parseLocatorShape(fc.Locator.Shape, fc.Locator.RadiusFactor)
		if err != nil {
			return qrsvg.Config{}, err
		}
		opts = append(opts, qrsvg.WithLocator(shape, fc.Locator.Color))
		if fc.Locator.SizeRatio > 0 {
			opts = append(opts, qrsvg.WithLocatorSizeRatio(fc.Locator.SizeRatio))
		}
	}

	if fc.Gradient != nil {
		stops := make([]qrsvg.GradientStop, 0, len(fc.Gradient.Stops))
		for _, s := range fc.Gradient.Stops {
			stops = append(stops, qrsvg.GradientStop{Offset: s.Offset, Color: s.Color})
		}
		switch strings.ToLower(fc.Gradient.Type) {
		case "linear":
			opts = append(opts, qrsvg.WithLinearGradient(fc.Gradient.Rotation, stops...))
		case "radial":
			opts = append(opts, qrsvg.WithRadialGradient(stops...))
		default:
			return qrsvg.Config{}, errors.Errorf("unknown gradient type %q", fc.Gradient.Type)
		}
	}

	if fc.Border != nil {
		opts = append(opts, qrsvg.WithBorder(fc.Border.translate()))
	}

	adv := fc.Advanced
	if adv.Outline != nil {
		opts = append(opts, qrsvg.WithModuleOutline(adv.Outline.Color, adv.Outline.Width))
	}
	if adv.QuietZone != nil {
		opts = append(opts, qrsvg.WithQuietZoneAccent(adv.QuietZone.Color, adv.QuietZone.Width, adv.QuietZone.Dash...))
	}
	if adv.Shadow != nil {
		opts = append(opts, qrsvg.WithDropShadow(adv.Shadow.Blur, adv.Shadow.Opacity, adv.Shadow.OffsetX, adv.Shadow.OffsetY))
	}
	if adv.Pattern != nil {
		pt, err := parsePatternType(adv.Pattern.Type)
		if err != nil {
			return qrsvg.Config{}, err
		}
		opts = append(opts, qrsvg.WithBackgroundPattern(pt, adv.Pattern.Color, adv.Pattern.Opacity, adv.Pattern.Size))
	}
	if adv.Masking != nil {
		mt, err := parseMaskingType(adv.Masking.Type)
		if err != nil {
			return qrsvg.Config{}, err
		}
		opts = append(opts, qrsvg.WithGradientMasking(mt, adv.Masking.CenterColor, adv.Masking.EdgeColor))
	}
	if adv.Typography != nil {
		tp, err := parseTypographyPath(adv.Typography.Path)
		if err != nil {
			return qrsvg.Config{}, err
		}
		opts = append(opts, qrsvg.WithMicroTypography(adv.Typography.Text, adv.Typography.FontSize, adv.Typography.Color, tp))
	}

	return qrsvg.NewConfig(opts...), nil
}

func (fb *fileBorder) translate() qrsvg.BorderOptions {
	b := qrsvg.BorderOptions{Thickness: fb.Thickness, Color: fb.Color, Round: fb.Round}
	if fb.Inner != nil {
		inner := fb.Inner.translate()
		b.Inner = &inner
	}
	if fb.Outer != nil {
		outer := fb.Outer.translate()
		b.Outer = &outer
	}
	return b
}

func parseModuleShape(name string) (qrsvg.ModuleShape, error) {
	switch strings.ToLower(name) {
	case "square":
		return qrsvg.ModuleSquare, nil
	case "circle":
		return qrsvg.ModuleCircle, nil
	case "classy":
		return qrsvg.ModuleClassy, nil
	case "rounded":
		return qrsvg.ModuleRounded, nil
	case "extra-rounded":
		return qrsvg.ModuleExtraRounded, nil
	case "classy-rounded":
		return qrsvg.ModuleClassyRounded, nil
	default:
		return 0, errors.Errorf("unknown module shape %q", name)
	}
}

func parseLocatorShape(name string, radiusFactor float64) (qrsvg.LocatorShape, error) {
	switch strings.ToLower(name) {
	case "square":
		return qrsvg.LocatorSquareShape(), nil
	case "circle":
		return qrsvg.LocatorCircleShape(), nil
	case "rounded":
		return qrsvg.LocatorRoundedShape(radiusFactor), nil
	case "classy":
		return qrsvg.LocatorClassyShape(), nil
	default:
		return qrsvg.LocatorShape{}, errors.Errorf("unknown locator shape %q", name)
	}
}

func parseECCLevel(name string) (qrsvg.ECCLevel, error) {
	switch strings.ToUpper(name) {
	case "L", "LOW":
		return qrsvg.ECCLow, nil
	case "M", "MEDIUM":
		return qrsvg.ECCMedium, nil
	case "Q", "QUARTILE":
		return qrsvg.ECCQuartile, nil
	case "H", "HIGH":
		return qrsvg.ECCHigh, nil
	default:
		return 0, errors.Errorf("unknown error correction level %q", name)
	}
}

func parsePatternType(name string) (qrsvg.PatternType, error) {
	switch strings.ToLower(name) {
	case "dots":
		return qrsvg.PatternDots, nil
	case "grid":
		return qrsvg.PatternGrid, nil
	case "diagonal":
		return qrsvg.PatternDiagonal, nil
	case "hexagon":
		return qrsvg.PatternHexagon, nil
	default:
		return 0, errors.Errorf("unknown pattern type %q", name)
	}
}

func parseMaskingType(name string) (qrsvg.MaskingType, error) {
	switch strings.ToLower(name) {
	case "concentric":
		return qrsvg.MaskingConcentric, nil
	case "radial":
		return qrsvg.MaskingRadial, nil
	case "linear":
		return qrsvg.MaskingLinear, nil
	default:
		return 0, errors.Errorf("unknown masking type %q", name)
	}
}

func parseTypographyPath(name string) (qrsvg.TypographyPath, error) {
	switch strings.ToLower(name) {
	case "circular", "":
		return qrsvg.PathCircular, nil
	case "top":
		return qrsvg.PathTop, nil
	case "bottom":
		return qrsvg.PathBottom, nil
	default:
		return 0, errors.Errorf("unknown typography path %q", name)
	}
}
