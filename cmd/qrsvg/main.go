package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/qrsvg/qrsvg"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "qrsvg",
		Usage: "render a styled QR code as an SVG document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "payload to encode", Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file path", Value: "qrcode.svg"},
			&cli.StringFlag{Name: "config", Usage: "TOML style file applied before the flags"},
			&cli.Float64Flag{Name: "width", Usage: "canvas width in pixels", Value: 300},
			&cli.Float64Flag{Name: "height", Usage: "canvas height in pixels", Value: 300},
			&cli.Float64Flag{Name: "margin", Usage: "margin in pixels", Value: 10},
			&cli.StringFlag{Name: "shape", Usage: "module shape: square|circle|classy|rounded|extra-rounded|classy-rounded", Value: "square"},
			&cli.StringFlag{Name: "fg", Usage: "foreground color (#RRGGBB)", Value: "#000000"},
			&cli.StringFlag{Name: "bg", Usage: "background color, empty for transparent", Value: "#ffffff"},
			&cli.BoolFlag{Name: "circle", Usage: "crop the symbol into a circle"},
			&cli.StringFlag{Name: "level", Usage: "error correction level: L|M|Q|H", Value: "Q"},
			&cli.StringFlag{Name: "locator", Usage: "locator shape override: square|circle|rounded|classy"},
			&cli.StringFlag{Name: "locator-color", Usage: "locator color", Value: "#000000"},
			&cli.StringFlag{Name: "logo", Usage: "logo image file (PNG or JPEG), embedded as a data URI"},
			&cli.Float64Flag{Name: "logo-ratio", Usage: "logo size as a fraction of the drawable area", Value: 0.2},
			&cli.Float64Flag{Name: "hole-radius", Usage: "blank disc radius around the center, in pixels"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.Bool("verbose"))
	start := time.Now()

	cfg := qrsvg.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := loadConfigFile(path)
		if err != nil {
			return errors.Wrapf(err, "load config %s", path)
		}
		cfg = loaded
		logger.Debug("loaded style file", "path", path)
	}

	cfg, err := applyFlags(cfg, c)
	if err != nil {
		return err
	}

	if path := c.String("logo"); path != "" {
		ratio := cfg.Logo.SizeRatio
		if c.IsSet("logo-ratio") {
			ratio = c.Float64("logo-ratio")
		}
		target := (min(cfg.Layout.Width, cfg.Layout.Height) - 2*cfg.Layout.Margin) * ratio
		href, err := logoDataURI(path, target)
		if err != nil {
			return errors.Wrapf(err, "embed logo %s", path)
		}
		cfg = cfg.With(qrsvg.WithLogo(href, ratio))
	}

	content := c.String("content")
	mat, err := qrsvg.Encode(content, cfg.QR)
	if err != nil {
		return errors.Wrap(err, "encode payload")
	}
	logger.Debug("encoded symbol", "modules", mat.Size())

	svg := qrsvg.Render(mat, cfg)
	out := c.String("output")
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}

	logger.Info("wrote SVG", "path", out, "bytes", len(svg), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// applyFlags is the flag half of the translation layer; unknown enum strings
// are rejected here so the core only ever sees valid values. Flags only
// override the config when set explicitly, otherwise their declared defaults
// would clobber every style-file field that shares a flag.
func applyFlags(cfg qrsvg.Config, c *cli.Context) (qrsvg.Config, error) {
	var opts []qrsvg.Option
	if c.IsSet("width") || c.IsSet("height") {
		w, h := cfg.Layout.Width, cfg.Layout.Height
		if c.IsSet("width") {
			w = c.Float64("width")
		}
		if c.IsSet("height") {
			h = c.Float64("height")
		}
		opts = append(opts, qrsvg.WithCanvasSize(w, h))
	}
	if c.IsSet("margin") {
		opts = append(opts, qrsvg.WithMargin(c.Float64("margin")))
	}
	if c.IsSet("shape") {
		shape, err := parseModuleShape(c.String("shape"))
		if err != nil {
			return cfg, err
		}
		opts = append(opts, qrsvg.WithModuleShape(shape))
	}
	if c.IsSet("fg") {
		opts = append(opts, qrsvg.WithFgColorHex(c.String("fg")))
	}
	if c.IsSet("bg") {
		opts = append(opts, qrsvg.WithBgColorHex(c.String("bg")))
	}
	if c.IsSet("level") {
		level, err := parseECCLevel(c.String("level"))
		if err != nil {
			return cfg, err
		}
		opts = append(opts, qrsvg.WithErrorCorrectionLevel(level))
	}
	if c.Bool("circle") {
		opts = append(opts, qrsvg.WithCircleShape())
	}
	if hole := c.Float64("hole-radius"); hole > 0 {
		opts = append(opts, qrsvg.WithLogoHole(hole))
	}
	if name := c.String("locator"); name != "" {
		loc, err := parseLocatorShape(name, 0.3)
		if err != nil {
			return cfg, err
		}
		opts = append(opts, qrsvg.WithLocator(loc, c.String("locator-color")))
	}
	return cfg.With(opts...), nil
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
