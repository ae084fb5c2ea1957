package main

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// logoDataURI loads a PNG or JPEG, scales it to fit a targetPx square with
// CatmullRom interpolation (sharp edges survive the resample) and returns it
// as a base64 data URI for the SVG <image> element.
func logoDataURI(path string, targetPx float64) (string, error) {
	fd, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	src, _, err := image.Decode(fd)
	if err != nil {
		return "", errors.Wrap(err, "decode image")
	}
	if targetPx < 1 {
		targetPx = 1
	}

	bounds := src.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	var dw, dh int
	if w > h {
		dw = int(targetPx)
		dh = int(targetPx * h / w)
	} else {
		dh = int(targetPx)
		dw = int(targetPx * w / h)
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", errors.Wrap(err, "encode png")
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
