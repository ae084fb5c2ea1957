package qrsvg

import (
	"github.com/yeqown/go-qrcode/v2"
)

// Encode runs the encoder collaborator and captures its module matrix. The
// ECC level always maps through; a version range collapsed to a single value
// pins that version, any wider range leaves the choice to the encoder (it
// only accepts an exact version, not bounds). Mask selection stays the
// encoder's business.
func Encode(content string, qr QROptions) (Matrix, error) {
	opts := []qrcode.EncodeOption{
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		eccOption(qr.Level),
	}
	if qr.MinVersion > 0 && qr.MinVersion == qr.MaxVersion {
		opts = append(opts, qrcode.WithVersion(qr.MinVersion))
	}
	qrc, err := qrcode.NewWith(content, opts...)
	if err != nil {
		return Matrix{}, err
	}
	var c matrixCollector
	if err := qrc.Save(&c); err != nil {
		return Matrix{}, err
	}
	return c.mat, nil
}

func eccOption(level ECCLevel) qrcode.EncodeOption {
	switch level {
	case ECCLow:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case ECCMedium:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	case ECCHigh:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	}
}

// matrixCollector satisfies the encoder's writer contract and keeps the
// matrix instead of drawing it.
type matrixCollector struct {
	mat Matrix
}

func (c *matrixCollector) Write(mat qrcode.Matrix) error {
	n := mat.Width()
	cells := make([][]bool, n)
	for i := range cells {
		cells[i] = make([]bool, n)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		cells[y][x] = v.IsSet()
	})
	c.mat = Matrix{n: n, cells: cells}
	return nil
}

func (c *matrixCollector) Close() error { return nil }
