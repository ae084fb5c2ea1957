package qrsvg

// Matrix is the square grid of on/off modules produced by a QR encoder.
// It is indexed [row][col] with (0,0) at the top-left and is read-only once
// built. Callers are expected to supply a standard symbol: N odd and >= 21.
type Matrix struct {
	n     int
	cells [][]bool
}

// NewMatrix copies cells into an immutable Matrix. The slice must be square.
func NewMatrix(cells [][]bool) Matrix {
	n := len(cells)
	cp := make([][]bool, n)
	for i, row := range cells {
		cp[i] = make([]bool, n)
		copy(cp[i], row)
	}
	return Matrix{n: n, cells: cp}
}

// Size returns the side length N of the symbol in modules.
func (m Matrix) Size() int { return m.n }

// At reports whether the module at (row, col) is set.
func (m Matrix) At(row, col int) bool { return m.cells[row][col] }
