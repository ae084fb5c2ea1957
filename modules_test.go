package qrsvg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullMatrix returns an n x n matrix with every module on.
func fullMatrix(n int) Matrix {
	cells := make([][]bool, n)
	for i := range cells {
		cells[i] = make([]bool, n)
		for j := range cells[i] {
			cells[i][j] = true
		}
	}
	return NewMatrix(cells)
}

// stripedMatrix sets modules on a deterministic pseudo-random pattern.
func stripedMatrix(n int) Matrix {
	cells := make([][]bool, n)
	for i := range cells {
		cells[i] = make([]bool, n)
		for j := range cells[i] {
			cells[i][j] = (i*31+j*17)%3 != 0
		}
	}
	return NewMatrix(cells)
}

func newTestRenderer(mat Matrix, cfg Config) *renderer {
	return &renderer{mat: mat, cfg: cfg, geo: newGeometry(mat.Size(), cfg.Layout)}
}

func TestCollectRuns_CoversExactlyTheDrawableModules(t *testing.T) {
	mat := stripedMatrix(21)
	drawable := func(row, col int) bool { return col != 10 } // carve a column out

	runs := collectRuns(mat, drawable)

	covered := make(map[[2]int]bool)
	for _, r := range runs {
		require.Greater(t, r.length, 0)
		for c := r.col; c < r.col+r.length; c++ {
			key := [2]int{r.row, c}
			require.False(t, covered[key], "module covered twice at %v", key)
			covered[key] = true
		}
	}

	for row := 0; row < 21; row++ {
		for col := 0; col < 21; col++ {
			want := mat.At(row, col) && drawable(row, col)
			assert.Equal(t, want, covered[[2]int{row, col}], "row=%d col=%d", row, col)
		}
	}
}

func TestCollectRuns_RunsAreMaximal(t *testing.T) {
	mat := stripedMatrix(25)
	all := func(int, int) bool { return true }

	for _, r := range collectRuns(mat, all) {
		if r.col > 0 {
			assert.False(t, mat.At(r.row, r.col-1), "run not maximal on the left")
		}
		if end := r.col + r.length; end < mat.Size() {
			assert.False(t, mat.At(r.row, end), "run not maximal on the right")
		}
	}
}

func TestShouldDraw_FinderExclusion(t *testing.T) {
	cfg := NewConfig(WithLocator(LocatorCircleShape(), "#000000"))
	r := newTestRenderer(fullMatrix(21), cfg)

	n := 21
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			inFinder := (row < 7 && col < 7) || (row < 7 && col >= n-7) || (row >= n-7 && col < 7)
			assert.Equal(t, !inFinder, r.shouldDraw(row, col), "row=%d col=%d", row, col)
		}
	}
}

func TestShouldDraw_NoLocatorKeepsFinders(t *testing.T) {
	r := newTestRenderer(fullMatrix(21), DefaultConfig())
	assert.True(t, r.shouldDraw(0, 0))
	assert.True(t, r.shouldDraw(3, 3))
}

func TestShouldDraw_LogoHole(t *testing.T) {
	cfg := NewConfig(WithCanvasSize(210, 210), WithMargin(0), WithLogoHole(30))
	r := newTestRenderer(fullMatrix(21), cfg)

	// moduleSize = 10; the center module's center is the canvas center.
	assert.False(t, r.shouldDraw(10, 10))
	assert.True(t, r.shouldDraw(0, 0))

	// Every module that survives the predicate has its center outside the
	// forbidden disc.
	for row := 0; row < 21; row++ {
		for col := 0; col < 21; col++ {
			if !r.shouldDraw(row, col) {
				continue
			}
			x, y := r.geo.moduleCenter(row, col)
			dist := math.Hypot(x-105, y-105)
			assert.GreaterOrEqual(t, dist, 30.0, "row=%d col=%d", row, col)
		}
	}
}

func TestGeometry(t *testing.T) {
	g := newGeometry(21, LayoutOptions{Width: 200, Height: 200, Margin: 0})
	assert.InDelta(t, 200.0/21.0, g.moduleSize, 1e-9)
	assert.InDelta(t, 0, g.originX, 1e-9)
	assert.InDelta(t, 0, g.originY, 1e-9)

	// The circular crop inscribes the symbol in the viewport circle.
	gc := newGeometry(21, LayoutOptions{Width: 200, Height: 200, Margin: 0, CircleShape: true})
	assert.InDelta(t, 200/math.Sqrt2, gc.effectiveSize, 1e-9)
	assert.InDelta(t, (200-gc.effectiveSize)/2, gc.originX, 1e-9)

	// Asymmetric canvas still centers the symbol.
	ga := newGeometry(21, LayoutOptions{Width: 300, Height: 200, Margin: 10})
	assert.InDelta(t, 180.0/21.0, ga.moduleSize, 1e-9)
	assert.InDelta(t, (300-21*ga.moduleSize)/2, ga.originX, 1e-9)
	assert.InDelta(t, (200-21*ga.moduleSize)/2, ga.originY, 1e-9)
}

func TestGeometry_CircleShapeContainsAllModules(t *testing.T) {
	// Under the circular crop every drawable module must sit fully inside
	// the clip circle, corners included.
	mat := stripedMatrix(21)
	cfg := NewConfig(WithCanvasSize(200, 200), WithMargin(0), WithCircleShape())
	r := newTestRenderer(mat, cfg)

	clipR := 100.0
	ms := r.geo.moduleSize
	r.eachDrawable(func(row, col int) {
		x := r.geo.originX + float64(col)*ms
		y := r.geo.originY + float64(row)*ms
		for _, corner := range [][2]float64{{x, y}, {x + ms, y}, {x, y + ms}, {x + ms, y + ms}} {
			d := math.Hypot(corner[0]-100, corner[1]-100)
			assert.LessOrEqual(t, d, clipR+1e-9, "row=%d col=%d corner=%v", row, col, corner)
		}
	})
}

func TestEffectiveShape(t *testing.T) {
	m := ModuleOptions{Shape: ModuleSquare, ExtraRounded: true}
	assert.Equal(t, ModuleExtraRounded, m.effectiveShape())

	m = ModuleOptions{Shape: ModuleRounded, ExtraRounded: true, ClassyRounded: true}
	assert.Equal(t, ModuleClassyRounded, m.effectiveShape())

	// Circle and classy shapes ignore the refinement flags.
	m = ModuleOptions{Shape: ModuleCircle, ClassyRounded: true}
	assert.Equal(t, ModuleCircle, m.effectiveShape())
	m = ModuleOptions{Shape: ModuleClassy, ExtraRounded: true}
	assert.Equal(t, ModuleClassy, m.effectiveShape())
}

func TestMaskedFill(t *testing.T) {
	cfg := NewConfig(
		WithCanvasSize(200, 200),
		WithGradientMasking(MaskingConcentric, "#ff0000", "#0000ff"),
	)
	r := newTestRenderer(fullMatrix(21), cfg)

	// Exactly at the canvas center the ratio is 0.
	assert.Equal(t, "#ff0000", r.maskedFill(100, 100))
	// At the canvas corner the ratio is 1.
	assert.Equal(t, "#0000ff", r.maskedFill(0, 0))

	// Linear masking ignores y entirely.
	r.cfg.Advanced.Masking.Type = MaskingLinear
	assert.Equal(t, r.maskedFill(50, 0), r.maskedFill(50, 200))
	assert.Equal(t, "#ff0000", r.maskedFill(0, 123))

	// Missing colors fall back to the shared module fill.
	r.cfg.Advanced.Masking.EdgeColor = ""
	assert.Equal(t, r.cfg.Color.Foreground, r.maskedFill(100, 100))
}
