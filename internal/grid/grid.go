package grid

import (
	"errors"
	"math"
)

var (
	// ErrZeroResolution indicates a requested resolution of zero pixels.
	ErrZeroResolution = errors.New("grid: resolution must be positive")

	// ErrDegenerateBounds indicates an empty or inverted plane region.
	ErrDegenerateBounds = errors.New("grid: bounds must satisfy max > min on both axes")
)

// Bounds is a rectangular region of the plane.
type Bounds struct {
	MinX float64 `yaml:"min_x" json:"min_x"`
	MaxX float64 `yaml:"max_x" json:"max_x"`
	MinY float64 `yaml:"min_y" json:"min_y"`
	MaxY float64 `yaml:"max_y" json:"max_y"`
}

func (b Bounds) RangeX() float64 { return b.MaxX - b.MinX }
func (b Bounds) RangeY() float64 { return b.MaxY - b.MinY }
func (b Bounds) Area() float64   { return b.RangeX() * b.RangeY() }
func (b Bounds) MidX() float64   { return (b.MaxX + b.MinX) / 2 }
func (b Bounds) MidY() float64   { return (b.MaxY + b.MinY) / 2 }

func (b Bounds) Center() complex128 {
	return complex(b.MidX(), b.MidY())
}

func (b Bounds) IsValid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY &&
		!math.IsNaN(b.RangeX()) && !math.IsNaN(b.RangeY())
}

// CenteredSquare returns bounds of side 2r centered at the origin.
func CenteredSquare(r float64) Bounds {
	return Bounds{MinX: -r, MaxX: r, MinY: -r, MaxY: r}
}

// PointGrid maps pixel indices to plane coordinates and back. The mapping is
// a fixed affine transform; it only changes through the explicit resize and
// rebound methods, which keep the pixel aspect ratio square by recomputing
// one resolution axis from the other.
type PointGrid struct {
	ResX   int
	ResY   int
	Bounds Bounds
}

// New validates and builds a grid with the given vertical resolution; the
// horizontal resolution is inferred from the bounds' aspect ratio.
func New(resY int, bounds Bounds) (PointGrid, error) {
	if resY <= 0 {
		return PointGrid{}, ErrZeroResolution
	}
	if !bounds.IsValid() {
		return PointGrid{}, ErrDegenerateBounds
	}
	return PointGrid{
		ResX:   inferWidth(resY, bounds),
		ResY:   resY,
		Bounds: bounds,
	}, nil
}

func inferHeight(resX int, b Bounds) int {
	h := int(float64(resX) * b.RangeY() / b.RangeX())
	if h < 1 {
		h = 1
	}
	return h
}

func inferWidth(resY int, b Bounds) int {
	w := int(float64(resY) * b.RangeX() / b.RangeY())
	if w < 1 {
		w = 1
	}
	return w
}

// ToPlane maps a pixel index to the plane point at the pixel's lower-left
// corner. Out-of-range indices extrapolate along the same affine transform.
func (g PointGrid) ToPlane(px, py int) complex128 {
	re := g.Bounds.MinX + float64(px)*g.Bounds.RangeX()/float64(g.ResX)
	im := g.Bounds.MinY + float64(py)*g.Bounds.RangeY()/float64(g.ResY)
	return complex(re, im)
}

// ToPixel is the left inverse of ToPlane up to floating rounding. The second
// return is false when the point lies outside the bounds.
func (g PointGrid) ToPixel(z complex128) (int, int, bool) {
	x := (real(z) - g.Bounds.MinX) / g.Bounds.RangeX()
	y := (imag(z) - g.Bounds.MinY) / g.Bounds.RangeY()
	px := int(math.Floor(x*float64(g.ResX) + 0.5))
	py := int(math.Floor(y*float64(g.ResY) + 0.5))
	ok := px >= 0 && px < g.ResX && py >= 0 && py < g.ResY
	return px, py, ok
}

// Resize sets a new vertical resolution, preserving the center of the bounds
// and recomputing the width so pixels stay square.
func (g *PointGrid) Resize(resY int) error {
	if resY <= 0 {
		return ErrZeroResolution
	}
	g.ResY = resY
	g.ResX = inferWidth(resY, g.Bounds)
	return nil
}

// ChangeBounds replaces the viewed region, recentring rather than stretching:
// the vertical resolution is kept and the width is recomputed from the new
// aspect ratio.
func (g *PointGrid) ChangeBounds(bounds Bounds) error {
	if !bounds.IsValid() {
		return ErrDegenerateBounds
	}
	g.Bounds = bounds
	g.ResX = inferWidth(g.ResY, bounds)
	return nil
}

// Shift translates the viewed region by dz.
func (g *PointGrid) Shift(dz complex128) {
	g.Bounds.MinX += real(dz)
	g.Bounds.MaxX += real(dz)
	g.Bounds.MinY += imag(dz)
	g.Bounds.MaxY += imag(dz)
}

// Zoom scales the viewed region about base, keeping base fixed on screen.
func (g *PointGrid) Zoom(scale float64, base complex128) {
	g.Shift(-base)
	g.Bounds.MinX *= scale
	g.Bounds.MaxX *= scale
	g.Bounds.MinY *= scale
	g.Bounds.MaxY *= scale
	g.Shift(base)
}

// NumCells returns the total cell count of the grid.
func (g PointGrid) NumCells() int {
	return g.ResX * g.ResY
}
