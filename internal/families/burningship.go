package families

import (
	"math"

	"github.com/fractalab/fractalab/internal/grid"
)

// BurningShip is the parameter plane of z -> (|Re z| + i|Im z|)^2 + c. The
// component fold makes the map non-analytic; the reported multiplier is the
// derivative of the squaring step after the fold.
type BurningShip struct {
	Iters int
}

func NewBurningShip() *BurningShip {
	return &BurningShip{Iters: defaultMaxIter}
}

func (*BurningShip) Name() string { return "burning_ship" }

func (*BurningShip) ParamMap(point complex128) complex128 { return point }

func fold(z complex128) complex128 {
	return complex(math.Abs(real(z)), math.Abs(imag(z)))
}

func (*BurningShip) Map(z, c complex128) complex128 {
	a := fold(z)
	return a*a + c
}

func (*BurningShip) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	a := fold(z)
	return a*a + c, 2 * a
}

func (b *BurningShip) Gradient(z, c complex128) (fz, dfdz, dfdc complex128) {
	fz, dfdz = b.MapAndMultiplier(z, c)
	return fz, dfdz, 1
}

func (*BurningShip) StartPoint(point, c complex128) complex128 { return 0 }

func (*BurningShip) DegreeReal() float64 { return 2 }

func (*BurningShip) EscapeRadius() float64 { return 1e6 }

func (b *BurningShip) MaxIter() int { return b.Iters }

func (*BurningShip) DefaultBounds() grid.Bounds {
	return grid.Bounds{MinX: -2.2, MaxX: 1.25, MinY: -1.9, MaxY: 0.6}
}
