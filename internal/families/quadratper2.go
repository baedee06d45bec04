package families

import (
	"math"
	"math/cmplx"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
)

// QuadRatPer2 is the parameter plane of the quadratic rational family
// z -> (z^2 + c) / (z^2 - 1), whose marked 2-cycle is {1, infinity}. The
// free critical orbit starts at the critical value c.
type QuadRatPer2 struct {
	Iters int
}

func NewQuadRatPer2() *QuadRatPer2 {
	return &QuadRatPer2{Iters: defaultMaxIter}
}

func (*QuadRatPer2) Name() string { return "quad_rat_per_2" }

func (*QuadRatPer2) ParamMap(point complex128) complex128 { return point }

func (*QuadRatPer2) Map(z, c complex128) complex128 {
	z2 := z * z
	return (z2 + c) / (z2 - 1)
}

func (*QuadRatPer2) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	z2 := z * z
	u := z2 - 1
	return (c + z2) / u, -2 * z * (c + 1) / (u * u)
}

func (*QuadRatPer2) Gradient(z, c complex128) (fz, dfdz, dfdc complex128) {
	z2 := z * z
	u := 1 / (z2 - 1)
	return (c + z2) * u, -2 * (c + 1) * z * u * u, u
}

func (*QuadRatPer2) StartPoint(point, c complex128) complex128 { return c }

func (*QuadRatPer2) DegreeReal() float64 { return 2 }

func (*QuadRatPer2) EscapeRadius() float64 { return 1e6 }

func (q *QuadRatPer2) MaxIter() int { return q.Iters }

func (*QuadRatPer2) DefaultBounds() grid.Bounds {
	return grid.Bounds{MinX: -2.8, MaxX: 3.2, MinY: -2.8, MaxY: 2.8}
}

// EscapingPeriod is the period of the first-return map at infinity: escape
// happens through the marked 2-cycle {1, infinity}.
func (*QuadRatPer2) EscapingPeriod() int { return 2 }

// EncodeEscapingPoint accounts for the orbit landing on the marked 2-cycle:
// escape toward it alternates between 1 and infinity, so the residual is
// measured against shifted logs and doubled, and the phase records which
// side of the cycle the orbit left through.
func (q *QuadRatPer2) EncodeEscapingPoint(iters int, z, _ complex128) dynamics.PointInfo {
	phase := iters % 2
	if dynamics.IsNan(z) {
		return dynamics.EscapingInfo(float64(iters)-2, phase)
	}
	u := math.Log2(q.EscapeRadius() * q.EscapeRadius())
	v := math.Log2(dynamics.NormSqr(z))
	residual := math.Log2((u - 1) / (v - 1))
	return dynamics.EscapingInfo(float64(iters)+2*residual, phase)
}

// Cycles locates the low-period cycles in the dynamical plane of c: the
// three fixed points via Cardano's formula, and the marked point z = 1 of
// the 2-cycle through infinity. Only finite cycle points are reported.
func (*QuadRatPer2) Cycles(c complex128, period int) []complex128 {
	switch period {
	case 1:
		u := -27 * c
		v := u - 11
		x0 := cmplx.Pow(0.5*(u+cmplx.Sqrt(v*v-256)-11), complex(1.0/3.0, 0))
		x1 := 4 / x0 / 3
		x2 := x0 / 3
		r1 := -x1*omegaBar - x2*omega + 1.0/3
		r2 := -x1*omega - x2*omegaBar + 1.0/3
		return []complex128{-x1 - x2 + 1.0/3, r1, r2}
	case 2:
		return []complex128{1}
	default:
		return nil
	}
}

func (*QuadRatPer2) NumCycleClasses() int { return 3 }
