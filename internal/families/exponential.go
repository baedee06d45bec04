package families

import (
	"math"
	"math/cmplx"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
	"github.com/fractalab/fractalab/internal/numeric"
)

// Exponential is the parameter plane of z -> lambda * e^z, iterated from the
// singular value 0. Escape is super-exponential, so the smooth potential is
// computed with the iterated logarithm instead of log2.
type Exponential struct {
	Iters int
}

func NewExponential() *Exponential {
	return &Exponential{Iters: defaultMaxIter}
}

func (*Exponential) Name() string { return "exponential" }

func (*Exponential) ParamMap(point complex128) complex128 { return point }

func (*Exponential) Map(z, lambda complex128) complex128 {
	return cmplx.Exp(z) * lambda
}

func (*Exponential) MapAndMultiplier(z, lambda complex128) (complex128, complex128) {
	u := cmplx.Exp(z) * lambda
	return u, u
}

func (*Exponential) Gradient(z, lambda complex128) (fz, dfdz, dfdc complex128) {
	u := cmplx.Exp(z)
	fz = u * lambda
	return fz, fz, u
}

func (*Exponential) StartPoint(point, lambda complex128) complex128 { return 0 }

// DegreeReal is undefined for a transcendental map; the family supplies its
// own escape encoding, so the generic estimator never sees this value.
func (*Exponential) DegreeReal() float64 { return math.NaN() }

func (*Exponential) EscapeRadius() float64 { return 1e6 }

func (e *Exponential) MaxIter() int { return e.Iters }

func (*Exponential) DefaultBounds() grid.Bounds {
	return grid.Bounds{MinX: -7, MaxX: 7, MinY: -7, MaxY: 7}
}

// ExtraStopCondition cuts orbits short once a component blows up: a large
// real part guarantees super-exponential escape on the next step, while an
// extreme imaginary part makes the next value numerically meaningless.
func (*Exponential) ExtraStopCondition(z, _ complex128, iter int) (dynamics.EscapeResult, bool) {
	if real(z) > 250 {
		return dynamics.Escaped(iter, z), true
	}
	if math.Abs(imag(z)) > 1e15 {
		return dynamics.EscapeResult{Kind: dynamics.EscapeUnknown, Iters: iter, FinalValue: z}, true
	}
	return dynamics.EscapeResult{}, false
}

// EncodeEscapingPoint classifies an orbit that left the radius. Orbits whose
// final value sits in the left half plane are about to collapse toward 0, so
// they are reported bounded rather than escaping.
func (e *Exponential) EncodeEscapingPoint(iters int, z, _ complex128) dynamics.PointInfo {
	if dynamics.IsNan(z) {
		return dynamics.EscapingInfo(float64(iters)-1, -1)
	}
	if real(z) < 0 {
		return dynamics.BoundedInfo()
	}
	if cmplx.IsInf(z) {
		return dynamics.EscapingInfo(float64(iters)+1, -1)
	}
	u := numeric.Slog(e.EscapeRadius() * e.EscapeRadius())
	v := numeric.Slog(dynamics.NormSqr(z))
	return dynamics.EscapingInfo(float64(iters)-(v-u), -1)
}
