package families

import (
	"math"
	"math/cmplx"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
	"github.com/fractalab/fractalab/internal/numeric"
)

// Mandelbrot is the parameter plane of z -> z^2 + c, iterated from the
// critical point 0.
type Mandelbrot struct {
	Iters int
}

func NewMandelbrot() *Mandelbrot {
	return &Mandelbrot{Iters: defaultMaxIter}
}

func (*Mandelbrot) Name() string { return "mandelbrot" }

func (*Mandelbrot) ParamMap(point complex128) complex128 { return point }

func (*Mandelbrot) Map(z, c complex128) complex128 { return z*z + c }

func (*Mandelbrot) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	return z*z + c, 2 * z
}

func (*Mandelbrot) Gradient(z, c complex128) (fz, dfdz, dfdc complex128) {
	return z*z + c, 2 * z, 1
}

func (*Mandelbrot) StartPoint(point, c complex128) complex128 { return 0 }

func (*Mandelbrot) DegreeReal() float64 { return 2 }

func (*Mandelbrot) EscapeRadius() float64 { return 1e6 }

func (m *Mandelbrot) MaxIter() int { return m.Iters }

func (*Mandelbrot) DefaultBounds() grid.Bounds {
	return grid.Bounds{MinX: -2.1, MaxX: 0.55, MinY: -1.25, MaxY: 1.25}
}

// EarlyBailout classifies parameters inside the main cardioid and the
// period-2 bulb without iterating, from the closed-form fixed point and
// multiplier. The potential is the decay-rate logarithm of the starting
// distance to the attractor.
func (*Mandelbrot) EarlyBailout(start, c complex128) (dynamics.EscapeResult, bool) {
	// Main cardioid.
	fourC := 4 * c
	y2 := imag(fourC) * imag(fourC)
	temp := real(fourC) - 1
	muNorm2 := temp*temp + y2
	a := muNorm2 * (muNorm2*0.25 + temp)

	if a < y2 {
		multiplier := 1 - cmplx.Sqrt(1-fourC)
		decayRate := cmplx.Abs(multiplier)
		fixedPoint := 0.5 * multiplier
		initDist := dynamics.NormSqr(c - fixedPoint)
		potential := math.Log(initDist) / math.Log(decayRate)
		return knownCycle(1, multiplier, potential), true
	}

	// Period-2 bulb.
	mu2 := fourC + 4
	if dynamics.NormSqr(mu2) < 1 {
		decayRate := cmplx.Abs(mu2)
		fixedPoint := -0.5 - 0.5*cmplx.Sqrt(-fourC-3)
		initDist := dynamics.NormSqr(c - fixedPoint)
		potential := 2 * math.Log(initDist) / math.Log(decayRate)
		return knownCycle(2, mu2, potential), true
	}

	return dynamics.EscapeResult{}, false
}

// Cycles locates the periodic points of period up to 3 in the dynamical
// plane of c. Periods 1 and 2 are quadratic in z; period 3 points solve a
// degree-6 polynomial.
func (*Mandelbrot) Cycles(c complex128, period int) []complex128 {
	switch period {
	case 1:
		u := cmplx.Sqrt(1 - 4*c)
		return []complex128{0.5 * (1 + u), 0.5 * (1 - u)}
	case 2:
		u := cmplx.Sqrt(-3 - 4*c)
		return []complex128{0.5 * (-1 + u), -0.5 * (1 + u)}
	case 3:
		c2 := c * c
		return numeric.SolvePolynomial([]complex128{
			1 + c + (2+c)*c2,
			1 + 2*c + c2,
			1 + 3*(c+c2),
			1 + 2*c,
			1 + 3*c,
			1,
			1,
		})
	default:
		return nil
	}
}

func (*Mandelbrot) NumCycleClasses() int { return 6 }
