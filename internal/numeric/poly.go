package numeric

import (
	"math"
	"math/cmplx"
)

// Cube roots of unity, used by the closed-form cubic solver.
var (
	omega    = complex(-0.5, 0.8660254037844386)
	omegaBar = complex(-0.5, -0.8660254037844386)
)

const oneThird = 1.0 / 3.0

// SolveQuadratic returns the roots of a + b*x + x^2.
func SolveQuadratic(a, b complex128) [2]complex128 {
	disc := cmplx.Sqrt(b*b - 4*a)
	return [2]complex128{-0.5 * (b + disc), 0.5 * (disc - b)}
}

// SolveCubic returns the roots of a + b*x + c*x^2 + x^3.
func SolveCubic(a, b, c complex128) [3]complex128 {
	x0 := -c / 3
	c2 := c * c
	c3 := c * c2
	bc := b * c
	d0 := -3*b + c2
	d1 := 27*a + 2*c3 - 9*bc
	disc := cmplx.Pow(0.5*(d1+cmplx.Sqrt(d1*d1-4*d0*d0*d0)), complex(oneThird, 0))
	x5 := -disc * complex(oneThird, 0)
	x6 := -d0 / (3 * disc)
	return [3]complex128{
		x0 + x5 + x6,
		x0 + omega*x5 + omegaBar*x6,
		x0 + omegaBar*x5 + omega*x6,
	}
}

// SolveQuartic returns the roots of a + b*x + c*x^2 + d*x^3 + x^4.
func SolveQuartic(a, b, c, d complex128) [4]complex128 {
	c2 := c * c
	d2 := d * d
	bd := b * d

	disc0 := c2 - 3*bd + 12*a
	disc1 := c*(c2+c2-9*bd-72*a) + 27*(d2*a+b*b)

	p := c - 0.375*d2
	q := 0.5*d*(0.25*d2-c) + b

	q1 := cmplx.Pow(0.5*(disc1+cmplx.Sqrt(disc1*disc1-4*disc0*disc0*disc0)), complex(oneThird, 0))
	s := 0.5 * cmplx.Sqrt(complex(oneThird, 0)*(q1+disc0/q1-p-p))

	x0 := -0.25 * d
	u := -4*s*s - p - p
	v := q / s

	disc2 := 0.5 * cmplx.Sqrt(u+v)
	disc3 := 0.5 * cmplx.Sqrt(u-v)

	return [4]complex128{
		x0 - s + disc2,
		x0 - s - disc2,
		x0 + s + disc3,
		x0 + s - disc3,
	}
}

// PolynomialSolver locates all roots of a polynomial given by its
// coefficients in ascending degree order, with leading coefficient included.
// An external high-precision solver can be plugged in here; the engine's hot
// path never depends on it.
type PolynomialSolver interface {
	SolvePolynomial(coeffs []complex128) []complex128
}

// ClosedFormSolver is the in-process fallback: exact formulas through degree
// four, nil above that.
type ClosedFormSolver struct{}

func (ClosedFormSolver) SolvePolynomial(coeffs []complex128) []complex128 {
	// Strip trailing zero coefficients so the degree is genuine.
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	if n < 2 {
		return nil
	}
	lead := coeffs[n-1]
	monic := make([]complex128, n-1)
	for i := range monic {
		monic[i] = coeffs[i] / lead
	}

	switch len(monic) {
	case 1:
		return []complex128{-monic[0]}
	case 2:
		r := SolveQuadratic(monic[0], monic[1])
		return r[:]
	case 3:
		r := SolveCubic(monic[0], monic[1], monic[2])
		return r[:]
	case 4:
		r := SolveQuartic(monic[0], monic[1], monic[2], monic[3])
		return r[:]
	default:
		return nil
	}
}

// SolvePolynomial finds all roots of the polynomial with the given ascending
// coefficients. Degrees through four use the closed forms; higher degrees
// fall back to Durand-Kerner iteration.
func SolvePolynomial(coeffs []complex128) []complex128 {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	coeffs = coeffs[:n]
	if n < 2 {
		return nil
	}
	if roots := (ClosedFormSolver{}).SolvePolynomial(coeffs); roots != nil {
		return roots
	}

	deg := n - 1
	lead := coeffs[deg]
	monic := make([]complex128, n)
	for i, a := range coeffs {
		monic[i] = a / lead
	}

	// Seed with powers of a point that is neither real nor a root of unity,
	// the standard way to break symmetric root configurations.
	roots := make([]complex128, deg)
	seed := complex(0.4, 0.9)
	p := seed
	for i := range roots {
		roots[i] = p
		p *= seed
	}

	next := make([]complex128, deg)
	for iter := 0; iter < 256; iter++ {
		var shift float64
		for i, r := range roots {
			num := evalPoly(monic, r)
			den := complex(1, 0)
			for j, s := range roots {
				if j != i {
					den *= r - s
				}
			}
			if den == 0 {
				den = complex(1e-12, 0)
			}
			next[i] = r - num/den
			shift = math.Max(shift, cmplx.Abs(next[i]-r))
		}
		copy(roots, next)
		if shift < 1e-13 {
			break
		}
	}
	return roots
}

// evalPoly evaluates the polynomial at z via Horner's scheme.
func evalPoly(coeffs []complex128, z complex128) complex128 {
	acc := complex(0, 0)
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*z + coeffs[i]
	}
	return acc
}
