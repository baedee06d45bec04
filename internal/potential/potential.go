// Package potential turns raw escape data into smooth, continuous invariants:
// the escape-rate potential and its plane gradient, used downstream for
// coloring and boundary-distance estimation.
package potential

import (
	"math"
	"math/cmplx"

	"github.com/fractalab/fractalab/internal/dynamics"
)

// Estimate converts an escaped orbit into a continuous analogue of the
// iteration count:
//
//	potential ~= iters*escapingPeriod - log_degree(log|z|^2 / log R^2)
//
// Degenerate (non-finite) final values cap at iters-1 instead of propagating
// NaN. escapingPeriod is 1 for ordinary families.
func Estimate(iters int, finalValue complex128, degree, escapeRadius float64, escapingPeriod int) float64 {
	if escapingPeriod < 1 {
		escapingPeriod = 1
	}
	if !dynamics.IsFinite(finalValue) {
		return float64(iters) - 1
	}

	u := math.Log2(escapeRadius * escapeRadius)
	v := math.Log2(dynamics.NormSqr(finalValue))
	residual := math.Log(v/u) / math.Log(math.Abs(degree))
	if math.IsNaN(residual) || math.IsInf(residual, 0) {
		return float64(iters) - 1
	}
	return float64(iters*escapingPeriod) - residual
}

// EncodeEscape classifies an escaped orbit for a family, deferring to the
// family's own encoding when it provides one (transcendental maps).
func EncodeEscape(fam dynamics.Family, iters int, z, c complex128) dynamics.PointInfo {
	if enc, ok := fam.(dynamics.EscapeEncoder); ok {
		return enc.EncodeEscapingPoint(iters, z, c)
	}

	period := 1
	if ep, ok := fam.(dynamics.EscapingPerioder); ok && ep.EscapingPeriod() > 1 {
		period = ep.EscapingPeriod()
	}

	phase := -1
	if period > 1 {
		phase = iters % period
	}
	return dynamics.EscapingInfo(Estimate(iters, z, fam.DegreeReal(), fam.EscapeRadius(), period), phase)
}

// Gradient estimates the derivative of the potential with respect to the
// plane coordinate by running the orbit again and chaining the family's
// parameter derivative. Returns the final orbit value, the accumulated
// d(z_n)/d(c), and the iteration count used.
func Gradient(fam dynamics.Family, point complex128, maxIter int) (zFinal, dzdc complex128, iters int) {
	c := fam.ParamMap(point)
	z := fam.StartPoint(point, c)
	dc := complex(0, 0)
	radiusSqr := fam.EscapeRadius() * fam.EscapeRadius()

	for i := 0; i < maxIter; i++ {
		fz, dfdz, dfdc := fam.Gradient(z, c)
		dc = dfdz*dc + dfdc
		z = fz
		iters = i + 1
		if dynamics.NormSqr(z) > radiusSqr || dynamics.IsNan(z) {
			break
		}
	}
	return z, dc, iters
}

// DistanceEstimate approximates the distance from a plane point to the
// boundary of the escape locus:
//
//	d ~= 2 |z_n| ln|z_n| / |dz_n/dc|
//
// It returns the estimate and the phase of the final value. Points that do
// not escape within the family's budget report ok=false.
func DistanceEstimate(fam dynamics.Family, point complex128) (dist float64, phase int, ok bool) {
	z, dzdc, iters := Gradient(fam, point, fam.MaxIter())

	radiusSqr := fam.EscapeRadius() * fam.EscapeRadius()
	if dynamics.NormSqr(z) <= radiusSqr || !dynamics.IsFinite(z) || dzdc == 0 {
		return 0, 0, false
	}

	norm := cmplx.Abs(z)
	dist = 2 * norm * math.Log(norm) / cmplx.Abs(dzdc)

	period := 1
	if ep, okp := fam.(dynamics.EscapingPerioder); okp && ep.EscapingPeriod() > 1 {
		period = ep.EscapingPeriod()
	}
	phase = -1
	if period > 1 {
		phase = iters % period
	}
	return dist, phase, true
}
