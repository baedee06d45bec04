package analysis

import (
	"math"
	"math/cmplx"

	"github.com/fractalab/fractalab/internal/dynamics"
)

// OrbitLyapunov estimates the Lyapunov exponent of the orbit through the
// given plane point:
//
//	lambda = (1/n) * sum log|f'(z_k)|
//
// Orbits that escape or hit a singularity report the exponent over the steps
// taken so far. A positive value indicates chaotic dynamics.
func OrbitLyapunov(fam dynamics.Family, point complex128, maxIter int) float64 {
	c := fam.ParamMap(point)
	z := fam.StartPoint(point, c)
	radiusSqr := fam.EscapeRadius() * fam.EscapeRadius()

	sumLog := 0.0
	count := 0
	for i := 0; i < maxIter; i++ {
		fz, dfdz := fam.MapAndMultiplier(z, c)
		norm := cmplx.Abs(dfdz)
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			break
		}
		sumLog += math.Log(norm)
		count++

		z = fz
		if dynamics.NormSqr(z) > radiusSqr || dynamics.IsNan(z) {
			break
		}
	}
	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}

// BifurcationDiagram sweeps the parameter along the real segment
// [minRe, maxRe] with the given number of samples, iterates each orbit past
// its transient and keeps the last keep real parts. The result has one slice
// per sample; escaped parameters yield nil.
func BifurcationDiagram(fam dynamics.Family, minRe, maxRe float64, samples, keep int) [][]float64 {
	if samples < 2 || keep < 1 {
		return nil
	}

	out := make([][]float64, samples)
	radiusSqr := fam.EscapeRadius() * fam.EscapeRadius()
	step := (maxRe - minRe) / float64(samples-1)
	transient := fam.MaxIter()

	for s := 0; s < samples; s++ {
		point := complex(minRe+float64(s)*step, 0)
		c := fam.ParamMap(point)
		z := fam.StartPoint(point, c)

		escaped := false
		for i := 0; i < transient; i++ {
			z = fam.Map(z, c)
			if dynamics.NormSqr(z) > radiusSqr || dynamics.IsNan(z) {
				escaped = true
				break
			}
		}
		if escaped {
			continue
		}

		tail := make([]float64, 0, keep)
		for i := 0; i < keep; i++ {
			z = fam.Map(z, c)
			tail = append(tail, real(z))
		}
		out[s] = tail
	}
	return out
}
