// Package families provides the built-in fractal families: polynomial
// parameter planes, their Julia sets, a quadratic rational family and a
// transcendental one.
package families

import (
	"github.com/fractalab/fractalab/internal/dynamics"
)

// defaultMaxIter is the iteration budget families start with; callers tune
// it per run through the exported Iters field.
const defaultMaxIter = 1024

// Cube roots of unity, used by closed-form cycle formulas.
var (
	omega    = complex(-0.5, 0.8660254037844386)
	omegaBar = complex(-0.5, -0.8660254037844386)
)

// knownCycle packages a closed-form attracting cycle as a terminal orbit
// state found without iterating.
func knownCycle(period int, multiplier complex128, potential float64) dynamics.EscapeResult {
	return dynamics.EscapeResult{
		Kind: dynamics.EscapeKnownPotential,
		Cycle: dynamics.CycleData{
			Preperiod:  int(potential),
			Period:     period,
			Multiplier: multiplier,
			FinalError: 1e-6,
		},
		Potential: potential,
	}
}

// powInt raises z to a non-negative integer power by binary exponentiation.
func powInt(z complex128, n int) complex128 {
	w := complex(1, 0)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			w *= z
		}
		z *= z
	}
	return w
}
