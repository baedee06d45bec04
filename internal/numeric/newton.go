package numeric

import (
	"fmt"

	"github.com/fractalab/fractalab/internal/dynamics"
)

// Default Newton thresholds. These match the values the engine was tuned
// with; tests and callers override them through Params.
const (
	DefaultMaxIters = 16
	// DefaultMinErr: squared step size below which iteration stops early.
	DefaultMinErr = 1e-12
	// DefaultMaxErr: squared step size beyond which a result that merely ran
	// out of iterations is rejected.
	DefaultMaxErr = 1e-5
)

// Params configures a Newton solve. Zero values fall back to the defaults,
// so Params{} is usable directly.
type Params struct {
	MaxIters int
	MinErr   float64
	MaxErr   float64
}

func (p Params) withDefaults() Params {
	if p.MaxIters <= 0 {
		p.MaxIters = DefaultMaxIters
	}
	if p.MinErr <= 0 {
		p.MinErr = DefaultMinErr
	}
	if p.MaxErr <= 0 {
		p.MaxErr = DefaultMaxErr
	}
	return p
}

// ErrNanEncountered reports a NaN iterate or zero derivative mid-solve.
type ErrNanEncountered struct{}

func (ErrNanEncountered) Error() string {
	return "numeric: NaN encountered during Newton iteration"
}

// ErrFailedToConverge reports iteration-budget exhaustion; it carries the
// last iterate so callers can inspect how close the solve got.
type ErrFailedToConverge struct {
	LastValue complex128
	LastError float64
}

func (e ErrFailedToConverge) Error() string {
	return fmt.Sprintf("numeric: Newton iteration failed to converge (last value %g, err %g)",
		e.LastValue, e.LastError)
}

// RootResult is the outcome of a successful Newton solve: the approximate
// root together with the function value and derivative there, and the
// squared size of the final step.
type RootResult struct {
	Root      complex128
	Value     complex128
	Deriv     complex128
	FinalStep float64
}

// FindRoot runs Newton's method z -> z - f(z)/f'(z) from start.
//
// It succeeds as soon as the squared step size drops below MinErr. If the
// iteration budget runs out, the result is still accepted when the last step
// was below MaxErr (the caller's looser trust threshold); otherwise it fails
// with ErrFailedToConverge. A NaN iterate or a vanishing derivative fails
// with ErrNanEncountered; a degenerate answer is never returned silently.
func FindRoot(fdf func(z complex128) (complex128, complex128), start complex128, p Params) (RootResult, error) {
	p = p.withDefaults()

	z := start
	zOld := start
	var f, df complex128
	stepSqr := 0.0

	for i := 0; i < p.MaxIters; i++ {
		zOld = z
		f, df = fdf(z)
		if df == 0 {
			return RootResult{}, ErrNanEncountered{}
		}
		z -= f / df

		if dynamics.IsNan(z) {
			return RootResult{}, ErrNanEncountered{}
		}

		stepSqr = dynamics.DistSqr(z, zOld)
		if stepSqr < p.MinErr {
			return RootResult{Root: z, Value: f, Deriv: df, FinalStep: stepSqr}, nil
		}
	}

	if stepSqr < p.MaxErr {
		return RootResult{Root: z, Value: f, Deriv: df, FinalStep: stepSqr}, nil
	}
	return RootResult{}, ErrFailedToConverge{LastValue: z, LastError: stepSqr}
}

// RefinePeriodicPoint solves map^period(z) = z by Newton iteration, using the
// chain-ruled derivative of the iterated map. It returns the refined point,
// the multiplier of the cycle through it, and the squared final step size.
func RefinePeriodicPoint(fam dynamics.Family, c complex128, guess complex128, period int, p Params) (complex128, complex128, float64, error) {
	if period <= 0 {
		return 0, 0, 0, fmt.Errorf("numeric: period must be positive, got %d", period)
	}

	fdf := func(z complex128) (complex128, complex128) {
		w := z
		dw := complex(1, 0)
		for i := 0; i < period; i++ {
			var d complex128
			w, d = fam.MapAndMultiplier(w, c)
			dw *= d
		}
		// f(z) = map^p(z) - z, f'(z) = (map^p)'(z) - 1
		return w - z, dw - 1
	}

	res, err := FindRoot(fdf, guess, p)
	if err != nil {
		return 0, 0, 0, err
	}

	// Multiplier of the refined cycle.
	w := res.Root
	mult := complex(1, 0)
	for i := 0; i < period; i++ {
		var d complex128
		w, d = fam.MapAndMultiplier(w, c)
		mult *= d
	}
	return res.Root, mult, res.FinalStep, nil
}
