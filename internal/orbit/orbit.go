// Package orbit advances single points under a family's map, producing lazy,
// finite orbit sequences and cycle-detected classifications.
package orbit

import (
	"math"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/numeric"
)

// Params bundles the per-orbit tuning knobs. They are explicit fields rather
// than globals so tests and callers can vary them per run.
type Params struct {
	MaxIter int
	MinIter int
	// EscapeRadius is the norm threshold; orbits compare norm-squared
	// against its square.
	EscapeRadius float64
	// PeriodicityTolerance is the squared fast/slow distance below which a
	// cycle is suspected. Zero disables cycle detection.
	PeriodicityTolerance float64
	// Newton configures periodic-point refinement.
	Newton numeric.Params
}

// FromFamily derives orbit parameters from a family's configuration and the
// area of the viewed region (which scales the periodicity tolerance).
func FromFamily(fam dynamics.Family, boundsArea float64) Params {
	p := Params{
		MaxIter:              fam.MaxIter(),
		EscapeRadius:         fam.EscapeRadius(),
		PeriodicityTolerance: boundsArea * 1e-14,
	}
	if mi, ok := fam.(dynamics.MinIterer); ok {
		p.MinIter = mi.MinIter()
	}
	return p
}

func (p Params) radiusSqr() float64 {
	return p.EscapeRadius * p.EscapeRadius
}

// Simple is the lazy pull-based orbit sequence: each Next call advances one
// step and reports the current value together with the terminal state, if
// any. Once terminal, the sequence yields the settled value exactly once
// more and then ends. A new starting value requires a new instance.
type Simple struct {
	fam    dynamics.Family
	c      complex128
	params Params

	Z       complex128
	Iter    int
	state   *dynamics.EscapeResult
	settled bool
}

// NewSimple starts a fresh orbit at z under parameter c.
func NewSimple(fam dynamics.Family, z, c complex128, params Params) *Simple {
	return &Simple{fam: fam, c: c, params: params, Z: z}
}

// Next yields the next (value, status) pair. The boolean is false once the
// sequence is exhausted.
func (o *Simple) Next() (complex128, *dynamics.EscapeResult, bool) {
	switch {
	case o.Iter == 0:
		// Record the initial value and evaluate stop conditions before
		// yielding anything.
		o.Iter = 1
		o.enforceStopCondition()
		return o.Z, o.state, true
	case o.state == nil:
		o.Z = o.fam.Map(o.Z, o.c)
		o.Iter++
		o.enforceStopCondition()
		return o.Z, o.state, true
	case !o.settled:
		// Yield the terminal value once more so consumers can observe it.
		o.settled = true
		return o.Z, o.state, true
	default:
		return 0, nil, false
	}
}

// State returns the terminal state, or nil while the orbit is running.
func (o *Simple) State() *dynamics.EscapeResult {
	return o.state
}

func (o *Simple) enforceStopCondition() {
	if o.Iter > o.params.MaxIter {
		res := dynamics.EscapeResult{Kind: dynamics.EscapeBounded, Iters: o.Iter - 1, FinalValue: o.Z}
		o.state = &res
		return
	}

	if dynamics.NormSqr(o.Z) > o.params.radiusSqr() || dynamics.IsNan(o.Z) {
		// Subtract 1 to undo the offset from iteration start.
		res := dynamics.Escaped(o.Iter-1, o.Z)
		o.state = &res
		return
	}

	if et, ok := o.fam.(dynamics.EarlyTerminator); ok {
		if res, fired := et.ExtraStopCondition(o.Z, o.c, o.Iter); fired {
			o.state = &res
		}
	}
}

// Cycle runs an orbit with Floyd (tortoise and hare) cycle detection,
// accumulating the multiplier along the fast orbit. Detected cycles are
// confirmed by Newton refinement before being reported as periodic.
type Cycle struct {
	fam    dynamics.Family
	c      complex128
	params Params

	zSlow      complex128
	zFast      complex128
	multiplier complex128
	iter       int
	state      *dynamics.EscapeResult
}

// NewCycle starts a fresh cycle-detecting orbit at z under parameter c.
func NewCycle(fam dynamics.Family, z, c complex128, params Params) *Cycle {
	return &Cycle{
		fam:        fam,
		c:          c,
		params:     params,
		zSlow:      z,
		zFast:      z,
		multiplier: 1,
	}
}

// Run advances the orbit to its terminal state. Odd iterations step both
// tortoise and hare and check the escape condition; even iterations step the
// hare only and additionally test for a closed-up cycle.
func (o *Cycle) Run() dynamics.EscapeResult {
	if eb, ok := o.fam.(dynamics.EarlyBailer); ok {
		if res, fired := eb.EarlyBailout(o.zFast, o.c); fired {
			return res
		}
	}

	for o.state == nil {
		o.iter++
		if o.iter%2 == 1 {
			o.zSlow = o.fam.Map(o.zSlow, o.c)
			o.stepFast()
			o.enforceStopCondition()
		} else {
			o.stepFast()
			o.checkPeriodicity()
		}
	}
	return *o.state
}

func (o *Cycle) stepFast() {
	z, d := o.fam.MapAndMultiplier(o.zFast, o.c)
	o.multiplier *= d
	o.zFast = z
}

func (o *Cycle) terminate(res dynamics.EscapeResult) {
	o.state = &res
}

// enforceStopCondition checks budget, escape and family-specific stop rules.
// Returns true when the orbit terminated.
func (o *Cycle) enforceStopCondition() bool {
	if o.iter > o.params.MaxIter {
		o.terminate(dynamics.EscapeResult{
			Kind:       dynamics.EscapeBounded,
			Iters:      o.iter - 1,
			FinalValue: o.zFast,
		})
		return true
	}
	if o.iter < o.params.MinIter {
		return false
	}

	if dynamics.NormSqr(o.zFast) > o.params.radiusSqr() || dynamics.IsNan(o.zFast) {
		o.terminate(dynamics.Escaped(o.iter, o.zFast))
		return true
	}

	if et, ok := o.fam.(dynamics.EarlyTerminator); ok {
		if res, fired := et.ExtraStopCondition(o.zFast, o.c, o.iter); fired {
			o.terminate(res)
			return true
		}
	}
	return false
}

func (o *Cycle) checkPeriodicity() {
	if o.enforceStopCondition() {
		return
	}
	if o.params.PeriodicityTolerance <= 0 {
		return
	}

	errSqr := dynamics.DistSqr(o.zFast, o.zSlow)
	if errSqr >= o.params.PeriodicityTolerance {
		return
	}

	period, ok := o.findCandidatePeriod()
	if !ok {
		return
	}

	// Confirm the candidate by solving map^p(z) - z = 0. A refinement that
	// fails to converge or hits a NaN is not promoted; the orbit keeps
	// running and ends Bounded if nothing better turns up.
	refined, mult, _, err := numeric.RefinePeriodicPoint(o.fam, o.c, o.zFast, period, o.params.Newton)
	if err != nil {
		return
	}
	if dynamics.IsNan(refined) || dynamics.IsNan(mult) {
		o.terminate(dynamics.EscapeResult{Kind: dynamics.EscapeUnknown, Iters: o.iter, FinalValue: o.zFast})
		return
	}

	o.terminate(dynamics.Periodic(dynamics.CycleData{
		Preperiod:  o.iter,
		Period:     period,
		Multiplier: mult,
		FinalError: errSqr,
	}, refined))
}

// findCandidatePeriod re-iterates from the hare, looking for the first
// return within a loosened tolerance. Patience is bounded by the current
// iteration count.
func (o *Cycle) findCandidatePeriod() (int, bool) {
	tol := math.Pow(o.params.PeriodicityTolerance, 0.75)
	z := o.zFast
	for i := 1; i <= o.iter; i++ {
		z = o.fam.Map(z, o.c)
		if dynamics.DistSqr(z, o.zFast) <= tol {
			return i, true
		}
		if dynamics.IsNan(z) {
			return 0, false
		}
	}
	return 0, false
}
