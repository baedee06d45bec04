package dynamics

import (
	"github.com/fractalab/fractalab/internal/grid"
)

// Family is the map-evaluation contract every fractal family implements.
// Plane points, dynamical values, parameters and derivatives are all
// complex128 at this boundary.
type Family interface {
	// Name identifies the family in the registry and in exports.
	Name() string

	// ParamMap maps a plane coordinate to the dynamical parameter used by Map.
	// For plain parameter planes this is the identity.
	ParamMap(point complex128) complex128

	// Map applies one iteration step.
	Map(z, c complex128) complex128

	// MapAndMultiplier applies one step and returns the derivative with
	// respect to z. This is the hot-path call; families implement it directly
	// rather than calling Map twice.
	MapAndMultiplier(z, c complex128) (complex128, complex128)

	// Gradient returns the step value, the z-derivative and the c-derivative.
	// Used for distance estimation in parameter planes.
	Gradient(z, c complex128) (fz, dfdz, dfdc complex128)

	// StartPoint returns the initial iterate for the orbit through the given
	// plane point and parameter.
	StartPoint(point, c complex128) complex128

	// DegreeReal is the (possibly non-integer) degree used by the potential
	// estimator.
	DegreeReal() float64

	// EscapeRadius is the norm threshold beyond which an orbit is declared
	// escaped; the engine compares norm-squared against its square.
	EscapeRadius() float64

	// MaxIter bounds the orbit length.
	MaxIter() int

	// DefaultBounds is the natural view region of the family.
	DefaultBounds() grid.Bounds
}

// EarlyTerminator is implemented by families with an extra per-step stop
// condition, e.g. component blow-up thresholds for transcendental maps.
// Returning ok=false keeps the orbit running.
type EarlyTerminator interface {
	ExtraStopCondition(z, c complex128, iter int) (EscapeResult, bool)
}

// EarlyBailer is implemented by families that can classify some parameters
// without iterating at all (e.g. the Mandelbrot main cardioid). It is
// consulted once per orbit, before the first step.
type EarlyBailer interface {
	EarlyBailout(start, c complex128) (EscapeResult, bool)
}

// MinIterer overrides the minimum iteration count before cycle detection is
// allowed. Useful for families with near-parabolic dynamics, where escaping
// orbits stay near-periodic for a long time.
type MinIterer interface {
	MinIter() int
}

// EscapeEncoder overrides the default smooth-potential encoding of an
// escaped orbit. Transcendental families supply their own closed form here.
type EscapeEncoder interface {
	EncodeEscapingPoint(iters int, z, c complex128) PointInfo
}

// EscapingPerioder reports the period of the first-return map at infinity.
// The potential estimator scales iteration counts by it; phase coloring of
// escaping points only exists when it exceeds 1.
type EscapingPerioder interface {
	EscapingPeriod() int
}

// CycleLocator is implemented by families that can locate their low-period
// cycles exactly. Detected cycles matching a located one are reported as
// MarkedPoint with the corresponding class id.
type CycleLocator interface {
	Cycles(c complex128, period int) []complex128
	NumCycleClasses() int
}
