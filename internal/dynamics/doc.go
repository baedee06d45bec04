// Package dynamics defines the shared contract between fractal families and
// the computation engine.
//
// The package holds the fundamental interfaces and result types for
// escape-time evaluation of discrete dynamical systems:
//
//   - [Family]: one parameterized family of maps (z -> f(z, c))
//   - [EscapeResult]: the terminal state of a single orbit
//   - [PointInfo]: the classification attached to one grid cell
//
// A Family carries no per-point state; every orbit evaluation is pure given
// a starting value and a parameter. The orbit engine and the plane
// orchestrator depend only on this contract, never on a concrete family.
//
// # Thread Safety
//
// Family values must be safe for concurrent reads: the orchestrator calls
// Map/MapAndMultiplier from many goroutines at once. All families in this
// repository are immutable value types after construction.
package dynamics
