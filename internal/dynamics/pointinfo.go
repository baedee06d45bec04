package dynamics

import (
	"encoding/json"
	"fmt"
	"math"
	"math/cmplx"
)

// displayPrec is the precision used when printing orbit summaries.
const displayPrec = 12

// EscapeKind enumerates terminal orbit states.
type EscapeKind uint8

const (
	// EscapeBounded: the iteration budget ran out with no cycle found.
	EscapeBounded EscapeKind = iota
	// EscapeEscaped: the orbit left the escape radius (or hit a NaN).
	EscapeEscaped
	// EscapePeriodic: a cycle was detected and refined.
	EscapePeriodic
	// EscapeKnownPotential: a cycle with a closed-form potential, found
	// without iterating.
	EscapeKnownPotential
	// EscapeUnknown: numerically indeterminate before classification.
	EscapeUnknown
)

// CycleData describes a detected periodic cycle. It carries custom JSON
// marshaling because encoding/json has no complex number representation; the
// multiplier travels as a [re, im] pair.
type CycleData struct {
	Preperiod  int
	Period     int
	Multiplier complex128
	FinalError float64
}

type cycleDataJSON struct {
	Preperiod  int        `json:"preperiod"`
	Period     int        `json:"period"`
	Multiplier [2]float64 `json:"multiplier"`
	FinalError float64    `json:"final_error"`
}

func (c CycleData) MarshalJSON() ([]byte, error) {
	return json.Marshal(cycleDataJSON{
		Preperiod:  c.Preperiod,
		Period:     c.Period,
		Multiplier: [2]float64{real(c.Multiplier), imag(c.Multiplier)},
		FinalError: c.FinalError,
	})
}

func (c *CycleData) UnmarshalJSON(data []byte) error {
	var raw cycleDataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Preperiod = raw.Preperiod
	c.Period = raw.Period
	c.Multiplier = complex(raw.Multiplier[0], raw.Multiplier[1])
	c.FinalError = raw.FinalError
	return nil
}

func (c CycleData) String() string {
	return fmt.Sprintf("Cycle detected after %d iterations.\nPeriod: %d\nMultiplier: %.*g",
		c.Preperiod, c.Period, displayPrec, c.Multiplier)
}

// EscapeResult is the terminal state of a single orbit. Exactly the fields
// implied by Kind are meaningful.
type EscapeResult struct {
	Kind       EscapeKind
	Iters      int
	FinalValue complex128
	Cycle      CycleData
	Potential  float64 // set for EscapeKnownPotential
}

// Escaped builds an escape result for an orbit that left the radius.
func Escaped(iters int, finalValue complex128) EscapeResult {
	return EscapeResult{Kind: EscapeEscaped, Iters: iters, FinalValue: finalValue}
}

// Periodic builds an escape result for a detected cycle.
func Periodic(cycle CycleData, finalValue complex128) EscapeResult {
	return EscapeResult{Kind: EscapePeriodic, Cycle: cycle, FinalValue: finalValue}
}

// PointKind enumerates the classification variants stored per grid cell.
type PointKind uint8

const (
	PointBounded PointKind = iota
	PointEscaping
	PointPeriodic
	PointKnownPotential
	PointWandering
	PointMarked
	PointDistanceEstimate
	PointUnknown
)

var pointKindNames = map[PointKind]string{
	PointBounded:          "bounded",
	PointEscaping:         "escaping",
	PointPeriodic:         "periodic",
	PointKnownPotential:   "known_potential",
	PointWandering:        "wandering",
	PointMarked:           "marked",
	PointDistanceEstimate: "distance_estimate",
	PointUnknown:          "unknown",
}

func (k PointKind) String() string {
	if s, ok := pointKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// PointInfo is the classification outcome for one sampled point. Kind
// discriminates which fields are meaningful; exactly one variant is ever
// stored per cell.
type PointInfo struct {
	Kind PointKind `json:"kind"`

	// Escaping / KnownPotential / DistanceEstimate
	Potential float64 `json:"potential,omitempty"`
	Phase     int     `json:"phase,omitempty"`
	HasPhase  bool    `json:"has_phase,omitempty"`
	Distance  float64 `json:"distance,omitempty"`

	// Periodic / KnownPotential / Marked
	Cycle CycleData `json:"cycle"`

	// Marked
	ClassID         int `json:"class_id,omitempty"`
	NumPointClasses int `json:"num_point_classes,omitempty"`
}

func BoundedInfo() PointInfo { return PointInfo{Kind: PointBounded} }

func WanderingInfo() PointInfo { return PointInfo{Kind: PointWandering} }

func UnknownInfo() PointInfo { return PointInfo{Kind: PointUnknown} }

// EscapingInfo builds an escaping classification; phase < 0 means no phase.
func EscapingInfo(potential float64, phase int) PointInfo {
	return PointInfo{
		Kind:      PointEscaping,
		Potential: potential,
		Phase:     phase,
		HasPhase:  phase >= 0,
	}
}

func PeriodicInfo(cycle CycleData) PointInfo {
	return PointInfo{Kind: PointPeriodic, Cycle: cycle}
}

func KnownPotentialInfo(period int, multiplier complex128, potential float64) PointInfo {
	return PointInfo{
		Kind:      PointKnownPotential,
		Cycle:     CycleData{Period: period, Multiplier: multiplier},
		Potential: potential,
	}
}

func MarkedInfo(cycle CycleData, classID, numClasses int) PointInfo {
	return PointInfo{
		Kind:            PointMarked,
		Cycle:           cycle,
		ClassID:         classID,
		NumPointClasses: numClasses,
	}
}

func DistanceEstimateInfo(distance float64, phase int) PointInfo {
	return PointInfo{
		Kind:     PointDistanceEstimate,
		Distance: distance,
		Phase:    phase,
		HasPhase: phase >= 0,
	}
}

func (p PointInfo) String() string {
	switch p.Kind {
	case PointEscaping:
		return fmt.Sprintf("Escaped, potential: %.*f", displayPrec, p.Potential)
	case PointPeriodic, PointMarked:
		return p.Cycle.String()
	case PointKnownPotential:
		return fmt.Sprintf("Cycle detected.\nPeriod: %d\nMultiplier: %.*g\nPotential: %.*f",
			p.Cycle.Period, displayPrec, p.Cycle.Multiplier, displayPrec, p.Potential)
	case PointWandering:
		return "Wandering (appears to escape very slowly)"
	case PointDistanceEstimate:
		return fmt.Sprintf("Boundary distance estimate: %.*g", displayPrec, p.Distance)
	case PointUnknown:
		return "Unknown (numerically indeterminate)"
	default:
		return "Bounded (no cycle detected or period too high)"
	}
}

// OrbitInfo pairs a starting point with its classification, for single-point
// queries from the CLI.
type OrbitInfo struct {
	Start  complex128
	Param  complex128
	Result PointInfo
}

func (o OrbitInfo) String() string {
	return fmt.Sprintf("Starting point: %.*f\nParameter: %.*f\n%s",
		displayPrec, o.Start, displayPrec, o.Param, o.Result)
}

// IsNan reports whether either component of z is NaN.
func IsNan(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z))
}

// NormSqr is the squared Euclidean norm of z.
func NormSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// DistSqr is the squared distance between z and w.
func DistSqr(z, w complex128) float64 {
	return NormSqr(z - w)
}

// IsFinite reports whether both components of z are finite.
func IsFinite(z complex128) bool {
	return !IsNan(z) && !cmplx.IsInf(z)
}
