package potential

import (
	"math"
	"testing"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
)

type quadMap struct{}

func (quadMap) Name() string                          { return "quad" }
func (quadMap) ParamMap(p complex128) complex128      { return p }
func (quadMap) Map(z, c complex128) complex128        { return z*z + c }
func (quadMap) StartPoint(p, c complex128) complex128 { return 0 }
func (quadMap) DegreeReal() float64                   { return 2 }
func (quadMap) EscapeRadius() float64                 { return 1e6 }
func (quadMap) MaxIter() int                          { return 512 }
func (quadMap) DefaultBounds() grid.Bounds            { return grid.CenteredSquare(2) }

func (quadMap) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	return z*z + c, 2 * z
}

func (quadMap) Gradient(z, c complex128) (complex128, complex128, complex128) {
	return z*z + c, 2 * z, 1
}

func TestEstimateContinuity(t *testing.T) {
	// Doubling the norm of a degree-2 final value shifts the residual by
	// a fixed amount; the potential stays within one unit of the raw count.
	p := Estimate(20, complex(2e6, 0), 2, 1e6, 1)
	if math.Abs(p-20) > 1.5 {
		t.Errorf("potential %f too far from iteration count 20", p)
	}
}

func TestEstimateMonotonicInIters(t *testing.T) {
	z := complex(3e6, 0)
	p1 := Estimate(10, z, 2, 1e6, 1)
	p2 := Estimate(11, z, 2, 1e6, 1)
	if p2 <= p1 {
		t.Errorf("potential must grow with escape time: %f then %f", p1, p2)
	}
}

func TestEstimateDegenerateInput(t *testing.T) {
	for _, z := range []complex128{
		complex(math.NaN(), 0),
		complex(math.Inf(1), 0),
		complex(0, math.Inf(-1)),
	} {
		p := Estimate(42, z, 2, 1e6, 1)
		if p != 41 {
			t.Errorf("non-finite final value should cap at iters-1, got %f", p)
		}
		if math.IsNaN(p) {
			t.Error("potential must never be NaN")
		}
	}
}

func TestEstimateEscapingPeriodScaling(t *testing.T) {
	z := complex(5e6, 0)
	p1 := Estimate(10, z, 2, 1e6, 1)
	p2 := Estimate(10, z, 2, 1e6, 2)
	if p2 <= p1 {
		t.Errorf("escaping period must scale the count: %f vs %f", p1, p2)
	}
}

func TestEncodeEscapeDefault(t *testing.T) {
	info := EncodeEscape(quadMap{}, 12, complex(4e6, 0), 0)
	if info.Kind != dynamics.PointEscaping {
		t.Fatalf("expected escaping info, got %v", info.Kind)
	}
	if info.HasPhase {
		t.Error("plain quadratic family has no escaping phase")
	}
	if math.IsNaN(info.Potential) {
		t.Error("potential must be finite")
	}
}

type customEncodeMap struct{ quadMap }

func (customEncodeMap) EncodeEscapingPoint(iters int, z, c complex128) dynamics.PointInfo {
	return dynamics.EscapingInfo(float64(iters) * 2, -1)
}

func TestEncodeEscapeOverride(t *testing.T) {
	info := EncodeEscape(customEncodeMap{}, 7, 0, 0)
	if info.Potential != 14 {
		t.Errorf("family encoding override ignored, potential %f", info.Potential)
	}
}

func TestGradientEscapes(t *testing.T) {
	// c = +1 escapes quickly; the parameter derivative must be finite and
	// nonzero along the way.
	z, dzdc, iters := Gradient(quadMap{}, complex(1, 0), 512)
	if dynamics.NormSqr(z) <= 1e12 {
		t.Fatalf("expected escape, final %v after %d iters", z, iters)
	}
	if dzdc == 0 || dynamics.IsNan(dzdc) {
		t.Errorf("bad parameter gradient %v", dzdc)
	}
}

func TestDistanceEstimateOutsidePoint(t *testing.T) {
	d, _, ok := DistanceEstimate(quadMap{}, complex(1, 0))
	if !ok {
		t.Fatal("point outside the set must yield a distance estimate")
	}
	if d <= 0 || math.IsNaN(d) {
		t.Errorf("expected positive finite distance, got %g", d)
	}

	// Farther points are farther from the boundary.
	d2, _, ok := DistanceEstimate(quadMap{}, complex(2, 0))
	if !ok || d2 <= d {
		t.Errorf("distance should grow away from the set: %g then %g", d, d2)
	}
}

func TestDistanceEstimateInteriorPoint(t *testing.T) {
	if _, _, ok := DistanceEstimate(quadMap{}, 0); ok {
		t.Error("interior point must not produce a distance estimate")
	}
}
