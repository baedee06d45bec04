package families

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/fractalab/fractalab/internal/dynamics"
)

func TestMandelbrotCardioidBailout(t *testing.T) {
	m := NewMandelbrot()

	res, fired := m.EarlyBailout(0, complex(-0.1, 0))
	if !fired {
		t.Fatal("expected bailout inside the main cardioid")
	}
	if res.Kind != dynamics.EscapeKnownPotential {
		t.Errorf("expected known-potential result, got kind %d", res.Kind)
	}
	if res.Cycle.Period != 1 {
		t.Errorf("expected period 1, got %d", res.Cycle.Period)
	}
	if cmplx.Abs(res.Cycle.Multiplier) >= 1 {
		t.Errorf("cardioid multiplier should attract, got %v", res.Cycle.Multiplier)
	}
	if math.IsNaN(res.Potential) {
		t.Error("potential should be finite away from the center")
	}
}

func TestMandelbrotBulbBailout(t *testing.T) {
	m := NewMandelbrot()

	res, fired := m.EarlyBailout(0, complex(-1, 0.1))
	if !fired {
		t.Fatal("expected bailout inside the period-2 bulb")
	}
	if res.Cycle.Period != 2 {
		t.Errorf("expected period 2, got %d", res.Cycle.Period)
	}
	if cmplx.Abs(res.Cycle.Multiplier) >= 1 {
		t.Errorf("bulb multiplier should attract, got %v", res.Cycle.Multiplier)
	}
}

func TestMandelbrotNoBailoutOutside(t *testing.T) {
	m := NewMandelbrot()

	for _, c := range []complex128{complex(0.3, 0), complex(-2, 0), complex(0.28, 0.53)} {
		if _, fired := m.EarlyBailout(0, c); fired {
			t.Errorf("unexpected bailout at c = %v", c)
		}
	}
}

// iterate applies the family map p times.
func iterate(fam dynamics.Family, z, c complex128, p int) complex128 {
	for i := 0; i < p; i++ {
		z = fam.Map(z, c)
	}
	return z
}

func TestMandelbrotCycles(t *testing.T) {
	m := NewMandelbrot()

	for _, c := range []complex128{0, complex(-1, 0), complex(0.1, 0.2)} {
		for period := 1; period <= 3; period++ {
			roots := m.Cycles(c, period)
			if len(roots) == 0 {
				t.Fatalf("no cycles returned for period %d at c = %v", period, c)
			}
			for _, z := range roots {
				w := iterate(m, z, c, period)
				if cmplx.Abs(w-z) > 1e-8 {
					t.Errorf("c = %v period %d: point %v returns to %v", c, period, z, w)
				}
			}
		}
	}
}

func TestMandelbrotPeriod3Count(t *testing.T) {
	m := NewMandelbrot()

	roots := m.Cycles(0, 3)
	if len(roots) != 6 {
		t.Fatalf("expected 6 period-3 points, got %d", len(roots))
	}
	// At c = 0 the period-3 points are the primitive 7th roots of unity.
	for _, z := range roots {
		if math.Abs(cmplx.Abs(z)-1) > 1e-8 {
			t.Errorf("period-3 point %v should lie on the unit circle", z)
		}
	}
}

func TestJuliaDelegation(t *testing.T) {
	c := complex(-1, 0)
	j := NewJulia(NewMandelbrot(), c)

	if j.ParamMap(complex(0.5, 0.5)) != c {
		t.Error("ParamMap should pin the parameter")
	}
	if j.StartPoint(complex(0.5, 0.5), c) != complex(0.5, 0.5) {
		t.Error("StartPoint should be the plane point itself")
	}
	if j.Map(0, 99) != c {
		t.Error("Map should ignore the passed parameter")
	}

	fz, dfdz := j.MapAndMultiplier(complex(2, 0), 0)
	if fz != complex(3, 0) || dfdz != complex(4, 0) {
		t.Errorf("unexpected step: fz = %v, dfdz = %v", fz, dfdz)
	}

	_, _, dfdc := j.Gradient(complex(2, 0), 0)
	if dfdc != 0 {
		t.Errorf("parameter derivative should vanish in the dynamical plane, got %v", dfdc)
	}

	roots := j.Cycles(0, 2)
	if len(roots) != 2 {
		t.Fatalf("expected the base family's period-2 points, got %d", len(roots))
	}
	for _, z := range roots {
		w := iterate(j, z, 0, 2)
		if cmplx.Abs(w-z) > 1e-10 {
			t.Errorf("period-2 point %v returns to %v", z, w)
		}
	}
}

func TestMultibrotMap(t *testing.T) {
	m := NewMultibrot(3)
	z := complex(1, 1)
	c := complex(0.2, -0.1)

	want := z*z*z + c
	if got := m.Map(z, c); cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("Map = %v, want %v", got, want)
	}

	fz, dfdz := m.MapAndMultiplier(z, c)
	if cmplx.Abs(fz-want) > 1e-12 {
		t.Errorf("MapAndMultiplier value = %v, want %v", fz, want)
	}
	if wantD := 3 * z * z; cmplx.Abs(dfdz-wantD) > 1e-12 {
		t.Errorf("multiplier = %v, want %v", dfdz, wantD)
	}
}

func TestMultibrotDegreeFloor(t *testing.T) {
	if m := NewMultibrot(0); m.Degree != 2 {
		t.Errorf("degree should floor at 2, got %d", m.Degree)
	}
}

func TestBurningShipFold(t *testing.T) {
	b := NewBurningShip()

	// The fold maps -1-i to 1+i before squaring.
	want := complex(0, 2)
	if got := b.Map(complex(-1, -1), 0); cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("Map = %v, want %v", got, want)
	}

	_, dfdz := b.MapAndMultiplier(complex(-1, -1), 0)
	if want := complex(2, 2); cmplx.Abs(dfdz-want) > 1e-12 {
		t.Errorf("multiplier = %v, want %v", dfdz, want)
	}

	// In the first quadrant the fold is the identity and the family agrees
	// with the quadratic map.
	m := NewMandelbrot()
	z, c := complex(0.5, 0.25), complex(0.1, 0.1)
	if b.Map(z, c) != m.Map(z, c) {
		t.Error("fold should be the identity in the first quadrant")
	}
}

func TestExponentialEncode(t *testing.T) {
	e := NewExponential()

	nan := complex(math.NaN(), 0)
	if info := e.EncodeEscapingPoint(10, nan, 0); info.Potential != 9 {
		t.Errorf("NaN final value should cap at iters-1, got %f", info.Potential)
	}

	if info := e.EncodeEscapingPoint(10, complex(-5, 1), 0); info.Kind != dynamics.PointBounded {
		t.Error("left half plane values should classify as bounded")
	}

	inf := complex(math.Inf(1), 0)
	if info := e.EncodeEscapingPoint(10, inf, 0); info.Potential != 11 {
		t.Errorf("infinite final value should report iters+1, got %f", info.Potential)
	}

	info := e.EncodeEscapingPoint(10, complex(50, 0), 0)
	if info.Kind != dynamics.PointEscaping {
		t.Fatalf("expected escaping classification, got %v", info.Kind)
	}
	if math.IsNaN(info.Potential) || math.IsInf(info.Potential, 0) {
		t.Errorf("potential should be finite, got %f", info.Potential)
	}
}

func TestExponentialMultiplier(t *testing.T) {
	e := NewExponential()
	z, lambda := complex(0.3, -0.2), complex(0.1, 0.4)

	fz, dfdz := e.MapAndMultiplier(z, lambda)
	if fz != dfdz {
		t.Error("the exponential map equals its own derivative")
	}
	if want := cmplx.Exp(z) * lambda; cmplx.Abs(fz-want) > 1e-14 {
		t.Errorf("Map = %v, want %v", fz, want)
	}
}

func TestExponentialBlowUpStop(t *testing.T) {
	e := NewExponential()

	res, fired := e.ExtraStopCondition(complex(300, 0), 0, 12)
	if !fired || res.Kind != dynamics.EscapeEscaped {
		t.Errorf("large real part must escape, got fired=%v kind=%v", fired, res.Kind)
	}
	if res.Iters != 12 {
		t.Errorf("Iters = %d, want 12", res.Iters)
	}

	res, fired = e.ExtraStopCondition(complex(0, 1e16), 0, 3)
	if !fired || res.Kind != dynamics.EscapeUnknown {
		t.Errorf("extreme imaginary part must be indeterminate, got fired=%v kind=%v", fired, res.Kind)
	}

	if _, fired = e.ExtraStopCondition(complex(-100, 2), 0, 5); fired {
		t.Error("left half plane values must keep iterating")
	}
}

func TestQuadRatPer2EscapingPhase(t *testing.T) {
	q := NewQuadRatPer2()

	var ep dynamics.EscapingPerioder = q
	if ep.EscapingPeriod() != 2 {
		t.Fatalf("EscapingPeriod = %d, want 2", ep.EscapingPeriod())
	}

	big := complex(1e8, 0)
	for _, tc := range []struct {
		iters int
		phase int
	}{{7, 1}, {8, 0}} {
		info := q.EncodeEscapingPoint(tc.iters, big, 0)
		if info.Kind != dynamics.PointEscaping {
			t.Fatalf("iters=%d: expected escaping, got %v", tc.iters, info.Kind)
		}
		if !info.HasPhase || info.Phase != tc.phase {
			t.Errorf("iters=%d: phase = %d (has=%v), want %d", tc.iters, info.Phase, info.HasPhase, tc.phase)
		}
	}

	nan := complex(math.NaN(), 0)
	info := q.EncodeEscapingPoint(9, nan, 0)
	if info.Potential != 7 {
		t.Errorf("NaN final value should report iters-2, got %f", info.Potential)
	}
	if !info.HasPhase || info.Phase != 1 {
		t.Errorf("NaN branch phase = %d (has=%v), want 1", info.Phase, info.HasPhase)
	}
}

func TestQuadRatPer2FixedPoints(t *testing.T) {
	q := NewQuadRatPer2()

	for _, c := range []complex128{complex(0, 0.5), complex(0.3, -0.2), complex(-1.2, 0.1)} {
		roots := q.Cycles(c, 1)
		if len(roots) != 3 {
			t.Fatalf("expected 3 fixed points at c = %v, got %d", c, len(roots))
		}
		for _, z := range roots {
			if w := q.Map(z, c); cmplx.Abs(w-z) > 1e-8 {
				t.Errorf("c = %v: fixed point %v maps to %v", c, z, w)
			}
		}
	}
}

func TestQuadRatPer2Derivative(t *testing.T) {
	q := NewQuadRatPer2()
	z, c := complex(0.5, 0.3), complex(-0.4, 0.2)

	_, dfdz := q.MapAndMultiplier(z, c)

	// Compare against a central finite difference.
	h := complex(1e-6, 0)
	approx := (q.Map(z+h, c) - q.Map(z-h, c)) / (2 * h)
	if cmplx.Abs(dfdz-approx) > 1e-5 {
		t.Errorf("multiplier = %v, finite difference = %v", dfdz, approx)
	}
}

func TestFamiliesValidate(t *testing.T) {
	fams := []dynamics.Family{
		NewMandelbrot(),
		NewJulia(NewMandelbrot(), complex(-1, 0)),
		NewMultibrot(4),
		NewBurningShip(),
		NewExponential(),
		NewQuadRatPer2(),
	}
	for _, f := range fams {
		if err := dynamics.ValidateFamily(f); err != nil {
			t.Errorf("%s: %v", f.Name(), err)
		}
		if !f.DefaultBounds().IsValid() {
			t.Errorf("%s: invalid default bounds", f.Name())
		}
	}
}
