package families

import (
	"fmt"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
)

// Julia is the dynamical plane of another family at a fixed parameter:
// plane points become orbit starting values and the parameter never varies.
type Julia struct {
	Base   dynamics.Family
	C      complex128
	Bounds grid.Bounds
}

func NewJulia(base dynamics.Family, c complex128) *Julia {
	return &Julia{Base: base, C: c, Bounds: grid.CenteredSquare(2.2)}
}

func (j *Julia) Name() string {
	return fmt.Sprintf("julia(%s)", j.Base.Name())
}

func (j *Julia) ParamMap(point complex128) complex128 { return j.C }

func (j *Julia) Map(z, _ complex128) complex128 { return j.Base.Map(z, j.C) }

func (j *Julia) MapAndMultiplier(z, _ complex128) (complex128, complex128) {
	return j.Base.MapAndMultiplier(z, j.C)
}

// Gradient reports a zero parameter derivative: the parameter is pinned, so
// nothing in the plane moves it.
func (j *Julia) Gradient(z, _ complex128) (fz, dfdz, dfdc complex128) {
	fz, dfdz = j.Base.MapAndMultiplier(z, j.C)
	return fz, dfdz, 0
}

func (j *Julia) StartPoint(point, _ complex128) complex128 { return point }

func (j *Julia) DegreeReal() float64 { return j.Base.DegreeReal() }

func (j *Julia) EscapeRadius() float64 { return j.Base.EscapeRadius() }

func (j *Julia) MaxIter() int { return j.Base.MaxIter() }

func (j *Julia) DefaultBounds() grid.Bounds { return j.Bounds }

// MinIter defers to the base family when it declares one.
func (j *Julia) MinIter() int {
	if mi, ok := j.Base.(dynamics.MinIterer); ok {
		return mi.MinIter()
	}
	return 0
}

func (j *Julia) ExtraStopCondition(z, _ complex128, iter int) (dynamics.EscapeResult, bool) {
	if et, ok := j.Base.(dynamics.EarlyTerminator); ok {
		return et.ExtraStopCondition(z, j.C, iter)
	}
	return dynamics.EscapeResult{}, false
}

// Cycles defers to the base family: the periodic points of the dynamical
// plane are exactly the base family's cycles at this parameter.
func (j *Julia) Cycles(_ complex128, period int) []complex128 {
	if cl, ok := j.Base.(dynamics.CycleLocator); ok {
		return cl.Cycles(j.C, period)
	}
	return nil
}

func (j *Julia) NumCycleClasses() int {
	if cl, ok := j.Base.(dynamics.CycleLocator); ok {
		return cl.NumCycleClasses()
	}
	return 0
}
