package families

import (
	"fmt"

	"github.com/fractalab/fractalab/internal/grid"
)

// Multibrot generalizes the Mandelbrot parameter plane to z -> z^d + c for
// an integer degree d >= 2.
type Multibrot struct {
	Degree int
	Iters  int
}

func NewMultibrot(degree int) *Multibrot {
	if degree < 2 {
		degree = 2
	}
	return &Multibrot{Degree: degree, Iters: defaultMaxIter}
}

func (m *Multibrot) Name() string {
	return fmt.Sprintf("multibrot%d", m.Degree)
}

func (*Multibrot) ParamMap(point complex128) complex128 { return point }

func (m *Multibrot) Map(z, c complex128) complex128 {
	return powInt(z, m.Degree) + c
}

func (m *Multibrot) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	u := powInt(z, m.Degree-1)
	return u*z + c, complex(float64(m.Degree), 0) * u
}

func (m *Multibrot) Gradient(z, c complex128) (fz, dfdz, dfdc complex128) {
	fz, dfdz = m.MapAndMultiplier(z, c)
	return fz, dfdz, 1
}

func (*Multibrot) StartPoint(point, c complex128) complex128 { return 0 }

func (m *Multibrot) DegreeReal() float64 { return float64(m.Degree) }

func (*Multibrot) EscapeRadius() float64 { return 1e6 }

func (m *Multibrot) MaxIter() int { return m.Iters }

func (*Multibrot) DefaultBounds() grid.Bounds {
	return grid.CenteredSquare(2.2)
}
