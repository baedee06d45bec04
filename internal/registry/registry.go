// Package registry maps family names to constructors so the CLI and config
// layer can build families by name.
package registry

import (
	"fmt"
	"sort"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/families"
)

type Registry struct {
	families map[string]func() dynamics.Family
}

func New() *Registry {
	r := &Registry{families: make(map[string]func() dynamics.Family)}

	r.families["mandelbrot"] = func() dynamics.Family { return families.NewMandelbrot() }
	r.families["multibrot3"] = func() dynamics.Family { return families.NewMultibrot(3) }
	r.families["multibrot4"] = func() dynamics.Family { return families.NewMultibrot(4) }
	r.families["burning_ship"] = func() dynamics.Family { return families.NewBurningShip() }
	r.families["exponential"] = func() dynamics.Family { return families.NewExponential() }
	r.families["quad_rat_per_2"] = func() dynamics.Family { return families.NewQuadRatPer2() }

	return r
}

// Register adds or replaces a named constructor.
func (r *Registry) Register(name string, fn func() dynamics.Family) {
	r.families[name] = fn
}

func (r *Registry) Get(name string) (dynamics.Family, error) {
	fn, ok := r.families[name]
	if !ok {
		return nil, fmt.Errorf("unknown family: %s", name)
	}
	return fn(), nil
}

// Julia builds the dynamical plane of a registered family at parameter c.
func (r *Registry) Julia(base string, c complex128) (dynamics.Family, error) {
	fam, err := r.Get(base)
	if err != nil {
		return nil, err
	}
	return families.NewJulia(fam, c), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
