// Package plane computes classification planes: it runs the orbit engine
// independently over every grid cell and stores one PointInfo per pixel.
package plane

import (
	"errors"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
)

// ErrPlaneMismatch indicates a destination plane whose backing storage does
// not match the computer's grid.
var ErrPlaneMismatch = errors.New("plane: destination plane does not match grid resolution")

// IterPlane owns a grid and a dense row-major array of per-cell
// classifications. It is produced by a Computer and consumed by coloring and
// export collaborators.
type IterPlane struct {
	Grid  grid.PointGrid
	Cells []dynamics.PointInfo
}

// NewIterPlane allocates a plane with every cell Bounded (the zero
// classification).
func NewIterPlane(g grid.PointGrid) *IterPlane {
	return &IterPlane{
		Grid:  g,
		Cells: make([]dynamics.PointInfo, g.NumCells()),
	}
}

func (p *IterPlane) index(px, py int) int {
	return py*p.Grid.ResX + px
}

// At returns the classification at pixel (px, py).
func (p *IterPlane) At(px, py int) dynamics.PointInfo {
	return p.Cells[p.index(px, py)]
}

// Set stores a classification at pixel (px, py).
func (p *IterPlane) Set(px, py int, info dynamics.PointInfo) {
	p.Cells[p.index(px, py)] = info
}

// CountKinds tallies cells by classification kind.
func (p *IterPlane) CountKinds() map[dynamics.PointKind]int {
	counts := make(map[dynamics.PointKind]int)
	for i := range p.Cells {
		counts[p.Cells[i].Kind]++
	}
	return counts
}
