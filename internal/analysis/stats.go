package analysis

import (
	"math"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/plane"
)

// PlaneStats summarizes one computed plane.
type PlaneStats struct {
	Total            int
	Counts           map[dynamics.PointKind]int
	EscapingFraction float64
	PotentialMin     float64
	PotentialMax     float64
	PotentialMean    float64
}

// Summarize tallies cell kinds and the potential distribution over the
// escaping cells.
func Summarize(ip *plane.IterPlane) PlaneStats {
	stats := PlaneStats{
		Total:        len(ip.Cells),
		Counts:       ip.CountKinds(),
		PotentialMin: math.Inf(1),
		PotentialMax: math.Inf(-1),
	}

	sum := 0.0
	n := 0
	for i := range ip.Cells {
		cell := &ip.Cells[i]
		if cell.Kind != dynamics.PointEscaping {
			continue
		}
		if !math.IsNaN(cell.Potential) {
			stats.PotentialMin = math.Min(stats.PotentialMin, cell.Potential)
			stats.PotentialMax = math.Max(stats.PotentialMax, cell.Potential)
			sum += cell.Potential
			n++
		}
	}
	if n > 0 {
		stats.PotentialMean = sum / float64(n)
		stats.EscapingFraction = float64(stats.Counts[dynamics.PointEscaping]) / float64(stats.Total)
	} else {
		stats.PotentialMin, stats.PotentialMax = 0, 0
	}
	return stats
}

// PotentialHistogram bins the escape potentials of a plane into the given
// number of equal-width buckets between the observed min and max.
func PotentialHistogram(ip *plane.IterPlane, bins int) []int {
	if bins <= 0 {
		return nil
	}
	stats := Summarize(ip)
	counts := make([]int, bins)
	width := stats.PotentialMax - stats.PotentialMin
	if width <= 0 {
		return counts
	}

	for i := range ip.Cells {
		cell := &ip.Cells[i]
		if cell.Kind != dynamics.PointEscaping || math.IsNaN(cell.Potential) {
			continue
		}
		b := int(float64(bins) * (cell.Potential - stats.PotentialMin) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	return counts
}

// RowPotentials extracts the potential profile along pixel row py. Cells
// that did not escape report zero.
func RowPotentials(ip *plane.IterPlane, py int) []float64 {
	out := make([]float64, ip.Grid.ResX)
	for px := range out {
		cell := ip.At(px, py)
		if cell.Kind == dynamics.PointEscaping && !math.IsNaN(cell.Potential) {
			out[px] = cell.Potential
		}
	}
	return out
}
