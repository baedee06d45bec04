package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fractalab/fractalab/internal/analysis"
	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/orbit"
	"github.com/fractalab/fractalab/internal/plane"
)

// RenderPlane draws a computed plane on a braille canvas of the given
// character width. A dot is lit where the sampled cell did not escape, so
// the filled region is the connectedness locus (or filled Julia set).
func RenderPlane(ip *plane.IterPlane, width int) string {
	if width < 1 {
		width = 1
	}
	subW := width * 2
	// Keep the aspect ratio, accounting for braille cells being 2x4 dots.
	subH := subW * ip.Grid.ResY / ip.Grid.ResX
	if subH < 4 {
		subH = 4
	}
	canvas := NewCanvas(width, (subH+3)/4)

	for y := 0; y < subH; y++ {
		py := y * ip.Grid.ResY / subH
		for x := 0; x < subW; x++ {
			px := x * ip.Grid.ResX / subW
			kind := ip.At(px, py).Kind
			if kind != dynamics.PointEscaping && kind != dynamics.PointUnknown {
				canvas.Set(x, y)
			}
		}
	}
	return canvas.String()
}

// RenderOrbit traces the orbit through the given point on a braille canvas,
// connecting consecutive iterates that land inside the view bounds.
func RenderOrbit(fam dynamics.Family, point complex128, width, height int) string {
	canvas := NewCanvas(width, height)
	subW := width * 2
	subH := height * 4
	bounds := fam.DefaultBounds()

	toSub := func(z complex128) (int, int, bool) {
		fx := (real(z) - bounds.MinX) / bounds.RangeX()
		fy := (bounds.MaxY - imag(z)) / bounds.RangeY()
		if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
			return 0, 0, false
		}
		return int(fx * float64(subW)), int(fy * float64(subH)), true
	}

	c := fam.ParamMap(point)
	params := orbit.FromFamily(fam, bounds.Area())
	o := orbit.NewSimple(fam, fam.StartPoint(point, c), c, params)

	prevX, prevY, havePrev := 0, 0, false
	for {
		z, _, running := o.Next()
		if !running {
			break
		}
		x, y, in := toSub(z)
		if !in {
			havePrev = false
			continue
		}
		if havePrev {
			canvas.DrawLine(prevX, prevY, x, y)
		} else {
			canvas.Set(x, y)
		}
		prevX, prevY, havePrev = x, y, true
	}
	return canvas.String()
}

// Summary renders plane statistics in a bordered panel.
func Summary(family string, ip *plane.IterPlane) string {
	stats := analysis.Summarize(ip)

	var b strings.Builder
	b.WriteString(Title.Render(family) + "\n")
	b.WriteString(StatLabel.Render("cells ") + StatValue.Render(fmt.Sprintf("%d", stats.Total)) + "\n")

	for kind := dynamics.PointBounded; kind <= dynamics.PointUnknown; kind++ {
		n := stats.Counts[kind]
		if n == 0 {
			continue
		}
		line := fmt.Sprintf("%-18s %6d  %5.1f%%", kind.String(), n, 100*float64(n)/float64(stats.Total))
		b.WriteString(kindStyle(kind).Render(line) + "\n")
	}

	if stats.Counts[dynamics.PointEscaping] > 0 {
		b.WriteString(Subtle.Render(fmt.Sprintf("potential [%.3f, %.3f] mean %.3f",
			stats.PotentialMin, stats.PotentialMax, stats.PotentialMean)))
	}
	return Panel.Render(b.String())
}

func kindStyle(kind dynamics.PointKind) lipgloss.Style {
	switch kind {
	case dynamics.PointEscaping:
		return KindEscaping
	case dynamics.PointBounded:
		return KindBounded
	case dynamics.PointPeriodic, dynamics.PointKnownPotential, dynamics.PointMarked:
		return KindPeriodic
	default:
		return KindOther
	}
}
