package viz

import (
	"strings"
	"testing"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/families"
	"github.com/fractalab/fractalab/internal/grid"
	"github.com/fractalab/fractalab/internal/plane"
)

func TestCanvasSetAndString(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	runes := []rune(lines[0])
	if runes[0] == 0x2800 {
		t.Error("first cell should have a lit dot")
	}
	if runes[1] != 0x2800 {
		t.Error("second cell should be empty")
	}
}

func TestCanvasOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)

	// None of these may panic or light anything.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)

	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("out-of-range sets should not mark the canvas")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit < 4 {
		t.Errorf("expected a diagonal of lit cells, got %d", lit)
	}

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("clear should empty the canvas")
			}
		}
	}
}

func TestRenderPlaneMarksInterior(t *testing.T) {
	g, err := grid.New(8, grid.CenteredSquare(2))
	if err != nil {
		t.Fatal(err)
	}
	ip := plane.NewIterPlane(g)
	// Left half escaping, right half bounded.
	for py := 0; py < g.ResY; py++ {
		for px := 0; px < g.ResX/2; px++ {
			ip.Set(px, py, dynamics.EscapingInfo(1, -1))
		}
	}

	out := RenderPlane(ip, 4)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines {
		runes := []rune(line)
		if runes[0] != 0x2800 {
			t.Errorf("escaping half should stay empty: %q", line)
		}
		if runes[len(runes)-1] == 0x2800 {
			t.Errorf("bounded half should be lit: %q", line)
		}
	}
}

func TestRenderOrbitProducesOutput(t *testing.T) {
	fam := families.NewMandelbrot()

	out := RenderOrbit(fam, complex(-0.5, 0.3), 20, 10)
	if !strings.ContainsFunc(out, func(r rune) bool { return r >= 0x2801 && r <= 0x28ff }) {
		t.Error("expected at least one lit dot on the orbit trace")
	}
}

func TestSummaryIncludesKinds(t *testing.T) {
	g, err := grid.New(4, grid.CenteredSquare(2))
	if err != nil {
		t.Fatal(err)
	}
	ip := plane.NewIterPlane(g)
	ip.Set(0, 0, dynamics.EscapingInfo(2.5, -1))

	out := Summary("mandelbrot", ip)
	for _, want := range []string{"mandelbrot", "escaping", "bounded", "potential"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
