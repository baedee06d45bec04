package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New(0, CenteredSquare(2))
	require.ErrorIs(t, err, ErrZeroResolution)

	_, err = New(100, Bounds{MinX: 1, MaxX: -1, MinY: 0, MaxY: 1})
	require.ErrorIs(t, err, ErrDegenerateBounds)

	g, err := New(100, CenteredSquare(2))
	require.NoError(t, err)
	assert.Equal(t, 100, g.ResY)
	assert.Equal(t, 100, g.ResX)
}

func TestAspectRatio(t *testing.T) {
	// 2:1 wide region should produce a 2:1 wide grid.
	b := Bounds{MinX: -2, MaxX: 2, MinY: -1, MaxY: 1}
	g, err := New(200, b)
	require.NoError(t, err)
	assert.Equal(t, 400, g.ResX)
}

func TestPixelRoundTrip(t *testing.T) {
	g, err := New(128, Bounds{MinX: -2.1, MaxX: 0.55, MinY: -1.25, MaxY: 1.25})
	require.NoError(t, err)

	for py := 0; py < g.ResY; py += 7 {
		for px := 0; px < g.ResX; px += 7 {
			z := g.ToPlane(px, py)
			qx, qy, ok := g.ToPixel(z)
			require.True(t, ok, "pixel (%d,%d) mapped out of range", px, py)
			assert.Equal(t, px, qx)
			assert.Equal(t, py, qy)
		}
	}
}

func TestToPixelOutOfRange(t *testing.T) {
	g, _ := New(50, CenteredSquare(2))
	_, _, ok := g.ToPixel(complex(10, 0))
	assert.False(t, ok)
}

func TestResizePreservesCenter(t *testing.T) {
	g, _ := New(100, Bounds{MinX: -1, MaxX: 3, MinY: -2, MaxY: 2})
	center := g.Bounds.Center()

	require.NoError(t, g.Resize(250))
	assert.Equal(t, 250, g.ResY)
	assert.Equal(t, center, g.Bounds.Center())

	// Pixels stay square.
	stepX := g.Bounds.RangeX() / float64(g.ResX)
	stepY := g.Bounds.RangeY() / float64(g.ResY)
	assert.InDelta(t, stepX, stepY, 1e-2)

	assert.ErrorIs(t, g.Resize(0), ErrZeroResolution)
}

func TestChangeBounds(t *testing.T) {
	g, _ := New(100, CenteredSquare(2))
	err := g.ChangeBounds(Bounds{MinX: -0.8, MaxX: -0.7, MinY: 0.05, MaxY: 0.15})
	require.NoError(t, err)
	assert.Equal(t, 100, g.ResY)
	assert.Equal(t, 100, g.ResX)

	assert.ErrorIs(t, g.ChangeBounds(Bounds{}), ErrDegenerateBounds)
}

func TestZoomKeepsBasePoint(t *testing.T) {
	g, _ := New(100, CenteredSquare(2))
	base := complex(0.5, -0.25)
	px, py, ok := g.ToPixel(base)
	require.True(t, ok)

	g.Zoom(0.5, base)

	qx, qy, ok := g.ToPixel(base)
	require.True(t, ok)
	assert.Equal(t, px, qx, "base pixel x moved under zoom")
	assert.Equal(t, py, qy, "base pixel y moved under zoom")
	assert.InDelta(t, 2.0, g.Bounds.RangeX(), 1e-12)
}

func TestShift(t *testing.T) {
	g, _ := New(100, CenteredSquare(1))
	g.Shift(complex(1, 2))
	assert.InDelta(t, 1.0, g.Bounds.MidX(), 1e-12)
	assert.InDelta(t, 2.0, g.Bounds.MidY(), 1e-12)
	assert.InDelta(t, 2.0, g.Bounds.RangeX(), 1e-12)
}

func TestBoundsHelpers(t *testing.T) {
	b := Bounds{MinX: -2, MaxX: 2, MinY: -1, MaxY: 1}
	assert.InDelta(t, 8.0, b.Area(), 1e-12)
	assert.False(t, Bounds{MinX: math.NaN()}.IsValid())
}
