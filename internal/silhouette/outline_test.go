package silhouette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"silhouette-mesher/internal/svgpath"
)

// square is a closed unit square outline centered on the origin.
var square = svgpath.Polyline{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}}

func TestNormalizeSquareCardinalAngles(t *testing.T) {
	shape := Normalize(square, 0, 0, 4)
	require.Len(t, shape, 4)

	// Angle slots: 0 → +Z, π/2 → +X, π → -Z, 3π/2 → -X. Each cardinal
	// ray exits through a normalized edge midpoint at t = 1.
	want := []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	for i, w := range want {
		require.InDelta(t, w.X, shape[i].X, 1e-9, "slot %d X", i)
		require.InDelta(t, w.Z, shape[i].Z, 1e-9, "slot %d Z", i)
	}
}

func TestNormalizeSquareDiagonalHitsCorner(t *testing.T) {
	shape := Normalize(square, 0, 0, 8)
	require.Len(t, shape, 8)

	// Slot 1 is θ = π/4: the ray leaves through the (1,1) corner,
	// t = √2.
	require.InDelta(t, 1, shape[1].X, 1e-9)
	require.InDelta(t, 1, shape[1].Z, 1e-9)
}

func TestNormalizeRecentersAndRescales(t *testing.T) {
	// Same square shifted and stretched: normalization divides each
	// axis by its own max, restoring the unit square.
	wide := svgpath.Polyline{{X: 6, Y: 9}, {X: 14, Y: 9}, {X: 14, Y: 11}, {X: 6, Y: 11}, {X: 6, Y: 9}}
	shape := Normalize(wide, 10, 10, 4)
	require.Len(t, shape, 4)

	require.InDelta(t, 1, shape[1].X, 1e-9)
	require.InDelta(t, -1, shape[3].X, 1e-9)
	require.InDelta(t, 1, shape[0].Z, 1e-9)
}

func TestNormalizeRejectsDegenerateInput(t *testing.T) {
	require.Nil(t, Normalize(svgpath.Polyline{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0, 0, 8))

	// Collapsed X extent.
	line := svgpath.Polyline{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}}
	require.Nil(t, Normalize(line, 0, 0, 8))

	require.Nil(t, Normalize(square, 0, 0, 2))
}

func TestNormalizeUnitCircleFallback(t *testing.T) {
	// An open partial outline covers only some angle slots; the rest
	// default to the unit circle.
	partial := svgpath.Polyline{{X: 1, Y: -1}, {X: 1, Y: 1}, {X: 0.5, Y: 1}}
	shape := Normalize(partial, 0, 0, 4)
	require.Len(t, shape, 4)

	// Slot 2 (θ = π) points toward -Z where no edge lies: t = 1.
	require.InDelta(t, 0, shape[2].X, 1e-9)
	require.InDelta(t, -1, shape[2].Z, 1e-9)
}

func TestNormalizeEllipseAgreement(t *testing.T) {
	// A dense regular polygon normalizes close to the unit circle at
	// every slot.
	var poly svgpath.Polyline
	for i := 0; i <= 64; i++ {
		a := 2 * math.Pi * float64(i) / 64
		poly = append(poly, svgpath.Point{X: math.Cos(a), Y: math.Sin(a)})
	}
	shape := Normalize(poly, 0, 0, 16)
	require.Len(t, shape, 16)
	for i, off := range shape {
		r := math.Hypot(off.X, off.Z)
		require.InDelta(t, 1, r, 0.01, "slot %d", i)
	}
}
