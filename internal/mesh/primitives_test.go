package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxBuffers(t *testing.T) {
	m := Box(2, 4, 6)

	// 6 faces × 4 unshared corners, 12 triangles.
	require.Equal(t, 24, m.VertexCount())
	require.Equal(t, 12, m.TriangleCount())

	for _, p := range m.Positions {
		require.LessOrEqual(t, math.Abs(p[0]), 1.0)
		require.LessOrEqual(t, math.Abs(p[1]), 2.0)
		require.LessOrEqual(t, math.Abs(p[2]), 3.0)
	}

	// Unshared face corners stay faceted after normal recompute.
	m.RecomputeNormals()
	require.InDelta(t, 1, m.Normals[0][2], 1e-9, "+Z face")
}

func TestCylinderBuffers(t *testing.T) {
	m := Cylinder(1, 2, 8)

	// Two rings plus two cap centers.
	require.Equal(t, 18, m.VertexCount())
	// 8 side quads + two 8-triangle fans.
	require.Equal(t, 32, m.TriangleCount())

	for _, p := range m.Positions[:16] {
		require.InDelta(t, 1, math.Hypot(p[0], p[2]), 1e-9)
		require.InDelta(t, 1, math.Abs(p[1]), 1e-9)
	}
}

func TestSphereBuffers(t *testing.T) {
	m := Sphere(2, 4, 8)

	require.Equal(t, 40, m.VertexCount())
	require.Equal(t, 64, m.TriangleCount())

	for _, p := range m.Positions {
		require.InDelta(t, 2, p.Len(), 1e-9)
	}
}

func TestPrimitiveParameterFloors(t *testing.T) {
	require.NotZero(t, Cylinder(1, 1, 0).VertexCount())
	require.NotZero(t, Sphere(1, 0, 0).VertexCount())
}
