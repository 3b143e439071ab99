// Package mesh holds the indexed triangle buffers produced by the
// lofter and the addon primitives, and merges them into one asset.
package mesh

import "silhouette-mesher/internal/mathutil"

// Mesh is an indexed triangle mesh. Normals, Colors, and UVs are
// optional until Merge zero-fills or recomputes them.
type Mesh struct {
	Positions []mathutil.Vec3
	Normals   []mathutil.Vec3
	Colors    []mathutil.Vec3 // linear RGB, 0..1
	UVs       []mathutil.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices in the position buffer.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Transform applies an affine transform to every position in place.
// Normals are left stale; Merge recomputes them.
func (m *Mesh) Transform(t mathutil.Mat4) {
	if t.IsIdentity() {
		return
	}
	for i, p := range m.Positions {
		m.Positions[i] = t.MulPoint(p)
	}
}

// SetSolidColor fills the color buffer with one color for every vertex.
func (m *Mesh) SetSolidColor(c mathutil.Vec3) {
	m.Colors = make([]mathutil.Vec3, len(m.Positions))
	for i := range m.Colors {
		m.Colors[i] = c
	}
}

// BoundsY returns the vertical extent of the mesh.
func (m *Mesh) BoundsY() (minY, maxY float64) {
	if len(m.Positions) == 0 {
		return 0, 0
	}
	minY, maxY = m.Positions[0][1], m.Positions[0][1]
	for _, p := range m.Positions[1:] {
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	return minY, maxY
}
