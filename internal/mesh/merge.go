package mesh

import "silhouette-mesher/internal/mathutil"

// Merge concatenates meshes in input order into one indexed mesh.
// Indices are offset by the running vertex count; meshes lacking colors
// or UVs contribute zero-filled spans; normals are recomputed from
// scratch over the merged buffer. Input order is the declared component
// order, which keeps output byte-identical across runs.
func Merge(meshes []*Mesh) *Mesh {
	var totalVerts, totalIdx int
	for _, m := range meshes {
		if m == nil {
			continue
		}
		totalVerts += len(m.Positions)
		totalIdx += len(m.Indices)
	}

	out := &Mesh{
		Positions: make([]mathutil.Vec3, 0, totalVerts),
		Colors:    make([]mathutil.Vec3, 0, totalVerts),
		UVs:       make([]mathutil.Vec2, 0, totalVerts),
		Indices:   make([]uint32, 0, totalIdx),
	}

	for _, m := range meshes {
		if m == nil {
			continue
		}
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, m.Positions...)

		if len(m.Colors) == len(m.Positions) {
			out.Colors = append(out.Colors, m.Colors...)
		} else {
			out.Colors = append(out.Colors, make([]mathutil.Vec3, len(m.Positions))...)
		}
		if len(m.UVs) == len(m.Positions) {
			out.UVs = append(out.UVs, m.UVs...)
		} else {
			out.UVs = append(out.UVs, make([]mathutil.Vec2, len(m.Positions))...)
		}

		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}

	out.RecomputeNormals()
	return out
}

// RecomputeNormals rebuilds smoothed vertex normals: each face normal is
// accumulated into its three vertices, then every vertex normal is
// normalized. Vertices shared between triangles smooth; duplicated seam
// vertices stay faceted.
func (m *Mesh) RecomputeNormals() {
	m.Normals = make([]mathutil.Vec3, len(m.Positions))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(a) >= len(m.Positions) || int(b) >= len(m.Positions) || int(c) >= len(m.Positions) {
			continue
		}
		pa, pb, pc := m.Positions[a], m.Positions[b], m.Positions[c]
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		m.Normals[a] = m.Normals[a].Add(n)
		m.Normals[b] = m.Normals[b].Add(n)
		m.Normals[c] = m.Normals[c].Add(n)
	}

	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}
}
