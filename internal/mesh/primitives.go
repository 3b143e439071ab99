package mesh

import (
	"math"

	"silhouette-mesher/internal/mathutil"
)

// Addon primitives: simple parametric solids for detail the silhouette
// loft cannot express (eyes, horns, grips). All are centered on the
// origin; placement happens through Mesh.Transform.

// Box returns an axis-aligned box with faceted sides (4 verts per face,
// so merged normals stay flat).
func Box(sx, sy, sz float64) *Mesh {
	hx, hy, hz := sx/2, sy/2, sz/2

	// 6 faces × 4 corners, counter-clockwise seen from outside.
	faces := [6][4]mathutil.Vec3{
		{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}},     // +Z
		{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}, // -Z
		{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}},     // +X
		{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}, // -X
		{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}},     // +Y
		{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}, // -Y
	}

	m := &Mesh{
		Positions: make([]mathutil.Vec3, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(m.Positions))
		m.Positions = append(m.Positions, f[0], f[1], f[2], f[3])
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Cylinder returns a closed vertical cylinder with the given radius,
// height, and number of side segments.
func Cylinder(radius, height float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	hy := height / 2
	m := &Mesh{}

	// Two rings of side vertices, bottom then top.
	for _, y := range []float64{-hy, hy} {
		for i := 0; i < segments; i++ {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			m.Positions = append(m.Positions, mathutil.Vec3{
				radius * math.Sin(theta), y, radius * math.Cos(theta),
			})
		}
	}
	n := uint32(segments)
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		m.Indices = append(m.Indices,
			i, n+i, j,
			j, n+i, n+j,
		)
	}

	// Cap fans around center vertices.
	bottomCenter := uint32(len(m.Positions))
	m.Positions = append(m.Positions, mathutil.Vec3{0, -hy, 0})
	topCenter := uint32(len(m.Positions))
	m.Positions = append(m.Positions, mathutil.Vec3{0, hy, 0})
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		m.Indices = append(m.Indices,
			i, bottomCenter, j,
			n+i, n+j, topCenter,
		)
	}
	return m
}

// Sphere returns a UV sphere with the given radius, latitude ring count,
// and longitude segment count.
func Sphere(radius float64, rings, segments int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}

	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := radius * math.Cos(phi)
		rr := radius * math.Sin(phi)
		for s := 0; s < segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			m.Positions = append(m.Positions, mathutil.Vec3{
				rr * math.Sin(theta), y, rr * math.Cos(theta),
			})
		}
	}

	n := uint32(segments)
	for r := uint32(0); r < uint32(rings); r++ {
		base := r * n
		next := base + n
		for s := uint32(0); s < n; s++ {
			t := (s + 1) % n
			m.Indices = append(m.Indices,
				base+s, next+s, base+t,
				base+t, next+s, next+t,
			)
		}
	}
	return m
}
