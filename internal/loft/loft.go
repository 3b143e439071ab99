// Package loft stitches per-height cross-section rings derived from two
// orthographic silhouettes into an indexed side surface, with optional
// end caps.
package loft

import (
	"math"

	"silhouette-mesher/internal/mathutil"
	"silhouette-mesher/internal/mesh"
	"silhouette-mesher/internal/silhouette"
)

// Options controls one loft run.
type Options struct {
	VertsPerRing int
	YMin, YMax   float64

	OffsetX, OffsetY, OffsetZ float64

	// TopShape modulates each ring's cross-section; nil means ellipse.
	TopShape []silhouette.Offset

	CapBottom bool
	CapTop    bool
}

// Loft combines front and side sample maps into a ring-stitched mesh.
// Returns nil when fewer than 2 usable rings survive: levels missing
// from either map or with non-positive half extents are dropped, not
// errors.
func Loft(front, side silhouette.SampleMap, opt Options) *mesh.Mesh {
	v := opt.VertsPerRing
	if v < 3 {
		return nil
	}

	levels := front.SortedLevels(opt.YMin, opt.YMax)

	type ringSpec struct {
		y                    float64
		halfWidth, halfDepth float64
		centerX, centerZ     float64
	}
	rings := make([]ringSpec, 0, len(levels))
	for _, level := range levels {
		f := front[level]
		s, ok := side[level]
		if !ok {
			continue
		}
		halfWidth := (f.Right - f.Left) / 2
		halfDepth := (s.Right - s.Left) / 2
		if halfWidth <= 0 || halfDepth <= 0 {
			continue
		}
		rings = append(rings, ringSpec{
			y:         level,
			halfWidth: halfWidth,
			halfDepth: halfDepth,
			centerX:   (f.Right + f.Left) / 2,
			centerZ:   (s.Right + s.Left) / 2,
		})
	}
	if len(rings) < 2 {
		return nil
	}

	m := &mesh.Mesh{
		Positions: make([]mathutil.Vec3, 0, len(rings)*v+2),
		UVs:       make([]mathutil.Vec2, 0, len(rings)*v+2),
	}

	span := rings[len(rings)-1].y - rings[0].y
	for _, r := range rings {
		cx := r.centerX + opt.OffsetX
		cz := r.centerZ + opt.OffsetZ
		y := r.y + opt.OffsetY

		var ringV float64
		if span > 0 {
			ringV = (r.y - rings[0].y) / span
		}
		for i := 0; i < v; i++ {
			var px, pz float64
			if opt.TopShape != nil {
				px = opt.TopShape[i].X * r.halfWidth
				pz = opt.TopShape[i].Z * r.halfDepth
			} else {
				theta := 2 * math.Pi * float64(i) / float64(v)
				px = r.halfWidth * math.Sin(theta)
				pz = r.halfDepth * math.Cos(theta)
			}
			m.Positions = append(m.Positions, mathutil.Vec3{px + cx, y, pz + cz})
			m.UVs = append(m.UVs, mathutil.Vec2{float64(i) / float64(v), ringV})
		}
	}

	// Side wall: quad between ring pair (r, r+1) at each angle slot.
	// The (a,c,b)/(b,c,d) winding is fixed; consumers rely on a
	// consistent orientation across the whole surface.
	V := uint32(v)
	for r := uint32(0); r+1 < uint32(len(rings)); r++ {
		for s := uint32(0); s < V; s++ {
			a := r*V + s
			b := r*V + (s+1)%V
			c := (r+1)*V + s
			d := (r+1)*V + (s+1)%V
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}

	if opt.CapBottom {
		capIdx := appendCentroid(m, 0, v)
		for s := uint32(0); s < V; s++ {
			m.Indices = append(m.Indices, s, capIdx, (s+1)%V)
		}
	}
	if opt.CapTop {
		base := uint32(len(rings)-1) * V
		capIdx := appendCentroid(m, int(base), v)
		for s := uint32(0); s < V; s++ {
			m.Indices = append(m.Indices, base+s, capIdx, base+(s+1)%V)
		}
	}

	return m
}

// appendCentroid adds the mean point of one ring as an extra cap vertex
// and returns its index.
func appendCentroid(m *mesh.Mesh, base, v int) uint32 {
	var cx, cz float64
	y := m.Positions[base][1]
	for i := 0; i < v; i++ {
		p := m.Positions[base+i]
		cx += p[0]
		cz += p[2]
	}
	cx /= float64(v)
	cz /= float64(v)

	idx := uint32(len(m.Positions))
	m.Positions = append(m.Positions, mathutil.Vec3{cx, y, cz})
	m.UVs = append(m.UVs, mathutil.Vec2{0.5, m.UVs[base][1]})
	return idx
}
