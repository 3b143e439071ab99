package silhouette

import (
	"math"

	"silhouette-mesher/internal/svgpath"
)

// Offset is one per-angle slot of a normalized top-view cross-section,
// both components in [-1, 1]. Scaled per ring by the ring's half-width
// and half-depth.
type Offset struct {
	X, Z float64
}

const rayEpsilon = 1e-9

// Normalize converts a closed top-view outline into vertsPerRing unit
// offsets, one per evenly spaced angle around the vertical axis. Returns
// nil for outlines with fewer than 3 points or a collapsed extent; the
// caller then falls back to an ellipse cross-section.
func Normalize(top svgpath.Polyline, centerX, centerY float64, vertsPerRing int) []Offset {
	if len(top) < 3 || vertsPerRing < 3 {
		return nil
	}

	// Center, then normalize each axis independently to [-1, 1].
	centered := make([]Offset, len(top))
	var maxAbsX, maxAbsY float64
	for i, pt := range top {
		x := pt.X - centerX
		y := pt.Y - centerY
		centered[i] = Offset{X: x, Z: y}
		if a := math.Abs(x); a > maxAbsX {
			maxAbsX = a
		}
		if a := math.Abs(y); a > maxAbsY {
			maxAbsY = a
		}
	}
	if maxAbsX <= 0 || maxAbsY <= 0 {
		return nil
	}
	for i := range centered {
		centered[i].X /= maxAbsX
		centered[i].Z /= maxAbsY
	}

	out := make([]Offset, vertsPerRing)
	for i := 0; i < vertsPerRing; i++ {
		theta := 2 * math.Pi * float64(i) / float64(vertsPerRing)
		dx, dz := math.Sin(theta), math.Cos(theta)

		// Nearest ray-edge hit; a slot no edge covers falls back to the
		// unit circle (t = 1).
		best := math.Inf(1)
		for e := 0; e+1 < len(centered); e++ {
			t, ok := rayEdge(dx, dz, centered[e], centered[e+1])
			if ok && t < best {
				best = t
			}
		}
		if math.IsInf(best, 1) {
			best = 1
		}
		out[i] = Offset{X: dx * best, Z: dz * best}
	}
	return out
}

// rayEdge intersects the ray origin + t·(dx,dz) with the segment a→b.
// Valid hits have t > ε and edge parameter s in [0, 1].
func rayEdge(dx, dz float64, a, b Offset) (float64, bool) {
	ex := b.X - a.X
	ez := b.Z - a.Z

	det := dx*ez - dz*ex
	if math.Abs(det) < rayEpsilon {
		return 0, false
	}
	t := (a.X*ez - a.Z*ex) / det
	var s float64
	if math.Abs(ex) >= math.Abs(ez) {
		s = (t*dx - a.X) / ex
	} else {
		s = (t*dz - a.Z) / ez
	}
	if t <= rayEpsilon || s < 0 || s > 1 {
		return 0, false
	}
	return t, true
}
