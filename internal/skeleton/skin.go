package skeleton

import (
	"math"

	"silhouette-mesher/internal/mathutil"
)

// DefaultJointThreshold is the blending radius around a joint, in world
// units. Vertices closer than this to their nearest bone blend with the
// second-nearest.
const DefaultJointThreshold = 0.15

// Binding is the per-vertex skin assignment: one or two bone influences
// whose weights sum to 1.
type Binding struct {
	Bones   [2]int
	Weights [2]float64
	Count   int
}

// AssignWeights computes a Binding per vertex against the bind-pose
// world positions. Nearest bone always wins; near a joint (d1 below the
// threshold and d2 below twice it) the two nearest bones blend by
// inverse relative distance.
func AssignWeights(verts []mathutil.Vec3, bonePositions []mathutil.Vec3, jointThreshold float64) []Binding {
	if jointThreshold <= 0 {
		jointThreshold = DefaultJointThreshold
	}

	out := make([]Binding, len(verts))
	for vi, v := range verts {
		d1, d2 := -1.0, -1.0
		b1, b2 := 0, 0
		for bi, bp := range bonePositions {
			dx := v[0] - bp[0]
			dy := v[1] - bp[1]
			dz := v[2] - bp[2]
			d := dx*dx + dy*dy + dz*dz
			switch {
			case d1 < 0 || d < d1:
				d2, b2 = d1, b1
				d1, b1 = d, bi
			case d2 < 0 || d < d2:
				d2, b2 = d, bi
			}
		}
		if d1 >= 0 {
			d1 = math.Sqrt(d1)
		}
		if d2 >= 0 {
			d2 = math.Sqrt(d2)
		}

		if d2 >= 0 && b1 != b2 && d1 < jointThreshold && d2 < 2*jointThreshold {
			sum := d1 + d2
			w1 := 1.0
			w2 := 0.0
			if sum > 0 {
				w1 = 1 - d1/sum
				w2 = 1 - d2/sum
				total := w1 + w2
				w1 /= total
				w2 /= total
			}
			out[vi] = Binding{Bones: [2]int{b1, b2}, Weights: [2]float64{w1, w2}, Count: 2}
			continue
		}
		out[vi] = Binding{Bones: [2]int{b1, 0}, Weights: [2]float64{1, 0}, Count: 1}
	}
	return out
}
