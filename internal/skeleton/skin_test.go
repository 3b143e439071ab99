package skeleton

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"silhouette-mesher/internal/mathutil"
)

func TestAssignWeightsSingleInfluenceFarFromJoints(t *testing.T) {
	bones := []mathutil.Vec3{{0, 0, 0}, {0, 1, 0}}
	verts := []mathutil.Vec3{{0, 0.05, 0}, {0, 0.98, 0}}

	// d2 exceeds 2×threshold in both cases: nearest bone takes all.
	bindings := AssignWeights(verts, bones, 0.15)

	require.Equal(t, 1, bindings[0].Count)
	require.Equal(t, 0, bindings[0].Bones[0])
	require.Equal(t, 1.0, bindings[0].Weights[0])

	require.Equal(t, 1, bindings[1].Count)
	require.Equal(t, 1, bindings[1].Bones[0])
}

func TestAssignWeightsBlendsNearJoint(t *testing.T) {
	bones := []mathutil.Vec3{{0, 0, 0}, {0, 0.25, 0}}
	verts := []mathutil.Vec3{{0, 0.12, 0}}

	bindings := AssignWeights(verts, bones, 0.15)
	b := bindings[0]

	require.Equal(t, 2, b.Count)
	require.Equal(t, 0, b.Bones[0], "nearest bone first")
	require.Equal(t, 1, b.Bones[1])

	// d1=0.12, d2=0.13: w1 = 1 - 0.12/0.25, w2 = 1 - 0.13/0.25.
	require.InDelta(t, 0.52, b.Weights[0], 1e-9)
	require.InDelta(t, 0.48, b.Weights[1], 1e-9)
	require.Greater(t, b.Weights[0], b.Weights[1])
}

func TestAssignWeightsSumInvariant(t *testing.T) {
	bones := BindWorldPositions(Humanoid())

	// Scatter vertices over the skeleton's extent.
	var verts []mathutil.Vec3
	for y := 0.0; y <= 1.8; y += 0.07 {
		for x := -0.6; x <= 0.6; x += 0.23 {
			verts = append(verts, mathutil.Vec3{x, y, 0.05})
		}
	}

	for _, b := range AssignWeights(verts, bones, DefaultJointThreshold) {
		sum := 0.0
		nonzero := 0
		for i := 0; i < b.Count; i++ {
			require.Greater(t, b.Weights[i], 0.0)
			sum += b.Weights[i]
			nonzero++
		}
		require.True(t, nonzero == 1 || nonzero == 2)
		require.Less(t, math.Abs(sum-1), 1e-5)
	}
}

func TestAssignWeightsVertexOnBone(t *testing.T) {
	bones := []mathutil.Vec3{{0, 0, 0}, {0, 0.2, 0}}
	verts := []mathutil.Vec3{{0, 0, 0}}

	bindings := AssignWeights(verts, bones, 0.15)
	b := bindings[0]

	// d1=0, d2=0.2 < 2×threshold: still a valid blend, dominated by
	// the coincident bone.
	require.Equal(t, 2, b.Count)
	require.InDelta(t, 1.0, b.Weights[0], 1e-9)
	require.InDelta(t, 0.0, b.Weights[1], 1e-9)
}
