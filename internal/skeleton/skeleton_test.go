package skeleton

import (
	"testing"

	"github.com/stretchr/testify/require"

	"silhouette-mesher/internal/mathutil"
)

func TestHumanoidParentOrdering(t *testing.T) {
	bones := Humanoid()
	require.NotEmpty(t, bones)

	require.Equal(t, -1, bones[0].Parent, "first bone is the root")
	for i, b := range bones[1:] {
		require.GreaterOrEqual(t, b.Parent, 0, "bone %d", i+1)
		require.Less(t, b.Parent, i+1, "parent must precede child")
	}
}

func TestHumanoidSymmetry(t *testing.T) {
	bones := Humanoid()
	byName := map[string]Bone{}
	for _, b := range bones {
		byName[b.Name] = b
	}

	pairs := [][2]string{
		{"upper_arm.L", "upper_arm.R"},
		{"thigh.L", "thigh.R"},
		{"foot.L", "foot.R"},
	}
	for _, pair := range pairs {
		l, okL := byName[pair[0]]
		r, okR := byName[pair[1]]
		require.True(t, okL && okR, "%v", pair)
		require.InDelta(t, -l.Offset[0], r.Offset[0], 1e-9)
		require.Equal(t, l.Offset[1], r.Offset[1])
	}
}

func TestBindWorldPositionsAccumulate(t *testing.T) {
	bones := []Bone{
		{Name: "root", Parent: -1, Offset: mathutil.Vec3{0, 1, 0}},
		{Name: "mid", Parent: 0, Offset: mathutil.Vec3{0, 0.5, 0}},
		{Name: "tip", Parent: 1, Offset: mathutil.Vec3{0.25, 0.25, 0}},
	}
	worlds := BindWorldPositions(bones)

	require.Equal(t, mathutil.Vec3{0, 1, 0}, worlds[0])
	require.Equal(t, mathutil.Vec3{0, 1.5, 0}, worlds[1])
	require.Equal(t, mathutil.Vec3{0.25, 1.75, 0}, worlds[2])
}

func TestBindWorldPositionsHumanoidHead(t *testing.T) {
	bones := Humanoid()
	worlds := BindWorldPositions(bones)

	var head mathutil.Vec3
	for i, b := range bones {
		if b.Name == "head" {
			head = worlds[i]
		}
	}
	// pelvis 0.95 + spine 0.15 + chest 0.20 + neck 0.20 + head 0.15
	require.InDelta(t, 1.65, head[1], 1e-9)
	require.InDelta(t, 0, head[0], 1e-9)
}
