// Package skeleton holds the fixed humanoid bone table and the
// distance-based skin weight heuristic.
package skeleton

import "silhouette-mesher/internal/mathutil"

// Bone is one record of the bind-pose hierarchy. Offset is local,
// relative to the parent bone; Parent == -1 marks the root. Bones are
// ordered parent-before-child so world positions accumulate in one pass.
type Bone struct {
	Name   string
	Parent int
	Offset mathutil.Vec3
}

// Humanoid returns the fixed biped skeleton used for skinned exports.
// Offsets are in world units for a model standing on Y=0, roughly 1.8
// units tall. The table never varies at runtime.
func Humanoid() []Bone {
	return []Bone{
		{Name: "pelvis", Parent: -1, Offset: mathutil.Vec3{0, 0.95, 0}},
		{Name: "spine", Parent: 0, Offset: mathutil.Vec3{0, 0.15, 0}},
		{Name: "chest", Parent: 1, Offset: mathutil.Vec3{0, 0.20, 0}},
		{Name: "neck", Parent: 2, Offset: mathutil.Vec3{0, 0.20, 0}},
		{Name: "head", Parent: 3, Offset: mathutil.Vec3{0, 0.15, 0}},

		{Name: "shoulder.L", Parent: 2, Offset: mathutil.Vec3{-0.18, 0.15, 0}},
		{Name: "upper_arm.L", Parent: 5, Offset: mathutil.Vec3{-0.12, 0, 0}},
		{Name: "forearm.L", Parent: 6, Offset: mathutil.Vec3{-0.26, 0, 0}},
		{Name: "hand.L", Parent: 7, Offset: mathutil.Vec3{-0.24, 0, 0}},

		{Name: "shoulder.R", Parent: 2, Offset: mathutil.Vec3{0.18, 0.15, 0}},
		{Name: "upper_arm.R", Parent: 9, Offset: mathutil.Vec3{0.12, 0, 0}},
		{Name: "forearm.R", Parent: 10, Offset: mathutil.Vec3{0.26, 0, 0}},
		{Name: "hand.R", Parent: 11, Offset: mathutil.Vec3{0.24, 0, 0}},

		{Name: "thigh.L", Parent: 0, Offset: mathutil.Vec3{-0.10, -0.05, 0}},
		{Name: "shin.L", Parent: 13, Offset: mathutil.Vec3{0, -0.42, 0}},
		{Name: "foot.L", Parent: 14, Offset: mathutil.Vec3{0, -0.42, 0.06}},

		{Name: "thigh.R", Parent: 0, Offset: mathutil.Vec3{0.10, -0.05, 0}},
		{Name: "shin.R", Parent: 16, Offset: mathutil.Vec3{0, -0.42, 0}},
		{Name: "foot.R", Parent: 17, Offset: mathutil.Vec3{0, -0.42, 0.06}},
	}
}

// BindWorldPositions accumulates each bone's local offset through its
// parent chain. Used only for distance weighting, never for runtime
// transforms, so translation is all that matters.
func BindWorldPositions(bones []Bone) []mathutil.Vec3 {
	worlds := make([]mathutil.Vec3, len(bones))
	for i, bone := range bones {
		if bone.Parent >= 0 && bone.Parent < i {
			worlds[i] = worlds[bone.Parent].Add(bone.Offset)
		} else {
			worlds[i] = bone.Offset
		}
	}
	return worlds
}
