// Package anim carries the fixed, authored animation clip tables that
// accompany skinned exports. The pipeline never computes or edits
// these; they pass through to the exporter unmodified.
package anim

// Key is one keyframe of a bone track: Euler XYZ rotation in radians at
// a normalized clip time in [0, 1].
type Key struct {
	Time     float64    `json:"time"`
	Rotation [3]float64 `json:"rotation"`
}

// Track animates one bone by name.
type Track struct {
	Bone string `json:"bone"`
	Keys []Key  `json:"keys"`
}

// Clip is one named animation with a duration in seconds.
type Clip struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
	Loop     bool    `json:"loop"`
	Tracks   []Track `json:"tracks"`
}

// StockClips returns the authored clip table for humanoid rigs.
func StockClips() []Clip {
	return []Clip{
		{
			Name:     "idle",
			Duration: 2.0,
			Loop:     true,
			Tracks: []Track{
				{Bone: "chest", Keys: []Key{
					{Time: 0, Rotation: [3]float64{0, 0, 0}},
					{Time: 0.5, Rotation: [3]float64{0.04, 0, 0}},
					{Time: 1, Rotation: [3]float64{0, 0, 0}},
				}},
				{Bone: "head", Keys: []Key{
					{Time: 0, Rotation: [3]float64{0, 0, 0}},
					{Time: 0.5, Rotation: [3]float64{-0.03, 0, 0}},
					{Time: 1, Rotation: [3]float64{0, 0, 0}},
				}},
			},
		},
		{
			Name:     "walk",
			Duration: 1.0,
			Loop:     true,
			Tracks: []Track{
				{Bone: "thigh.L", Keys: []Key{
					{Time: 0, Rotation: [3]float64{0.5, 0, 0}},
					{Time: 0.5, Rotation: [3]float64{-0.5, 0, 0}},
					{Time: 1, Rotation: [3]float64{0.5, 0, 0}},
				}},
				{Bone: "thigh.R", Keys: []Key{
					{Time: 0, Rotation: [3]float64{-0.5, 0, 0}},
					{Time: 0.5, Rotation: [3]float64{0.5, 0, 0}},
					{Time: 1, Rotation: [3]float64{-0.5, 0, 0}},
				}},
				{Bone: "shin.L", Keys: []Key{
					{Time: 0, Rotation: [3]float64{0, 0, 0}},
					{Time: 0.25, Rotation: [3]float64{-0.8, 0, 0}},
					{Time: 0.5, Rotation: [3]float64{0, 0, 0}},
					{Time: 1, Rotation: [3]float64{0, 0, 0}},
				}},
				{Bone: "shin.R", Keys: []Key{
					{Time: 0, Rotation: [3]float64{0, 0, 0}},
					{Time: 0.75, Rotation: [3]float64{-0.8, 0, 0}},
					{Time: 1, Rotation: [3]float64{0, 0, 0}},
				}},
				{Bone: "upper_arm.L", Keys: []Key{
					{Time: 0, Rotation: [3]float64{-0.4, 0, 0}},
					{Time: 0.5, Rotation: [3]float64{0.4, 0, 0}},
					{Time: 1, Rotation: [3]float64{-0.4, 0, 0}},
				}},
				{Bone: "upper_arm.R", Keys: []Key{
					{Time: 0, Rotation: [3]float64{0.4, 0, 0}},
					{Time: 0.5, Rotation: [3]float64{-0.4, 0, 0}},
					{Time: 1, Rotation: [3]float64{0.4, 0, 0}},
				}},
			},
		},
	}
}
