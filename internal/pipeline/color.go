package pipeline

import (
	"silhouette-mesher/internal/mathutil"
	"silhouette-mesher/internal/mesh"
	"silhouette-mesher/internal/rig"
)

// neutralGray is the fallback vertex color when no rule matches.
var neutralGray = mathutil.Vec3{0.62, 0.62, 0.62}

// applyColoring paints every vertex by height. Priority: component
// zones, then component solid color, then pipeline-level zones, then
// neutral gray. Within a zone list the first match wins; a zone matches
// heights in [Min, Max).
func (p *Pipeline) applyColoring(m *mesh.Mesh, c *rig.Component) {
	m.Colors = make([]mathutil.Vec3, len(m.Positions))
	for i, pos := range m.Positions {
		m.Colors[i] = p.colorFor(pos[1], c)
	}
}

func (p *Pipeline) colorFor(y float64, c *rig.Component) mathutil.Vec3 {
	if col, ok := matchZone(c.Zones, y); ok {
		return col
	}
	if len(c.Color) == 3 {
		return mathutil.Vec3{c.Color[0], c.Color[1], c.Color[2]}
	}
	if col, ok := matchZone(p.doc.ColorZones, y); ok {
		return col
	}
	return neutralGray
}

func matchZone(zones []rig.ColorZone, y float64) (mathutil.Vec3, bool) {
	for _, z := range zones {
		if y >= z.Min && y < z.Max {
			return mathutil.Vec3(z.Color), true
		}
	}
	return mathutil.Vec3{}, false
}
