// Package rig loads the declarative build document: which silhouette
// paths make up each component, how they loft, and how the result is
// colored, rigged, and decorated.
package rig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Document is one asset's build description, authored as TOML alongside
// the silhouette drawings.
type Document struct {
	Name string `toml:"name"`

	// View files, relative to the source directory.
	FrontSVG string `toml:"front_svg"`
	SideSVG  string `toml:"side_svg"`
	TopSVG   string `toml:"top_svg"`

	// Drawing-space to world-space conversion.
	Scale          float64 `toml:"scale"`
	SamplesPerUnit float64 `toml:"samples_per_unit"`
	VertsPerRing   int     `toml:"verts_per_ring"`

	Skeleton       bool    `toml:"skeleton"`
	JointThreshold float64 `toml:"joint_threshold"`

	// Pipeline-level color zones, lowest priority before the neutral
	// gray default.
	ColorZones []ColorZone `toml:"color_zone"`

	Components []Component `toml:"component"`
	Addons     []Addon     `toml:"addon"`
	Children   []Child     `toml:"child"`
}

// Component names the silhouette paths of one lofted part.
type Component struct {
	ID string `toml:"id"`

	// Path ids inside each view file; empty means the component id.
	FrontPath string `toml:"front_path"`
	SidePath  string `toml:"side_path"`
	TopPath   string `toml:"top_path"`

	// Optional explicit height range in world units; empty means the
	// min/max of the sampled silhouette points. Two elements: min, max.
	HeightRange []float64 `toml:"height_range"`

	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`
	OffsetZ float64 `toml:"offset_z"`

	CapBottom bool `toml:"cap_bottom"`
	CapTop    bool `toml:"cap_top"`

	// Ring vertex count override; 0 uses the document default.
	VertsPerRing int `toml:"verts_per_ring"`

	// Component-level coloring: zones beat the solid color.
	Color []float64   `toml:"color"`
	Zones []ColorZone `toml:"zone"`
}

// ColorZone paints vertices whose height falls in [Min, Max).
type ColorZone struct {
	Min   float64    `toml:"min"`
	Max   float64    `toml:"max"`
	Color [3]float64 `toml:"color"`
}

// Addon is one parametric primitive placed by an explicit transform.
// Kind selects the solid: box, cylinder, or sphere.
type Addon struct {
	Kind string `toml:"kind"`

	// Box extent.
	Size [3]float64 `toml:"size"`
	// Cylinder / sphere parameters.
	Radius   float64 `toml:"radius"`
	Height   float64 `toml:"height"`
	Segments int     `toml:"segments"`

	Position [3]float64 `toml:"position"`
	Rotation [3]float64 `toml:"rotation"` // Euler XYZ degrees
	ScaleXYZ [3]float64 `toml:"scale"`

	Color [3]float64 `toml:"color"`
}

// Child is a named rigid sub-object attached to a static export with
// its own local transform. Never skinned.
type Child struct {
	Name  string `toml:"name"`
	Addon Addon  `toml:"addon"`
}

// Load reads and validates a rig document.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rig: read %s: %w", path, err)
	}

	var doc Document
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("rig: parse %s: %w", path, err)
	}

	doc.applyDefaults()
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("rig: %s: %w", path, err)
	}
	return &doc, nil
}

func (d *Document) applyDefaults() {
	if d.Scale <= 0 {
		d.Scale = 0.01
	}
	if d.SamplesPerUnit <= 0 {
		d.SamplesPerUnit = 16
	}
	if d.VertsPerRing < 3 {
		d.VertsPerRing = 16
	}
	if d.JointThreshold <= 0 {
		d.JointThreshold = 0.15
	}
	for i := range d.Components {
		c := &d.Components[i]
		if c.FrontPath == "" {
			c.FrontPath = c.ID
		}
		if c.SidePath == "" {
			c.SidePath = c.ID
		}
		if c.TopPath == "" {
			c.TopPath = c.ID
		}
		if c.VertsPerRing < 3 {
			c.VertsPerRing = d.VertsPerRing
		}
	}
	for i := range d.Addons {
		applyAddonDefaults(&d.Addons[i])
	}
	for i := range d.Children {
		applyAddonDefaults(&d.Children[i].Addon)
	}
}

func applyAddonDefaults(a *Addon) {
	if a.Segments < 3 {
		a.Segments = 12
	}
	if a.ScaleXYZ == ([3]float64{}) {
		a.ScaleXYZ = [3]float64{1, 1, 1}
	}
}

func (d *Document) validate() error {
	if d.FrontSVG == "" || d.SideSVG == "" {
		return fmt.Errorf("front_svg and side_svg are required")
	}
	if len(d.Components) == 0 && len(d.Addons) == 0 {
		return fmt.Errorf("document declares no components or addons")
	}
	seen := map[string]bool{}
	for _, c := range d.Components {
		if c.ID == "" {
			return fmt.Errorf("component without id")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate component id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.HeightRange) != 0 && len(c.HeightRange) != 2 {
			return fmt.Errorf("component %q: height_range needs exactly 2 values", c.ID)
		}
		if len(c.HeightRange) == 2 && c.HeightRange[0] >= c.HeightRange[1] {
			return fmt.Errorf("component %q: empty height_range", c.ID)
		}
		if len(c.Color) != 0 && len(c.Color) != 3 {
			return fmt.Errorf("component %q: color needs 3 values", c.ID)
		}
	}
	for i, a := range d.Addons {
		if err := validateAddon(a); err != nil {
			return fmt.Errorf("addon %d: %w", i, err)
		}
	}
	for _, ch := range d.Children {
		if ch.Name == "" {
			return fmt.Errorf("child without name")
		}
		if err := validateAddon(ch.Addon); err != nil {
			return fmt.Errorf("child %q: %w", ch.Name, err)
		}
	}
	return nil
}

func validateAddon(a Addon) error {
	switch a.Kind {
	case "box":
		if a.Size[0] <= 0 || a.Size[1] <= 0 || a.Size[2] <= 0 {
			return fmt.Errorf("box needs a positive size")
		}
	case "cylinder":
		if a.Radius <= 0 || a.Height <= 0 {
			return fmt.Errorf("cylinder needs positive radius and height")
		}
	case "sphere":
		if a.Radius <= 0 {
			return fmt.Errorf("sphere needs a positive radius")
		}
	default:
		return fmt.Errorf("unknown primitive kind %q", a.Kind)
	}
	return nil
}
