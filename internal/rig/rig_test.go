package rig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rig.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const validDoc = `
name = "goblin"
front_svg = "front.svg"
side_svg = "side.svg"
top_svg = "top.svg"
scale = 0.02
skeleton = true

[[color_zone]]
min = 0.0
max = 0.8
color = [0.3, 0.2, 0.1]

[[component]]
id = "body"
cap_bottom = true
cap_top = true

[[component]]
id = "head"
front_path = "head_outline"
height_range = [1.2, 1.6]
color = [0.5, 0.8, 0.5]

[[addon]]
kind = "sphere"
radius = 0.05
position = [0.1, 1.45, 0.12]
color = [1.0, 1.0, 1.0]

[[child]]
name = "hat"
[child.addon]
kind = "cylinder"
radius = 0.2
height = 0.1
`

func TestLoadValidDocument(t *testing.T) {
	doc, err := Load(writeDoc(t, validDoc))
	require.NoError(t, err)

	require.Equal(t, "goblin", doc.Name)
	require.Equal(t, 0.02, doc.Scale)
	require.True(t, doc.Skeleton)
	require.Len(t, doc.Components, 2)
	require.Len(t, doc.Addons, 1)
	require.Len(t, doc.Children, 1)
}

func TestLoadAppliesDefaults(t *testing.T) {
	doc, err := Load(writeDoc(t, validDoc))
	require.NoError(t, err)

	// Unset document knobs pick up defaults.
	require.Equal(t, 16.0, doc.SamplesPerUnit)
	require.Equal(t, 16, doc.VertsPerRing)
	require.Equal(t, 0.15, doc.JointThreshold)

	// Path ids default to the component id; explicit ones survive.
	body := doc.Components[0]
	require.Equal(t, "body", body.FrontPath)
	require.Equal(t, "body", body.SidePath)
	require.Equal(t, "body", body.TopPath)
	head := doc.Components[1]
	require.Equal(t, "head_outline", head.FrontPath)
	require.Equal(t, "head", head.SidePath)

	require.Equal(t, [3]float64{1, 1, 1}, doc.Addons[0].ScaleXYZ)
	require.Equal(t, 12, doc.Addons[0].Segments)
}

func TestLoadMissingViews(t *testing.T) {
	_, err := Load(writeDoc(t, `
name = "x"
[[component]]
id = "body"
`))
	require.ErrorContains(t, err, "front_svg and side_svg are required")
}

func TestLoadNoGeometryDeclared(t *testing.T) {
	_, err := Load(writeDoc(t, `
front_svg = "f.svg"
side_svg = "s.svg"
`))
	require.ErrorContains(t, err, "no components or addons")
}

func TestLoadDuplicateComponentID(t *testing.T) {
	_, err := Load(writeDoc(t, `
front_svg = "f.svg"
side_svg = "s.svg"
[[component]]
id = "body"
[[component]]
id = "body"
`))
	require.ErrorContains(t, err, "duplicate component id")
}

func TestLoadBadHeightRange(t *testing.T) {
	_, err := Load(writeDoc(t, `
front_svg = "f.svg"
side_svg = "s.svg"
[[component]]
id = "body"
height_range = [2.0, 1.0]
`))
	require.ErrorContains(t, err, "empty height_range")
}

func TestLoadUnknownAddonKind(t *testing.T) {
	_, err := Load(writeDoc(t, `
front_svg = "f.svg"
side_svg = "s.svg"
[[addon]]
kind = "torus"
`))
	require.ErrorContains(t, err, "unknown primitive kind")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
