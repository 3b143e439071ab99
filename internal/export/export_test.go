package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"silhouette-mesher/internal/anim"
	"silhouette-mesher/internal/mathutil"
	"silhouette-mesher/internal/mesh"
	"silhouette-mesher/internal/skeleton"
)

func sampleAsset() *Asset {
	m := mesh.Box(1, 1, 1)
	m.SetSolidColor(mathutil.Vec3{0.5, 0.5, 0.5})
	return &Asset{
		Name: "crate",
		Mesh: m,
		Children: []NamedMesh{
			{Name: "lid", Mesh: mesh.Box(1, 0.1, 1)},
		},
	}
}

func TestJSONExportDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")

	require.NoError(t, (&JSONExporter{Path: a}).Export(sampleAsset()))
	require.NoError(t, (&JSONExporter{Path: b}).Export(sampleAsset()))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, da, db)
}

func TestJSONExportSkinnedFields(t *testing.T) {
	bones := skeleton.Humanoid()
	a := &Asset{
		Name:  "figure",
		Mesh:  mesh.Sphere(0.5, 4, 8),
		Bones: bones,
		Bindings: []skeleton.Binding{
			{Bones: [2]int{0, 1}, Weights: [2]float64{0.7, 0.3}, Count: 2},
		},
		Clips: anim.StockClips(),
	}
	require.True(t, a.Skinned())

	path := filepath.Join(t.TempDir(), "figure.json")
	require.NoError(t, (&JSONExporter{Path: path}).Export(a))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"bones"`)
	require.Contains(t, string(data), `"bindings"`)
	require.Contains(t, string(data), `"clips"`)
	require.Contains(t, string(data), `"pelvis"`)
}

func TestStaticAssetNotSkinned(t *testing.T) {
	require.False(t, sampleAsset().Skinned())
}
