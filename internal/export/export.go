// Package export defines the handoff boundary between the pipeline and
// the asset container writer, plus a JSON reference implementation.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"silhouette-mesher/internal/anim"
	"silhouette-mesher/internal/mesh"
	"silhouette-mesher/internal/skeleton"
)

// NamedMesh is a rigid child sub-object with its own geometry, exported
// under a static asset. Its transform is already baked into the
// positions.
type NamedMesh struct {
	Name string
	Mesh *mesh.Mesh
}

// Asset is everything the pipeline hands to an exporter: the merged
// mesh, and for skeleton runs the bone table, per-vertex bindings, and
// the fixed clip table passed through unmodified.
type Asset struct {
	Name string
	Mesh *mesh.Mesh

	// Skinned exports only.
	Bones    []skeleton.Bone
	Bindings []skeleton.Binding
	Clips    []anim.Clip

	// Static exports only.
	Children []NamedMesh
}

// Skinned reports whether the asset carries a skeleton.
func (a *Asset) Skinned() bool {
	return len(a.Bones) > 0
}

// Exporter serializes a finished asset. Implementations own the
// container format; the pipeline only builds the Asset.
type Exporter interface {
	Export(a *Asset) error
}

// JSONExporter writes the asset as an indented JSON document. It exists
// so the tool is usable end-to-end without a binary container writer.
type JSONExporter struct {
	Path string
}

type jsonMesh struct {
	Positions [][3]float64 `json:"positions"`
	Normals   [][3]float64 `json:"normals"`
	Colors    [][3]float64 `json:"colors"`
	UVs       [][2]float64 `json:"uvs"`
	Indices   []uint32     `json:"indices"`
}

type jsonBone struct {
	Name   string     `json:"name"`
	Parent int        `json:"parent"`
	Offset [3]float64 `json:"offset"`
}

type jsonBinding struct {
	Bones   []int     `json:"bones"`
	Weights []float64 `json:"weights"`
}

type jsonChild struct {
	Name string   `json:"name"`
	Mesh jsonMesh `json:"mesh"`
}

type jsonAsset struct {
	Name     string        `json:"name"`
	GUID     string        `json:"guid"`
	Mesh     jsonMesh      `json:"mesh"`
	Bones    []jsonBone    `json:"bones,omitempty"`
	Bindings []jsonBinding `json:"bindings,omitempty"`
	Clips    []anim.Clip   `json:"clips,omitempty"`
	Children []jsonChild   `json:"children,omitempty"`
}

// Export writes the asset to Path. The GUID is derived from the asset
// name (SHA-1 UUID), keeping repeat runs byte-identical.
func (e *JSONExporter) Export(a *Asset) error {
	out := jsonAsset{
		Name: a.Name,
		GUID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(a.Name)).String(),
		Mesh: toJSONMesh(a.Mesh),
	}

	for _, b := range a.Bones {
		out.Bones = append(out.Bones, jsonBone{Name: b.Name, Parent: b.Parent, Offset: b.Offset})
	}
	for _, bind := range a.Bindings {
		jb := jsonBinding{
			Bones:   []int{bind.Bones[0]},
			Weights: []float64{bind.Weights[0]},
		}
		if bind.Count == 2 {
			jb.Bones = append(jb.Bones, bind.Bones[1])
			jb.Weights = append(jb.Weights, bind.Weights[1])
		}
		out.Bindings = append(out.Bindings, jb)
	}
	out.Clips = a.Clips
	for _, ch := range a.Children {
		out.Children = append(out.Children, jsonChild{Name: ch.Name, Mesh: toJSONMesh(ch.Mesh)})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal %s: %w", a.Name, err)
	}
	if err := os.WriteFile(e.Path, data, 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", e.Path, err)
	}
	return nil
}

func toJSONMesh(m *mesh.Mesh) jsonMesh {
	out := jsonMesh{
		Positions: make([][3]float64, len(m.Positions)),
		Normals:   make([][3]float64, len(m.Normals)),
		Colors:    make([][3]float64, len(m.Colors)),
		UVs:       make([][2]float64, len(m.UVs)),
		Indices:   m.Indices,
	}
	for i, p := range m.Positions {
		out.Positions[i] = p
	}
	for i, n := range m.Normals {
		out.Normals[i] = n
	}
	for i, c := range m.Colors {
		out.Colors[i] = c
	}
	for i, uv := range m.UVs {
		out.UVs[i] = uv
	}
	return out
}
