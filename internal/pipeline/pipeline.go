// Package pipeline drives the silhouette-to-mesh build: it loads the
// view drawings, lofts every declared component, appends addon
// primitives, merges in declared order, and optionally skins the result
// against the fixed humanoid skeleton.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"silhouette-mesher/internal/anim"
	"silhouette-mesher/internal/export"
	"silhouette-mesher/internal/loft"
	"silhouette-mesher/internal/mathutil"
	"silhouette-mesher/internal/mesh"
	"silhouette-mesher/internal/rig"
	"silhouette-mesher/internal/silhouette"
	"silhouette-mesher/internal/skeleton"
	"silhouette-mesher/internal/svgpath"
)

// ErrNoGeometry is the only pipeline-fatal condition: nothing survived
// to hand to the exporter.
var ErrNoGeometry = errors.New("pipeline: no geometries generated")

// Result records the outcome of one component, in declared order.
type Result struct {
	ID      string
	Success bool
	Error   string
	Verts   int
	Tris    int
}

// Pipeline holds one build's inputs. Construct with New, run once.
type Pipeline struct {
	doc     *rig.Document
	srcDir  string
	workers int

	front *svgpath.Document
	side  *svgpath.Document
	top   *svgpath.Document // nil when no top view is declared
}

// New prepares a pipeline for one rig document. srcDir anchors the
// view file references.
func New(doc *rig.Document, srcDir string, workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{doc: doc, srcDir: srcDir, workers: workers}
}

// Run executes the full build and returns the finished asset plus the
// per-component results. The asset is nil only alongside an error.
func (p *Pipeline) Run() (*export.Asset, []Result, error) {
	if err := p.loadViews(); err != nil {
		return nil, nil, err
	}

	results := make([]Result, len(p.doc.Components))
	meshes := make([]*mesh.Mesh, 0, len(p.doc.Components)+len(p.doc.Addons))

	// Components are independent until merge: loft them on a worker
	// pool, but collect into a slice indexed by declared position so
	// completion order never changes the output.
	built := make([]*mesh.Mesh, len(p.doc.Components))
	jobs := make(chan int, p.workers*2)
	var wg sync.WaitGroup
	var processed atomic.Int64

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				built[idx], results[idx] = p.buildComponent(&p.doc.Components[idx])
				processed.Add(1)
			}
		}()
	}
	for i := range p.doc.Components {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	log.Debug("components lofted", "total", processed.Load())

	for i, m := range built {
		if m == nil {
			log.Warn("component skipped", "id", results[i].ID, "reason", results[i].Error)
			continue
		}
		meshes = append(meshes, m)
	}

	for i := range p.doc.Addons {
		meshes = append(meshes, buildAddon(&p.doc.Addons[i]))
	}

	if len(meshes) == 0 {
		return nil, results, ErrNoGeometry
	}

	merged := mesh.Merge(meshes)

	asset := &export.Asset{
		Name: p.doc.Name,
		Mesh: merged,
	}
	if asset.Name == "" {
		asset.Name = "asset"
	}

	if p.doc.Skeleton {
		bones := skeleton.Humanoid()
		asset.Bones = bones
		asset.Bindings = skeleton.AssignWeights(
			merged.Positions,
			skeleton.BindWorldPositions(bones),
			p.doc.JointThreshold,
		)
		asset.Clips = anim.StockClips()
	} else {
		for i := range p.doc.Children {
			ch := &p.doc.Children[i]
			asset.Children = append(asset.Children, export.NamedMesh{
				Name: ch.Name,
				Mesh: buildAddon(&ch.Addon),
			})
		}
	}

	return asset, results, nil
}

// loadViews reads the front/side (required) and top (optional) drawings
// and converts every named path to world units.
func (p *Pipeline) loadViews() error {
	var err error
	p.front, err = p.loadView(p.doc.FrontSVG)
	if err != nil {
		return err
	}
	p.side, err = p.loadView(p.doc.SideSVG)
	if err != nil {
		return err
	}
	if p.doc.TopSVG != "" {
		p.top, err = p.loadView(p.doc.TopSVG)
		if err != nil {
			// A broken top view only costs cross-section detail.
			log.Warn("top view unavailable, using ellipse sections", "err", err)
			p.top = nil
		}
	}
	return nil
}

func (p *Pipeline) loadView(name string) (*svgpath.Document, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.srcDir, name)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("pipeline: view %s: %w", name, err)
	}
	doc, err := svgpath.Load(path)
	if err != nil {
		return nil, err
	}

	// Drawing space → world space, per named path.
	centerX := doc.Width / 2
	for id, poly := range doc.Paths {
		doc.Paths[id] = svgpath.ToWorld(poly, centerX, doc.Height, p.doc.Scale)
	}
	return doc, nil
}

// buildComponent lofts one component. A nil mesh with a Result error is
// a skip, never a pipeline failure.
func (p *Pipeline) buildComponent(c *rig.Component) (*mesh.Mesh, Result) {
	res := Result{ID: c.ID}

	frontPoly, ok := p.front.Paths[c.FrontPath]
	if !ok {
		res.Error = fmt.Sprintf("front path %q not found", c.FrontPath)
		return nil, res
	}
	sidePoly, ok := p.side.Paths[c.SidePath]
	if !ok {
		res.Error = fmt.Sprintf("side path %q not found", c.SidePath)
		return nil, res
	}

	var topShape []silhouette.Offset
	if p.top != nil {
		if topPoly, ok := p.top.Paths[c.TopPath]; ok {
			minX, minY, maxX, maxY := svgpath.Bounds(topPoly)
			topShape = silhouette.Normalize(topPoly, (minX+maxX)/2, (minY+maxY)/2, c.VertsPerRing)
			if topShape == nil {
				log.Warn("degenerate top outline, using ellipse sections", "id", c.ID)
			}
		}
	}

	yMin, yMax := p.heightRange(c, frontPoly, sidePoly)
	if yMax <= yMin {
		res.Error = "empty height range"
		return nil, res
	}

	// Sample resolution scales with part height.
	numSamples := int(math.Ceil((yMax - yMin) * p.doc.SamplesPerUnit))
	if numSamples < 4 {
		numSamples = 4
	}
	levels := silhouette.Levels(yMin, yMax, numSamples)
	frontMap := silhouette.Sample(frontPoly, levels)
	sideMap := silhouette.Sample(sidePoly, levels)

	m := loft.Loft(frontMap, sideMap, loft.Options{
		VertsPerRing: c.VertsPerRing,
		YMin:         yMin,
		YMax:         yMax,
		OffsetX:      c.OffsetX,
		OffsetY:      c.OffsetY,
		OffsetZ:      c.OffsetZ,
		TopShape:     topShape,
		CapBottom:    c.CapBottom,
		CapTop:       c.CapTop,
	})
	if m == nil {
		res.Error = "fewer than 2 valid rings"
		return nil, res
	}

	p.applyColoring(m, c)

	res.Success = true
	res.Verts = m.VertexCount()
	res.Tris = m.TriangleCount()
	return m, res
}

// heightRange returns the component's explicit override or the vertical
// extent of both silhouettes.
func (p *Pipeline) heightRange(c *rig.Component, front, side svgpath.Polyline) (float64, float64) {
	if len(c.HeightRange) == 2 {
		return c.HeightRange[0], c.HeightRange[1]
	}
	_, fMin, _, fMax := svgpath.Bounds(front)
	_, sMin, _, sMax := svgpath.Bounds(side)
	return math.Min(fMin, sMin), math.Max(fMax, sMax)
}

// buildAddon instantiates one parametric primitive with its transform
// and solid color baked in.
func buildAddon(a *rig.Addon) *mesh.Mesh {
	var m *mesh.Mesh
	switch a.Kind {
	case "box":
		m = mesh.Box(a.Size[0], a.Size[1], a.Size[2])
	case "cylinder":
		m = mesh.Cylinder(a.Radius, a.Height, a.Segments)
	case "sphere":
		m = mesh.Sphere(a.Radius, a.Segments/2, a.Segments)
	default:
		// Validation rejects unknown kinds before Run.
		return &mesh.Mesh{}
	}

	m.Transform(mathutil.TRS(
		mathutil.Vec3(a.Position),
		mathutil.Vec3{
			mathutil.Deg2Rad(a.Rotation[0]),
			mathutil.Deg2Rad(a.Rotation[1]),
			mathutil.Deg2Rad(a.Rotation[2]),
		},
		mathutil.Vec3(a.ScaleXYZ),
	))
	m.SetSolidColor(mathutil.Vec3(a.Color))
	return m
}
