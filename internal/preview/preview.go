// Package preview renders a flat-shaded orthographic snapshot of a
// merged mesh to WebP so artists can eyeball a loft without a 3D
// viewer. Off the hot path; quality over speed is not a concern.
package preview

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"silhouette-mesher/internal/mathutil"
	"silhouette-mesher/internal/mesh"
)

// frameBuffer holds the render target as flat slices for cache locality.
type frameBuffer struct {
	width  int
	height int
	color  []uint8   // RGBA interleaved, len = W*H*4
	zbuf   []float64 // depth per pixel, initialized to -inf
}

func newFrameBuffer(w, h int) *frameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &frameBuffer{
		width:  w,
		height: h,
		color:  make([]uint8, n*4),
		zbuf:   zbuf,
	}
}

var lightDir = mathutil.Vec3{0.4, 0.8, 0.45}.Normalize()

const (
	ambient = 0.35
	direct  = 0.65
)

// Render draws the mesh through the default three-quarter camera into
// a size×size image, rasterized at size·supersample and downsampled.
func Render(m *mesh.Mesh, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	cam := mathutil.PreviewCam

	// View-space bounding box to fit the mesh in frame.
	allMin := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	view := make([]mathutil.Vec3, len(m.Positions))
	for i, p := range m.Positions {
		tv := cam.MulVec3(p)
		view[i] = tv
		for k := 0; k < 3; k++ {
			if tv[k] < allMin[k] {
				allMin[k] = tv[k]
			}
			if tv[k] > allMax[k] {
				allMax[k] = tv[k]
			}
		}
	}
	if len(view) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}

	center := allMin.Add(allMax).Scale(0.5)
	span := allMax[0] - allMin[0]
	if s := allMax[1] - allMin[1]; s > span {
		span = s
	}
	if span < 1e-3 {
		span = 1e-3
	}
	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / span

	// Project to pixel space: X right, Y down, Z toward the viewer.
	px := make([]float64, len(view))
	py := make([]float64, len(view))
	pz := make([]float64, len(view))
	half := float64(renderSize) / 2
	for i, tv := range view {
		px[i] = (tv[0]-center[0])*scale + half
		py[i] = half - (tv[1]-center[1])*scale
		pz[i] = tv[2] - center[2]
	}

	fb := newFrameBuffer(renderSize, renderSize)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		fillTriangle(fb, px, py, pz, m.Colors, int(a), int(b), int(c))
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.color)

	if supersample > 1 {
		img = downsample(img, size)
	}
	return img
}

// fillTriangle rasterizes one flat-shaded z-buffered triangle. The face
// color is the mean of the three vertex colors scaled by a Lambert term.
func fillTriangle(fb *frameBuffer, px, py, pz []float64, colors []mathutil.Vec3, a, b, c int) {
	nv := len(px)
	if a < 0 || b < 0 || c < 0 || a >= nv || b >= nv || c >= nv {
		return
	}
	x0, y0, z0 := px[a], py[a], pz[a]
	x1, y1, z1 := px[b], py[b], pz[b]
	x2, y2, z2 := px[c], py[c], pz[c]

	// Face normal in view space for shading (abs: double-sided).
	e1 := mathutil.Vec3{x1 - x0, y0 - y1, z1 - z0}
	e2 := mathutil.Vec3{x2 - x0, y0 - y2, z2 - z0}
	n := e1.Cross(e2).Normalize()
	shade := ambient + direct*math.Abs(n.Dot(lightDir))
	if shade > 1 {
		shade = 1
	}

	cr, cg, cb := 0.6, 0.6, 0.6
	if len(colors) == nv {
		cr = (colors[a][0] + colors[b][0] + colors[c][0]) / 3
		cg = (colors[a][1] + colors[b][1] + colors[c][1]) / 3
		cb = (colors[a][2] + colors[b][2] + colors[c][2]) / 3
	}
	r8 := uint8(clamp01(cr*shade)*255 + 0.5)
	g8 := uint8(clamp01(cg*shade)*255 + 0.5)
	b8 := uint8(clamp01(cb*shade)*255 + 0.5)

	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX > fb.width-1 {
		maxX = fb.width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.height-1 {
		maxY = fb.height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for yPix := minY; yPix <= maxY; yPix++ {
		fy := float64(yPix) + 0.5
		rowOff := yPix * fb.width
		for xPix := minX; xPix <= maxX; xPix++ {
			fx := float64(xPix) + 0.5
			w0 := (dy12*(fx-x2) + dx21*(fy-y2)) * invDet
			w1 := (dy20*(fx-x2) + dx02*(fy-y2)) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*z0 + w1*z1 + w2*z2
			idx := rowOff + xPix
			if z <= fb.zbuf[idx] {
				continue
			}
			fb.zbuf[idx] = z
			o := idx * 4
			fb.color[o] = r8
			fb.color[o+1] = g8
			fb.color[o+2] = b8
			fb.color[o+3] = 255
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WriteWebP encodes the snapshot to path.
func WriteWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}
