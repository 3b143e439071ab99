package svgpath

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Document holds every named path of one orthographic view file,
// already flattened to polylines, plus the source canvas extent used
// for the drawing-space to world-space conversion.
type Document struct {
	Width  float64
	Height float64
	Paths  map[string]Polyline
}

// Load reads an SVG file and flattens its named <path> elements.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("svgpath: read %s: %w", path, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("svgpath: parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes SVG markup and collects id → flattened polyline.
// Paths without an id attribute are ignored; styling, layers, and
// transforms on containers are out of scope.
func Parse(raw []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))

	doc := &Document{
		Width:  1,
		Height: 1,
		Paths:  map[string]Polyline{},
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		t, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch t.Name.Local {
		case "svg":
			for _, a := range t.Attr {
				switch a.Name.Local {
				case "width":
					if v, ok := parseLength(a.Value); ok {
						doc.Width = v
					}
				case "height":
					if v, ok := parseLength(a.Value); ok {
						doc.Height = v
					}
				case "viewBox":
					if _, _, w, h, ok := parseViewBox(a.Value); ok {
						// Explicit width/height win; viewBox fills the gaps.
						if doc.Width == 1 {
							doc.Width = w
						}
						if doc.Height == 1 {
							doc.Height = h
						}
					}
				}
			}
		case "path":
			var id, d string
			for _, a := range t.Attr {
				switch a.Name.Local {
				case "id":
					id = strings.TrimSpace(a.Value)
				case "d":
					d = a.Value
				}
			}
			if id == "" || d == "" {
				continue
			}
			poly := ParsePath(d)
			if len(poly) > 0 {
				doc.Paths[id] = poly
			}
		}
	}

	return doc, nil
}

// ToWorld converts a drawing-space polyline to world units. Drawing Y
// grows downward; world Y grows upward, so Y is flipped against the
// source height before scaling.
func ToWorld(poly Polyline, centerX, sourceHeight, scale float64) Polyline {
	out := make(Polyline, len(poly))
	for i, pt := range poly {
		out[i] = Point{
			X: (pt.X - centerX) * scale,
			Y: (sourceHeight - pt.Y) * scale,
		}
	}
	return out
}

// Bounds returns the axis-aligned extent of a polyline.
func Bounds(poly Polyline) (minX, minY, maxX, maxY float64) {
	if len(poly) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = poly[0].X, poly[0].X
	minY, maxY = poly[0].Y, poly[0].Y
	for _, pt := range poly[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return minX, minY, maxX, maxY
}

func parseLength(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func parseViewBox(s string) (minX, minY, w, h float64, ok bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) != 4 {
		return 0, 0, 0, 0, false
	}
	var vals [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return 0, 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], vals[3], true
}
