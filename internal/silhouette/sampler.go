// Package silhouette turns flattened outline polylines into the height
// samples and cross-section shapes consumed by the lofter.
package silhouette

import (
	"math"
	"sort"

	"silhouette-mesher/internal/svgpath"
)

// Bounds is the horizontal extent of a silhouette at one height level.
type Bounds struct {
	Left  float64
	Right float64
}

// SampleMap maps a height level to the silhouette bounds found there.
// Levels no polyline edge crosses are absent, never zero-width.
type SampleMap map[float64]Bounds

// Levels returns numSamples evenly spaced height levels across
// [yMin, yMax], endpoints included. Both views of a component must be
// sampled with the same slice so the map keys align bit-for-bit.
func Levels(yMin, yMax float64, numSamples int) []float64 {
	if numSamples < 2 {
		return []float64{yMin}
	}
	levels := make([]float64, numSamples)
	step := (yMax - yMin) / float64(numSamples-1)
	for i := range levels {
		levels[i] = yMin + step*float64(i)
	}
	return levels
}

// Sample scans every edge of the polyline and records, per height level,
// the leftmost and rightmost X where an edge crosses that level. The
// polyline is taken as-is: no implicit closing edge is added, so an
// outline that omits its Z command may sample incomplete near the seam.
func Sample(poly svgpath.Polyline, levels []float64) SampleMap {
	out := make(SampleMap, len(levels))

	for i := 0; i+1 < len(poly); i++ {
		p0, p1 := poly[i], poly[i+1]
		if p0.Y == p1.Y {
			continue
		}
		lo, hi := p0.Y, p1.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		for _, level := range levels {
			if level <= lo || level >= hi {
				continue
			}
			x := p0.X + (level-p0.Y)/(p1.Y-p0.Y)*(p1.X-p0.X)
			b, ok := out[level]
			if !ok {
				b = Bounds{Left: math.Inf(1), Right: math.Inf(-1)}
			}
			if x < b.Left {
				b.Left = x
			}
			if x > b.Right {
				b.Right = x
			}
			out[level] = b
		}
	}

	return out
}

// SortedLevels returns the map's keys inside [yMin, yMax], ascending.
func (m SampleMap) SortedLevels(yMin, yMax float64) []float64 {
	keys := make([]float64, 0, len(m))
	for level := range m {
		if level < yMin || level > yMax {
			continue
		}
		keys = append(keys, level)
	}
	sort.Float64s(keys)
	return keys
}
