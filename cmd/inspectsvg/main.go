package main

import (
	"fmt"
	"os"
	"sort"

	"silhouette-mesher/internal/svgpath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspectsvg <file.svg> ...")
		os.Exit(2)
	}

	for _, arg := range os.Args[1:] {
		doc, err := svgpath.Load(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			continue
		}
		fmt.Printf("\n=== %s (canvas %gx%g, paths=%d) ===\n",
			arg, doc.Width, doc.Height, len(doc.Paths))

		ids := make([]string, 0, len(doc.Paths))
		for id := range doc.Paths {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			poly := doc.Paths[id]
			minX, minY, maxX, maxY := svgpath.Bounds(poly)
			closed := len(poly) > 1 && poly[0] == poly[len(poly)-1]
			fmt.Printf("  %-20s %4d pts  bounds [%.1f %.1f]-[%.1f %.1f]  closed=%v\n",
				id, len(poly), minX, minY, maxX, maxY, closed)
		}
	}
}
