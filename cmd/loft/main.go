package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"silhouette-mesher/internal/config"
	"silhouette-mesher/internal/export"
	"silhouette-mesher/internal/pipeline"
	"silhouette-mesher/internal/preview"
	"silhouette-mesher/internal/rig"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	srcDir := flag.String("src", "", "Source directory with rig.toml and view SVGs")
	rigFile := flag.String("rig", "", "Rig document (default: <src>/rig.toml)")
	outFile := flag.String("out", "", "Output asset file (default: <src>/mesh.json)")
	previewFile := flag.String("preview", "", "Write a WebP preview snapshot to this path")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Verbose diagnostics")

	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		SourceDir:  *srcDir,
		RigFile:    *rigFile,
		OutputFile: *outFile,
		Preview:    *previewFile,
		Workers:    *workers,
	})

	doc, err := rig.Load(cfg.RigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rig: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Silhouette mesher: %s\n", cfg.RigFile)
	fmt.Printf("Components: %d, Addons: %d, Workers: %d\n",
		len(doc.Components), len(doc.Addons), cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	p := pipeline.New(doc, cfg.SourceDir, cfg.Workers)
	asset, results, err := p.Run()
	if err != nil {
		if errors.Is(err, pipeline.ErrNoGeometry) {
			fmt.Fprintln(os.Stderr, "Error: no geometries generated")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Printf("  skipped %s: %s\n", r.ID, r.Error)
		}
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Lofted: %d/%d components in %.2fs\n",
		success, len(results), time.Since(start).Seconds())
	fmt.Printf("Mesh: %d vertices, %d triangles", asset.Mesh.VertexCount(), asset.Mesh.TriangleCount())
	if asset.Skinned() {
		fmt.Printf(", %d bones, %d clips", len(asset.Bones), len(asset.Clips))
	}
	fmt.Println()

	exporter := &export.JSONExporter{Path: cfg.OutputFile}
	if err := exporter.Export(asset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Asset: %s\n", cfg.OutputFile)

	if cfg.PreviewFile != "" {
		img := preview.Render(asset.Mesh, cfg.PreviewSize, cfg.Supersample)
		if err := preview.WriteWebP(cfg.PreviewFile, img); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Preview: %s\n", cfg.PreviewFile)
		}
	}
}
