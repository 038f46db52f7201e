// Command birdhouse generates the laser-cut panel files for the
// replacement birdhouse: one DXF and one SVG per panel, plus optional
// PNG previews and an assembled-model STL snapshot.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/soypat/birdhouse"
	"github.com/soypat/birdhouse/render"
)

func main() {
	var (
		outDir   = flag.String("o", "construction_files", "output directory for cut files")
		preview  = flag.Bool("preview", false, "also write a PNG preview per panel")
		snapshot = flag.Bool("snapshot", false, "also write assembled.stl and assembled.png")
	)
	flag.Parse()

	cfg := birdhouse.DefaultConfig()
	var sink birdhouse.DisplaySink
	if *preview {
		sink = render.PNGSink{Dir: *outDir}
	}
	err := birdhouse.Generate(cfg, *outDir, sink, render.DXF{}, render.SVG{})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("cut files written to %s", *outDir)

	if !*snapshot {
		return
	}
	panels, err := birdhouse.Panels(cfg)
	if err != nil {
		log.Fatal(err)
	}
	mesh, err := render.AssembleMesh(cfg, panels)
	if err != nil {
		log.Fatal(err)
	}
	stlPath := filepath.Join(*outDir, "assembled.stl")
	if err := render.CreateSTL(stlPath, mesh); err != nil {
		log.Fatal(err)
	}
	if err := render.SnapshotPNG(stlPath, filepath.Join(*outDir, "assembled.png"), render.DefaultView); err != nil {
		log.Fatal(err)
	}
	log.Printf("assembled model snapshot written to %s", *outDir)
}
