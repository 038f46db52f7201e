package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/birdhouse"
	"github.com/soypat/birdhouse/render"
	"gonum.org/v1/plot/cmpimg"
)

// imgDelta is the normalized tolerance for image comparison
// (0: perfect match, 1: loose match).
const imgDelta = 0

// TestPNGSinkDeterministic renders the same panel twice and compares the
// images. The preview must be a pure function of the panel so batch
// reruns are reproducible.
func TestPNGSinkDeterministic(t *testing.T) {
	front := mustFront(t)
	dirA, dirB := t.TempDir(), t.TempDir()
	for _, dir := range []string{dirA, dirB} {
		if err := (render.PNGSink{Dir: dir}).Display(front); err != nil {
			t.Fatal(err)
		}
	}
	b1, err := os.ReadFile(filepath.Join(dirA, "front.png"))
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(filepath.Join(dirB, "front.png"))
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Fatal("repeated preview renders differ")
	}
}

func TestAssembledSnapshot(t *testing.T) {
	cfg := birdhouse.DefaultConfig()
	panels, err := birdhouse.Panels(cfg)
	if err != nil {
		t.Fatal(err)
	}
	mesh, err := render.AssembleMesh(cfg, panels)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh) == 0 {
		t.Fatal("assembled mesh is empty")
	}
	dir := t.TempDir()
	stlPath := filepath.Join(dir, "assembled.stl")
	if err := render.CreateSTL(stlPath, mesh); err != nil {
		t.Fatal(err)
	}
	pngPath := filepath.Join(dir, "assembled.png")
	if err := render.SnapshotPNG(stlPath, pngPath, render.DefaultView); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(pngPath); err != nil || fi.Size() == 0 {
		t.Fatalf("snapshot missing or empty: %v", err)
	}
}
