package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/birdhouse"
	"github.com/soypat/birdhouse/render"
)

func mustFront(t *testing.T) birdhouse.Panel {
	t.Helper()
	front, err := birdhouse.FrontPlate(birdhouse.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return front
}

func TestCreateDXF(t *testing.T) {
	front := mustFront(t)
	path := filepath.Join(t.TempDir(), "front.dxf")
	if err := render.CreateDXF(path, front); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("LWPOLYLINE")) {
		t.Error("dxf output lacks the outline polyline")
	}
	if got := bytes.Count(b, []byte("CIRCLE")); got < len(front.Holes) {
		t.Errorf("dxf output has %d circles, want at least %d", got, len(front.Holes))
	}
}

func TestDXFExporterNaming(t *testing.T) {
	dir := t.TempDir()
	if err := (render.DXF{}).Export(dir, mustFront(t)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "front.dxf")); err != nil {
		t.Fatal(err)
	}
}

func TestCreateSVG(t *testing.T) {
	front := mustFront(t)
	path := filepath.Join(t.TempDir(), "front.svg")
	if err := render.CreateSVG(path, front); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, substr := range []string{"<svg", "viewBox=", "mm"} {
		if !bytes.Contains(b, []byte(substr)) {
			t.Errorf("svg output lacks %q", substr)
		}
	}
	// one outline path plus one per entrance hole
	if got := bytes.Count(b, []byte("<path")); got != 1+len(front.Holes) {
		t.Errorf("svg output has %d paths, want %d", got, 1+len(front.Holes))
	}
}

func TestSVGExporterNaming(t *testing.T) {
	dir := t.TempDir()
	if err := (render.SVG{}).Export(dir, mustFront(t)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "front.svg")); err != nil {
		t.Fatal(err)
	}
}
