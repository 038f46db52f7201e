package render_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/birdhouse"
	"github.com/soypat/birdhouse/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLCreateWriteRead(t *testing.T) {
	cfg := birdhouse.DefaultConfig()
	side, err := birdhouse.SidePlate(cfg, birdhouse.RoleSideLeft)
	if err != nil {
		t.Fatal(err)
	}
	pose := render.Pose{X: r3.Vec{X: 1}, Y: r3.Vec{Y: 1}}
	model, err := render.ExtrudeLoop(side.Loop, side.Thickness, pose)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "side.stl")
	if err := render.CreateSTL(path, model); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
	const headerSize, triangleSize = 84, 50
	if want := headerSize + triangleSize*len(model); b.Len() != want {
		t.Fatalf("stl size %d, want %d", b.Len(), want)
	}
	count := binary.LittleEndian.Uint32(b.Bytes()[80:])
	if int(count) != len(model) {
		t.Fatalf("stl header count %d, want %d", count, len(model))
	}
	// first record's normal is unit length
	rec := b.Bytes()[headerSize:]
	var n [3]float32
	for i := range n {
		n[i] = math.Float32frombits(binary.LittleEndian.Uint32(rec[4*i:]))
	}
	norm := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
	if math.Abs(norm-1) > 1e-6 {
		t.Fatalf("stl normal length %g, want 1", norm)
	}
}

// A zero-area facet has no defined normal; the record must carry a
// zero normal rather than NaNs.
func TestWriteSTLDegenerateNormal(t *testing.T) {
	var b bytes.Buffer
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	if err := render.WriteSTL(&b, []render.Triangle3{{V: [3]r3.Vec{p, p, p}}}); err != nil {
		t.Fatal(err)
	}
	rec := b.Bytes()[84:]
	for i := 0; i < 3; i++ {
		if bits := binary.LittleEndian.Uint32(rec[4*i:]); bits != 0 {
			t.Fatalf("normal component %d is %#x, want 0", i, bits)
		}
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	if err := render.WriteSTL(io.Discard, nil); err == nil {
		t.Fatal("empty model should not serialize")
	}
}
