package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
)

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle is the binary representation of an STL triangle, 50 bytes
// per record.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count
}

const stlTriangleSize = 50

// WriteSTL writes model triangles to a writer in binary STL format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	header := stlHeader{
		Count: uint32(len(model)),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var d stlTriangle
	var b [stlTriangleSize]byte
	for _, triangle := range model {
		n := triangle.Normal()
		d.Normal[0] = float32(n.X)
		d.Normal[1] = float32(n.Y)
		d.Normal[2] = float32(n.Z)
		if bad3F32(d.Normal) {
			// degenerate facet, zero normal per STL convention
			d.Normal = [3]float32{}
		}
		d.Vertex1 = [3]float32{float32(triangle.V[0].X), float32(triangle.V[0].Y), float32(triangle.V[0].Z)}
		d.Vertex2 = [3]float32{float32(triangle.V[1].X), float32(triangle.V[1].Y), float32(triangle.V[1].Z)}
		d.Vertex3 = [3]float32{float32(triangle.V[2].X), float32(triangle.V[2].Y), float32(triangle.V[2].Z)}
		d.put(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// CreateSTL writes the model to a binary STL file at path.
func CreateSTL(path string, model []Triangle3) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl create: %w", err)
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	if err := WriteSTL(w, model); err != nil {
		return fmt.Errorf("stl write %s: %w", path, err)
	}
	return w.Flush()
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
