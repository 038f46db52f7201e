package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/soypat/birdhouse"
	"github.com/soypat/birdhouse/internal/d2"
)

// svgMargin is blank space left around the outline, in millimeters.
const svgMargin = 2.0

// cutStyle is a hairline stroke; most laser drivers treat any thin
// stroke as a cut path.
const cutStyle = `fill="none" stroke="#000000" stroke-width="0.2"`

// SVG exports panels as millimeter-accurate SVG cut files: the document
// carries mm units with a matching viewBox so 1 user unit is 1mm.
type SVG struct{}

// Export writes dir/<role>.svg. It implements birdhouse.Exporter.
func (SVG) Export(dir string, p birdhouse.Panel) error {
	return CreateSVG(filepath.Join(dir, string(p.Role)+".svg"), p)
}

// CreateSVG writes one panel to an SVG file at path.
func CreateSVG(path string, p birdhouse.Panel) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg create: %w", err)
	}
	defer fp.Close()

	bb := d2.Box(p.Loop.Bounds()).Enlarge(d2.Elem(2 * svgMargin))
	sz := bb.Size()
	canvas := svg.New(fp)
	canvas.Startunit(int(math.Ceil(sz.X)), int(math.Ceil(sz.Y)), "mm",
		fmt.Sprintf(`viewBox="0 0 %s %s"`, ftoa(sz.X), ftoa(sz.Y)))
	// SVG y grows downward; flip so the panel keeps its CAD orientation.
	flipY := func(y float64) float64 { return bb.Max.Y - y }

	var b strings.Builder
	for i, v := range p.Loop {
		cmd := byte('L')
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%s,%s ", cmd, ftoa(v.X-bb.Min.X), ftoa(flipY(v.Y)))
	}
	b.WriteByte('Z')
	canvas.Path(b.String(), cutStyle)

	for _, h := range p.Holes {
		cx, cy := h.Center.X-bb.Min.X, flipY(h.Center.Y)
		// two half arcs make a full circle
		d := fmt.Sprintf("M%s,%s A%s,%s 0 1 0 %s,%s A%s,%s 0 1 0 %s,%s Z",
			ftoa(cx-h.R), ftoa(cy), ftoa(h.R), ftoa(h.R), ftoa(cx+h.R), ftoa(cy),
			ftoa(h.R), ftoa(h.R), ftoa(cx-h.R), ftoa(cy))
		canvas.Path(d, cutStyle)
	}
	canvas.End()
	return nil
}

// ftoa formats millimeter coordinates compactly.
func ftoa(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", f), "0"), ".")
}
