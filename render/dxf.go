package render

import (
	"fmt"
	"path/filepath"

	"github.com/soypat/birdhouse"
	"github.com/yofu/dxf"

	dxfcolor "github.com/yofu/dxf/color"
	dxftable "github.com/yofu/dxf/table"
)

// cutLayer is the layer name laser cutter workflows pick paths from.
const cutLayer = "CUT"

// DXF exports panels as DXF R2000 cut files, one LWPOLYLINE for the
// outline and one CIRCLE per hole, all in millimeters on the CUT layer.
type DXF struct{}

// Export writes dir/<role>.dxf. It implements birdhouse.Exporter.
func (DXF) Export(dir string, p birdhouse.Panel) error {
	return CreateDXF(filepath.Join(dir, string(p.Role)+".dxf"), p)
}

// CreateDXF writes one panel to a DXF file at path.
func CreateDXF(path string, p birdhouse.Panel) error {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(cutLayer, dxfcolor.Red, dxftable.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("dxf layer: %w", err)
	}
	verts := make([][]float64, len(p.Loop))
	for i, v := range p.Loop {
		verts[i] = []float64{v.X, v.Y}
	}
	if _, err := d.LwPolyline(true, verts...); err != nil {
		return fmt.Errorf("dxf outline %s: %w", p.Role, err)
	}
	for _, h := range p.Holes {
		if _, err := d.Circle(h.Center.X, h.Center.Y, 0, h.R); err != nil {
			return fmt.Errorf("dxf hole %s: %w", p.Role, err)
		}
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("dxf save %s: %w", path, err)
	}
	return nil
}
