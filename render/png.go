package render

import (
	"image"
	"image/color"
	"path/filepath"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/soypat/birdhouse"
	"github.com/soypat/birdhouse/internal/d2"
)

// PNGSink rasterizes each panel outline to a PNG preview. It implements
// birdhouse.DisplaySink and stands in for an interactive viewer in
// headless batch runs.
type PNGSink struct {
	// Dir receives <role>.png files.
	Dir string
	// PixelsPerMM scales the drawing. Zero means 4 px/mm.
	PixelsPerMM float64
}

var (
	previewBackground = color.RGBA{R: 0xff, G: 0xf8, B: 0xe3, A: 0xff}
	previewPanel      = color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
	previewStroke     = color.RGBA{A: 0xff}
)

// Display renders p into Dir named after the panel role.
func (s PNGSink) Display(p birdhouse.Panel) error {
	scale := s.PixelsPerMM
	if scale <= 0 {
		scale = 4
	}
	const marginMM = 3.0
	bb := d2.Box(p.Loop.Bounds()).Enlarge(d2.Elem(2 * marginMM))
	sz := bb.Size()
	w, h := int(sz.X*scale)+1, int(sz.Y*scale)+1

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gc := draw2dimg.NewGraphicContext(img)
	// raster y grows downward
	toPx := func(x, y float64) (float64, float64) {
		return (x - bb.Min.X) * scale, (bb.Max.Y - y) * scale
	}

	gc.SetFillColor(previewBackground)
	draw2dkit.Rectangle(gc, 0, 0, float64(w), float64(h))
	gc.Fill()

	gc.SetFillColor(previewPanel)
	gc.SetStrokeColor(previewStroke)
	gc.SetLineWidth(scale * 0.3)
	gc.MoveTo(toPx(p.Loop[0].X, p.Loop[0].Y))
	for _, v := range p.Loop[1:] {
		gc.LineTo(toPx(v.X, v.Y))
	}
	gc.Close()
	gc.FillStroke()

	gc.SetFillColor(previewBackground)
	for _, hole := range p.Holes {
		cx, cy := toPx(hole.Center.X, hole.Center.Y)
		draw2dkit.Circle(gc, cx, cy, hole.R*scale)
		gc.FillStroke()
	}
	return draw2dimg.SaveToPngFile(filepath.Join(s.Dir, string(p.Role)+".png"), img)
}
