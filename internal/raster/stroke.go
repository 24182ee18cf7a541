package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Polyline strokes a freehand path onto dst with round caps and joins.
// Fewer than two points leaves dst untouched.
func Polyline(dst *image.RGBA, pts []Point, col color.Color, width float64) {
	if len(pts) < 2 || dst.Bounds().Empty() {
		return
	}
	if width <= 0 {
		width = 1
	}
	b := dst.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	stroker := rasterx.NewStroker(b.Dx(), b.Dy(), scanner)
	stroker.SetColor(col)
	stroker.SetStroke(fixed.Int26_6(width*64), 4<<6,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	stroker.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		stroker.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	stroker.Stop(false)
	stroker.Draw()
}

// PathBounds returns the integer bounding box of a stroked path, expanded by
// half the stroke width and clipped to the destination bounds.
func PathBounds(dst *image.RGBA, pts []Point, width float64) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	pad := width/2 + 1
	r := image.Rect(int(minX-pad), int(minY-pad), int(maxX+pad)+1, int(maxY+pad)+1)
	return r.Intersect(dst.Bounds())
}
