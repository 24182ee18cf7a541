package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Highlight rectangle size and opacity. The highlight tool paints a fixed
// rectangle regardless of the text underneath it; there is no text-bounds
// detection.
const (
	HighlightWidth  = 120
	HighlightHeight = 28
	highlightAlpha  = 76 // 0.3 * 255
)

// Highlight paints a semi-transparent rectangle centered on (x, y), clipped
// to dst.
func Highlight(dst *image.RGBA, x, y float64, col color.Color) image.Rectangle {
	cx, cy := int(x), int(y)
	rect := image.Rect(
		cx-HighlightWidth/2, cy-HighlightHeight/2,
		cx+HighlightWidth/2, cy+HighlightHeight/2,
	).Intersect(dst.Bounds())
	if rect.Empty() {
		return rect
	}
	r, g, b, _ := col.RGBA()
	fill := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: highlightAlpha}
	draw.Draw(dst, rect, image.NewUniform(fill), image.Point{}, draw.Over)
	return rect
}
