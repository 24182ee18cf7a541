package raster

import (
	"image"
	"image/draw"
)

// Point is a coordinate in overlay surface space.
type Point struct {
	X, Y float64
}

// Surface is the mutable raster layer the user annotates. Its pixel buffer
// always mirrors the dimensions of the most recently rendered page surface,
// and its placement records where that page sits on screen.
type Surface struct {
	img       *image.RGBA
	placement image.Rectangle
}

func NewSurface() *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, 0, 0))}
}

// Resize reallocates the pixel buffer to w x h. Existing raster content is
// discarded; the page underneath changed, so stale annotations would be
// misplaced anyway.
func (s *Surface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (s *Surface) SetPlacement(r image.Rectangle) {
	s.placement = r
}

func (s *Surface) Placement() image.Rectangle {
	return s.placement
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Empty reports whether the surface has a zero-area buffer, which is the
// state before any page has been rendered.
func (s *Surface) Empty() bool {
	return s.img.Bounds().Empty()
}

// Image exposes the live pixel buffer for drawing primitives and the UI.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear resets every pixel to transparent without reallocating.
func (s *Surface) Clear() {
	px := s.img.Pix
	for i := range px {
		px[i] = 0
	}
}

// Blank reports whether no pixel has been touched since the last Clear or
// Resize.
func (s *Surface) Blank() bool {
	for _, v := range s.img.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// Snapshot returns a full copy of the pixel buffer, suitable as an undo
// history entry.
func (s *Surface) Snapshot() *image.RGBA {
	clone := image.NewRGBA(s.img.Bounds())
	copy(clone.Pix, s.img.Pix)
	return clone
}

// Restore overwrites the buffer with a snapshot taken earlier. The snapshot
// must have the same bounds as the current buffer; callers check that before
// restoring.
func (s *Surface) Restore(snap *image.RGBA) {
	copy(s.img.Pix, snap.Pix)
}

// Matches reports whether a snapshot's dimensions equal the current buffer's.
func (s *Surface) Matches(snap *image.RGBA) bool {
	return snap.Bounds() == s.img.Bounds()
}

// Composite flattens the page surface and the overlay into one image, with
// the overlay drawn on top at (0,0) in surface space.
func (s *Surface) Composite(page image.Image) *image.RGBA {
	out := image.NewRGBA(page.Bounds())
	draw.Draw(out, out.Bounds(), page, page.Bounds().Min, draw.Src)
	draw.Draw(out, s.img.Bounds(), s.img, image.Point{}, draw.Over)
	return out
}
