// Package pager stands in for the page-rendering engine the editor layers
// its overlay on top of. It serves raster pages from image files (one file
// per page) and re-renders them at the current zoom scale; the overlay
// engine consumes the result through its geometry sync notification.
package pager

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

var ErrPageRange = errors.New("pager: page index out of range")

const (
	MinScale = 0.25
	MaxScale = 4.0
)

// RenderedPage is one page surface at a concrete zoom scale, together with
// its screen placement relative to the viewer origin.
type RenderedPage struct {
	Image     image.Image
	Placement image.Rectangle
	Scale     float64
}

// Document is an ordered set of raster pages.
type Document struct {
	pages []image.Image
	names []string
}

// Open loads one page per image file, in argument order.
func Open(paths ...string) (*Document, error) {
	if len(paths) == 0 {
		return nil, errors.New("pager: no pages given")
	}
	d := &Document{}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open page %s: %w", path, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode page %s: %w", path, err)
		}
		d.pages = append(d.pages, img)
		d.names = append(d.names, path)
	}
	return d, nil
}

// Blank returns a single-page document with a white page of the given pixel
// size, used when the editor is started without a document.
func Blank(w, h int) *Document {
	page := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Document{pages: []image.Image{page}, names: []string{"blank"}}
}

func (d *Document) PageCount() int {
	return len(d.pages)
}

// PageName returns the source name of a page, for status display.
func (d *Document) PageName(index int) string {
	if index < 0 || index >= len(d.names) {
		return ""
	}
	return d.names[index]
}

// Render produces the page surface for index at the given zoom scale,
// clamped to [MinScale, MaxScale]. Scale 1 returns the source bitmap as-is;
// other scales resample with Lanczos.
func (d *Document) Render(index int, scale float64) (*RenderedPage, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageRange, index, len(d.pages))
	}
	if scale < MinScale {
		scale = MinScale
	}
	if scale > MaxScale {
		scale = MaxScale
	}

	img := d.pages[index]
	if scale != 1 {
		w := uint(float64(img.Bounds().Dx()) * scale)
		img = resize.Resize(w, 0, img, resize.Lanczos3)
	}
	b := img.Bounds()
	return &RenderedPage{
		Image:     img,
		Placement: image.Rect(0, 0, b.Dx(), b.Dy()),
		Scale:     scale,
	}, nil
}
