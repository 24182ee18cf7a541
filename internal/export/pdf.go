// Package export flattens annotated pages into shareable output files.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// A4 page box and margin in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
	marginMM     = 10.0
)

// EncodePNG returns the image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePDF writes a single-page A4 PDF with the composited page image fitted
// inside the margins, preserving its aspect ratio.
func WritePDF(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	boxW := pageWidthMM - 2*marginMM
	boxH := pageHeightMM - 2*marginMM
	b := img.Bounds()
	w := boxW
	h := w * float64(b.Dy()) / float64(b.Dx())
	if h > boxH {
		h = boxH
		w = h * float64(b.Dx()) / float64(b.Dy())
	}

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("composite", opt, bytes.NewReader(data))
	p.ImageOptions("composite", marginMM, marginMM, w, h, false, opt, 0, "")
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
