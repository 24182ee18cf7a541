package raster

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var fontData = map[string][]byte{
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
	"italic":  goitalic.TTF,
	"mono":    gomono.TTF,
}

var parsedFonts = map[string]*sfnt.Font{}

func lookupFont(family string) (*sfnt.Font, error) {
	key := strings.ToLower(strings.TrimSpace(family))
	switch key {
	case "", "sans", "sans-serif", "default":
		key = "regular"
	case "monospace", "courier":
		key = "mono"
	}
	if f, ok := parsedFonts[key]; ok {
		return f, nil
	}
	data, ok := fontData[key]
	if !ok {
		data = fontData["regular"]
		key = "regular"
		if f, ok := parsedFonts[key]; ok {
			return f, nil
		}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", key, err)
	}
	parsedFonts[key] = f
	return f, nil
}

// Text rasterizes text onto dst, top-aligned at (x, y), one line per
// newline-delimited segment. It returns the bounding box of the drawn text
// clipped to dst.
func Text(dst *image.RGBA, x, y float64, text, family string, size float64, col color.Color) (image.Rectangle, error) {
	if size <= 0 {
		size = 16
	}
	fnt, err := lookupFont(family)
	if err != nil {
		return image.Rectangle{}, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("build face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}

	var maxAdvance fixed.Int26_6
	lines := strings.Split(text, "\n")
	baseline := fixed.Int26_6(y*64) + metrics.Ascent
	for i, line := range lines {
		drawer.Dot = fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: baseline + fixed.Int26_6(i)*metrics.Height,
		}
		drawer.DrawString(line)
		if adv := drawer.MeasureString(line); adv > maxAdvance {
			maxAdvance = adv
		}
	}

	height := fixed.Int26_6(len(lines)) * metrics.Height
	bounds := image.Rect(
		int(x), int(y),
		int(x)+maxAdvance.Ceil()+1, int(y)+height.Ceil()+1,
	)
	return bounds.Intersect(dst.Bounds()), nil
}
