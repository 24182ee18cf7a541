package raster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceStartsEmpty(t *testing.T) {
	s := NewSurface()
	require.True(t, s.Empty())
	require.True(t, s.Blank())
	w, h := s.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestSurfaceResizeDiscardsContent(t *testing.T) {
	s := NewSurface()
	s.Resize(10, 10)
	s.Image().SetRGBA(3, 3, color.RGBA{255, 0, 0, 255})
	require.False(t, s.Blank())

	s.Resize(20, 15)
	w, h := s.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 15, h)
	assert.True(t, s.Blank())
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface()
	s.Resize(8, 8)
	s.Image().SetRGBA(1, 1, color.RGBA{0, 0, 255, 255})
	s.Clear()
	assert.True(t, s.Blank())
	w, h := s.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
}

func TestSurfaceSnapshotRestore(t *testing.T) {
	s := NewSurface()
	s.Resize(10, 10)
	s.Image().SetRGBA(5, 5, color.RGBA{0, 255, 0, 255})

	snap := s.Snapshot()
	require.True(t, s.Matches(snap))

	// Snapshot is a copy, not an alias.
	s.Image().SetRGBA(5, 5, color.RGBA{255, 0, 0, 255})
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, snap.RGBAAt(5, 5))

	s.Restore(snap)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, s.Image().RGBAAt(5, 5))
}

func TestSurfaceMatchesDimensions(t *testing.T) {
	s := NewSurface()
	s.Resize(10, 10)
	snap := s.Snapshot()
	s.Resize(12, 10)
	assert.False(t, s.Matches(snap))
}

func TestSurfaceComposite(t *testing.T) {
	page := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(page, page.Bounds(), image.NewUniform(color.RGBA{255, 0, 0, 255}), image.Point{}, draw.Src)

	s := NewSurface()
	s.Resize(10, 10)
	s.Image().SetRGBA(2, 2, color.RGBA{0, 255, 0, 255})

	out := s.Composite(page)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, out.RGBAAt(2, 2), "overlay wins where drawn")
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, out.RGBAAt(7, 7), "page shows through elsewhere")
}

func TestPolylinePaintsPath(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Polyline(dst, []Point{{5, 10}, {15, 10}}, color.NRGBA{A: 255}, 2)

	mid := dst.RGBAAt(10, 10)
	assert.Greater(t, mid.A, uint8(200), "path center is opaque")
}

func TestPolylineIgnoresShortPaths(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Polyline(dst, []Point{{5, 10}}, color.NRGBA{A: 255}, 2)
	Polyline(dst, nil, color.NRGBA{A: 255}, 2)
	for _, v := range dst.Pix {
		require.Zero(t, v)
	}
}

func TestPathBounds(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := PathBounds(dst, []Point{{10, 10}, {20, 10}, {20, 20}}, 2)
	assert.True(t, image.Pt(10, 10).In(b))
	assert.True(t, image.Pt(20, 20).In(b))
	assert.True(t, b.In(dst.Bounds()))

	assert.True(t, PathBounds(dst, nil, 2).Empty())
}

func TestHighlightOpacityAndSize(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	bounds := Highlight(dst, 100, 50, color.NRGBA{R: 255, G: 255, A: 255})

	assert.Equal(t, HighlightWidth, bounds.Dx())
	assert.Equal(t, HighlightHeight, bounds.Dy())

	center := dst.RGBAAt(100, 50)
	assert.Equal(t, uint8(76), center.A)
	assert.Zero(t, dst.RGBAAt(10, 10).A, "outside the rectangle untouched")
}

func TestHighlightClipsAtEdges(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	bounds := Highlight(dst, 2, 2, color.NRGBA{R: 255, A: 255})
	assert.True(t, bounds.In(dst.Bounds()))
	assert.Equal(t, uint8(76), dst.RGBAAt(2, 2).A)
}

func TestTextDrawsPixels(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	bounds, err := Text(dst, 10, 10, "Hi", "regular", 16, color.NRGBA{A: 255})
	require.NoError(t, err)
	require.False(t, bounds.Empty())

	var touched bool
	for y := bounds.Min.Y; y < bounds.Max.Y && !touched; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if dst.RGBAAt(x, y).A > 0 {
				touched = true
				break
			}
		}
	}
	assert.True(t, touched, "glyphs left pixels inside the reported bounds")
}

func TestTextMultilineGrowsDownward(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	one, err := Text(dst, 10, 10, "a", "regular", 16, color.NRGBA{A: 255})
	require.NoError(t, err)
	two, err := Text(dst, 100, 10, "a\nb", "regular", 16, color.NRGBA{A: 255})
	require.NoError(t, err)
	assert.Greater(t, two.Dy(), one.Dy())
}

func TestTextUnknownFamilyFallsBack(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 50))
	_, err := Text(dst, 5, 5, "x", "comic-sans", 14, color.NRGBA{A: 255})
	require.NoError(t, err)
}
