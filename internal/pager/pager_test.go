package pager

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	path := filepath.Join(t.TempDir(), "page.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestBlankDocument(t *testing.T) {
	d := Blank(100, 200)
	require.Equal(t, 1, d.PageCount())

	rp, err := d.Render(0, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 200), rp.Placement)
	assert.Equal(t, 1.0, rp.Scale)

	r, g, b, _ := rp.Image.At(50, 100).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestRenderScaling(t *testing.T) {
	d := Blank(100, 50)

	rp, err := d.Render(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 200, rp.Image.Bounds().Dx())
	assert.Equal(t, 100, rp.Image.Bounds().Dy())
	assert.Equal(t, rp.Image.Bounds().Dx(), rp.Placement.Dx())

	// Scales clamp to the supported range.
	rp, err = d.Render(0, 0.01)
	require.NoError(t, err)
	assert.Equal(t, MinScale, rp.Scale)
	assert.Equal(t, 25, rp.Image.Bounds().Dx())

	rp, err = d.Render(0, 100)
	require.NoError(t, err)
	assert.Equal(t, MaxScale, rp.Scale)
}

func TestRenderPageRange(t *testing.T) {
	d := Blank(10, 10)
	_, err := d.Render(1, 1)
	require.ErrorIs(t, err, ErrPageRange)
	_, err = d.Render(-1, 1)
	require.ErrorIs(t, err, ErrPageRange)
}

func TestOpenImageFile(t *testing.T) {
	path := writeTestPNG(t, 30, 40)
	d, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, d.PageCount())
	assert.Equal(t, path, d.PageName(0))

	rp, err := d.Render(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, rp.Image.Bounds().Dx())
	assert.Equal(t, 40, rp.Image.Bounds().Dy())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open()
	require.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
	_, err = Open(bad)
	require.Error(t, err)
}
