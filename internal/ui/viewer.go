package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/Bilal140202/Pdfeditor/internal/overlay"
	"github.com/Bilal140202/Pdfeditor/internal/pager"
	"github.com/Bilal140202/Pdfeditor/internal/raster"
)

// Viewer shows the current page surface with the annotation overlay on top
// and forwards pointer input to the engine in surface-space coordinates.
type Viewer struct {
	widget.BaseWidget
	engine    *overlay.Engine
	doc       *pager.Document
	pageIndex int
	scale     float64
	preview   []raster.Point

	// RequestText is called when the text tool opens a pending edit; the
	// host pops an input affordance and reports the result.
	RequestText func(done func(text string, ok bool))
}

var _ fyne.Widget = (*Viewer)(nil)
var _ fyne.Draggable = (*Viewer)(nil)
var _ desktop.Mouseable = (*Viewer)(nil)

func NewViewer(engine *overlay.Engine, doc *pager.Document) *Viewer {
	v := &Viewer{engine: engine, doc: doc, scale: 1.0}
	v.ExtendBaseWidget(v)
	return v
}

// ShowPage renders a page at the current zoom scale and syncs the overlay to
// it.
func (v *Viewer) ShowPage(index int) error {
	rp, err := v.doc.Render(index, v.scale)
	if err != nil {
		return err
	}
	v.pageIndex = index
	v.scale = rp.Scale
	v.engine.PageRendered(rp.Image, rp.Placement)
	v.Refresh()
	return nil
}

func (v *Viewer) PageIndex() int {
	return v.pageIndex
}

func (v *Viewer) NextPage() {
	if v.pageIndex+1 < v.doc.PageCount() {
		if err := v.ShowPage(v.pageIndex + 1); err != nil {
			log.Printf("next page: %v", err)
		}
	}
}

func (v *Viewer) PrevPage() {
	if v.pageIndex > 0 {
		if err := v.ShowPage(v.pageIndex - 1); err != nil {
			log.Printf("prev page: %v", err)
		}
	}
}

func (v *Viewer) ZoomIn()  { v.rescale(v.scale * 1.25) }
func (v *Viewer) ZoomOut() { v.rescale(v.scale / 1.25) }

func (v *Viewer) rescale(scale float64) {
	if scale < pager.MinScale {
		scale = pager.MinScale
	}
	if scale > pager.MaxScale {
		scale = pager.MaxScale
	}
	v.scale = scale
	if err := v.ShowPage(v.pageIndex); err != nil {
		log.Printf("zoom re-render: %v", err)
	}
}

// toSurface maps a widget-local position into overlay surface space,
// inverting the screen placement offset and scale.
func (v *Viewer) toSurface(pos fyne.Position) (float64, float64) {
	placement := v.engine.Placement()
	b := v.engine.Overlay().Bounds()
	x := float64(pos.X) - float64(placement.Min.X)
	y := float64(pos.Y) - float64(placement.Min.Y)
	if placement.Dx() > 0 && placement.Dy() > 0 {
		x *= float64(b.Dx()) / float64(placement.Dx())
		y *= float64(b.Dy()) / float64(placement.Dy())
	}
	return x, y
}

func (v *Viewer) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := v.toSurface(e.Position)
	v.engine.PointerDown(x, y)
	switch v.engine.ActiveTool().Kind {
	case overlay.ToolDraw:
		v.preview = []raster.Point{{X: x, Y: y}}
	case overlay.ToolText:
		if v.engine.EditingText() && v.RequestText != nil {
			v.RequestText(func(text string, ok bool) {
				if ok {
					v.engine.SetPendingText(text)
					v.engine.CommitPendingText()
				} else {
					v.engine.CancelPendingText()
				}
				v.Refresh()
			})
		}
	}
	v.Refresh()
}

func (v *Viewer) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	v.engine.PointerUp()
	v.preview = nil
	v.Refresh()
}

func (v *Viewer) Dragged(e *fyne.DragEvent) {
	x, y := v.toSurface(e.Position)
	v.engine.PointerMove(x, y)
	if len(v.preview) > 0 {
		v.preview = append(v.preview, raster.Point{X: x, Y: y})
	}
	v.Refresh()
}

func (v *Viewer) DragEnd() {
	v.engine.PointerUp()
	v.preview = nil
	v.Refresh()
}

func (v *Viewer) MouseIn(*desktop.MouseEvent)    {}
func (v *Viewer) MouseOut()                      {}
func (v *Viewer) MouseMoved(*desktop.MouseEvent) {}

func (v *Viewer) CreateRenderer() fyne.WidgetRenderer {
	r := &viewerRenderer{viewer: v}
	r.background = canvas.NewRectangle(color.Gray{Y: 230})
	return r
}

type viewerRenderer struct {
	viewer     *Viewer
	background *canvas.Rectangle
}

func (r *viewerRenderer) Objects() []fyne.CanvasObject {
	v := r.viewer
	objects := []fyne.CanvasObject{r.background}

	placement := v.engine.Placement()
	size := fyne.NewSize(float32(placement.Dx()), float32(placement.Dy()))
	origin := fyne.NewPos(float32(placement.Min.X), float32(placement.Min.Y))

	if page := v.engine.Page(); page != nil {
		pageImg := canvas.NewImageFromImage(page)
		pageImg.FillMode = canvas.ImageFillContain
		pageImg.Move(origin)
		pageImg.Resize(size)
		objects = append(objects, pageImg)

		overlayImg := canvas.NewImageFromImage(v.engine.Overlay())
		overlayImg.FillMode = canvas.ImageFillContain
		overlayImg.Move(origin)
		overlayImg.Resize(size)
		objects = append(objects, overlayImg)
	}

	// Live preview of the in-progress stroke; the engine only strokes the
	// raster on pointer up.
	if len(v.preview) > 1 {
		tool := v.engine.ActiveTool()
		for i := 0; i < len(v.preview)-1; i++ {
			segment := canvas.NewLine(tool.Color)
			segment.StrokeWidth = float32(tool.StrokeWidth)
			segment.Position1 = fyne.NewPos(float32(v.preview[i].X), float32(v.preview[i].Y))
			segment.Position2 = fyne.NewPos(float32(v.preview[i+1].X), float32(v.preview[i+1].Y))
			objects = append(objects, segment)
		}
	}
	return objects
}

func (r *viewerRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *viewerRenderer) MinSize() fyne.Size {
	placement := r.viewer.engine.Placement()
	w := float32(placement.Dx())
	h := float32(placement.Dy())
	if w < 300 {
		w = 300
	}
	if h < 300 {
		h = 300
	}
	return fyne.NewSize(w, h)
}

func (r *viewerRenderer) Refresh() {
	canvas.Refresh(r.viewer)
}

func (r *viewerRenderer) Destroy() {}
