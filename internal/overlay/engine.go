package overlay

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/Bilal140202/Pdfeditor/internal/raster"
)

// pendingText is the transient state of an in-progress text insertion. It is
// created on a text-tool pointer down and destroyed by commit or cancel.
type pendingText struct {
	x, y    float64
	content string
}

// Engine is the annotation overlay: an editable raster layer kept in sync
// with a separately rendered, read-only page surface. It owns the active
// tool, any in-progress gesture, and the undo/redo history. All methods are
// meant to be called from a single UI event loop; the engine does no locking
// of its own.
type Engine struct {
	surface *raster.Surface
	page    *image.RGBA

	history *History
	tool    Tool
	enabled bool

	pending     *pendingText
	stroke      []raster.Point
	drawing     bool
	annotations []Annotation
	selected    *Annotation

	// Callbacks out to the hosting application.
	OnStateChanged     func(canUndo, canRedo bool)
	OnToolChanged      func(Tool)
	OnSelectionChanged func(*Annotation)
}

// NewEngine creates an enabled engine with an empty surface and the draw
// tool active. The overlay has zero size and accepts no pointer input until
// the first PageRendered call.
func NewEngine(historyDepth int) *Engine {
	tool, _ := ParseTool(ToolConfig{Type: "draw"})
	return &Engine{
		surface: raster.NewSurface(),
		history: NewHistory(historyDepth),
		tool:    tool,
		enabled: true,
	}
}

// PageRendered is the geometry sync notification from the page-rendering
// collaborator. The overlay buffer is resized to the page bitmap and the
// history is cleared, with the blank surface captured as the new baseline,
// so every retained snapshot matches the current dimensions by construction.
// Any in-progress gesture is discarded: it was aimed at page content that no
// longer exists at that position.
func (e *Engine) PageRendered(page image.Image, placement image.Rectangle) {
	e.pending = nil
	e.stroke = nil
	e.drawing = false
	e.annotations = nil
	e.setSelected(nil)

	b := page.Bounds()
	e.page = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(e.page, e.page.Bounds(), page, b.Min, draw.Src)

	e.surface.Resize(b.Dx(), b.Dy())
	e.surface.SetPlacement(placement)

	e.history.Reset()
	e.history.Capture(e.surface.Snapshot())
	e.emitState()
}

// Enable allows pointer input to reach the tools again.
func (e *Engine) Enable() {
	e.enabled = true
}

// Disable finalizes any pending gesture, then stops accepting pointer input.
func (e *Engine) Disable() {
	e.finalizeGesture()
	e.enabled = false
}

func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetTool finalizes any pending gesture of the previous tool (committing a
// non-empty pending text), then switches the active tool. An unrecognized
// tool type is rejected without touching any state.
func (e *Engine) SetTool(cfg ToolConfig) error {
	tool, err := ParseTool(cfg)
	if err != nil {
		return err
	}
	e.finalizeGesture()
	e.tool = tool
	if e.OnToolChanged != nil {
		e.OnToolChanged(tool)
	}
	return nil
}

func (e *Engine) ActiveTool() Tool {
	return e.tool
}

// finalizeGesture ends whatever interaction is in flight: a pending text is
// committed (or cancelled if blank), an in-progress stroke is stroked onto
// the raster as if the pointer had been released.
func (e *Engine) finalizeGesture() {
	e.CommitPendingText()
	if e.drawing {
		e.PointerUp()
	}
}

// PointerDown dispatches a gesture start at (x, y) in surface-space
// coordinates. Input is ignored while disabled or before the first page
// render.
func (e *Engine) PointerDown(x, y float64) {
	if !e.enabled || e.surface.Empty() {
		return
	}
	switch e.tool.Kind {
	case ToolDraw, ToolHighlight:
		e.drawing = true
		e.stroke = []raster.Point{{X: x, Y: y}}
	case ToolText:
		// A second pointer down while editing commits the first edit, same
		// rule as switching tools.
		e.CommitPendingText()
		e.pending = &pendingText{x: x, y: y}
	case ToolSelect:
		e.setSelected(hitTest(e.annotations, x, y))
	}
}

// PointerMove continues an in-progress gesture; it is a no-op when no
// gesture is active.
func (e *Engine) PointerMove(x, y float64) {
	if !e.drawing || e.tool.Kind != ToolDraw {
		return
	}
	e.stroke = append(e.stroke, raster.Point{X: x, Y: y})
}

// PointerUp finalizes the active gesture. A finalize that changed the raster
// captures a history entry; one that did not (a stroke with fewer than two
// points) leaves history alone.
func (e *Engine) PointerUp() {
	if !e.drawing {
		return
	}
	e.drawing = false
	pts := e.stroke
	e.stroke = nil

	switch e.tool.Kind {
	case ToolDraw:
		if len(pts) < 2 {
			return
		}
		raster.Polyline(e.surface.Image(), pts, e.tool.Color, e.tool.StrokeWidth)
		bounds := raster.PathBounds(e.surface.Image(), pts, e.tool.StrokeWidth)
		e.annotations = append(e.annotations, newAnnotation(ToolDraw, bounds))
		e.capture()
	case ToolHighlight:
		if len(pts) == 0 {
			return
		}
		bounds := raster.Highlight(e.surface.Image(), pts[0].X, pts[0].Y, e.tool.Color)
		e.annotations = append(e.annotations, newAnnotation(ToolHighlight, bounds))
		e.capture()
	}
}

// SetPendingText replaces the live content of the in-progress text edit. It
// is a no-op when no edit is in progress.
func (e *Engine) SetPendingText(content string) {
	if e.pending != nil {
		e.pending.content = content
	}
}

// EditingText reports whether a text edit is in progress.
func (e *Engine) EditingText() bool {
	return e.pending != nil
}

// PendingTextAt returns the anchor position of the in-progress text edit.
func (e *Engine) PendingTextAt() (x, y float64, ok bool) {
	if e.pending == nil {
		return 0, 0, false
	}
	return e.pending.x, e.pending.y, true
}

// CommitPendingText rasterizes the in-progress text edit onto the overlay
// and captures a history entry. Content that is empty after trimming
// whitespace cancels the edit instead: no raster change, no history entry.
func (e *Engine) CommitPendingText() {
	p := e.pending
	e.pending = nil
	if p == nil || strings.TrimSpace(p.content) == "" {
		return
	}
	bounds, err := raster.Text(e.surface.Image(), p.x, p.y,
		p.content, e.tool.FontFamily, e.tool.FontSize, e.tool.Color)
	if err != nil {
		// The bundled fonts always parse; an error here means the edit
		// cannot be rasterized, so it is dropped like a cancel.
		return
	}
	e.annotations = append(e.annotations, newAnnotation(ToolText, bounds))
	e.capture()
}

// CancelPendingText discards the in-progress text edit without touching the
// raster or the history.
func (e *Engine) CancelPendingText() {
	e.pending = nil
}

func (e *Engine) capture() {
	e.history.Capture(e.surface.Snapshot())
	e.emitState()
}

func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// Undo repaints the overlay from the previous snapshot. It is a no-op when
// there is nothing to undo.
func (e *Engine) Undo() error {
	snap, ok := e.history.Undo()
	if !ok {
		return nil
	}
	return e.restore(snap)
}

// Redo repaints the overlay from the next snapshot. It is a no-op when there
// is nothing to redo.
func (e *Engine) Redo() error {
	snap, ok := e.history.Redo()
	if !ok {
		return nil
	}
	return e.restore(snap)
}

func (e *Engine) restore(snap *image.RGBA) error {
	if !e.surface.Matches(snap) {
		return fmt.Errorf("restore %dx%d onto %dx%d surface: %w",
			snap.Bounds().Dx(), snap.Bounds().Dy(),
			e.surface.Image().Bounds().Dx(), e.surface.Image().Bounds().Dy(),
			ErrGeometryMismatch)
	}
	e.surface.Restore(snap)
	e.emitState()
	return nil
}

// Clear wipes the overlay and resets the history, keeping the blank surface
// as the new baseline snapshot.
func (e *Engine) Clear() {
	e.pending = nil
	e.stroke = nil
	e.drawing = false
	e.annotations = nil
	e.setSelected(nil)
	e.surface.Clear()
	e.history.Reset()
	if !e.surface.Empty() {
		e.history.Capture(e.surface.Snapshot())
	}
	e.emitState()
}

// ExportComposite flattens the page surface and the overlay into one image.
// It fails with ErrNoContent before the first page render.
func (e *Engine) ExportComposite() (image.Image, error) {
	if e.page == nil {
		return nil, fmt.Errorf("export composite: %w", ErrNoContent)
	}
	return e.surface.Composite(e.page), nil
}

// Overlay exposes the live raster layer for the UI to paint. Callers must
// not mutate it.
func (e *Engine) Overlay() *image.RGBA {
	return e.surface.Image()
}

// Page returns the current page surface bitmap, or nil before the first
// render.
func (e *Engine) Page() image.Image {
	if e.page == nil {
		return nil
	}
	return e.page
}

// Placement returns the overlay's screen-space rectangle as reported by the
// last geometry sync.
func (e *Engine) Placement() image.Rectangle {
	return e.surface.Placement()
}

// Annotations returns the committed-gesture registry in commit order.
func (e *Engine) Annotations() []Annotation {
	out := make([]Annotation, len(e.annotations))
	copy(out, e.annotations)
	return out
}

// Selected returns the annotation picked by the select tool, or nil.
func (e *Engine) Selected() *Annotation {
	return e.selected
}

func (e *Engine) setSelected(a *Annotation) {
	e.selected = a
	if e.OnSelectionChanged != nil {
		e.OnSelectionChanged(a)
	}
}

func (e *Engine) emitState() {
	if e.OnStateChanged != nil {
		e.OnStateChanged(e.CanUndo(), e.CanRedo())
	}
}
