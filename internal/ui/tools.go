package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Bilal140202/Pdfeditor/internal/overlay"
)

// --- Custom Widget for Color Swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Name     string
	OnTapped func(name string)
}

func newColorSwatch(name string, tapped func(name string)) *colorSwatch {
	s := &colorSwatch{Name: name, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	col, err := overlay.ParseColor(s.Name)
	if err != nil {
		col = color.NRGBA{A: 255}
	}
	rect := canvas.NewRectangle(col)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// --- The Main Toolbar ---

// toolbarState carries the tool parameters the toolbar controls mutate; each
// change is pushed to the engine as a full tool configuration.
type toolbarState struct {
	engine *overlay.Engine
	cfg    overlay.ToolConfig
}

func (ts *toolbarState) apply() {
	if err := ts.engine.SetTool(ts.cfg); err != nil {
		log.Printf("set tool: %v", err)
	}
}

func (ts *toolbarState) setType(t string) {
	ts.cfg.Type = t
	ts.apply()
}

// NewToolbar builds the editor toolbar: tool modes, history controls, zoom
// and page navigation, color palette and stroke width.
func NewToolbar(engine *overlay.Engine, viewer *Viewer, cfg overlay.ToolConfig, onExport func()) fyne.CanvasObject {
	ts := &toolbarState{engine: engine, cfg: cfg}

	undoBtn := widget.NewButtonWithIcon("", theme.ContentUndoIcon(), func() {
		if err := engine.Undo(); err != nil {
			log.Printf("undo: %v", err)
		}
		viewer.Refresh()
	})
	redoBtn := widget.NewButtonWithIcon("", theme.ContentRedoIcon(), func() {
		if err := engine.Redo(); err != nil {
			log.Printf("redo: %v", err)
		}
		viewer.Refresh()
	})
	undoBtn.Disable()
	redoBtn.Disable()

	// The engine reports history state after every mutation; the buttons
	// follow it.
	engine.OnStateChanged = func(canUndo, canRedo bool) {
		if canUndo {
			undoBtn.Enable()
		} else {
			undoBtn.Disable()
		}
		if canRedo {
			redoBtn.Enable()
		} else {
			redoBtn.Disable()
		}
	}

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { ts.setType("draw") }),
		widget.NewToolbarAction(theme.DocumentIcon(), func() { ts.setType("text") }),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() { ts.setType("highlight") }),
		widget.NewToolbarAction(theme.SearchIcon(), func() { ts.setType("select") }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			engine.Clear()
			viewer.Refresh()
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { onExport() }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), viewer.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), viewer.ZoomOut),
		widget.NewToolbarAction(theme.NavigateBackIcon(), viewer.PrevPage),
		widget.NewToolbarAction(theme.NavigateNextIcon(), viewer.NextPage),
	)

	// --- Color Palette ---
	onColorTapped := func(name string) {
		ts.cfg.Color = name
		ts.apply()
	}
	colorBox := container.NewHBox(
		newColorSwatch("black", onColorTapped),
		newColorSwatch("red", onColorTapped),
		newColorSwatch("green", onColorTapped),
		newColorSwatch("blue", onColorTapped),
		newColorSwatch("yellow", onColorTapped),
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 20.0)
	strokeSlider.SetValue(cfg.StrokeWidth)
	strokeSlider.OnChanged = func(val float64) {
		ts.cfg.StrokeWidth = val
		ts.apply()
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		undoBtn,
		redoBtn,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
