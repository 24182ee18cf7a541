package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Bilal140202/Pdfeditor/internal/config"
	"github.com/Bilal140202/Pdfeditor/internal/export"
	"github.com/Bilal140202/Pdfeditor/internal/overlay"
	"github.com/Bilal140202/Pdfeditor/internal/pager"
)

// Run assembles the editor window around the engine and blocks until the
// window closes.
func Run(engine *overlay.Engine, doc *pager.Document, cfg config.Config) {
	editorApp := app.New()
	window := editorApp.NewWindow("Pdfeditor")
	window.Resize(fyne.NewSize(1024, 768))

	viewer := NewViewer(engine, doc)
	status := widget.NewLabel("Ready")

	viewer.RequestText = func(done func(text string, ok bool)) {
		entry := widget.NewMultiLineEntry()
		entry.SetMinRowsVisible(3)
		items := []*widget.FormItem{widget.NewFormItem("Text", entry)}
		dialog.ShowForm("Insert text", "Place", "Cancel", items, func(ok bool) {
			done(entry.Text, ok)
		}, window)
	}

	engine.OnToolChanged = func(tool overlay.Tool) {
		status.SetText(fmt.Sprintf("Tool: %s", tool.Kind))
	}
	engine.OnSelectionChanged = func(a *overlay.Annotation) {
		if a == nil {
			status.SetText("Selection cleared")
			return
		}
		status.SetText(fmt.Sprintf("Selected %s annotation %s", a.Kind, a.ID))
	}

	onExport := func() {
		composite, err := engine.ExportComposite()
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if err := export.WritePDF(cfg.ExportPath, composite); err != nil {
			dialog.ShowError(err, window)
			return
		}
		status.SetText(fmt.Sprintf("Exported %s", cfg.ExportPath))
		log.Printf("exported annotated page to %s", cfg.ExportPath)
	}

	toolbar := NewToolbar(engine, viewer, cfg.Tool, onExport)

	if err := viewer.ShowPage(0); err != nil {
		log.Printf("initial page render: %v", err)
	}

	content := container.NewBorder(toolbar, status, nil, nil, container.NewScroll(viewer))
	window.SetContent(content)
	window.ShowAndRun()
}
