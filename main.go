package main

import (
	"flag"
	"log"

	"github.com/Bilal140202/Pdfeditor/internal/config"
	"github.com/Bilal140202/Pdfeditor/internal/overlay"
	"github.com/Bilal140202/Pdfeditor/internal/pager"
	"github.com/Bilal140202/Pdfeditor/internal/ui"
)

// Blank page size when no document is given, A4 at 96 DPI.
const (
	blankPageWidth  = 794
	blankPageHeight = 1123
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	exportPath := flag.String("out", "", "export path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *exportPath != "" {
		cfg.ExportPath = *exportPath
	}

	var doc *pager.Document
	if pages := flag.Args(); len(pages) > 0 {
		doc, err = pager.Open(pages...)
		if err != nil {
			log.Fatalf("open document: %v", err)
		}
		log.Printf("opened document with %d page(s)", doc.PageCount())
	} else {
		doc = pager.Blank(blankPageWidth, blankPageHeight)
		log.Println("no document given, starting with a blank page")
	}

	engine := overlay.NewEngine(cfg.HistoryDepth)
	if err := engine.SetTool(cfg.Tool); err != nil {
		log.Fatalf("configured tool: %v", err)
	}

	ui.Run(engine, doc, cfg)
}
