// Package config loads editor defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Bilal140202/Pdfeditor/internal/overlay"
)

// Config holds the editor settings the engine and UI start from.
type Config struct {
	HistoryDepth int                `yaml:"history_depth"`
	Tool         overlay.ToolConfig `yaml:"tool"`
	ExportPath   string             `yaml:"export_path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		HistoryDepth: overlay.DefaultHistoryDepth,
		Tool: overlay.ToolConfig{
			Type:        "draw",
			Color:       "black",
			FontFamily:  "regular",
			FontSize:    16,
			StrokeWidth: 3,
		},
		ExportPath: "annotated.pdf",
	}
}

// Load reads a config file, filling unset fields with defaults. An empty
// path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.HistoryDepth <= 0 {
		cfg.HistoryDepth = overlay.DefaultHistoryDepth
	}
	if cfg.Tool.Type == "" {
		cfg.Tool.Type = "draw"
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = "annotated.pdf"
	}
	// Reject bad tool settings at load time, not first use.
	if _, err := overlay.ParseTool(cfg.Tool); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
