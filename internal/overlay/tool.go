package overlay

import (
	"fmt"
	"image/color"
	"strings"
)

// ToolKind identifies one of the overlay's interaction modes.
type ToolKind int

const (
	ToolText ToolKind = iota
	ToolDraw
	ToolHighlight
	ToolSelect
)

func (k ToolKind) String() string {
	switch k {
	case ToolText:
		return "text"
	case ToolDraw:
		return "draw"
	case ToolHighlight:
		return "highlight"
	case ToolSelect:
		return "select"
	}
	return "unknown"
}

// Tool is the active tool variant plus its parameters. Exactly one tool is
// active at a time; parameters that do not apply to a variant are simply
// unused by it.
type Tool struct {
	Kind        ToolKind
	Color       color.Color
	FontFamily  string
	FontSize    float64
	StrokeWidth float64
}

// ToolConfig is the external configuration form of a tool, as accepted by
// SetTool and by the YAML config file.
type ToolConfig struct {
	Type        string  `yaml:"type"`
	Color       string  `yaml:"color"`
	FontFamily  string  `yaml:"font_family"`
	FontSize    float64 `yaml:"font_size"`
	StrokeWidth float64 `yaml:"stroke_width"`
}

const (
	defaultFontFamily  = "regular"
	defaultFontSize    = 16
	defaultStrokeWidth = 3
)

// ParseTool validates a ToolConfig and fills defaults for unset parameters.
func ParseTool(cfg ToolConfig) (Tool, error) {
	var kind ToolKind
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "text":
		kind = ToolText
	case "draw":
		kind = ToolDraw
	case "highlight":
		kind = ToolHighlight
	case "select":
		kind = ToolSelect
	default:
		return Tool{}, fmt.Errorf("%w: %q", ErrInvalidTool, cfg.Type)
	}

	col := color.Color(color.NRGBA{A: 255}) // black
	if cfg.Color != "" {
		parsed, err := ParseColor(cfg.Color)
		if err != nil {
			return Tool{}, err
		}
		col = parsed
	}

	t := Tool{
		Kind:        kind,
		Color:       col,
		FontFamily:  cfg.FontFamily,
		FontSize:    cfg.FontSize,
		StrokeWidth: cfg.StrokeWidth,
	}
	if t.FontFamily == "" {
		t.FontFamily = defaultFontFamily
	}
	if t.FontSize <= 0 {
		t.FontSize = defaultFontSize
	}
	if t.StrokeWidth <= 0 {
		t.StrokeWidth = defaultStrokeWidth
	}
	return t, nil
}

var namedColors = map[string]color.NRGBA{
	"black":  {A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 255, A: 255},
	"green":  {G: 255, A: 255},
	"blue":   {B: 255, A: 255},
	"yellow": {R: 255, G: 255, A: 255},
}

// ParseColor accepts #rgb and #rrggbb hex forms plus a small set of color
// names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
