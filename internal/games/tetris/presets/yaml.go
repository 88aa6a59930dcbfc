package presets

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/autotetris/internal/games/tetris/core"
)

// YAMLPreset represents the YAML structure for a preset file.
type YAMLPreset struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size,omitempty"`
	Active   string            `yaml:"active,omitempty"`
	Align    string            `yaml:"align,omitempty"` // "bottom" (default) or "top"
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ParseYAML parses and validates a YAML preset.
func ParseYAML(data []byte) (Preset, error) {
	var yp YAMLPreset
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Preset{}, fmt.Errorf("presets: yaml unmarshal: %w", err)
	}

	p := Preset{
		ID:       yp.ID,
		Name:     yp.Name,
		Rows:     yp.Size.Rows,
		Cols:     yp.Size.Cols,
		Metadata: yp.Metadata,
	}
	if p.Rows <= 0 {
		p.Rows = core.DefaultRows
	}
	if p.Cols <= 0 {
		p.Cols = core.DefaultCols
	}
	if p.ID == "" {
		return Preset{}, fmt.Errorf("presets: missing id")
	}
	if len(yp.Rows) > p.Rows {
		return Preset{}, fmt.Errorf("presets: %s: %d rows do not fit a %d-row board", p.ID, len(yp.Rows), p.Rows)
	}

	if yp.Active != "" {
		shape, err := core.ParseShape(yp.Active)
		if err != nil {
			return Preset{}, fmt.Errorf("presets: %s: %w", p.ID, err)
		}
		p.Active = &shape
	}

	// Bottom alignment puts the last listed row on the floor.
	first := p.Rows - len(yp.Rows)
	switch strings.ToLower(yp.Align) {
	case "", "bottom":
	case "top":
		first = 0
	default:
		return Preset{}, fmt.Errorf("presets: %s: unknown align %q", p.ID, yp.Align)
	}

	for i, line := range yp.Rows {
		runes := []rune(line)
		if len(runes) != p.Cols {
			return Preset{}, fmt.Errorf("presets: %s: row %d has width %d, expected %d", p.ID, i, len(runes), p.Cols)
		}
		for col, r := range runes {
			switch r {
			case '#', 'X', 'x':
				p.Filled = append(p.Filled, core.Pos{Row: first + i, Col: col})
			case '.', ' ':
			default:
				return Preset{}, fmt.Errorf("presets: %s: row %d has unknown glyph %q", p.ID, i, r)
			}
		}
	}

	return p, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
