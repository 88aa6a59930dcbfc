// Package presets loads contrived starting boards described in YAML.
// This package depends on core but core does not depend on presets.
package presets

import (
	"embed"
	"fmt"
	"math/rand"
	"path"

	"github.com/vovakirdan/autotetris/internal/games/tetris/core"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Preset is a parsed starting board.
type Preset struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Filled   []core.Pos
	Active   *core.Shape // nil keeps the randomly spawned piece
	Metadata map[string]string
	FilePath string
}

// NewBoard builds a board of the preset's size with its cells filled.
func (p *Preset) NewBoard(rng *rand.Rand, opts ...core.Option) *core.Board {
	b := core.NewBoard(p.Rows, p.Cols, rng, opts...)
	p.Apply(b)
	return b
}

// Apply fills the preset cells into b and, when set, replaces the active
// piece with the preset shape at b's current spawn anchor.
func (p *Preset) Apply(b *core.Board) {
	for _, c := range p.Filled {
		b.Fill(c.Row, c.Col)
	}
	if p.Active != nil {
		piece := core.NewPiece(*p.Active)
		piece.Anchor = b.Active().Anchor
		b.SetActive(piece)
	}
}

// Builtin returns an embedded preset by ID.
func Builtin(id string) (Preset, error) {
	for _, ext := range FormatExtensions() {
		data, err := builtinFS.ReadFile(path.Join("builtin", id+ext))
		if err != nil {
			continue
		}
		return ParseYAML(data)
	}
	return Preset{}, fmt.Errorf("presets: builtin %q not found", id)
}

// BuiltinIDs lists the embedded presets.
func BuiltinIDs() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		ids = append(ids, name[:len(name)-len(path.Ext(name))])
	}
	return ids
}
