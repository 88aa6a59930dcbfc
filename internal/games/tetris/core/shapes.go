// Package core provides the board and piece state machine for autotetris.
// This package is UI-agnostic and deterministic given a seeded RNG.
package core

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/autotetris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// Shapes lists every shape in catalog order. Spawning draws uniformly from it.
var Shapes = [7]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color used by renderers.
func (s Shape) Color() platformcore.Color {
	switch s {
	case ShapeI:
		return platformcore.ColorCyan
	case ShapeO:
		return platformcore.ColorYellow
	case ShapeT:
		return platformcore.ColorMagenta
	case ShapeS:
		return platformcore.ColorGreen
	case ShapeZ:
		return platformcore.ColorRed
	case ShapeJ:
		return platformcore.ColorBlue
	case ShapeL:
		return platformcore.ColorOrange
	default:
		return platformcore.ColorDefault
	}
}

// ParseShape converts a letter (case-insensitive) to a Shape.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Offset is a (row, col) displacement relative to a piece anchor.
type Offset struct {
	Row, Col int
}

// Layout is one rotation state: exactly four block offsets.
type Layout [4]Offset

// catalog holds the rotation states of each shape in rotation order.
// The offsets are load-bearing for rotation behavior; do not re-center them.
var catalog = map[Shape][]Layout{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	ShapeO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	ShapeT: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
	},
	ShapeS: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	ShapeZ: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	ShapeJ: {
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	ShapeL: {
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Layouts returns the rotation states for a shape.
// The returned slice is a copy; modifying it does not affect the catalog.
func Layouts(s Shape) []Layout {
	src := catalog[s]
	out := make([]Layout, len(src))
	copy(out, src)
	return out
}

// LayoutCount returns the number of rotation states for a shape.
func LayoutCount(s Shape) int {
	return len(catalog[s])
}

// layoutAt returns a single rotation state without copying the slice.
func layoutAt(s Shape, rotation int) Layout {
	return catalog[s][rotation]
}
