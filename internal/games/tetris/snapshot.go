package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/autotetris/internal/games/tetris/core"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Seed     int64
	Turns    int
	GameOver bool
	Board    core.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Seed:     g.seed,
		Turns:    g.turns,
		GameOver: g.gameOver,
		Board:    g.board.Snapshot(),
	}
}

// Summary is the end-of-run report.
type Summary struct {
	Seed   int64
	Turns  int
	Lines  int
	Placed map[core.Shape]int
	Clears [maxClear + 1]int // Clears[n] = locks that cleared n lines
}

// Summary reports turn, line and piece counts so far.
func (g *Game) Summary() Summary {
	return Summary{
		Seed:   g.seed,
		Turns:  g.turns,
		Lines:  g.board.Score(),
		Placed: g.board.Placed(),
		Clears: g.clears,
	}
}

// String formats the summary for terminal output.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Turns: %d\n", s.Turns)
	fmt.Fprintf(&sb, "Lines: %d (single %d, double %d, triple %d, tetris %d)\n",
		s.Lines, s.Clears[1], s.Clears[2], s.Clears[3], s.Clears[4])

	parts := make([]string, 0, len(core.Shapes))
	for _, shape := range core.Shapes {
		parts = append(parts, fmt.Sprintf("%s:%d", shape, s.Placed[shape]))
	}
	fmt.Fprintf(&sb, "Pieces: %s\n", strings.Join(parts, " "))
	fmt.Fprintf(&sb, "Seed: %d", s.Seed)
	return sb.String()
}
