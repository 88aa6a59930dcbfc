// Package agent implements the autonomous placement agent. Each turn it
// searches every (rotation, column) placement for the active piece, picks
// the best by its evaluator and plays it out on the board.
package agent

import (
	"io"
	"runtime"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/autotetris/internal/core"
	tetris "github.com/vovakirdan/autotetris/internal/games/tetris/core"
	"github.com/vovakirdan/autotetris/internal/registry"
)

// Placement is a candidate resting spot for the active piece.
type Placement struct {
	Rotation int
	Col      int
	Rest     tetris.Pos // Anchor after the simulated hard drop
	Score    int
}

// Agent chooses and commits one placement per turn. It holds no board
// state between turns.
type Agent struct {
	eval    registry.Evaluator
	workers int
	logger  *log.Logger
}

// Option configures an Agent.
type Option func(*Agent)

// WithEvaluator sets the scoring heuristic. Defaults to LowestEvaluator.
func WithEvaluator(e registry.Evaluator) Option {
	return func(a *Agent) {
		a.eval = e
	}
}

// WithWorkers bounds the number of concurrent candidate evaluations.
// Values below 1 select GOMAXPROCS; 1 scores candidates sequentially.
func WithWorkers(n int) Option {
	return func(a *Agent) {
		a.workers = n
	}
}

// WithLogger routes decision logs to l.
func WithLogger(l *log.Logger) Option {
	return func(a *Agent) {
		a.logger = l
	}
}

// New creates an agent.
func New(opts ...Option) *Agent {
	a := &Agent{
		eval:   LowestEvaluator{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.workers < 1 {
		a.workers = runtime.GOMAXPROCS(0)
	}
	return a
}

// Evaluator returns the heuristic in use.
func (a *Agent) Evaluator() registry.Evaluator {
	return a.eval
}

// Candidates returns every valid resting placement for the board's active
// piece, in (rotation, column) order. The board is only read.
func (a *Agent) Candidates(b *tetris.Board) []Placement {
	active := b.Active()
	rotations := active.LayoutCount()
	cols := b.Cols()

	// Each slot is written by exactly one worker; ok marks a valid rest.
	slots := make([]Placement, rotations*cols)
	ok := make([]bool, rotations*cols)

	score := func(idx int) {
		rot, col := idx/cols, idx%cols
		p, valid := a.simulate(b, active, rot, col)
		slots[idx] = p
		ok[idx] = valid
	}

	if a.workers == 1 {
		for idx := range slots {
			score(idx)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(a.workers)
		for idx := range slots {
			g.Go(func() error {
				score(idx)
				return nil
			})
		}
		//nolint:errcheck // Workers never fail
		g.Wait()
	}

	out := make([]Placement, 0, len(slots))
	for idx, p := range slots {
		if ok[idx] {
			out = append(out, p)
		}
	}
	return out
}

// simulate drops a trial copy of piece at (rotation, col) from row 0 and
// scores where it comes to rest.
func (a *Agent) simulate(b *tetris.Board, piece *tetris.Piece, rotation, col int) (Placement, bool) {
	trial := piece.Clone()
	trial.Rotation = rotation
	pos := tetris.Pos{Row: 0, Col: col}

	for b.IsValidPosition(trial, pos) {
		pos.Row++
	}
	pos.Row-- // last valid row

	if !b.IsValidPosition(trial, pos) {
		return Placement{}, false
	}
	return Placement{
		Rotation: rotation,
		Col:      col,
		Rest:     pos,
		Score:    a.eval.Evaluate(b, trial, pos),
	}, true
}

// Rank orders candidates best first. Equal scores keep (rotation, column)
// order, matching a strict greater-than scan.
func Rank(candidates []Placement) []Placement {
	ranked := make([]Placement, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Plan returns the best placement without touching the board.
func (a *Agent) Plan(b *tetris.Board) (Placement, bool) {
	var best Placement
	found := false
	for _, p := range a.Candidates(b) {
		if !found || p.Score > best.Score {
			best = p
			found = true
		}
	}
	return best, found
}

// ChooseAndCommit plays one turn. It returns false, leaving the board
// untouched, when no placement can be realized.
func (a *Agent) ChooseAndCommit(b *tetris.Board) bool {
	ranked := Rank(a.Candidates(b))
	if len(ranked) == 0 {
		a.logger.Debug("no valid placement", "shape", b.Active().Shape)
		return false
	}

	for i, p := range ranked {
		if !a.realize(b, p) {
			a.logger.Debug("placement blocked, trying next",
				"rank", i, "rotation", p.Rotation, "col", p.Col)
			continue
		}
		shape := b.Active().Shape
		cleared := b.Lock()
		a.logger.Debug("placed",
			"shape", shape,
			"rotation", p.Rotation,
			"col", p.Col,
			"row", p.Rest.Row,
			"score", p.Score,
			"cleared", cleared,
		)
		return true
	}

	a.logger.Debug("every placement blocked", "candidates", len(ranked))
	return false
}

// realize steers the active piece to p and drops it. On any blocked step the
// active piece is restored and false is returned.
func (a *Agent) realize(b *tetris.Board, p Placement) bool {
	saved := b.Active()
	fail := func() bool {
		b.SetActive(saved)
		return false
	}

	n := saved.LayoutCount()
	for range (p.Rotation - saved.Rotation + n) % n {
		if !b.Rotate() {
			return fail()
		}
	}

	delta := p.Col - saved.Anchor.Col
	dir := tetris.DirRight
	if delta < 0 {
		dir = tetris.DirLeft
	}
	for range core.Abs(delta) {
		if !b.Move(dir) {
			return fail()
		}
	}

	for b.Move(tetris.DirDown) {
	}
	return true
}
