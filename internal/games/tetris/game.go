// Package tetris hosts one autonomous run: a board, the placement agent
// driving it, and the turn bookkeeping the CLI and spectator views need.
package tetris

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autotetris/internal/agent"
	"github.com/vovakirdan/autotetris/internal/config"
	platformcore "github.com/vovakirdan/autotetris/internal/core"
	"github.com/vovakirdan/autotetris/internal/games/tetris/core"
	"github.com/vovakirdan/autotetris/internal/games/tetris/presets"
	"github.com/vovakirdan/autotetris/internal/registry"
)

const (
	cellW     = 2 // Terminal columns per board cell
	hudHeight = 2 // Lines under the board
	maxClear  = 4 // A piece spans at most four rows
)

// Game runs the agent against a single board, one turn per Step.
type Game struct {
	cfg    config.TetrisConfig
	preset *presets.Preset
	logger *log.Logger

	board *core.Board
	agent *agent.Agent
	seed  int64

	turns    int
	clears   [maxClear + 1]int // Locks by number of lines they cleared
	gameOver bool
}

// Option configures a Game.
type Option func(*Game)

// WithPreset starts every run from p instead of an empty board.
func WithPreset(p *presets.Preset) Option {
	return func(g *Game) {
		g.preset = p
	}
}

// WithLogger routes game and agent logs to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New validates cfg and creates a game. Call Reset before stepping.
func New(cfg config.TetrisConfig, opts ...Option) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !registry.Exists(cfg.Agent.Evaluator) {
		return nil, fmt.Errorf("tetris: unknown evaluator %q", cfg.Agent.Evaluator)
	}
	rows, cols := g.dims()
	if cfg.Board.SpawnRow >= rows || cfg.Board.SpawnCol >= cols {
		return nil, fmt.Errorf("tetris: spawn (%d,%d) outside %dx%d preset board",
			cfg.Board.SpawnRow, cfg.Board.SpawnCol, rows, cols)
	}
	return g, nil
}

// dims returns the board size, letting a preset override the config.
func (g *Game) dims() (rows, cols int) {
	if g.preset != nil {
		return g.preset.Rows, g.preset.Cols
	}
	return g.cfg.Board.Rows, g.cfg.Board.Cols
}

// Reset starts a fresh run seeded from rc.Seed.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.seed = rc.Seed
	g.turns = 0
	g.clears = [maxClear + 1]int{}
	g.gameOver = false

	rng := rand.New(rand.NewSource(rc.Seed))
	spawn := core.WithSpawn(core.Pos{Row: g.cfg.Board.SpawnRow, Col: g.cfg.Board.SpawnCol})
	if g.preset != nil {
		g.board = g.preset.NewBoard(rng, spawn)
	} else {
		g.board = core.NewBoard(g.cfg.Board.Rows, g.cfg.Board.Cols, rng, spawn)
	}

	// The name was checked in New.
	eval, _ := registry.Create(g.cfg.Agent.Evaluator, rc.Seed)
	g.agent = agent.New(
		agent.WithEvaluator(eval),
		agent.WithWorkers(g.cfg.Agent.Workers),
		agent.WithLogger(g.logger),
	)

	g.logger.Debug("game reset",
		"seed", rc.Seed,
		"rows", g.board.Rows(),
		"cols", g.board.Cols(),
		"evaluator", eval.Name(),
	)
}

// Step plays one agent turn. The run ends when the agent finds no
// placement or the piece spawned after a lock already overlaps the stack.
func (g *Game) Step() platformcore.StepResult {
	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	before := g.board.Score()
	if !g.agent.ChooseAndCommit(g.board) {
		g.finish("no placement")
		return platformcore.StepResult{State: g.State()}
	}

	g.turns++
	cleared := g.board.Score() - before
	g.clears[platformcore.Min(cleared, maxClear)]++

	if g.board.IsGameOver() {
		g.finish("spawn blocked")
	}
	return platformcore.StepResult{State: g.State(), Cleared: cleared}
}

func (g *Game) finish(reason string) {
	g.gameOver = true
	s := g.Summary()
	g.logger.Info("game over",
		"reason", reason,
		"turns", s.Turns,
		"lines", s.Lines,
	)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.board.Score(),
		Turns:    g.turns,
		GameOver: g.gameOver,
	}
}

// Board exposes the live board for inspection.
func (g *Game) Board() *core.Board {
	return g.board
}

// Evaluator returns the name of the evaluator driving the agent.
func (g *Game) Evaluator() string {
	return g.agent.Evaluator().Name()
}

// Frame renders the board the plain way: one glyph per cell, blank for
// empty, followed by the score line.
func (g *Game) Frame() string {
	var sb strings.Builder
	for _, row := range g.board.RenderSnapshot() {
		for _, filled := range row {
			if filled {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Score: %d\n", g.board.Score())
	return sb.String()
}

// Render draws the boxed board, the HUD and any overlay to dst.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	boxW := g.board.Cols()*cellW + 2
	boxH := g.board.Rows() + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	area := dst.Bounds().Centered(boxW, boxH+hudHeight)
	box := platformcore.NewRect(area.X, area.Y, boxW, boxH)
	dst.DrawBox(box, platformcore.ColorGray)

	cell := func(r, c int, color platformcore.Color) {
		x := box.X + 1 + c*cellW
		y := box.Y + 1 + r
		for i := range cellW {
			dst.SetColored(x+i, y, '█', color)
		}
	}

	for r := range g.board.Rows() {
		for c := range g.board.Cols() {
			if g.board.Occupied(r, c) {
				cell(r, c, platformcore.ColorWhite)
			}
		}
	}
	active := g.board.Active()
	for _, p := range active.Cells() {
		if p.Row >= 0 && p.Row < g.board.Rows() && p.Col >= 0 && p.Col < g.board.Cols() {
			cell(p.Row, p.Col, active.Shape.Color())
		}
	}

	dst.DrawText(box.X, box.Bottom(), fmt.Sprintf("Score: %d", g.board.Score()))
	dst.DrawTextColored(box.X, box.Bottom()+1,
		fmt.Sprintf("Turn %d · %s", g.turns, g.Evaluator()), platformcore.ColorGray)

	if g.gameOver {
		msg := " Game Over! "
		dst.DrawTextColored(box.X+(boxW-len(msg))/2, box.Y+boxH/2, msg, platformcore.ColorRed)
	}
}
