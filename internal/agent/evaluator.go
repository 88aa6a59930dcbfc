package agent

import (
	"github.com/vovakirdan/autotetris/internal/games/tetris/core"
	"github.com/vovakirdan/autotetris/internal/registry"
)

// Evaluator names known to the registry.
const (
	EvaluatorLowest = "lowest"
	EvaluatorRandom = "random"
)

func init() {
	registry.Register(EvaluatorLowest, "prefer placements that rest lowest (sum of block rows)",
		func(int64) registry.Evaluator { return LowestEvaluator{} })
	registry.Register(EvaluatorRandom, "seeded arbitrary scores, a baseline for comparisons",
		func(seed int64) registry.Evaluator { return RandomEvaluator{Seed: seed} })
}

// LowestEvaluator sums the absolute row of each block. It ignores holes,
// bumpiness and line clears.
type LowestEvaluator struct{}

// Name returns the registry identifier.
func (LowestEvaluator) Name() string { return EvaluatorLowest }

// Evaluate returns the row sum of the piece's cells at pos.
func (LowestEvaluator) Evaluate(_ *core.Board, piece *core.Piece, pos core.Pos) int {
	score := 0
	for _, c := range piece.CellsAt(pos) {
		score += c.Row
	}
	return score
}

// RandomEvaluator assigns each (rotation, position) a pseudo-random score
// derived from Seed. It keeps no mutable state, so it is safe to share
// across search workers and stays reproducible.
type RandomEvaluator struct {
	Seed int64
}

// Name returns the registry identifier.
func (RandomEvaluator) Name() string { return EvaluatorRandom }

// Evaluate hashes the placement into [0, 1<<16).
func (r RandomEvaluator) Evaluate(b *core.Board, piece *core.Piece, pos core.Pos) int {
	x := uint64(r.Seed)
	x = mix(x ^ uint64(piece.Shape))
	x = mix(x ^ uint64(piece.Rotation))
	x = mix(x ^ uint64(pos.Row))
	x = mix(x ^ uint64(pos.Col))
	x = mix(x ^ uint64(b.Locks()))
	return int(x & 0xFFFF)
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
