package agent

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	tetris "github.com/vovakirdan/autotetris/internal/games/tetris/core"
)

// newBoard returns an empty 20x10 board whose active piece is shape at spawn.
func newBoard(t *testing.T, shape tetris.Shape) *tetris.Board {
	t.Helper()
	b := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols, rand.New(rand.NewSource(1)))
	stage(b, shape)
	return b
}

func stage(b *tetris.Board, shape tetris.Shape) {
	p := tetris.NewPiece(shape)
	p.Anchor = tetris.DefaultSpawn
	b.SetActive(p)
}

func fillRow(b *tetris.Board, row int, cols ...int) {
	for _, c := range cols {
		b.Fill(row, c)
	}
}

func TestPlanTieBreak(t *testing.T) {
	tests := []struct {
		desc  string
		shape tetris.Shape
		want  Placement
	}{
		{
			desc:  "O has one rotation and ties everywhere, lowest column wins",
			shape: tetris.ShapeO,
			want:  Placement{Rotation: 0, Col: 0, Rest: tetris.Pos{Row: 18, Col: 0}, Score: 74},
		},
		{
			desc:  "T flat side down beats the other rotations",
			shape: tetris.ShapeT,
			want:  Placement{Rotation: 0, Col: 0, Rest: tetris.Pos{Row: 18, Col: 0}, Score: 75},
		},
		{
			desc:  "I horizontal rests on the floor",
			shape: tetris.ShapeI,
			want:  Placement{Rotation: 1, Col: 0, Rest: tetris.Pos{Row: 18, Col: 0}, Score: 76},
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			b := newBoard(t, test.shape)
			got, ok := New().Plan(b)
			if !ok {
				t.Fatal("Plan() found no placement on an empty board")
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Plan() mismatch(-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlanDoesNotMutate(t *testing.T) {
	b := newBoard(t, tetris.ShapeL)
	fillRow(b, 19, 0, 1, 2, 5, 6)
	before := b.Snapshot()

	New().Plan(b)
	New().Candidates(b)

	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("Plan() mutated the board (-before +after):\n%s", diff)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		b := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols, rand.New(rand.NewSource(int64(trial))))
		for r := 8; r < tetris.DefaultRows; r++ {
			for c := 0; c < tetris.DefaultCols; c++ {
				if rng.Intn(3) == 0 {
					b.Fill(r, c)
				}
			}
		}
		stage(b, tetris.Shapes[trial%len(tetris.Shapes)])

		seq := New(WithWorkers(1)).Candidates(b)
		par := New(WithWorkers(8)).Candidates(b)
		if diff := cmp.Diff(seq, par); diff != "" {
			t.Fatalf("trial %d: parallel candidates differ (-seq +par):\n%s", trial, diff)
		}

		p1, ok1 := New(WithWorkers(1)).Plan(b)
		p2, ok2 := New(WithWorkers(8)).Plan(b)
		if ok1 != ok2 || p1 != p2 {
			t.Fatalf("trial %d: Plan() differs: %+v/%v vs %+v/%v", trial, p1, ok1, p2, ok2)
		}
	}
}

func TestRankStable(t *testing.T) {
	in := []Placement{
		{Rotation: 0, Col: 0, Score: 5},
		{Rotation: 0, Col: 1, Score: 9},
		{Rotation: 1, Col: 0, Score: 9},
		{Rotation: 1, Col: 1, Score: 1},
	}
	want := []Placement{in[1], in[2], in[0], in[3]}
	if diff := cmp.Diff(want, Rank(in)); diff != "" {
		t.Errorf("Rank() mismatch(-want +got):\n%s", diff)
	}
}

func TestChooseAndCommitOPieceRestsOnFloor(t *testing.T) {
	b := newBoard(t, tetris.ShapeO)

	if !New().ChooseAndCommit(b) {
		t.Fatal("ChooseAndCommit() = false on an empty board")
	}

	if got := b.OccupiedCount(); got != 4 {
		t.Errorf("OccupiedCount() = %d, expected 4", got)
	}
	if b.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", b.Score())
	}
	for _, c := range []tetris.Pos{{Row: 18, Col: 0}, {Row: 18, Col: 1}, {Row: 19, Col: 0}, {Row: 19, Col: 1}} {
		if !b.Occupied(c.Row, c.Col) {
			t.Errorf("expected locked block at %+v", c)
		}
	}
	if b.Locks() != 1 {
		t.Errorf("Locks() = %d, expected 1", b.Locks())
	}
}

func TestSuccessiveTurnsClearLine(t *testing.T) {
	b := newBoard(t, tetris.ShapeO)
	fillRow(b, 19, 0, 1, 2, 3, 4, 5)
	a := New()

	// First O fills columns 6-7, second O fills 8-9 and completes row 19.
	for turn := 0; turn < 2; turn++ {
		if !a.ChooseAndCommit(b) {
			t.Fatalf("turn %d: ChooseAndCommit() = false", turn)
		}
		if turn == 0 {
			if b.Score() != 0 {
				t.Fatalf("line cleared too early, score = %d", b.Score())
			}
			stage(b, tetris.ShapeO)
		}
	}

	if b.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", b.Score())
	}
	if b.Rows() != tetris.DefaultRows {
		t.Errorf("Rows() = %d, expected %d", b.Rows(), tetris.DefaultRows)
	}
	// The two O tops drop into row 19; nothing else remains.
	if got := b.OccupiedCount(); got != 4 {
		t.Errorf("OccupiedCount() = %d, expected 4", got)
	}
	for c := 6; c < 10; c++ {
		if !b.Occupied(19, c) {
			t.Errorf("expected block at (19, %d) after the clear", c)
		}
	}
}

func TestChooseAndCommitGameOver(t *testing.T) {
	b := newBoard(t, tetris.ShapeT)
	for r := 0; r < 3; r++ {
		for c := 0; c < tetris.DefaultCols; c++ {
			b.Fill(r, c)
		}
	}
	before := b.Snapshot()

	if New().ChooseAndCommit(b) {
		t.Fatal("ChooseAndCommit() = true with the top rows filled")
	}
	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("board mutated on game over (-before +after):\n%s", diff)
	}
	if !b.IsGameOver() {
		t.Error("IsGameOver() = false, expected true")
	}
}

func TestBlockedPathFallsBack(t *testing.T) {
	b := newBoard(t, tetris.ShapeO)
	// A stub at column 2 blocks the walk from spawn column 4 to column 0.
	b.Fill(0, 2)
	b.Fill(1, 2)

	best, ok := New().Plan(b)
	if !ok || best.Col != 0 {
		t.Fatalf("Plan() = %+v, %v; expected column 0 to rank first", best, ok)
	}

	if !New().ChooseAndCommit(b) {
		t.Fatal("ChooseAndCommit() = false, expected fallback to a reachable column")
	}
	for _, c := range []tetris.Pos{{Row: 18, Col: 3}, {Row: 18, Col: 4}, {Row: 19, Col: 3}, {Row: 19, Col: 4}} {
		if !b.Occupied(c.Row, c.Col) {
			t.Errorf("expected fallback placement block at %+v", c)
		}
	}
	if got := b.OccupiedCount(); got != 6 {
		t.Errorf("OccupiedCount() = %d, expected 6", got)
	}
}

func TestPlayUntilGameOver(t *testing.T) {
	b := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols, rand.New(rand.NewSource(7)))
	a := New()

	turns := 0
	for a.ChooseAndCommit(b) {
		turns++
		if turns > 10000 {
			t.Fatal("game did not terminate")
		}
	}
	if turns == 0 {
		t.Error("expected at least one committed turn")
	}
	if b.Locks() != turns {
		t.Errorf("Locks() = %d, expected %d", b.Locks(), turns)
	}
}

func TestRandomEvaluatorDeterministic(t *testing.T) {
	b := newBoard(t, tetris.ShapeS)
	p := b.Active()
	pos := tetris.Pos{Row: 10, Col: 3}

	e1 := RandomEvaluator{Seed: 99}
	e2 := RandomEvaluator{Seed: 99}
	if e1.Evaluate(b, p, pos) != e2.Evaluate(b, p, pos) {
		t.Error("same seed should give the same score")
	}

	a1, _ := New(WithEvaluator(e1), WithWorkers(1)).Plan(b)
	a2, _ := New(WithEvaluator(e2), WithWorkers(4)).Plan(b)
	if a1 != a2 {
		t.Errorf("Plan() with equal seeds differs: %+v vs %+v", a1, a2)
	}
}

func TestLowestEvaluator(t *testing.T) {
	p := tetris.NewPiece(tetris.ShapeO)
	got := LowestEvaluator{}.Evaluate(nil, p, tetris.Pos{Row: 18, Col: 5})
	if got != 18+18+19+19 {
		t.Errorf("Evaluate() = %d, expected %d", got, 18+18+19+19)
	}
}
