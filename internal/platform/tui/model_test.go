package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/autotetris/internal/core"
)

// fakeSim ends after a fixed number of turns.
type fakeSim struct {
	turns  int
	limit  int
	resets []core.RuntimeConfig
}

func (f *fakeSim) Reset(cfg core.RuntimeConfig) {
	f.resets = append(f.resets, cfg)
	f.turns = 0
}

func (f *fakeSim) Step() core.StepResult {
	if f.turns < f.limit {
		f.turns++
	}
	return core.StepResult{State: f.State()}
}

func (f *fakeSim) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "turn", core.ColorCyan)
}

func (f *fakeSim) State() core.GameState {
	return core.GameState{Turns: f.turns, GameOver: f.turns >= f.limit}
}

func newTestModel(limit int) (Model, *fakeSim) {
	sim := &fakeSim{limit: limit}
	cfg := core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TurnDelay: 5 * time.Millisecond, Seed: 7}
	return NewModel(sim, cfg), sim
}

func TestInitResetsSimulation(t *testing.T) {
	m, sim := newTestModel(3)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no tick command")
	}
	if len(sim.resets) != 1 || sim.resets[0].Seed != 7 {
		t.Errorf("resets = %+v", sim.resets)
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	m := NewModel(&fakeSim{}, core.RuntimeConfig{ScreenW: 10, ScreenH: 5})
	if m.config.Seed == 0 {
		t.Error("zero seed was not replaced")
	}
}

func TestTicksStopAtGameOver(t *testing.T) {
	m, sim := newTestModel(2)
	m.Init()

	var model tea.Model = m
	var cmd tea.Cmd
	for i := range 2 {
		model, cmd = model.Update(TickMsg(time.Now()))
		if i == 0 && cmd == nil {
			t.Fatal("tick before game over should schedule another")
		}
	}
	if cmd != nil {
		t.Error("tick at game over should not schedule another")
	}
	if !model.(Model).State().GameOver {
		t.Error("model did not observe game over")
	}

	model, cmd = model.Update(TickMsg(time.Now()))
	if cmd != nil || sim.turns != 2 {
		t.Errorf("extra tick after game over: turns=%d cmd=%v", sim.turns, cmd != nil)
	}
	if model.(Model).IsQuitting() {
		t.Error("game over should not quit the viewer")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		quit bool
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"other rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, false},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(5)
			model, cmd := m.Update(tc.msg)
			if got := model.(Model).IsQuitting(); got != tc.quit {
				t.Errorf("IsQuitting() = %v, expected %v", got, tc.quit)
			}
			if tc.quit && cmd == nil {
				t.Error("quit key should return tea.Quit")
			}
			if !tc.quit && cmd != nil {
				t.Error("non-quit key should be ignored")
			}
		})
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m, sim := newTestModel(5)
	m.Init()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})

	if len(sim.resets) != 1 {
		t.Errorf("resize reset the game %d times", len(sim.resets)-1)
	}
	mm := model.(Model)
	if mm.screen.Width() != 50 || mm.screen.Height() != 20-helpHeight {
		t.Errorf("screen = %dx%d", mm.screen.Width(), mm.screen.Height())
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(5)
	view := m.View()
	if !strings.Contains(view, "turn") {
		t.Errorf("view missing simulation output:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("view missing help footer:\n%s", view)
	}

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := model.View(); got != "" {
		t.Errorf("View() after quit = %q, expected empty", got)
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawTextColored(0, 1, "x", core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
