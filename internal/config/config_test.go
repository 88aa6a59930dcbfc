package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if diff := cmp.Diff(DefaultTetrisConfig(), cfg); diff != "" {
		t.Errorf("embedded config differs from default (-want +got):\n%s", diff)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "agent:\n  evaluator: random\n  workers: 2\npacing:\n  turn_delay: 250ms\n")

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	want := DefaultTetrisConfig()
	want.Agent = AgentConfig{Evaluator: "random", Workers: 2}
	want.Pacing.TurnDelay = 250 * time.Millisecond
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [\n")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  rows: 0\n")

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected ErrNotExist", err)
	}
	if _, err := LoadTetris(bad); err == nil {
		t.Error("malformed file expected error")
	}
	if _, err := LoadTetris(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid file error = %v, expected ErrInvalid", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".autotetris", "configs", "tetris.yaml"), "board:\n  rows: 12\n  cols: 8\n  spawn_col: 3\n")

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Board != (BoardConfig{Rows: 12, Cols: 8, SpawnRow: 0, SpawnCol: 3}) {
		t.Errorf("Board = %+v", cfg.Board)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".autotetris", "configs", "tetris.yaml"), "board:\n  spawn_col: 40\n")

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if diff := cmp.Diff(DefaultTetrisConfig(), cfg); diff != "" {
		t.Errorf("invalid user config was not skipped (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		ok     bool
	}{
		{"default", func(*TetrisConfig) {}, true},
		{"zero rows", func(c *TetrisConfig) { c.Board.Rows = 0 }, false},
		{"negative cols", func(c *TetrisConfig) { c.Board.Cols = -1 }, false},
		{"spawn right of board", func(c *TetrisConfig) { c.Board.SpawnCol = 10 }, false},
		{"spawn below board", func(c *TetrisConfig) { c.Board.SpawnRow = 20 }, false},
		{"negative workers", func(c *TetrisConfig) { c.Agent.Workers = -2 }, false},
		{"empty evaluator", func(c *TetrisConfig) { c.Agent.Evaluator = "" }, false},
		{"negative delay", func(c *TetrisConfig) { c.Pacing.TurnDelay = -time.Second }, false},
		{"zero delay", func(c *TetrisConfig) { c.Pacing.TurnDelay = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
