package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults differ from DefaultSnakeConfig():\n got  %+v\n want %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.BlockLag() != 1 {
		t.Errorf("BlockLag() = %d, expected 1", cfg.BlockLag())
	}
	if cfg.HistoryCapacity() != 100 {
		t.Errorf("HistoryCapacity() = %d, expected 100", cfg.HistoryCapacity())
	}
}

func TestLoadSnakeCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("rules:\n  die_on_wall: true\nscoring:\n  jump: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if !cfg.Rules.DieOnWall {
		t.Error("die_on_wall should be overridden to true")
	}
	if cfg.Scoring.Jump != 25 {
		t.Errorf("jump = %d, expected 25", cfg.Scoring.Jump)
	}
	// Untouched sections keep their defaults
	if cfg.Grid != DefaultSnakeConfig().Grid {
		t.Errorf("grid should keep defaults, got %+v", cfg.Grid)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadSnakeMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(path); err == nil {
		t.Fatal("expected parse error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{
			name:    "zero square size",
			mutate:  func(c *SnakeConfig) { c.Grid.SquareSize = 0 },
			wantErr: "square_size",
		},
		{
			name:    "speed does not divide square",
			mutate:  func(c *SnakeConfig) { c.Snake.MovementSpeed = 3 },
			wantErr: "must divide",
		},
		{
			name:    "margin larger than grid",
			mutate:  func(c *SnakeConfig) { c.Food.Margin = 400 },
			wantErr: "leaves no room",
		},
		{
			name:    "unknown direction",
			mutate:  func(c *SnakeConfig) { c.Snake.StartDirection = "sideways" },
			wantErr: "start_direction",
		},
		{
			name:    "start outside grid",
			mutate:  func(c *SnakeConfig) { c.Snake.StartX = 10000 },
			wantErr: "outside",
		},
		{
			name:    "zero max length",
			mutate:  func(c *SnakeConfig) { c.Snake.MaxLength = 0 },
			wantErr: "max_length",
		},
		{
			name:    "zero tick rate",
			mutate:  func(c *SnakeConfig) { c.Rules.TickRate = 0 },
			wantErr: "tick_rate",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.SquareSize = 0
	cfg.Rules.TickRate = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "square_size") || !strings.Contains(msg, "tick_rate") {
		t.Errorf("both problems should be reported, got %q", msg)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"nightmare", "fixed", "Hard"} {
		if _, err := ParsePreset(s); err == nil {
			t.Errorf("ParsePreset(%q) should be rejected", s)
		}
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyHard)
	if !cfg.Rules.DieOnWall || cfg.Rules.TickRate != 30 {
		t.Errorf("hard preset should enable walls at 30 tps, got %+v", cfg.Rules)
	}

	ApplySnakePreset(&cfg, DifficultyEasy)
	if cfg.Rules.DieOnWall || cfg.Rules.TickRate != 15 {
		t.Errorf("easy preset should wrap at 15 tps, got %+v", cfg.Rules)
	}

	before := cfg
	ApplySnakePreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should leave the config untouched")
	}
}
