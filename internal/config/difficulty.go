package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset.
// An empty string maps to the empty preset, which leaves a config untouched.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// The empty preset keeps whatever the loaded file says.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.TickRate = 15
		cfg.Rules.DieOnWall = false
	case DifficultyNormal:
		cfg.Rules.TickRate = 25
		cfg.Rules.DieOnWall = false
	case DifficultyHard:
		cfg.Rules.TickRate = 30
		cfg.Rules.DieOnWall = true
	}
}
