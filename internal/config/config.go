// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake platform.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the Snake game.
// It is treated as immutable once handed to the engine.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Snake   SnakeParams   `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rules   RulesConfig   `yaml:"rules"`
	Bot     BotConfig     `yaml:"bot"`
}

// GridConfig defines the world dimensions and lattice.
type GridConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	SquareSize int `yaml:"square_size"`
}

// SnakeParams defines the starting pose and movement of the snake.
type SnakeParams struct {
	StartX         int    `yaml:"start_x"`
	StartY         int    `yaml:"start_y"`
	StartDirection string `yaml:"start_direction"`
	MovementSpeed  int    `yaml:"movement_speed"`
	MaxLength      int    `yaml:"max_length"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	Margin int `yaml:"margin"`
}

// ScoringConfig defines score progression.
type ScoringConfig struct {
	Jump int `yaml:"jump"`
}

// RulesConfig defines the wall policy and clock.
type RulesConfig struct {
	DieOnWall bool `yaml:"die_on_wall"`
	TickRate  int  `yaml:"tick_rate"`
}

// BotConfig tunes the automated policies.
type BotConfig struct {
	MemoryThreshold float64 `yaml:"memory_threshold"`
}

// BlockLag is the number of history slots between consecutive segments.
func (c SnakeConfig) BlockLag() int {
	if c.Snake.MovementSpeed <= 0 {
		return 0
	}
	return c.Grid.SquareSize / c.Snake.MovementSpeed
}

// HistoryCapacity is the number of past head positions retained.
func (c SnakeConfig) HistoryCapacity() int {
	return c.Snake.MaxLength * c.BlockLag()
}

var validDirections = map[string]bool{
	"right": true,
	"left":  true,
	"up":    true,
	"down":  true,
}

// Validate reports every misconfiguration found.
// A non-nil result is fatal: the game must not start.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.SquareSize <= 0 {
		errs = append(errs, fmt.Errorf("square_size must be positive, got %d", c.Grid.SquareSize))
	}
	if c.Snake.MovementSpeed <= 0 {
		errs = append(errs, fmt.Errorf("movement_speed must be positive, got %d", c.Snake.MovementSpeed))
	} else if c.Grid.SquareSize > 0 && c.Grid.SquareSize%c.Snake.MovementSpeed != 0 {
		errs = append(errs, fmt.Errorf("movement_speed %d must divide square_size %d",
			c.Snake.MovementSpeed, c.Grid.SquareSize))
	}
	if c.Snake.MaxLength < 1 {
		errs = append(errs, fmt.Errorf("max_length must be at least 1, got %d", c.Snake.MaxLength))
	}
	if !validDirections[c.Snake.StartDirection] {
		errs = append(errs, fmt.Errorf("unknown start_direction %q", c.Snake.StartDirection))
	}
	if c.Snake.StartX < 0 || c.Snake.StartX > c.Grid.Width ||
		c.Snake.StartY < 0 || c.Snake.StartY > c.Grid.Height {
		errs = append(errs, fmt.Errorf("start position (%d, %d) is outside the %dx%d grid",
			c.Snake.StartX, c.Snake.StartY, c.Grid.Width, c.Grid.Height))
	}
	if c.Food.Margin < 0 {
		errs = append(errs, fmt.Errorf("food margin must not be negative, got %d", c.Food.Margin))
	}
	if 2*c.Food.Margin >= c.Grid.Width || 2*c.Food.Margin >= c.Grid.Height {
		errs = append(errs, fmt.Errorf("food margin %d leaves no room on a %dx%d grid",
			c.Food.Margin, c.Grid.Width, c.Grid.Height))
	}
	if c.Scoring.Jump < 0 {
		errs = append(errs, fmt.Errorf("score jump must not be negative, got %d", c.Scoring.Jump))
	}
	if c.Rules.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Rules.TickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
