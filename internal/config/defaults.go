package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:      480,
			Height:     320,
			SquareSize: 8,
		},
		Snake: SnakeParams{
			StartX:         250,
			StartY:         250,
			StartDirection: "right",
			MovementSpeed:  8,
			MaxLength:      100,
		},
		Food: FoodConfig{
			Margin: 8,
		},
		Scoring: ScoringConfig{
			Jump: 10,
		},
		Rules: RulesConfig{
			DieOnWall: false,
			TickRate:  25,
		},
		Bot: BotConfig{
			MemoryThreshold: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
