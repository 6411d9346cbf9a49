package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "snake.yaml"

// LoadSnake loads the game rules.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
// Only a custom path is required to exist and parse; the other locations are
// skipped when missing or broken.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodeSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

func loadFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := decodeSnake(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".snake", "configs", configFile))
	}
	return append(paths, filepath.Join("configs", configFile))
}

func decodeSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
