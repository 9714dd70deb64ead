package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: SnakeField{
			Width:  20,
			Height: 20,
		},
		Timing: SnakeTiming{
			TickMS: 100,
			FPS:    60,
		},
		Palette: SnakePalette{
			Empty: "light-gray",
			Wall:  "black",
			Body:  "magenta",
			Head:  "blue",
			Food:  "red",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
