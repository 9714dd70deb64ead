// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Field size limits. The smallest field still fits the three-segment
// starting snake plus one food cell inside the walls.
const (
	MinFieldSize = 5
	MaxFieldSize = 200
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Field   SnakeField   `yaml:"field"`
	Timing  SnakeTiming  `yaml:"timing"`
	Palette SnakePalette `yaml:"palette"`
}

// SnakeField defines the grid dimensions, walls included.
type SnakeField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming defines simulation and frame rates.
type SnakeTiming struct {
	TickMS int `yaml:"tick_ms"` // Milliseconds between movement steps
	FPS    int `yaml:"fps"`     // Frames per second for input and drawing
}

// TickInterval returns the movement step interval.
func (t SnakeTiming) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// SnakePalette names the color of each cell kind.
type SnakePalette struct {
	Empty string `yaml:"empty"`
	Wall  string `yaml:"wall"`
	Body  string `yaml:"body"`
	Head  string `yaml:"head"`
	Food  string `yaml:"food"`
}

// Palette is a SnakePalette with its names resolved to colors.
type Palette struct {
	Empty core.Color
	Wall  core.Color
	Body  core.Color
	Head  core.Color
	Food  core.Color
}

// Resolve converts the palette's color names.
func (p SnakePalette) Resolve() (Palette, error) {
	var out Palette
	var errs []error

	resolve := func(field, name string, dst *core.Color) {
		c, err := core.ParseColor(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", field, err))
			return
		}
		*dst = c
	}
	resolve("empty", p.Empty, &out.Empty)
	resolve("wall", p.Wall, &out.Wall)
	resolve("body", p.Body, &out.Body)
	resolve("head", p.Head, &out.Head)
	resolve("food", p.Food, &out.Food)

	return out, errors.Join(errs...)
}

// Validate reports every invalid setting in the config.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Field.Width < MinFieldSize || c.Field.Width > MaxFieldSize {
		errs = append(errs, fmt.Errorf("field.width must be in [%d, %d], got %d", MinFieldSize, MaxFieldSize, c.Field.Width))
	}
	if c.Field.Height < MinFieldSize || c.Field.Height > MaxFieldSize {
		errs = append(errs, fmt.Errorf("field.height must be in [%d, %d], got %d", MinFieldSize, MaxFieldSize, c.Field.Height))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fps must be positive, got %d", c.Timing.FPS))
	}
	if _, err := c.Palette.Resolve(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}
