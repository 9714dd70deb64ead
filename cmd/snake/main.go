// snake is a classic snake game for the terminal.
//
// Usage:
//
//	snake              - Play the game
//	snake config       - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--width/--height   - Field size, walls included
//	--tick <ms>        - Milliseconds between snake moves
//	--fps <rate>       - Frames per second for input and drawing
//	--seed <value>     - RNG seed for reproducible food placement
//	--log-file <path>  - Write logs to a file (the terminal is taken by the game)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagWidth   int
	flagHeight  int
	flagTickMS  int
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game. Steer the snake
with the arrow keys or WASD, eat food to grow, and avoid the walls and
your own tail. Filling the whole field wins the game.

Controls:
  Arrows/WASD  - Turn
  Enter/Space  - Start or restart
  Esc/Q        - Quit
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots

Config is read from --config, ~/.snake/config.yaml or ./configs/snake.yaml,
falling back to built-in defaults. Flags override the file.

Examples:
  snake
  snake --width 30 --height 20 --tick 80
  snake --seed 42 --log-file snake.log --debug
  snake config --default > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	Run:           runPlay,
	SilenceErrors: true, // main prints the error
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.IntVar(&flagWidth, "width", 0, "Field width in cells, walls included")
	flags.IntVar(&flagHeight, "height", 0, "Field height in cells, walls included")
	flags.IntVar(&flagTickMS, "tick", 0, "Milliseconds between snake moves")
	flags.IntVar(&flagFPS, "fps", 0, "Frames per second for input and drawing")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	// Validated once below, so flags can repair a bad file
	cfg, err := config.ReadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Field.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Field.Height = flagHeight
	}
	if flags.Changed("tick") {
		cfg.Timing.TickMS = flagTickMS
	}
	if flags.Changed("fps") {
		cfg.Timing.FPS = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
