package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := runtimeConfig(cfg, flagSeed, int(os.Stdout.Fd()))

	session, err := snake.NewSession(cfg, rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting snake",
		"field", fmt.Sprintf("%dx%d", cfg.Field.Width, cfg.Field.Height),
		"tick", cfg.Timing.TickInterval(),
		"seed", rc.Seed,
	)

	runErr := tui.Run(session, rc, logger)

	// Close the log before potential exit
	//nolint:errcheck // Best-effort close, nothing left to report to
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the loop settings for a session. The terminal size
// falls back to the defaults when fd is not a terminal.
func runtimeConfig(cfg config.SnakeConfig, seed int64, fd int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = cfg.Timing.FPS
	rc.Seed = seed

	// Get terminal size early so the first frame has the right layout
	if w, h, err := term.GetSize(fd); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}
