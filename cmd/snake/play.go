package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  Space/Enter       - Start, or restart after game over
  Esc/P             - Stop the round
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file is set, since the game owns the terminal.

Examples:
  snake play
  snake play --seed 42
  snake play --log-file ./snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	}

	logger.Debug("starting terminal game", "width", width, "height", height, "tick_rate", cfg.TickRate)
	return tui.Run(runtime, tui.NewKeyMap(cfg.Keys), logger)
}
