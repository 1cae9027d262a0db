package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a 640x480 window and play there.

Controls:
  Arrows/WASD   - Steer
  Space/Enter   - Start, or restart after game over
  Esc           - Stop the round
  Q             - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return window.Run(core.RuntimeConfig{
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	}, logger)
}
