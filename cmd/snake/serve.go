package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	serverCfg := tui.DefaultSSHServerConfig()
	if cfg.Server.Address != "" {
		serverCfg.Address = cfg.Server.Address
	}
	if cfg.Server.IdleTimeout > 0 {
		serverCfg.IdleTimeout = time.Duration(cfg.Server.IdleTimeout)
	}
	serverCfg.HostKeyPath = cfg.Server.HostKeyPath
	serverCfg.TickRate = cfg.TickRate
	serverCfg.Seed = cfg.Seed

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		serverCfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		serverCfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		serverCfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(serverCfg, tui.NewKeyMap(cfg.Keys), logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
