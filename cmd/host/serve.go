package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-host/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.breakout-host/host_key

Examples:
  host serve                           # Listen on :23234 with auto-generated key
  host serve --ssh :2222               # Listen on port 2222
  host serve --host-key ./my_host_key  # Use specific host key
  host serve --speed 450               # Every session plays at this speed

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	prepareGame(cmd, "breakout")
	prepareGame(cmd, "hello")

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("breakout-ssh"))
	if err != nil {
		fatal.Abort("cannot create server", err)
	}

	logger.Info("connect with ssh", "command", "ssh localhost -p <port>", "address", server.Addr())
	if err := server.ListenAndServe(); err != nil {
		fatal.Abort("server stopped", err)
	}
}
