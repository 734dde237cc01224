package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jezrium/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the jezrium SSH server",
	Long: `Start an SSH server that lets users connect and play a run.

Each SSH connection gets its own isolated run. Finished runs of every
user go to the same journal.

Environment:
  JEZRIUM_SSH_HOST   - Listen host (default: all interfaces)
  JEZRIUM_SSH_PORT   - Listen port (default: 23234)
  JEZRIUM_HOST_KEY   - Host key path

Host key handling:
  - If --host-key or JEZRIUM_HOST_KEY is set, uses that key file
  - Otherwise, auto-generates a key at ~/.jezrium/host_key

Examples:
  jezrium serve                           # Listen on :23234 with auto-generated key
  jezrium serve --ssh :2222               # Listen on port 2222
  jezrium serve --host-key ./my_host_key  # Use specific host key
  jezrium serve --pace slow               # Slow animations for every session

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", defaults.HostKeyPath, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	game, pace, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = game
	cfg.TickRate = flagFPS
	cfg.Pace = string(pace)

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting jezrium SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
