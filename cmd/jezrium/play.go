package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/platform/tui"
	"github.com/vovakirdan/jezrium/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive run",
	Long: `Start an interactive run of the asteroid scenario.

Controls:
  Space/F        - Fire the laser
  Enter          - Choose the highlighted option
  Arrows/Tab     - Move between options
  1-9            - Pick an option directly
  Ctrl+S         - Save a text screenshot to ~/.jezrium/screenshots
  ?              - Show all keys
  Q/Ctrl+C       - Quit

Pace options:
  slow   - Animations take 1.5x as long
  normal - Default timing
  fast   - Animations take half as long

Examples:
  jezrium play
  jezrium play --pace slow
  jezrium play --config ./classroom.yaml --log-file ./run.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, pace, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Get terminal size
	width, height := 100, 32 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(cfg, rc, tui.Options{
		Store:  store,
		Logger: logger,
		Pace:   string(pace),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running jezrium: %v\n", runErr)
		os.Exit(1)
	}
}
