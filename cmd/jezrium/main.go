// jezrium is a terminal visualization of diminishing marginal utility:
// every laser shot at the asteroid costs one crystal and removes less
// threat than the one before.
//
// Usage:
//
//	jezrium play       - Start an interactive run (default)
//	jezrium serve      - Start SSH server for remote play
//	jezrium history    - Show recorded runs
//	jezrium table      - Print the shot table and both chart mappings
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible effects
//	--config <path>    - Load scenario config from a YAML file
//	--db <path>        - Set run journal path (default: ~/.jezrium/runs.db)
//	--log-file <path>  - Write session logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jezrium/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagDBPath  string
	flagLogFile string
	flagPace    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jezrium",
	Short: "Jezrium - marginal utility, one laser shot at a time",
	Long: `Jezrium is a terminal visualization of diminishing marginal utility.

An asteroid threatens the planet. Each shot costs one crystal and removes
less of the threat than the shot before. After the third shot you decide
whether to keep firing or to return early.

Available commands:
  play     - Start an interactive run (default)
  serve    - Start SSH server for remote play
  history  - View recorded runs
  table    - Print the shot table

Examples:
  jezrium
  jezrium play --pace slow
  jezrium serve --ssh :2222
  jezrium history --plain`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scenario config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jezrium/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "normal", "Animation pace: slow, normal, fast")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(tableCmd)
}

// loadScenario reads the scenario config and applies the pace preset.
func loadScenario() (config.JezriumConfig, config.PacePreset, error) {
	if flagFPS <= 0 {
		return config.JezriumConfig{}, "", fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	pace, err := config.ParsePace(flagPace)
	if err != nil {
		return config.JezriumConfig{}, "", err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPacePreset(&cfg, pace)

	if err := cfg.Validate(); err != nil {
		return cfg, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, pace, nil
}

// openLogger returns a logger writing to --log-file, or one that discards
// everything. The terminal is never a log target while the alt screen is up.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "jezrium",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
