package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jezrium/internal/platform/tui"
	"github.com/vovakirdan/jezrium/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the runs recorded in the journal: the choice made at each
decision point, how many times the time portal was used and how long the
run took.

Examples:
  jezrium history
  jezrium history --plain --limit 5
  jezrium history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text instead of the interactive table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if !flagPlain {
		width, height := 100, 32
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish a run with 'jezrium play' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-28s  %-5s  %s\n", "Date", "Player", "Choices", "Loops", "Time")
	fmt.Printf("  %-16s  %-10s  %-28s  %-5s  %s\n", "----", "------", "-------", "-----", "----")

	for _, r := range runs {
		row := tui.RunRow(r)
		fmt.Printf("  %-16s  %-10s  %-28s  %-5s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), row[1], row[2], row[3], row[4])
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Println(tui.StatsLine(stats))
	}
}
