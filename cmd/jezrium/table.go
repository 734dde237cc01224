package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jezrium/internal/table"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the shot table and both chart mappings",
	Long: `Print every row of the shot table with the normalized chart
coordinates it is plotted at on the linear and the logarithmic chart.

Examples:
  jezrium table`,
	Args: cobra.NoArgs,
	Run:  runTable,
}

func runTable(_ *cobra.Command, _ []string) {
	fmt.Println("Shot Table")
	fmt.Println()

	fmt.Printf("  %-4s  %-7s  %-8s  %-8s  %-13s  %s\n", "Shot", "Threat", "Crystals", "Utility", "Linear (x,y)", "Log (x,y)")
	fmt.Printf("  %-4s  %-7s  %-8s  %-8s  %-13s  %s\n", "----", "------", "--------", "-------", "------------", "---------")

	for _, rec := range table.All() {
		utility := "-"
		if u, ok := rec.Utility(); ok {
			utility = fmt.Sprintf("%g", u)
		}
		lin := table.MustPoint(rec.Index, table.Linear)
		lg := table.MustPoint(rec.Index, table.Log)
		fmt.Printf("  %-4d  %-7s  %-8d  %-8s  %-13s  %s\n",
			rec.Index,
			fmt.Sprintf("%g%%", rec.ThreatPercent),
			rec.ResourceCount,
			utility,
			fmt.Sprintf("%.2f,%.3f", lin.X, lin.Y),
			fmt.Sprintf("%.2f,%.3f", lg.X, lg.Y),
		)
	}
}
