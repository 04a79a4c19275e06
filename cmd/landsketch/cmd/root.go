package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "landsketch",
	Short: "landsketch - land boundary and floor plan tools",
	Long: `landsketch validates and inspects land-visualizer designs:
  - boundary polygon validity (self-intersection, area, perimeter)
  - room detection from wall layouts
  - setback-compliant structure placement

Examples:
  landsketch check lot.plan            # Validate a design
  landsketch info lot.plan             # Boundary area and totals
  landsketch rooms lot.json --json     # Detected rooms as JSON
  landsketch place lot.plan --size 4x4 --at 5,5 --setback 1
  landsketch convert lot.plan --out lot.json`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
