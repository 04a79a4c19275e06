package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Show boundary and wall totals",
	Long: `Show summary quantities of a design: boundary area, perimeter and
vertex count, plus wall and floor totals.

Examples:
  landsketch info lot.plan`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDesign(args[0])
		if err != nil {
			return err
		}

		if d.Name != "" {
			fmt.Printf("design:    %s\n", d.Name)
		}
		fmt.Printf("boundary:  %d vertices, valid=%v\n", len(d.Boundary), d.Boundary.Valid())
		fmt.Printf("area:      %.2f m2\n", d.Boundary.Area())
		fmt.Printf("perimeter: %.2f m\n", d.Boundary.Perimeter())

		floors := d.Floors()
		fmt.Printf("walls:     %d across %d floor(s)\n", len(d.Walls), len(floors))
		if verbose {
			for _, floor := range floors {
				walls := d.WallsOnFloor(floor)
				var run float64
				openings := 0
				for _, w := range walls {
					run += w.Length()
					openings += len(w.Openings)
				}
				fmt.Printf("  floor %d: %d walls, %.2f m total run, %d opening(s)\n",
					floor, len(walls), run, openings)
			}
		}
		fmt.Printf("placements: %d\n", len(d.Placements))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
