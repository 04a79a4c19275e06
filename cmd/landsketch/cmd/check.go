package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LandSketchLab/landsketch/pkg/geom"
	"github.com/LandSketchLab/landsketch/pkg/plan"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a design file",
	Long: `Validate a design: the boundary polygon must have at least 3 vertices
and no crossing edges, every floor's walls must form closed runs with no
dangling endpoints, and every declared placement must sit inside the
boundary with its required setback clearance.

Exit status is 1 when any check fails, so check is usable in scripts and
CI pipelines.

Examples:
  landsketch check lot.plan
  landsketch check design.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDesign(args[0])
		if err != nil {
			return err
		}

		failures := 0
		report := func(ok bool, format string, a ...any) {
			status := "ok"
			if !ok {
				status = "FAIL"
				failures++
			}
			fmt.Printf("%-4s %s\n", status, fmt.Sprintf(format, a...))
		}

		report(len(d.Boundary) >= 3, "boundary has %d vertices", len(d.Boundary))
		report(!d.Boundary.SelfIntersects(), "boundary edges do not cross")

		for _, floor := range d.Floors() {
			walls := d.WallsOnFloor(floor)
			if verbose {
				fmt.Printf("     floor %d: %d walls\n", floor, len(walls))
			}
			for _, w := range walls {
				report(w.Length() > 0, "wall %s has nonzero length", w.ID)
			}
			open := openEndpoints(walls)
			report(len(open) == 0, "floor %d wall runs are closed (%d open endpoint(s))",
				floor, len(open))
			if verbose {
				for _, p := range open {
					fmt.Printf("     open endpoint at (%g, %g)\n", p.X, p.Z)
				}
			}
		}

		for _, p := range d.Placements {
			report(p.Valid(d.Boundary),
				"placement %s (%gx%g at %g,%g rot %g setback %g)",
				p.Name, p.Width, p.Length, p.Center.X, p.Center.Z, p.Rotation, p.Setback)
		}

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		fmt.Println("all checks passed")
		return nil
	},
}

// openEndpoints returns the endpoints of one floor's walls that join no
// other wall on that floor within the junction tolerance. An open endpoint
// means the run cannot close into a room there. Fences are free-standing
// and exempt.
func openEndpoints(walls []plan.Wall) []geom.Point {
	var open []geom.Point
	for i, w := range walls {
		if w.IsFence {
			continue
		}
		for _, p := range [2]geom.Point{w.Start, w.End} {
			joined := false
			for j, o := range walls {
				if j == i || o.IsFence {
					continue
				}
				if p.Near(o.Start, plan.ConnectTolerance) || p.Near(o.End, plan.ConnectTolerance) {
					joined = true
					break
				}
			}
			if !joined {
				open = append(open, p)
			}
		}
	}
	return open
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
