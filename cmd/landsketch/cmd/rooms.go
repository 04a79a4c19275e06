package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LandSketchLab/landsketch/pkg/plan"
)

var roomsJSON bool

// roomInfo is the machine-readable shape of one detected room. The id is
// valid only for this detection pass; consumers must key on wall_ids.
type roomInfo struct {
	ID      string   `json:"id"`
	Floor   int      `json:"floor"`
	CenterX float64  `json:"center_x"`
	CenterZ float64  `json:"center_z"`
	Area    float64  `json:"area_m2"`
	WallIDs []string `json:"wall_ids"`
}

var roomsCmd = &cobra.Command{
	Use:   "rooms FILE",
	Short: "Detect rooms from the wall layout",
	Long: `Detect the rooms enclosed by the design's walls: per floor, connected
walls form closed loops, and every enclosed loop is one room.

Room ids are regenerated on every detection pass; anything that needs to
refer to a room across edits should use its set of bounding wall ids.

Examples:
  landsketch rooms lot.plan
  landsketch rooms design.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDesign(args[0])
		if err != nil {
			return err
		}
		rooms := plan.DetectRooms(d.Walls)

		if roomsJSON {
			infos := make([]roomInfo, len(rooms))
			for i, r := range rooms {
				infos[i] = roomInfo{
					ID:      r.ID,
					Floor:   r.FloorLevel,
					CenterX: r.Center.X,
					CenterZ: r.Center.Z,
					Area:    r.Area(),
					WallIDs: r.WallIDs,
				}
			}
			out, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if len(rooms) == 0 {
			fmt.Println("no enclosed rooms")
			return nil
		}
		for _, r := range rooms {
			fmt.Printf("floor %d: room at (%.2f, %.2f), %.2f m2, walls %v\n",
				r.FloorLevel, r.Center.X, r.Center.Z, r.Area(), r.WallIDs)
		}
		return nil
	},
}

func init() {
	roomsCmd.Flags().BoolVar(&roomsJSON, "json", false, "output rooms as JSON")
	rootCmd.AddCommand(roomsCmd)
}
