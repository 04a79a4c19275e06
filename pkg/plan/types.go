package plan

import (
	"sort"

	"github.com/google/uuid"

	"github.com/LandSketchLab/landsketch/pkg/geom"
	"github.com/LandSketchLab/landsketch/pkg/place"
)

// Wall construction defaults, applied when a source (the .plan format, a
// drawing tool) does not specify them.
const (
	DefaultWallHeight    = 2.5  // meters
	DefaultWallThickness = 0.15 // meters
)

// OpeningType distinguishes doors from windows.
type OpeningType string

const (
	OpeningDoor   OpeningType = "door"
	OpeningWindow OpeningType = "window"
)

// Opening is a door or window cut into a wall. Position is the distance in
// meters along the wall from its start point to the opening's center.
type Opening struct {
	ID         string      `json:"id"`
	Type       OpeningType `json:"type"`
	Position   float64     `json:"position"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	SillHeight float64     `json:"sillHeight,omitempty"`
}

// Wall is one straight wall segment. Walls on the same floor whose
// endpoints coincide (within ConnectTolerance) are treated as joined for
// room detection. A fence participates in the design but never bounds a
// room.
type Wall struct {
	ID         string     `json:"id"`
	Start      geom.Point `json:"start"`
	End        geom.Point `json:"end"`
	Height     float64    `json:"height"`
	Thickness  float64    `json:"thickness"`
	Openings   []Opening  `json:"openings"`
	FloorLevel int        `json:"floorLevel,omitempty"`
	IsFence    bool       `json:"isFence,omitempty"`
}

// NewWall returns a wall with a fresh id and default height/thickness.
func NewWall(start, end geom.Point, floor int) Wall {
	return Wall{
		ID:         uuid.NewString(),
		Start:      start,
		End:        end,
		Height:     DefaultWallHeight,
		Thickness:  DefaultWallThickness,
		Openings:   []Opening{},
		FloorLevel: floor,
	}
}

// Length returns the wall's run in meters.
func (w Wall) Length() float64 {
	return w.Start.DistanceTo(w.End)
}

// Clone returns a wall whose openings slice does not alias the original.
func (w Wall) Clone() Wall {
	c := w
	c.Openings = append([]Opening(nil), w.Openings...)
	return c
}

// Placement is a declared structure footprint to validate against the
// boundary with its own setback requirement.
type Placement struct {
	Name     string     `json:"name"`
	Center   geom.Point `json:"center"`
	Width    float64    `json:"width"`
	Length   float64    `json:"length"`
	Rotation float64    `json:"rotation,omitempty"`
	Setback  float64    `json:"setback,omitempty"`
}

// Footprint converts the placement into its geometric footprint.
func (p Placement) Footprint() place.Footprint {
	return place.Footprint{
		Center:   p.Center,
		Width:    p.Width,
		Length:   p.Length,
		Rotation: p.Rotation,
	}
}

// Valid reports whether the placement respects the boundary and its own
// setback.
func (p Placement) Valid(boundary geom.Polygon) bool {
	return p.Footprint().Valid(boundary, p.Setback)
}

// Design is the serializable aggregate of one editing session: the land
// boundary, the wall collection across all floors, and any declared
// placements.
type Design struct {
	Name       string       `json:"name,omitempty"`
	Boundary   geom.Polygon `json:"boundary"`
	Walls      []Wall       `json:"walls"`
	Placements []Placement  `json:"placements,omitempty"`
}

// Clone returns a deep copy safe to mutate independently, for preparing
// the next snapshot to commit.
func (d Design) Clone() Design {
	c := d
	c.Boundary = append(geom.Polygon(nil), d.Boundary...)
	c.Walls = make([]Wall, len(d.Walls))
	for i, w := range d.Walls {
		c.Walls[i] = w.Clone()
	}
	c.Placements = append([]Placement(nil), d.Placements...)
	return c
}

// Floors returns the distinct floor levels that have walls, ascending.
func (d Design) Floors() []int {
	seen := map[int]bool{}
	var floors []int
	for _, w := range d.Walls {
		if !seen[w.FloorLevel] {
			seen[w.FloorLevel] = true
			floors = append(floors, w.FloorLevel)
		}
	}
	sort.Ints(floors)
	return floors
}

// WallsOnFloor returns the walls at the given floor level.
func (d Design) WallsOnFloor(level int) []Wall {
	var out []Wall
	for _, w := range d.Walls {
		if w.FloorLevel == level {
			out = append(out, w)
		}
	}
	return out
}
