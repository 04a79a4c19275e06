// Package place validates structure placement against a land boundary:
// may a rotated rectangular footprint sit here, given a minimum setback
// from every boundary edge?
//
// Validation samples the footprint at its 4 corners and 4 edge midpoints
// rather than performing exact polygon-polygon containment. Eight samples
// are enough for interactive feedback on parcel-scale footprints, and keep
// the check O(boundary vertices) so it can run on every pointer move. Exact
// tangency at corners is deliberately out of scope.
package place

import (
	"math"

	"github.com/LandSketchLab/landsketch/pkg/geom"
)

// Footprint is the ground-plan outline of a placeable structure: an axis
// rectangle of Width (X) by Length (Z) centered on Center, rotated by
// Rotation degrees counterclockwise.
type Footprint struct {
	Center   geom.Point
	Width    float64
	Length   float64
	Rotation float64 // degrees
}

// TestPoints returns the 8 sample points of the footprint: corners first,
// then edge midpoints, all rotated about the center.
func (f Footprint) TestPoints() []geom.Point {
	hw := f.Width / 2
	hl := f.Length / 2

	local := []geom.Point{
		{X: -hw, Z: -hl}, // corners
		{X: hw, Z: -hl},
		{X: hw, Z: hl},
		{X: -hw, Z: hl},
		{X: 0, Z: -hl}, // edge midpoints
		{X: hw, Z: 0},
		{X: 0, Z: hl},
		{X: -hw, Z: 0},
	}

	rad := f.Rotation * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	pts := make([]geom.Point, len(local))
	for i, p := range local {
		pts[i] = geom.Point{
			X: f.Center.X + p.X*cos - p.Z*sin,
			Z: f.Center.Z + p.X*sin + p.Z*cos,
		}
	}
	return pts
}

// Valid reports whether the footprint may be committed inside boundary
// with the given setback clearance. Every sample point must lie inside the
// boundary; with setback > 0 each must additionally keep at least that
// distance from every boundary edge. A boundary of fewer than 3 vertices
// imposes nothing, so any placement is valid.
//
// Setback must be zero or a positive finite number; negative or NaN values
// are a caller error and must be rejected by input validation upstream.
func (f Footprint) Valid(boundary geom.Polygon, setback float64) bool {
	if len(boundary) < 3 {
		return true
	}
	for _, p := range f.TestPoints() {
		if !boundary.Contains(p) {
			return false
		}
		if setback > 0 && boundary.DistanceToEdges(p) < setback {
			return false
		}
	}
	return true
}
