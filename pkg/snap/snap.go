// Package snap adjusts raw pointer positions toward nearby vertices, edges
// and grid lines, and rounds rotations to a fixed angular step. All
// thresholds and the grid cell size are in meters.
package snap

import (
	"math"

	"github.com/LandSketchLab/landsketch/pkg/geom"
)

// Default tuning, chosen for parcel-scale editing where a boundary edge is
// typically several meters long.
const (
	DefaultThreshold    = 2.0  // meters
	DefaultGridSize     = 1.0  // meters
	DefaultRotationStep = 15.0 // degrees
)

// Type identifies what a point was snapped to.
type Type int

const (
	// None means the point was returned unchanged.
	None Type = iota
	// Vertex means the point locked onto a polygon vertex.
	Vertex
	// Edge means the point locked onto the nearest point of an edge.
	Edge
	// Grid means the point rounded to a grid intersection.
	Grid
)

func (t Type) String() string {
	switch t {
	case Vertex:
		return "vertex"
	case Edge:
		return "edge"
	case Grid:
		return "grid"
	default:
		return "none"
	}
}

// Result is the outcome of one snapping query. Reference is the vertex or
// edge point that attracted the snap, nil for grid and non-snaps. Results
// are produced fresh per query and never retained.
type Result struct {
	Point     geom.Point
	Type      Type
	Reference *geom.Point
}

// Options selects which snap sources are active for a query.
type Options struct {
	// Enabled gates all snapping; when false the input passes through.
	Enabled bool
	// Grid enables the grid fallback, tried only after vertices and edges.
	Grid bool
	// Threshold is the maximum snap distance; <=0 means DefaultThreshold.
	Threshold float64
	// GridSize is the grid cell edge; <=0 means DefaultGridSize.
	GridSize float64
}

// NearestVertex returns the closest vertex within threshold of p, with its
// distance. ok is false when no vertex qualifies.
func NearestVertex(p geom.Point, vertices []geom.Point, threshold float64) (v geom.Point, dist float64, ok bool) {
	dist = threshold
	for _, cand := range vertices {
		if d := p.DistanceTo(cand); d <= dist {
			v, dist, ok = cand, d, true
		}
	}
	return v, dist, ok
}

// NearestEdgePoint returns the closest point on any edge of the polygon
// (including the closing edge) within threshold of p. ok is false when no
// edge qualifies or the polygon has fewer than 3 vertices.
func NearestEdgePoint(p geom.Point, boundary geom.Polygon, threshold float64) (v geom.Point, dist float64, ok bool) {
	if len(boundary) < 3 {
		return geom.Point{}, 0, false
	}
	dist = threshold
	for i := range boundary {
		a := boundary[i]
		b := boundary[(i+1)%len(boundary)]
		if pt, d := geom.ClosestPointOnSegment(p, a, b); d <= dist {
			v, dist, ok = pt, d, true
		}
	}
	return v, dist, ok
}

// ToGrid rounds p to the nearest grid intersection, but only commits when
// the rounded point stays within threshold of the input. This keeps grid
// snapping soft: far from any grid line the pointer is left alone.
func ToGrid(p geom.Point, gridSize, threshold float64) (geom.Point, float64, bool) {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}
	g := geom.Point{
		X: math.Round(p.X/gridSize) * gridSize,
		Z: math.Round(p.Z/gridSize) * gridSize,
	}
	d := p.DistanceTo(g)
	if d > threshold {
		return geom.Point{}, 0, false
	}
	return g, d, true
}

// Position snaps p against the boundary polygon with priority
// vertex, then edge, then grid. Vertices win because aligning to an
// existing corner is the most common editing intent; edges let the user
// follow a wall without hitting a corner; the grid is the loose fallback
// and runs only when opts.Grid is set. With snapping disabled, no source
// in range, or a boundary of fewer than 3 vertices, p comes back
// unchanged with Type None.
func Position(p geom.Point, boundary geom.Polygon, opts Options) Result {
	none := Result{Point: p, Type: None}
	if !opts.Enabled || len(boundary) < 3 {
		return none
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	if v, _, ok := NearestVertex(p, boundary, threshold); ok {
		ref := v
		return Result{Point: v, Type: Vertex, Reference: &ref}
	}
	if v, _, ok := NearestEdgePoint(p, boundary, threshold); ok {
		ref := v
		return Result{Point: v, Type: Edge, Reference: &ref}
	}

	if opts.Grid {
		if g, _, ok := ToGrid(p, opts.GridSize, threshold); ok {
			return Result{Point: g, Type: Grid}
		}
	}
	return none
}

// Rotation rounds an angle in degrees to the nearest multiple of step.
// A step of <=0 means DefaultRotationStep. Used for placement rotation and
// any other angular snap.
func Rotation(degrees, step float64) float64 {
	if step <= 0 {
		step = DefaultRotationStep
	}
	return math.Round(degrees/step) * step
}
