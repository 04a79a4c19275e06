package geom

import (
	"encoding/json"
	"math"
)

// Point is a position on the ground plane, in meters.
// It is a value type; copies never alias.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dz := p.Z - q.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Near reports whether q lies within tol of p.
func (p Point) Near(q Point, tol float64) bool {
	return p.DistanceTo(q) <= tol
}

// UnmarshalJSON accepts both {"x":..,"z":..} and the legacy 2D-canvas form
// {"x":..,"y":..}. When both "y" and "z" are present, "z" wins. Encoding
// always emits "z"; the y form exists only so older saved designs load.
func (p *Point) UnmarshalJSON(data []byte) error {
	var raw struct {
		X float64  `json:"x"`
		Y *float64 `json:"y"`
		Z *float64 `json:"z"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.X = raw.X
	switch {
	case raw.Z != nil:
		p.Z = *raw.Z
	case raw.Y != nil:
		p.Z = *raw.Y
	default:
		p.Z = 0
	}
	return nil
}
