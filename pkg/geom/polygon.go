package geom

import "math"

// Polygon is an ordered vertex list, implicitly closed (see package docs).
type Polygon []Point

// Contains reports whether p lies inside the polygon, using the even-odd
// ray-casting rule. Polygons with fewer than 3 vertices contain nothing.
// Points exactly on an edge may report either way; interactive callers
// treat edge contact via DistanceToEdges instead.
func (pg Polygon) Contains(p Point) bool {
	if len(pg) < 3 {
		return false
	}
	inside := false
	j := len(pg) - 1
	for i := 0; i < len(pg); i++ {
		vi, vj := pg[i], pg[j]
		// The strict/non-strict comparison pair keeps horizontal edges
		// from being counted twice at shared vertices.
		if (vi.Z > p.Z) != (vj.Z > p.Z) &&
			p.X < (vj.X-vi.X)*(p.Z-vi.Z)/(vj.Z-vi.Z)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// DistanceToEdges returns the minimum distance from p to any polygon edge,
// including the closing edge. Degenerate polygons (<3 vertices) have no
// edges to respect and yield 0.
func (pg Polygon) DistanceToEdges(p Point) float64 {
	if len(pg) < 3 {
		return 0
	}
	min := math.Inf(1)
	for i := range pg {
		a := pg[i]
		b := pg[(i+1)%len(pg)]
		if _, d := ClosestPointOnSegment(p, a, b); d < min {
			min = d
		}
	}
	return min
}

// SignedArea returns the shoelace sum divided by 2. Positive for
// counterclockwise winding, negative for clockwise, 0 for fewer than 3
// vertices.
func (pg Polygon) SignedArea() float64 {
	if len(pg) < 3 {
		return 0
	}
	sum := 0.0
	for i := range pg {
		j := (i + 1) % len(pg)
		sum += pg[i].X*pg[j].Z - pg[j].X*pg[i].Z
	}
	return sum / 2
}

// Area returns the enclosed area in square meters, winding-independent.
func (pg Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// Perimeter returns the total edge length, including the closing edge.
func (pg Polygon) Perimeter() float64 {
	if len(pg) < 2 {
		return 0
	}
	total := 0.0
	for i := range pg {
		total += pg[i].DistanceTo(pg[(i+1)%len(pg)])
	}
	return total
}

// Centroid returns the mean of the vertices. This is the vertex centroid
// used for room labeling and re-matching, not the area centroid; the zero
// Point is returned for an empty polygon.
func (pg Polygon) Centroid() Point {
	if len(pg) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pg {
		c.X += p.X
		c.Z += p.Z
	}
	c.X /= float64(len(pg))
	c.Z /= float64(len(pg))
	return c
}

// SelfIntersects reports whether any two non-adjacent edges cross. Edges
// adjacent through the wrap-around (first and last) are skipped like any
// other adjacent pair. Polygons with fewer than 4 vertices cannot
// self-intersect.
func (pg Polygon) SelfIntersects() bool {
	n := len(pg)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := pg[i]
		a2 := pg[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip the edge itself and both neighbors, including the
			// wrap-around pairing of the last edge with the first.
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			b1 := pg[j]
			b2 := pg[(j+1)%n]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// Valid reports whether the polygon is usable as a boundary: at least 3
// vertices and no crossing edges.
func (pg Polygon) Valid() bool {
	return len(pg) >= 3 && !pg.SelfIntersects()
}
