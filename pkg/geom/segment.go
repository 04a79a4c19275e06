package geom

// ClosestPointOnSegment projects p onto the segment from a to b and returns
// the closest point within the segment together with its distance to p. The
// projection parameter is clamped to [0,1], so the result never leaves the
// segment. A zero-length segment (a == b) yields a itself.
func ClosestPointOnSegment(p, a, b Point) (Point, float64) {
	dx := b.X - a.X
	dz := b.Z - a.Z
	lenSq := dx*dx + dz*dz
	if lenSq == 0 {
		return a, p.DistanceTo(a)
	}

	t := ((p.X-a.X)*dx + (p.Z-a.Z)*dz) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Point{X: a.X + t*dx, Z: a.Z + t*dz}
	return closest, p.DistanceTo(closest)
}

// SegmentsIntersect reports whether the segments a1-a2 and b1-b2 properly
// cross. Segments that merely share an endpoint are NOT considered
// intersecting; adjacent polygon edges always share one and that is not a
// crossing.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	if a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2 {
		return false
	}
	return ccw(a1, b1, b2) != ccw(a2, b1, b2) &&
		ccw(a1, a2, b1) != ccw(a1, a2, b2)
}

// ccw reports whether the triple (a, b, c) makes a counterclockwise turn.
func ccw(a, b, c Point) bool {
	return (c.Z-a.Z)*(b.X-a.X) > (b.Z-a.Z)*(c.X-a.X)
}
