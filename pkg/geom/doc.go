// Package geom provides the planar geometry primitives for land-boundary
// and floor-plan editing: point/segment math, polygon containment, area and
// perimeter, and self-intersection checks.
//
// All coordinates are meters on the ground plane. The two axes are X and Z,
// matching the world convention of the 3D layer above (Y is "up" and never
// appears here); any data source using an {x, y} convention must be
// converted at the boundary before it reaches this package.
//
// # Totality
//
// Every function in this package is total: degenerate inputs (polygons with
// fewer than 3 vertices, zero-length segments) produce neutral results
// (false, 0, the segment start point) instead of errors or panics. These
// inputs arise routinely while a shape is being drawn, so callers may
// invoke any of these functions on every pointer move without guarding.
//
// # Polygon representation
//
// A Polygon is an ordered vertex list, implicitly closed: the last vertex
// connects back to the first, and the closing edge participates in
// containment, distance, perimeter and intersection tests. A polygon is a
// valid shape once it has at least 3 vertices, and is valid for placement
// and export only while no two non-adjacent edges cross (see
// SelfIntersects).
package geom
