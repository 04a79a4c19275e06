package plan

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/LandSketchLab/landsketch/pkg/geom"
)

const (
	// ConnectTolerance is how close two wall endpoints must be, in meters,
	// to count as the same junction.
	ConnectTolerance = 0.01
	// MatchTolerance is the centroid-proximity radius MatchRoom accepts
	// when re-identifying a room after the wall set changed.
	MatchTolerance = 2.0
)

// Room is a closed loop of connected walls on one floor. Rooms are derived
// values: see the package docs for the id-stability contract.
type Room struct {
	ID         string
	FloorLevel int
	Center     geom.Point
	Boundary   geom.Polygon
	WallIDs    []string
}

// Area returns the enclosed floor area in square meters.
func (r Room) Area() float64 {
	return r.Boundary.Area()
}

// WallKey returns the canonical key of the bounding wall-id set. Two rooms
// from different detection passes with equal WallKeys are the same room;
// this is the durable handle for labels, styles and roof attachments.
func (r Room) WallKey() string {
	ids := append([]string(nil), r.WallIDs...)
	sort.Strings(ids)
	return strings.Join(ids, "+")
}

// junctionGraph is one floor's wall connectivity after endpoint merging.
// Junction merging uses union-find over endpoint indices, with the
// representative's coordinates standing in for the whole cluster.
type junctionGraph struct {
	nodes []geom.Point
	// half[i] and half[i^1] are the two directions of wall i/2.
	half []halfEdge
	// outgoing half-edges per node, sorted by departure angle.
	out [][]int
}

type halfEdge struct {
	from, to int
	wall     string
	angle    float64 // departure angle at from
	next     int     // successor in face order, filled by link()
}

// buildJunctionGraph merges endpoints within ConnectTolerance and indexes
// the half-edges of the given walls.
func buildJunctionGraph(walls []Wall) *junctionGraph {
	// Union-find over the 2*len(walls) raw endpoints.
	parent := make([]int, 2*len(walls))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	endpoint := func(i int) geom.Point {
		if i%2 == 0 {
			return walls[i/2].Start
		}
		return walls[i/2].End
	}

	n := 2 * len(walls)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if endpoint(i).Near(endpoint(j), ConnectTolerance) {
				union(i, j)
			}
		}
	}

	g := &junctionGraph{}
	nodeOf := make([]int, n)
	nodeIndex := map[int]int{}
	for i := 0; i < n; i++ {
		root := find(i)
		idx, ok := nodeIndex[root]
		if !ok {
			idx = len(g.nodes)
			nodeIndex[root] = idx
			g.nodes = append(g.nodes, endpoint(root))
		}
		nodeOf[i] = idx
	}

	for i, w := range walls {
		from := nodeOf[2*i]
		to := nodeOf[2*i+1]
		if from == to {
			// Both endpoints merged into one junction: a collapsed wall
			// cannot bound anything.
			g.half = append(g.half, halfEdge{from: -1}, halfEdge{from: -1})
			continue
		}
		a, b := g.nodes[from], g.nodes[to]
		g.half = append(g.half,
			halfEdge{from: from, to: to, wall: w.ID, angle: math.Atan2(b.Z-a.Z, b.X-a.X)},
			halfEdge{from: to, to: from, wall: w.ID, angle: math.Atan2(a.Z-b.Z, a.X-b.X)},
		)
	}

	g.link()
	return g
}

// link sorts each node's outgoing half-edges by angle and wires every
// half-edge to its face successor: the outgoing edge that precedes the
// arriving edge's reverse in counterclockwise order, which is the
// tightest interior turn at the junction. Walking successors traces each
// face of the planar graph exactly once, with bounded faces coming out
// counterclockwise.
func (g *junctionGraph) link() {
	g.out = make([][]int, len(g.nodes))
	for i, he := range g.half {
		if he.from >= 0 {
			g.out[he.from] = append(g.out[he.from], i)
		}
	}
	for _, edges := range g.out {
		sort.Slice(edges, func(a, b int) bool {
			return g.half[edges[a]].angle < g.half[edges[b]].angle
		})
	}
	for i := range g.half {
		if g.half[i].from < 0 {
			continue
		}
		rev := i ^ 1
		at := g.half[rev].from // the node this half-edge arrives at
		edges := g.out[at]
		pos := 0
		for k, e := range edges {
			if e == rev {
				pos = k
				break
			}
		}
		g.half[i].next = edges[(pos-1+len(edges))%len(edges)]
	}
}

// faces walks every half-edge once and returns each face as node and wall
// sequences. Spur walls (dead ends the walk enters and immediately backs
// out of) are pruned, so a dangling stub attached to a loop does not end
// up in the room's boundary or wall list.
func (g *junctionGraph) faces() (loops [][]int, wallIDs [][]string) {
	visited := make([]bool, len(g.half))
	for start := range g.half {
		if visited[start] || g.half[start].from < 0 {
			continue
		}
		var edges []int
		for e := start; !visited[e]; e = g.half[e].next {
			visited[e] = true
			edges = append(edges, e)
		}
		edges = pruneSpurs(edges)
		if len(edges) == 0 {
			continue
		}
		nodes := make([]int, len(edges))
		walls := make([]string, len(edges))
		for i, e := range edges {
			nodes[i] = g.half[e].from
			walls[i] = g.half[e].wall
		}
		loops = append(loops, nodes)
		wallIDs = append(wallIDs, walls)
	}
	return loops, wallIDs
}

// pruneSpurs removes out-and-back half-edge pairs from a cyclic face until
// none remain. A face that was only spur traversal (an open wall run)
// cancels to nothing.
func pruneSpurs(edges []int) []int {
	for {
		n := len(edges)
		if n < 2 {
			return edges
		}
		removed := false
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if edges[i]^1 == edges[j] {
				if j > i {
					edges = append(edges[:i], edges[j+1:]...)
				} else { // wrap pair: drop last and first
					edges = edges[1 : n-1]
				}
				removed = true
				break
			}
		}
		if !removed {
			return edges
		}
	}
}

// DetectRooms recomputes the rooms implied by the wall collection. Walls
// are grouped by floor, endpoints within ConnectTolerance are merged, and
// each enclosed face of the resulting graph becomes one Room. Fences and
// collapsed (zero-length after merging) walls never bound rooms.
//
// Every call mints fresh room ids. Do not persist them across wall
// mutations; re-identify with Room.WallKey or MatchRoom.
func DetectRooms(walls []Wall) []Room {
	byFloor := map[int][]Wall{}
	for _, w := range walls {
		if w.IsFence {
			continue
		}
		byFloor[w.FloorLevel] = append(byFloor[w.FloorLevel], w)
	}

	var rooms []Room
	for floor, fw := range byFloor {
		g := buildJunctionGraph(fw)
		loops, loopWalls := g.faces()
		for i, loop := range loops {
			if len(loop) < 3 {
				continue
			}
			boundary := make(geom.Polygon, len(loop))
			for j, n := range loop {
				boundary[j] = g.nodes[n]
			}
			// Bounded faces trace counterclockwise; the single clockwise
			// face per component is the unbounded outside.
			if boundary.SignedArea() <= 1e-9 {
				continue
			}
			rooms = append(rooms, Room{
				ID:         uuid.NewString(),
				FloorLevel: floor,
				Center:     boundary.Centroid(),
				Boundary:   boundary,
				WallIDs:    dedupStrings(loopWalls[i]),
			})
		}
	}

	sort.Slice(rooms, func(i, j int) bool {
		a, b := rooms[i], rooms[j]
		if a.FloorLevel != b.FloorLevel {
			return a.FloorLevel < b.FloorLevel
		}
		if a.Center.X != b.Center.X {
			return a.Center.X < b.Center.X
		}
		return a.Center.Z < b.Center.Z
	})
	return rooms
}

// MatchRoom re-identifies prev among freshly detected rooms. An exact
// bounding-wall-set match wins; failing that, the nearest room on the same
// floor whose centroid lies within MatchTolerance of prev's. Returns nil
// when the room no longer exists.
func MatchRoom(prev Room, rooms []Room) *Room {
	key := prev.WallKey()
	for i := range rooms {
		if rooms[i].FloorLevel == prev.FloorLevel && rooms[i].WallKey() == key {
			return &rooms[i]
		}
	}

	best := -1
	bestDist := MatchTolerance
	for i := range rooms {
		if rooms[i].FloorLevel != prev.FloorLevel {
			continue
		}
		if d := rooms[i].Center.DistanceTo(prev.Center); d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nil
	}
	return &rooms[best]
}

// FindWallsForRoom recovers, from geometry alone, which of the given walls
// bound the room: a wall qualifies when both of its endpoints sit on the
// room's boundary loop. Used to re-attach metadata after the wall set was
// regenerated and room ids changed.
func FindWallsForRoom(room Room, walls []Wall) []string {
	onBoundary := func(p geom.Point) bool {
		for _, v := range room.Boundary {
			if p.Near(v, ConnectTolerance) {
				return true
			}
		}
		return false
	}

	var ids []string
	for _, w := range walls {
		if w.FloorLevel != room.FloorLevel || w.IsFence {
			continue
		}
		if onBoundary(w.Start) && onBoundary(w.End) {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

func dedupStrings(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
