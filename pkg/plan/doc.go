// Package plan models a floor-plan design — boundary, walls, openings,
// declared placements — and derives rooms from the wall collection.
//
// # Model
//
// A Design owns its boundary polygon and wall list. Walls are the unit of
// editing: every structural mutation produces a new wall list that is
// committed through a Session (which records it in undo history). Openings
// (doors, windows) belong to the wall they are cut into and ride along
// with it.
//
// # Rooms are derived, room ids are not stable
//
// Rooms are never stored. DetectRooms recomputes them from the wall
// collection after every committed change, and each pass mints fresh room
// ids. A room id is therefore only meaningful within the detection pass
// that produced it: persisting one across a wall edit, however small the
// edit, is a bug. Consumers that need continuity — "the room the user has
// selected", a label, a roof attachment — must key on the set of bounding
// wall ids (Room.WallKey) or re-match by centroid proximity (MatchRoom,
// 2 m tolerance). Wall-id-set keying is the preferred mechanism; centroid
// matching exists for callers that only retained a position.
//
// # Detection
//
// Wall endpoints within ConnectTolerance (1 cm) of each other are merged
// into shared junctions, then each floor's wall graph is traversed to
// enumerate its enclosed faces. Every bounded face becomes one Room
// carrying the junction loop, its vertex centroid, and the bounding wall
// ids. Fences never bound rooms and are skipped.
//
// # Usage
//
//	design := plan.Design{Walls: walls}
//	session := plan.NewSession(design)
//
//	// edit: move a wall, then commit
//	next := session.Current().Clone()
//	next.Walls[2].End = snapped
//	session.Commit(next)
//
//	for _, room := range session.Rooms() {
//		fmt.Printf("%s: %.1f m2 bounded by %v\n",
//			room.ID, room.Area(), room.WallIDs)
//	}
package plan
