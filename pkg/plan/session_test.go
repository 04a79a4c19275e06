package plan

import (
	"testing"

	"github.com/LandSketchLab/landsketch/pkg/geom"
)

func sessionDesign() Design {
	return Design{
		Name:     "test lot",
		Boundary: geom.Polygon{{X: 0, Z: 0}, {X: 20, Z: 0}, {X: 20, Z: 20}, {X: 0, Z: 20}},
		Walls:    squareWalls(0),
	}
}

func TestSessionDerivesRoomsOnCommit(t *testing.T) {
	s := NewSession(Design{})
	if len(s.Rooms()) != 0 {
		t.Fatal("empty design has no rooms")
	}

	if !s.Commit(sessionDesign()) {
		t.Fatal("commit of a changed design should create an entry")
	}
	if len(s.Rooms()) != 1 {
		t.Fatalf("got %d rooms after commit, want 1", len(s.Rooms()))
	}
}

func TestSessionCommitDedup(t *testing.T) {
	s := NewSession(sessionDesign())
	if s.Commit(sessionDesign()) {
		t.Error("committing an identical design should be a no-op")
	}
	if s.CanUndo() {
		t.Error("no-op commit must not create history")
	}
}

func TestSessionUndoRedoTracksRooms(t *testing.T) {
	s := NewSession(sessionDesign())

	// Knock out one wall: the room disappears.
	next := s.Current().Clone()
	next.Walls = next.Walls[:3]
	s.Commit(next)
	if len(s.Rooms()) != 0 {
		t.Fatalf("room should be gone after removing a wall, got %d", len(s.Rooms()))
	}

	if !s.Undo() {
		t.Fatal("undo should move")
	}
	if len(s.Rooms()) != 1 {
		t.Error("undo must restore the derived room")
	}
	if !s.Redo() {
		t.Fatal("redo should move")
	}
	if len(s.Rooms()) != 0 {
		t.Error("redo must rederive the roomless state")
	}
}

func TestSessionSelectionSurvivesEditViaMatch(t *testing.T) {
	s := NewSession(sessionDesign())
	selected := s.Rooms()[0]

	// Nudge a junction; room ids regenerate.
	next := s.Current().Clone()
	next.Walls[0].End = geom.Point{X: 5.002, Z: 0}
	next.Walls[1].Start = geom.Point{X: 5.002, Z: 0}
	s.Commit(next)

	m := MatchRoom(selected, s.Rooms())
	if m == nil {
		t.Fatal("selected room should re-match after the edit")
	}
	if m.WallKey() != selected.WallKey() {
		t.Error("re-matched room should be bounded by the same walls")
	}
}

func TestSessionDragGestureIsOneEntry(t *testing.T) {
	s := NewSession(sessionDesign())

	// A drag: many intermediate previews, one commit on pointer-up.
	// The user drags the shared corner of w2 and w3 outward.
	for _, x := range []float64{5.2, 5.4, 5.6, 5.8, 6.0} {
		d := s.Current().Clone()
		d.Walls[1].End = geom.Point{X: x, Z: 5}
		d.Walls[2].Start = geom.Point{X: x, Z: 5}
		s.Preview(d)
	}
	if len(s.Rooms()) != 1 {
		t.Error("preview should rederive rooms for live feedback")
	}

	final := s.Current().Clone()
	if !s.Commit(final) {
		t.Error("ending a gesture counts as a history change")
	}

	// One gesture, one entry: a single undo restores the pre-drag design.
	if !s.Undo() {
		t.Fatal("undo should move")
	}
	if got := s.Current().Walls[1].End; got != (geom.Point{X: 5, Z: 5}) {
		t.Errorf("undo restored wall end %v, want the pre-drag (5,5)", got)
	}
	if s.CanUndo() {
		t.Error("the whole drag must collapse into one history entry")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession(sessionDesign())
	s.Commit(Design{})
	s.Reset(sessionDesign())
	if s.CanUndo() || s.CanRedo() {
		t.Error("reset session has no history")
	}
	if len(s.Rooms()) != 1 {
		t.Error("reset should rederive rooms from the new design")
	}
}
