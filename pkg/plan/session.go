package plan

import "github.com/LandSketchLab/landsketch/pkg/history"

// Session owns the undo history of one design being edited and keeps the
// derived room list in step with the committed wall collection. It is the
// single writer of its history; the UI layer calls it from its event
// handlers only.
type Session struct {
	hist  *history.History[Design]
	rooms []Room
	// previewing is true between the first Preview of a drag gesture and
	// the Commit (or Undo/Reset) that ends it.
	previewing bool
}

// NewSession starts an editing session on the given design.
func NewSession(d Design) *Session {
	s := &Session{hist: history.New(d.Clone())}
	s.recompute()
	return s
}

// Current returns the committed design at the history cursor. Mutating the
// result directly bypasses history; Clone it, edit, then Commit.
func (s *Session) Current() Design {
	return s.hist.Current()
}

// Rooms returns the rooms derived from the current wall collection. The
// slice is recomputed on every commit, undo and redo; ids in it obey the
// package's instability contract.
func (s *Session) Rooms() []Room {
	return s.rooms
}

// Commit records d and rederives rooms. Outside a drag gesture this is a
// plain history push, deduplicated against the current entry. When it ends
// a gesture it finalizes the gesture's single provisional entry. Reports
// whether the design history changed.
func (s *Session) Commit(d Design) bool {
	wasPreviewing := s.previewing
	s.previewing = false
	pushed := s.hist.Push(d.Clone())
	s.recompute()
	return pushed || wasPreviewing
}

// Preview feeds a drag-in-progress state into the session. The first
// Preview of a gesture creates one provisional history entry; every
// further Preview live-replaces it, so however long the drag, the gesture
// contributes a single entry and Undo afterwards restores the pre-drag
// design. Rooms are rederived each time for live feedback. The gesture
// ends with Commit on pointer-up.
func (s *Session) Preview(d Design) {
	if s.previewing {
		s.hist.Replace(d.Clone())
	} else {
		s.previewing = s.hist.Push(d.Clone())
	}
	s.recompute()
}

// Undo steps the design back one committed entry, reporting whether it
// moved. Undoing mid-gesture abandons the gesture's provisional entry.
func (s *Session) Undo() bool {
	s.previewing = false
	if !s.hist.Undo() {
		return false
	}
	s.recompute()
	return true
}

// Redo steps the design forward one committed entry, reporting whether it
// moved.
func (s *Session) Redo() bool {
	s.previewing = false
	if !s.hist.Redo() {
		return false
	}
	s.recompute()
	return true
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Reset abandons all history and restarts the session on d.
func (s *Session) Reset(d Design) {
	s.previewing = false
	s.hist.Reset(d.Clone())
	s.recompute()
}

func (s *Session) recompute() {
	s.rooms = DetectRooms(s.hist.Current().Walls)
}
