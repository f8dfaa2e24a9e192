package core

import "testing"

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(mustBoard(t,
		lines("______", "____R_", "______"),
		lines("WWWWWW", "W>r__W", "WWWWWW"),
	))
}

func TestSessionApply(t *testing.T) {
	s := newTestSession(t)
	start := s.Current()

	res := s.Apply(DirRight)
	if !res.Changed {
		t.Fatal("Apply(right) should push the trophy")
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, want 1", s.Score())
	}
	if s.Current() == start || s.Initial() != start {
		t.Error("Apply() should replace the current board and keep the initial one")
	}
	if !s.CanUndo() {
		t.Error("CanUndo() = false after a move")
	}
}

func TestSessionBlockedMoveCounts(t *testing.T) {
	s := newTestSession(t)
	start := s.Current()

	s.Apply(DirUp)
	if s.Score() != 1 {
		t.Errorf("Score() = %d, want 1 after a blocked move", s.Score())
	}
	if s.Current() != start {
		t.Error("blocked move should keep the same board")
	}
}

func TestSessionUndo(t *testing.T) {
	s := newTestSession(t)
	before := s.Current()

	s.Apply(DirRight)
	if !s.Undo() {
		t.Fatal("Undo() = false after a move")
	}
	if !s.Current().Equal(before) {
		t.Errorf("board after undo =\n%s\nwant\n%s", s.Current(), before)
	}
	if s.Score() != 2 {
		t.Errorf("Score() = %d, want 2 (move plus undo)", s.Score())
	}

	// Only one level of history.
	if s.Undo() {
		t.Error("second Undo() in a row should do nothing")
	}
	if s.Score() != 2 {
		t.Errorf("Score() = %d after a no-op undo, want 2", s.Score())
	}
}

func TestSessionUndoOnFreshSession(t *testing.T) {
	s := newTestSession(t)
	if s.Undo() {
		t.Error("Undo() on a fresh session should do nothing")
	}
	if s.Score() != 0 || s.Current() != s.Initial() {
		t.Error("no-op undo changed the session")
	}
}

func TestSessionUndoReachesOneMoveBack(t *testing.T) {
	s := newTestSession(t)
	s.Apply(DirRight)
	afterFirst := s.Current()
	s.Apply(DirRight)

	s.Undo()
	if s.Current() != afterFirst {
		t.Error("Undo() should restore the board from before the last move")
	}
}

func TestSessionWinSurvivesUndo(t *testing.T) {
	s := newTestSession(t)

	s.Apply(DirRight)
	s.Apply(DirRight)
	if !s.ShouldEnd() || s.Outcome() != OutcomeWon {
		t.Fatalf("trophy should be on its target:\n%s", s.Current())
	}
	won := s.Current()

	s.Undo()
	if s.Current().IsWon() {
		t.Error("board before the winning push should not be won")
	}
	s.Apply(DirRight)
	if !s.Current().Equal(won) || !s.Current().IsWon() {
		t.Error("replaying the winning push should reproduce the won board")
	}
}

func TestSessionHandle(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		acted  bool
		score  int
	}{
		{"right", IntentRight, true, 1},
		{"up is blocked but counts", IntentUp, true, 1},
		{"undo without history", IntentUndo, false, 0},
		{"none", IntentNone, false, 0},
		{"unknown", Intent(77), false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			if got := s.Handle(tc.intent); got != tc.acted {
				t.Errorf("Handle() = %v, want %v", got, tc.acted)
			}
			if s.Score() != tc.score {
				t.Errorf("Score() = %d, want %d", s.Score(), tc.score)
			}
		})
	}
}

func TestSessionLoss(t *testing.T) {
	s := NewSession(mustBoard(t, "_____", "W>h_W"))
	s.Handle(IntentRight)

	if !s.ShouldEnd() || s.Outcome() != OutcomeLost {
		t.Errorf("ShouldEnd() = %v, Outcome() = %v, want true, lost", s.ShouldEnd(), s.Outcome())
	}
	if _, ok := s.Current().Player(); ok {
		t.Error("player should be gone after walking into a hole")
	}
}
