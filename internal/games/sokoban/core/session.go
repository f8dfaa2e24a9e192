package core

// Intent is a player request handled by a Session.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentUndo
)

// Direction returns the move direction of a directional intent.
func (i Intent) Direction() (Direction, bool) {
	switch i {
	case IntentUp:
		return DirUp, true
	case IntentDown:
		return DirDown, true
	case IntentLeft:
		return DirLeft, true
	case IntentRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Session tracks play on one level: the current board, the starting board,
// a single step of undo history and the score.
//
// The score counts actions: every directional move adds one, blocked or not,
// and so does a successful undo. A Session is not safe for concurrent use.
type Session struct {
	initial  *Board
	current  *Board
	previous *Board
	score    int
}

// NewSession starts play on board with a score of zero.
func NewSession(board *Board) *Session {
	return &Session{initial: board, current: board}
}

// Current returns the board in play.
func (s *Session) Current() *Board { return s.current }

// Initial returns the board the session started from.
func (s *Session) Initial() *Board { return s.initial }

// Score returns the number of actions taken.
func (s *Session) Score() int { return s.score }

// CanUndo reports whether Undo would change the board.
func (s *Session) CanUndo() bool { return s.previous != nil }

// ShouldEnd reports whether the current board is won or lost.
func (s *Session) ShouldEnd() bool { return s.current.ShouldEnd() }

// Outcome classifies the current board.
func (s *Session) Outcome() Outcome { return s.current.Outcome() }

// Apply resolves a move in dir and makes the result current. The board
// before the move becomes the undo target.
func (s *Session) Apply(dir Direction) MoveResult {
	res := ResolveMove(s.current, dir)
	s.previous = s.current
	s.current = res.Board
	s.score++
	return res
}

// Undo restores the board from before the last move. It only reaches back
// one move: a second Undo in a row does nothing, as does an Undo before any
// move. Reports whether the board was restored.
func (s *Session) Undo() bool {
	if s.previous == nil {
		return false
	}
	s.current = s.previous
	s.previous = nil
	s.score++
	return true
}

// Handle dispatches an intent. Reports whether the intent was acted on.
func (s *Session) Handle(in Intent) bool {
	if in == IntentUndo {
		return s.Undo()
	}
	dir, ok := in.Direction()
	if !ok {
		return false
	}
	s.Apply(dir)
	return true
}
