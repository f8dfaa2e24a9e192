package sokoban

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateLost         GameStateType = "lost"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
	StateLoadFailed   GameStateType = "load_failed"
)

// Snapshot captures the game state for replay checks and tests.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "single"
	Level   int    // 1-indexed position in the level list
	LevelID string
	Moves   int // moves on the current level
	Score   int // moves across the run
	CanUndo bool
	Ground  string
	Content string
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil:
		state = StateLoadFailed
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateLost
	case g.levelCleared:
		state = StateLevelCleared
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Level: g.levelIndex + 1,
		Score: g.State().Score,
		State: state,
	}
	if g.session != nil {
		snap.LevelID = g.Level().ID
		snap.Moves = g.session.Score()
		snap.CanUndo = g.session.CanUndo()
		snap.Ground, snap.Content = g.session.Current().Layers()
	}
	return snap
}
