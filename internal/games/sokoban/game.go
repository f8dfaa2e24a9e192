// Package sokoban provides the sokoban puzzle game for the platform: level
// progression, input handling and rendering around the engine in core.
package sokoban

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // play levels in order from the start level
	ModeSingle   Mode = "single"   // play one level only
)

// Game IDs registered with the platform.
const (
	CampaignID = "sokoban"
	SingleID   = "sokoban_single"
)

// ErrNoLevels is reported when the level source yields nothing playable.
var ErrNoLevels = errors.New("no playable levels")

// Game implements the sokoban puzzle game.
type Game struct {
	mode       Mode
	cfg        config.SokobanConfig
	startLevel string
	preset     bool // levels supplied by the caller, Reset does not reload

	allLevels  []levels.Level
	levelIndex int
	session    *core.Session
	lastMove   core.MoveResult
	status     string

	// Moves spent on levels already cleared in this run.
	clearedMoves int

	tick    uint64
	screenW int
	screenH int

	gameOver        bool // the player was lost
	levelCleared    bool // waiting before the next campaign level
	won             bool // nothing left to play
	paused          bool
	tooSmall        bool
	levelClearTicks int
	loadErr         error

	finished []platformcore.LevelResult
	pal      palette
}

// Package-level configuration shared by every new game.
var (
	settingsMu  sync.RWMutex
	gameConfig  = config.DefaultSokobanConfig()
	levelLogger *log.Logger
)

// Configure sets the configuration and logger used by games created after
// the call.
func Configure(cfg config.SokobanConfig, logger *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	cfg.Normalize()
	gameConfig = cfg
	levelLogger = logger
}

func settings() (config.SokobanConfig, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return gameConfig, levelLogger
}

// LevelLoader returns the loader for the configured level source.
func LevelLoader(cfg config.SokobanConfig, logger *log.Logger) *levels.Loader {
	var loader *levels.Loader
	if cfg.Levels.Dir != "" {
		loader = levels.NewLoader(cfg.Levels.Dir)
	} else {
		loader = levels.Builtin()
	}
	loader.AllowTargetless = cfg.Levels.AllowTargetless
	loader.Logger = logger
	return loader
}

// LoadLevels loads the levels of the configured source.
func LoadLevels() ([]levels.Level, error) {
	cfg, logger := settings()
	return LevelLoader(cfg, logger).LoadAll()
}

func init() {
	registry.Register(CampaignID, func(opts registry.Options) registry.Game {
		return New(ModeCampaign, opts.StartLevel)
	})
	registry.Register(SingleID, func(opts registry.Options) registry.Game {
		return New(ModeSingle, opts.StartLevel)
	})
}

// New creates a game that loads its levels from the configured source on
// Reset. startLevel is a level ID; empty starts at the first level.
func New(mode Mode, startLevel string) *Game {
	cfg, _ := settings()
	return &Game{mode: mode, cfg: cfg, startLevel: startLevel}
}

// NewWithLevels creates a game over a fixed level list.
func NewWithLevels(mode Mode, lvls []levels.Level, startLevel string, cfg config.SokobanConfig) *Game {
	cfg.Normalize()
	return &Game{
		mode:       mode,
		cfg:        cfg,
		startLevel: startLevel,
		allLevels:  lvls,
		preset:     true,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSingle {
		return SingleID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSingle {
		return "Sokoban (Single Level)"
	}
	return "Sokoban"
}

// Reset initializes or restarts the game at the start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.clearedMoves = 0
	g.paused = false
	g.loadErr = nil
	g.finished = nil
	g.pal = newPalette(g.cfg.Theme)

	if !g.preset {
		_, logger := settings()
		lvls, err := LevelLoader(g.cfg, logger).LoadAll()
		if err != nil {
			g.loadErr = err
			return
		}
		g.allLevels = lvls
	}
	if len(g.allLevels) == 0 {
		g.loadErr = ErrNoLevels
		return
	}

	index := 0
	if g.startLevel != "" {
		if i := g.indexOf(g.startLevel); i >= 0 {
			index = i
		}
	}
	g.startAt(index)
}

func (g *Game) indexOf(id string) int {
	for i, lvl := range g.allLevels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

// startAt begins play on level i with a fresh session.
func (g *Game) startAt(i int) {
	g.levelIndex = i
	g.session = g.allLevels[i].NewSession()
	g.lastMove = core.MoveResult{}
	g.status = ""
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.levelClearTicks = 0
	g.checkScreenSize()
	g.checkEnd()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.loadErr != nil || g.tooSmall {
		return g.result()
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if in.Has(platformcore.ActionRestart) {
		if g.won && g.mode == ModeCampaign {
			g.clearedMoves = 0
			g.startAt(g.firstIndex())
		} else {
			g.restartLevel()
		}
		return g.result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Display.LevelClearTicks || in.Has(platformcore.ActionConfirm) {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.gameOver || g.won {
		return g.result()
	}

	if len(in.Queue) == 0 {
		if intent := intentFor(in); intent != core.IntentNone {
			g.apply(intent)
		}
		return g.result()
	}

	for _, a := range in.Queue {
		if g.gameOver || g.won || g.levelCleared {
			break
		}
		if intent := actionIntent(a); intent != core.IntentNone {
			g.apply(intent)
		}
	}
	return g.result()
}

// intentFor picks at most one intent from an unqueued frame. Undo wins over
// movement.
func intentFor(in platformcore.InputFrame) core.Intent {
	for _, a := range []platformcore.Action{
		platformcore.ActionUndo,
		platformcore.ActionUp,
		platformcore.ActionDown,
		platformcore.ActionLeft,
		platformcore.ActionRight,
	} {
		if in.Has(a) {
			return actionIntent(a)
		}
	}
	return core.IntentNone
}

func actionIntent(a platformcore.Action) core.Intent {
	switch a {
	case platformcore.ActionUndo:
		return core.IntentUndo
	case platformcore.ActionUp:
		return core.IntentUp
	case platformcore.ActionDown:
		return core.IntentDown
	case platformcore.ActionLeft:
		return core.IntentLeft
	case platformcore.ActionRight:
		return core.IntentRight
	default:
		return core.IntentNone
	}
}

func (g *Game) apply(intent core.Intent) {
	if intent == core.IntentUndo {
		g.lastMove = core.MoveResult{}
		if g.session.Undo() {
			g.status = "Move undone"
		} else {
			g.status = "Nothing to undo"
		}
		return
	}

	dir, _ := intent.Direction()
	g.lastMove = g.session.Apply(dir)
	g.status = describeMove(g.lastMove)
	g.checkEnd()
}

// checkEnd records the level result once the session is over.
func (g *Game) checkEnd() {
	switch g.session.Outcome() {
	case core.OutcomeWon:
		g.record(true)
		g.clearedMoves += g.session.Score()
		if g.mode == ModeSingle || g.levelIndex >= len(g.allLevels)-1 {
			g.won = true
		} else {
			g.levelCleared = true
			g.levelClearTicks = 0
		}
	case core.OutcomeLost:
		g.record(false)
		g.gameOver = true
	}
}

func (g *Game) record(won bool) {
	g.finished = append(g.finished, platformcore.LevelResult{
		Level: g.Level().ID,
		Moves: g.session.Score(),
		Won:   won,
	})
}

func (g *Game) restartLevel() {
	g.startAt(g.levelIndex)
	g.status = "Level restarted"
}

func (g *Game) firstIndex() int {
	if g.mode == ModeCampaign {
		return 0
	}
	return g.levelIndex
}

// advanceLevel moves to the next campaign level.
func (g *Game) advanceLevel() {
	if g.levelIndex >= len(g.allLevels)-1 {
		g.levelCleared = false
		g.won = true
		return
	}
	g.startAt(g.levelIndex + 1)
}

// Resize adapts the game to a new screen size without losing progress.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.session != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize checks if the screen fits the current level.
func (g *Game) checkScreenSize() {
	b := g.session.Current()
	minW := b.Cols()*g.cfg.Display.CellWidth + 2
	if minW < hudMinWidth {
		minW = hudMinWidth
	}
	minH := b.Rows() + 2 + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// result hands pending level results to the caller exactly once, including
// any recorded by Reset.
func (g *Game) result() platformcore.StepResult {
	finished := g.finished
	g.finished = nil
	return platformcore.StepResult{State: g.State(), Finished: finished}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		GameOver: g.loadErr != nil || g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
	if g.session != nil {
		st.Score = g.clearedMoves
		if !g.levelCleared && !g.won {
			st.Score += g.session.Score()
		}
		st.Level = g.Level().ID
	}
	return st
}

// Level returns the level in play.
func (g *Game) Level() levels.Level {
	if g.levelIndex < len(g.allLevels) {
		return g.allLevels[g.levelIndex]
	}
	return levels.Level{}
}

// Levels returns the loaded levels in play order.
func (g *Game) Levels() []levels.Level {
	return g.allLevels
}

// Session returns the session of the level in play, nil before Reset.
func (g *Game) Session() *core.Session {
	return g.session
}

// LoadErr returns the error that kept levels from loading, if any.
func (g *Game) LoadErr() error {
	return g.loadErr
}

func describeMove(res core.MoveResult) string {
	if !res.Changed {
		return "Blocked"
	}
	player, pieces := res.Lost()
	switch {
	case player:
		return "You fell into a hole!"
	case pieces:
		return "A piece sank into a hole"
	}
	for _, e := range res.Events {
		if e.Kind == core.EventSlide {
			return fmt.Sprintf("Slid to %s", res.Events[len(res.Events)-1].At)
		}
	}
	return ""
}
