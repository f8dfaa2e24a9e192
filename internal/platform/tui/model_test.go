package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	sokocore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

func corridorLevel(t *testing.T, id string) levels.Level {
	t.Helper()
	b, err := sokocore.ParseLayers("_______\n____R__\n_______", "WWWWWWW\nW>r___W\nWWWWWWW")
	if err != nil {
		t.Fatalf("ParseLayers() error: %v", err)
	}
	return levels.Level{ID: id, Board: b}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send feeds msg to the model followed by one tick of its own loop.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	m = next.(Model)
	next, _ = m.Update(TickMsg{Loop: m.loop})
	return next.(Model)
}

func newGameModel(t *testing.T, store *storage.Store, mode sokoban.Mode) Model {
	t.Helper()
	game := sokoban.NewWithLevels(mode, []levels.Level{corridorLevel(t, "a")}, "", config.DefaultSokobanConfig())
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})
	m.Init()
	return m
}

func TestModelSavesFinishedLevel(t *testing.T) {
	store := openStore(t)
	m := newGameModel(t, store, sokoban.ModeSingle)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if !m.State().GameOver {
		t.Fatal("level should be finished")
	}
	best, ok, err := store.BestMoves("a")
	if err != nil || !ok || best != 2 {
		t.Errorf("BestMoves() = %d, %v, %v, want 2, true, nil", best, ok, err)
	}

	// Later ticks must not save again.
	m = send(t, m, nil)
	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("saved %d results, expected 1", len(results))
	}
	if results[0].GameID != sokoban.SingleID {
		t.Errorf("GameID = %q, expected %q", results[0].GameID, sokoban.SingleID)
	}
}

func TestModelKeepsEveryKeyInTick(t *testing.T) {
	b, err := sokocore.ParseLayers(
		"________\n______R_\n________",
		"WWWWWWWW\nW>_r___W\nWWWWWWWW",
	)
	if err != nil {
		t.Fatalf("ParseLayers() error: %v", err)
	}
	game := sokoban.NewWithLevels(sokoban.ModeCampaign, []levels.Level{{ID: "long", Board: b}}, "", config.DefaultSokobanConfig())
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})
	m.Init()

	for i := 0; i < 3; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(Model)
	}
	m = send(t, m, nil)

	if got := m.State().Score; got != 3 {
		t.Errorf("score = %d, expected 3", got)
	}
	if _, got := game.Session().Current().Layers(); got != "WWWWWWWW\nW___>r_W\nWWWWWWWW" {
		t.Errorf("content = %q, expected the player three cells on", got)
	}
}

func TestModelSavesPreSolvedLevel(t *testing.T) {
	b, err := sokocore.ParseLayers("____\n__R_\n____", "WWWW\nW>rW\nWWWW")
	if err != nil {
		t.Fatalf("ParseLayers() error: %v", err)
	}
	store := openStore(t)
	game := sokoban.NewWithLevels(sokoban.ModeSingle, []levels.Level{{ID: "done", Board: b}}, "", config.DefaultSokobanConfig())
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})
	m.Init()
	m = send(t, m, nil)

	best, ok, err := store.BestMoves("done")
	if err != nil || !ok || best != 0 {
		t.Errorf("BestMoves() = %d, %v, %v, want 0, true, nil", best, ok, err)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newGameModel(t, nil, sokoban.ModeCampaign)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	next, cmd := m.Update(TickMsg{Loop: m.loop + 1000})
	m = next.(Model)
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if m.game.(*sokoban.Game).Session().Score() != 0 {
		t.Error("stale tick should not step the game")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newGameModel(t, nil, sokoban.ModeCampaign)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(Model).BackToMenu() || cmd == nil {
		t.Error("esc should leave to the menu")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsProgress(t *testing.T) {
	m := newGameModel(t, nil, sokoban.ModeCampaign)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if got := m.game.(*sokoban.Game).Session().Score(); got != 1 {
		t.Errorf("score after resize = %d, expected 1", got)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	old := ScreenshotDir
	ScreenshotDir = dir
	t.Cleanup(func() { ScreenshotDir = old })

	m := newGameModel(t, nil, sokoban.ModeCampaign)
	m = send(t, m, nil)
	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() error: %v", err)
	}
	if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), "sokoban_a_") {
		t.Errorf("screenshot path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "SOKOBAN") {
		t.Error("screenshot does not contain the rendered screen")
	}
}

func TestMenuModel(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveResult(sokoban.SingleID, "b", 7, true); err != nil {
		t.Fatalf("SaveResult() error: %v", err)
	}

	lvls := []levels.Level{corridorLevel(t, "a"), corridorLevel(t, "b")}
	m := NewMenuModel(lvls, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if len(m.items) != 3 || m.items[0].GameID != sokoban.CampaignID {
		t.Fatalf("items = %+v, expected campaign plus two levels", m.items)
	}
	if m.items[2].Best != 7 {
		t.Errorf("best for b = %d, expected 7", m.items[2].Best)
	}
	if !strings.Contains(m.View(), "best 7") {
		t.Error("menu does not show best moves")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID != sokoban.SingleID || sel.StartLevel != "b" {
		t.Errorf("Selected() = %+v, expected single level b", sel)
	}
}

func TestScoreboardModel(t *testing.T) {
	store := openStore(t)
	for _, moves := range []int{9, 5} {
		if _, err := store.SaveResult(sokoban.CampaignID, "a", moves, true); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	lvls := []levels.Level{corridorLevel(t, "a"), corridorLevel(t, "b")}
	m := NewScoreboardModel(lvls, store, "a", 100, 30)

	if len(m.results) != 2 || m.results[0].Moves != 5 {
		t.Fatalf("results = %+v, expected best first", m.results)
	}
	if !strings.Contains(m.View(), "Attempts: 2") {
		t.Error("stats line missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 1 || len(m.results) != 0 {
		t.Errorf("after tab cursor = %d results = %d, expected level b without results", m.cursor, len(m.results))
	}
	if !strings.Contains(m.View(), "No solutions recorded yet") {
		t.Error("empty message missing")
	}
}

func TestSessionModelTransitions(t *testing.T) {
	store := openStore(t)
	lvls := []levels.Level{corridorLevel(t, "a")}
	var m tea.Model = NewSessionModel(lvls, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, log.New(io.Discard))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if s := m.(SessionModel); s.scoreboard == nil {
		t.Fatal("tab did not open the scoreboard")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s := m.(SessionModel); s.scoreboard != nil || s.quitting {
		t.Fatal("esc on the scoreboard did not return to the menu")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s := m.(SessionModel); s.gameModel == nil || s.gameModel.game.ID() != sokoban.CampaignID {
		t.Fatal("enter did not start the campaign")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s := m.(SessionModel); s.gameModel != nil || s.quitting {
		t.Fatal("esc in the game did not return to the menu")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if s := m.(SessionModel); !s.quitting || m.View() != "" {
		t.Error("q in the menu did not end the session")
	}
}
