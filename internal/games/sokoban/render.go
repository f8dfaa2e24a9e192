package sokoban

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const (
	hudHeight    = 3  // title, level and progress rows
	footerHeight = 2  // status and help rows
	hudMinWidth  = 36 // narrowest screen the HUD fits on
)

// palette holds the first rune of each theme glyph.
type palette struct {
	floor, wall, player, box, trophy, hole, ice, target rune
}

func newPalette(t config.ThemeConfig) palette {
	return palette{
		floor:  firstRune(t.Floor),
		wall:   firstRune(t.Wall),
		player: firstRune(t.Player),
		box:    firstRune(t.Box),
		trophy: firstRune(t.Trophy),
		hole:   firstRune(t.Hole),
		ice:    firstRune(t.Ice),
		target: firstRune(t.Target),
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ' '
	}
	return r
}

// pieceColors maps piece colors to screen colors. Satisfied targets use the
// bright variant.
var pieceColors = map[core.Color][2]platformcore.Color{
	core.ColorRed:    {platformcore.ColorRed, platformcore.ColorBrightRed},
	core.ColorGreen:  {platformcore.ColorGreen, platformcore.ColorBrightGreen},
	core.ColorBlue:   {platformcore.ColorBlue, platformcore.ColorBrightBlue},
	core.ColorYellow: {platformcore.ColorYellow, platformcore.ColorBrightYellow},
}

func screenColor(c core.Color, bright bool) platformcore.Color {
	pair, ok := pieceColors[c]
	if !ok {
		return platformcore.ColorWhite
	}
	if bright {
		return pair[1]
	}
	return pair[0]
}

// glyphFor returns what to draw for a cell and whether the glyph fills
// the whole cell width.
func (p palette) glyphFor(c core.Cell) (r rune, color platformcore.Color, fill bool) {
	switch c.Occupant.Kind {
	case core.OccupantWall:
		return p.wall, platformcore.ColorGray, true
	case core.OccupantPlayer:
		return p.player, platformcore.ColorBrightWhite, false
	case core.OccupantBox:
		return p.box, platformcore.ColorOrange, false
	case core.OccupantTrophy:
		return p.trophy, screenColor(c.Occupant.Color, c.IsSatisfied()), false
	case core.OccupantHole:
		return p.hole, platformcore.ColorMagenta, false
	}

	switch c.Ground.Kind {
	case core.GroundTarget:
		return p.target, screenColor(c.Ground.Color, false), false
	case core.GroundIce:
		return p.ice, platformcore.ColorCyan, true
	default:
		return p.floor, platformcore.ColorDefault, true
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderLoadError(dst)
		return
	}
	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	b := g.session.Current()
	cw := g.cfg.Display.CellWidth
	frame := platformcore.NewRect(0, 0, g.screenW, g.screenH).CenterIn(b.Cols()*cw+2, b.Rows()+2)
	frame.Y = hudHeight

	g.renderHUD(dst, frame)
	g.renderBoard(dst, b, frame.X+1, frame.Y+1)
	dst.DrawBox(frame, platformcore.ColorGray)
	g.renderFooter(dst, frame)
	g.renderOverlays(dst, frame)
}

func (g *Game) renderLoadError(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColor(y-1, "Could not load levels", platformcore.ColorRed)
	dst.DrawTextCentered(y, g.loadErr.Error())
	dst.DrawTextCentered(y+1, "Press Q to quit")
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, level and progress rows above the board.
func (g *Game) renderHUD(dst *platformcore.Screen, frame platformcore.Rect) {
	dst.DrawTextCenteredColor(0, "SOKOBAN", platformcore.ColorBrightYellow)

	left := frame.X
	right := frame.Right()
	if frame.W < hudMinWidth {
		left = (g.screenW - hudMinWidth) / 2
		right = left + hudMinWidth
	}

	lvl := g.Level()
	info := fmt.Sprintf("Level %d/%d", g.levelIndex+1, len(g.allLevels))
	if g.mode == ModeSingle {
		info = "Level " + lvl.ID
	}
	dst.DrawText(left, 1, info)

	moves := fmt.Sprintf("Moves: %d", g.session.Score())
	dst.DrawText(right-utf8.RuneCountInString(moves), 1, moves)

	dst.DrawTextColor(left, 2, lvl.Title(), platformcore.ColorCyan)

	b := g.session.Current()
	progress := fmt.Sprintf("Targets %d/%d", b.Satisfied(), b.Targets())
	dst.DrawText(right-utf8.RuneCountInString(progress), 2, progress)
}

// renderBoard draws every cell, CellWidth columns per cell.
func (g *Game) renderBoard(dst *platformcore.Screen, b *core.Board, x0, y0 int) {
	cw := g.cfg.Display.CellWidth
	b.Each(func(c core.Cell) {
		r, color, fill := g.pal.glyphFor(c)
		x := x0 + c.Pos.Col*cw
		y := y0 + c.Pos.Row
		dst.SetWithColor(x, y, r, color)
		for i := 1; i < cw; i++ {
			if fill {
				dst.SetWithColor(x+i, y, r, color)
			} else {
				dst.Set(x+i, y, ' ')
			}
		}
	})
}

func (g *Game) renderFooter(dst *platformcore.Screen, frame platformcore.Rect) {
	if g.status != "" {
		color := platformcore.ColorDefault
		if player, pieces := g.lastMove.Lost(); player || pieces {
			color = platformcore.ColorBrightRed
		}
		dst.DrawTextCenteredColor(frame.Bottom(), g.status, color)
	}
	if g.cfg.Display.ShowHelp {
		dst.DrawTextCenteredColor(g.screenH-1, g.Controls(), platformcore.ColorGray)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, frame platformcore.Rect) {
	centerX := frame.X + frame.W/2
	centerY := frame.Y + frame.H/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		g.drawOverlay(dst, centerX, centerY,
			"LEVEL CLEAR!",
			fmt.Sprintf("Solved in %d moves", g.session.Score()),
			"Enter: next level")
	case g.won && g.mode == ModeCampaign:
		g.drawOverlay(dst, centerX, centerY,
			"ALL LEVELS COMPLETE!",
			fmt.Sprintf("Total moves: %d", g.clearedMoves),
			"R: play again  Esc: menu")
	case g.won:
		g.drawOverlay(dst, centerX, centerY,
			"LEVEL COMPLETE!",
			fmt.Sprintf("Solved in %d moves", g.session.Score()),
			"R: play again  Esc: menu")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, "YOU FELL IN A HOLE", "R: retry level")
	}
}

// drawOverlay draws a boxed block of centered lines.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := platformcore.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColor(x, box.Y+1+i, line, platformcore.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | U: Undo | R: Restart | P: Pause | Q: Quit"
}
