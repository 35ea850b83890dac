package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tile-arcade/internal/collision"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/tilemap"
)

// Visual characters for rendering
const (
	GroundChar   = '█'
	PlatformChar = '▀'
	BrickChar    = '▓'
	OtherChar    = '▒'
	PlayerChar   = '@'
	KeyChar      = '⚷'
)

// tileCols is the number of screen columns per tile; terminal cells are
// roughly twice as tall as they are wide.
const tileCols = 2

// hudRows is the number of screen rows above the map.
const hudRows = 1

var tileStyle = map[tilemap.Tile]struct {
	ch    rune
	color core.Color
}{
	1: {GroundChar, core.ColorGreen},
	2: {PlatformChar, core.ColorYellow},
	3: {BrickChar, core.ColorOrange},
}

// Camera maps grid cells to screen cells.
type Camera struct {
	X, Y int // top-left visible cell, in screen columns/rows of the full map
}

// Follow centers the camera on the actor, clamped to the map edges.
func Follow(w *World, viewW, viewH int) Camera {
	mapW := w.Grid.Width() * tileCols
	mapH := w.Grid.Height()
	col, row := worldToScreen(w, w.Actor.Body.Pos.X, w.Actor.Body.Pos.Y)

	return Camera{
		X: clampCam(col-viewW/2, mapW-viewW),
		Y: clampCam(row-viewH/2, mapH-viewH),
	}
}

func clampCam(v, hi int) int {
	if hi < 0 {
		return hi / 2 // map smaller than view: center it
	}
	return core.Clamp(v, 0, hi)
}

// worldToScreen converts a world point to full-map screen coordinates.
func worldToScreen(w *World, x, y float64) (col, row int) {
	ts := w.Grid.TileSize()
	col = int(math.Floor(x / ts * tileCols))
	row = int(math.Floor(-y / ts))
	return col, row
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world
	if w == nil {
		return
	}

	viewW, viewH := dst.Width(), dst.Height()-hudRows
	cam := Follow(w, viewW, viewH)

	w.Grid.EachSolid(func(row, col int, t tilemap.Tile) bool {
		y := row - cam.Y + hudRows
		if y < hudRows || y >= dst.Height() {
			return true
		}
		style, ok := tileStyle[t]
		if !ok {
			style.ch, style.color = OtherChar, core.ColorGray
		}
		for dx := 0; dx < tileCols; dx++ {
			x := col*tileCols + dx - cam.X
			dst.SetColor(x, y, style.ch, style.color)
		}
		return true
	})

	if w.Key != nil && w.Key.State == collision.Active {
		col, row := worldToScreen(w, w.Key.Box.X, w.Key.Box.Y)
		dst.SetColor(col-cam.X, row-cam.Y+hudRows, KeyChar, core.ColorBrightYellow)
	}

	col, row := worldToScreen(w, w.Actor.Body.Pos.X, w.Actor.Body.Pos.Y)
	if row-cam.Y >= 0 {
		dst.SetColor(col-cam.X, row-cam.Y+hudRows, PlayerChar, core.ColorBrightCyan)
	}

	g.drawHUD(dst)

	switch {
	case w.Won:
		dst.DrawMessage("LEVEL COMPLETE", fmt.Sprintf("Score: %d  |  Press R to restart", w.Score))
	case w.GameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", w.Score))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	name := w.Level.Name
	if name == "" {
		name = w.Level.ID
	}
	dst.DrawTextColor(1, 0, name, core.ColorBrightWhite)

	status := fmt.Sprintf("Score: %d  Lives: %d", w.Score, w.Lives)
	if w.Key != nil && w.Key.State == collision.Collected {
		status += "  Key: " + string(KeyChar)
	}
	dst.DrawText(dst.Width()-len([]rune(status))-1, 0, status)

	if g.loadErr != nil {
		dst.DrawTextColor(len([]rune(name))+3, 0, "(defaults: load error)", core.ColorRed)
	}
}
