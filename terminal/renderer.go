package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/board"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
)

// Glyphs
const (
	glyphWall      = '█'
	glyphHead      = '@'
	glyphBody      = 'o'
	glyphDeadHead  = 'X'
	glyphFruit     = '$'
	glyphPortal    = '·'
	glyphSeparator = '─'
)

// Renderer draws a game snapshot on a tcell screen
// The board is framed at the top-left with the status line below the frame
type Renderer struct {
	screen   tcell.Screen
	bindings input.Bindings
}

// NewRenderer creates a renderer; bindings label the help overlay
func NewRenderer(screen tcell.Screen, bindings input.Bindings) *Renderer {
	return &Renderer{
		screen:   screen,
		bindings: bindings,
	}
}

// Draw renders one full frame
func (r *Renderer) Draw(snap *game.Snapshot) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)

	r.drawFrame(snap, base)
	r.drawBoard(snap, base)
	r.drawStatusBar(snap, base)

	switch snap.State {
	case game.PausedMenu:
		r.drawMenu(snap, base)
	case game.PausedHelp:
		r.drawHelp(snap, base)
	case game.GameOver:
		r.drawGameOver(snap, base)
	}

	r.screen.Show()
}

// cell maps a board coordinate to the screen inside the frame
func cell(p board.Point) (int, int) {
	return p.X + 1, p.Y + 1
}

func (r *Renderer) drawFrame(snap *game.Snapshot, base tcell.Style) {
	right, bottom := snap.Width+1, snap.Height+1

	if snap.Boundary == board.Teleport {
		style := base.Foreground(RgbPortal)
		for x := 0; x <= right; x++ {
			r.screen.SetContent(x, 0, glyphPortal, nil, style)
			r.screen.SetContent(x, bottom, glyphPortal, nil, style)
		}
		for y := 1; y < bottom; y++ {
			r.screen.SetContent(0, y, glyphPortal, nil, style)
			r.screen.SetContent(right, y, glyphPortal, nil, style)
		}
		return
	}

	style := base.Foreground(RgbBorder)
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(0, 0, '┌', nil, style)
	r.screen.SetContent(right, 0, '┐', nil, style)
	r.screen.SetContent(0, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *Renderer) drawBoard(snap *game.Snapshot, base tcell.Style) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			sx, sy := cell(board.Point{X: x, Y: y})
			if snap.IsWall(x, y) {
				r.screen.SetContent(sx, sy, glyphWall, nil, base.Foreground(RgbWall))
			} else {
				r.screen.SetContent(sx, sy, ' ', nil, base)
			}
		}
	}

	fruitStyle := base.Foreground(RgbFruit).Bold(true)
	for _, f := range snap.Fruits {
		sx, sy := cell(f)
		r.screen.SetContent(sx, sy, glyphFruit, nil, fruitStyle)
	}

	// Tail first so the head wins on overlap after growth
	bodyStyle := base.Foreground(RgbSnakeBody)
	for i := len(snap.Snake) - 1; i > 0; i-- {
		sx, sy := cell(snap.Snake[i])
		r.screen.SetContent(sx, sy, glyphBody, nil, bodyStyle)
	}
	if len(snap.Snake) > 0 {
		sx, sy := cell(snap.Snake[0])
		if snap.Alive {
			r.screen.SetContent(sx, sy, glyphHead, nil, base.Foreground(RgbSnakeHead).Bold(true))
		} else {
			r.screen.SetContent(sx, sy, glyphDeadHead, nil, base.Foreground(RgbSnakeDead).Bold(true))
		}
	}
}

func (r *Renderer) drawStatusBar(snap *game.Snapshot, base tcell.Style) {
	y := snap.Height + 2
	style := base.Foreground(RgbStatusBar)

	x := r.drawText(0, y, fmt.Sprintf("Score %d  Level %d  ", snap.Score.Points, snap.Score.Level), style)
	x = r.drawText(x, y, fmt.Sprintf("High %d", snap.HighScore.Points), base.Foreground(RgbHighScore))
	x = r.drawText(x, y, fmt.Sprintf("  Time %s  Length %d", formatElapsed(snap.Elapsed), len(snap.Snake)), style)
	r.drawText(x, y, fmt.Sprintf("  [%s]", snap.Boundary), base.Foreground(RgbBorder))
}

func (r *Renderer) drawMenu(snap *game.Snapshot, base tcell.Style) {
	lines := make([]string, 0, len(snap.MenuItems)+2)
	lines = append(lines, "PAUSED", "")
	for _, item := range snap.MenuItems {
		lines = append(lines, item.Label)
	}
	x, y, w := r.drawPanel(snap, lines, base)

	panel := base.Background(RgbOverlay)
	for i, item := range snap.MenuItems {
		row := y + 2 + i
		switch {
		case item.Separator:
			for dx := 0; dx < w; dx++ {
				r.screen.SetContent(x+dx, row, glyphSeparator, nil, panel.Foreground(RgbBorder))
			}
		case i == snap.MenuSelection:
			r.fill(x, row, w, panel.Background(RgbSelection).Foreground(tcell.ColorBlack))
			r.drawText(x, row, item.Label, panel.Background(RgbSelection).Foreground(tcell.ColorBlack))
		}
	}
}

func (r *Renderer) drawHelp(snap *game.Snapshot, base tcell.Style) {
	b := r.bindings
	lines := []string{
		"HELP",
		"",
		fmt.Sprintf("%-6s %s %s %s", b.Up, b.Down, b.Left, b.Right) + "  steer",
		fmt.Sprintf("%-6s pause menu", b.Pause),
		fmt.Sprintf("%-6s this help", b.Help),
		fmt.Sprintf("%-6s quit", b.Quit),
		"",
		"Eat fruit to grow, avoid walls and yourself",
	}
	r.drawPanel(snap, lines, base)
}

func (r *Renderer) drawGameOver(snap *game.Snapshot, base tcell.Style) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score %d at level %d", snap.Score.Points, snap.Score.Level),
	}
	if snap.Score.Points > 0 && snap.HighScore.Points == snap.Score.Points {
		lines = append(lines, "New high score!")
	}
	lines = append(lines, "", fmt.Sprintf("enter: new game  %s: quit", r.bindings.Quit))
	r.drawPanel(snap, lines, base)
}

// drawPanel centers a text box over the board and returns its text origin and width
func (r *Renderer) drawPanel(snap *game.Snapshot, lines []string, base tcell.Style) (int, int, int) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	h := len(lines)

	x := max((snap.Width+2-w)/2, 1)
	y := max((snap.Height+2-h)/2, 1)

	panel := base.Background(RgbOverlay).Foreground(RgbStatusBar)
	for row := -1; row <= h; row++ {
		r.fill(x-1, y+row, w+2, panel)
	}
	for i, l := range lines {
		r.drawText(x, y+i, l, panel)
	}
	return x, y, w
}

func (r *Renderer) fill(x, y, w int, style tcell.Style) {
	for dx := 0; dx < w; dx++ {
		r.screen.SetContent(x+dx, y, ' ', nil, style)
	}
}

// drawText writes s from x and returns the column after it
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// formatElapsed renders mm:ss, growing to h:mm:ss past an hour
func formatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
