package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/board"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/menu"
	"github.com/lixenwraith/vi-snake/score"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func testSnapshot() game.Snapshot {
	walls := make([][]bool, 5)
	for y := range walls {
		walls[y] = make([]bool, 10)
	}
	walls[3][7] = true

	return game.Snapshot{
		State:     game.Running,
		Width:     10,
		Height:    5,
		Boundary:  board.Solid,
		Walls:     walls,
		Snake:     []board.Point{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Alive:     true,
		Fruits:    []board.Point{{X: 5, Y: 2}},
		Score:     score.Score{Points: 6, Level: 3},
		HighScore: score.HighScore{Points: 40, Level: 5},
		MenuItems: menu.NewPauseMenu().Items(),
		Elapsed:   83 * time.Second,
	}
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(runeAt(screen, x, y))
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.WriteString(rowText(screen, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestDrawBoard(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, input.DefaultBindings())
	snap := testSnapshot()

	r.Draw(&snap)

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{11, 0, '┐'},
		{0, 6, '└'},
		{11, 6, '┘'},
		{3, 2, glyphHead},
		{2, 2, glyphBody},
		{6, 3, glyphFruit},
		{8, 4, glyphWall},
	}
	for _, c := range checks {
		if got := runeAt(screen, c.x, c.y); got != c.want {
			t.Errorf("At (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}

	status := rowText(screen, 7)
	for _, want := range []string{"Score 6", "Level 3", "High 40", "Time 01:23", "Length 2", "[solid]"} {
		if !strings.Contains(status, want) {
			t.Errorf("Expected status line to contain %q, got %q", want, status)
		}
	}
}

func TestDrawTeleportFrameAndDeadHead(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, input.DefaultBindings())
	snap := testSnapshot()
	snap.Boundary = board.Teleport
	snap.Alive = false

	r.Draw(&snap)

	if got := runeAt(screen, 0, 0); got != glyphPortal {
		t.Errorf("Expected portal corner, got %q", got)
	}
	if got := runeAt(screen, 3, 2); got != glyphDeadHead {
		t.Errorf("Expected dead head glyph, got %q", got)
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		state game.State
		want  []string
	}{
		{game.Running, nil},
		{game.PausedMenu, []string{"PAUSED", "Resume", "Quit to Main Menu", "Quit Game"}},
		{game.PausedHelp, []string{"HELP", "pause menu", "quit"}},
		{game.GameOver, []string{"GAME OVER", "Score 6 at level 3", "enter: new game"}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			screen := newTestScreen(t)
			r := NewRenderer(screen, input.DefaultBindings())
			snap := testSnapshot()
			snap.State = tt.state

			r.Draw(&snap)

			text := screenText(screen)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Expected screen to contain %q", want)
				}
			}
		})
	}
}

func TestDrawGameOverNewHighScore(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, input.DefaultBindings())
	snap := testSnapshot()
	snap.State = game.GameOver
	snap.HighScore = score.HighScore{Points: 6, Level: 3}

	r.Draw(&snap)

	if !strings.Contains(screenText(screen), "New high score!") {
		t.Error("Expected new high score banner")
	}
}

func TestDrawLiveGame(t *testing.T) {
	screen := newTestScreen(t)
	g, err := game.New(config.DefaultGame(), input.DefaultBindings(), nil,
		game.WithRand(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	r := NewRenderer(screen, input.DefaultBindings())

	snap := g.Snapshot()
	r.Draw(&snap)

	if got := runeAt(screen, 6, 6); got != glyphHead {
		t.Errorf("Expected head at spawn, got %q", got)
	}
	f := snap.Fruits[0]
	if got := runeAt(screen, f.X+1, f.Y+1); got != glyphFruit {
		t.Errorf("Expected fruit at %v, got %q", f, got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{83*time.Second + 900*time.Millisecond, "01:23"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v): expected %q, got %q", tt.d, tt.want, got)
		}
	}
}
