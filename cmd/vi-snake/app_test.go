package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/score"
	"github.com/lixenwraith/vi-snake/terminal"
)

func newTestApp(t *testing.T, cfg config.Game, opts ...game.Option) (*app, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	clock := engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	logger, _ := test.NewNullLogger()
	opts = append([]game.Option{
		game.WithTimeProvider(clock),
		game.WithRand(rand.New(rand.NewSource(5))),
		game.WithLogger(logger),
	}, opts...)

	g, err := game.New(cfg, input.DefaultBindings(), &score.HighScore{}, opts...)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	return &app{
		game:          g,
		renderer:      terminal.NewRenderer(screen, input.DefaultBindings()),
		sound:         audio.NewSoundManager(logger),
		logger:        logger,
		highScorePath: filepath.Join(t.TempDir(), "highscore.toml"),
	}, screen, clock
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestAppOneKeyPerFrame(t *testing.T) {
	a, screen, _ := newTestApp(t, config.DefaultGame())

	a.handleEvent(key(tcell.KeyRune, 'p'), screen)
	a.handleEvent(key(tcell.KeyRune, 'p'), screen)

	a.frame()
	if a.game.State() != game.PausedMenu {
		t.Fatalf("Expected paused after first frame, got %v", a.game.State())
	}
	a.frame()
	if a.game.State() != game.Running {
		t.Errorf("Expected running after second frame, got %v", a.game.State())
	}
}

func TestAppDropsKeysPastBuffer(t *testing.T) {
	a, screen, _ := newTestApp(t, config.DefaultGame())

	for i := 0; i < maxPendingKeys+4; i++ {
		a.handleEvent(key(tcell.KeyRune, 'x'), screen)
	}
	if len(a.pending) != maxPendingKeys {
		t.Errorf("Expected %d pending keys, got %d", maxPendingKeys, len(a.pending))
	}

	// Unmapped keys are never buffered
	a.pending = nil
	a.handleEvent(key(tcell.KeyCtrlA, 0), screen)
	if len(a.pending) != 0 {
		t.Errorf("Expected no pending keys, got %d", len(a.pending))
	}
}

func TestAppInterruptEnds(t *testing.T) {
	a, screen, _ := newTestApp(t, config.DefaultGame())

	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), screen)
	if !a.done {
		t.Error("Expected Ctrl+C to end the loop")
	}
}

func TestAppQuitKeyEnds(t *testing.T) {
	a, screen, _ := newTestApp(t, config.DefaultGame())

	a.handleEvent(key(tcell.KeyRune, 'q'), screen)
	a.frame()
	if !a.done {
		t.Error("Expected quit key to end the loop")
	}
}

func TestAppEnterRestartsAfterDeath(t *testing.T) {
	a, screen, clock := newTestApp(t, config.DefaultGame(), game.WithStart(77, 5))

	clock.Advance(time.Second)
	a.frame()
	if !a.game.IsOver() {
		t.Fatal("Expected snake to die at the solid edge")
	}
	first := a.game.ID()

	a.handleEvent(key(tcell.KeyEnter, 0), screen)
	a.frame()

	if a.game.IsOver() {
		t.Error("Expected a new running session")
	}
	if a.game.ID() == first {
		t.Error("Expected a new session id")
	}
	if a.game.State() != game.Running {
		t.Errorf("Expected Enter not to reach the new session, got %v", a.game.State())
	}
}

func TestAppReturnToMenuStartsNewSession(t *testing.T) {
	a, screen, _ := newTestApp(t, config.DefaultGame())
	first := a.game.ID()

	for _, ev := range []*tcell.EventKey{key(tcell.KeyEnter, 0), key(tcell.KeyDown, 0), key(tcell.KeyEnter, 0)} {
		a.handleEvent(ev, screen)
	}
	a.frame()
	a.frame()
	a.frame()

	if a.game.ID() == first {
		t.Error("Expected return to menu to start a new session")
	}
	if a.done {
		t.Error("Expected the loop to keep running")
	}
}

func TestAppSavesHighScore(t *testing.T) {
	// 2x1 board: the only free cell holds the fruit, the step after it hits the edge
	cfg := config.DefaultGame()
	cfg.BoardWidth = 2
	cfg.BoardHeight = 1
	a, _, clock := newTestApp(t, cfg, game.WithStart(0, 0))

	clock.Advance(time.Second)
	a.frame()
	if got := a.game.Score().Points; got != 2 {
		t.Fatalf("Expected 2 points after eating, got %d", got)
	}

	clock.Advance(time.Second)
	a.frame()
	if !a.game.IsOver() {
		t.Fatal("Expected death at the edge")
	}

	hs, err := config.LoadHighScore(a.highScorePath)
	if err != nil {
		t.Fatalf("Failed to load high score: %v", err)
	}
	want := score.HighScore{Points: 2, Level: 1}
	if hs != want {
		t.Errorf("Expected saved %+v, got %+v", want, hs)
	}
}
