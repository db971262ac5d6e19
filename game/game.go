// Package game owns one snake session: the simulation, its timers and the pause/help/menu state machine
package game

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/board"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/fruit"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/menu"
	"github.com/lixenwraith/vi-snake/player"
	"github.com/lixenwraith/vi-snake/score"
	"github.com/lixenwraith/vi-snake/status"
)

// ErrStartOutOfBounds is returned when the spawn cell is outside the board
var ErrStartOutOfBounds = errors.New("snake start outside the board")

// Game is the session orchestrator
// Single-threaded: HandleInput, Update and the queries are called from one frame loop
type Game struct {
	cfg      config.Game
	bindings input.Bindings
	high     *score.HighScore
	start    board.Point

	provider engine.TimeProvider
	rng      *rand.Rand
	logger   logrus.FieldLogger
	stats    *status.Registry

	// Cached counters
	statSteps  *atomic.Int64
	statFruits *atomic.Int64
	statPauses *atomic.Int64
	statDeaths *atomic.Int64
	statHigh   *atomic.Int64
	statPaused *atomic.Bool
	statOver   *atomic.Bool

	s      *session
	events eventQueue
}

// session is the state owned by one playthrough, replaced wholesale by Start
type session struct {
	id     uuid.UUID
	board  *board.Board
	snake  *player.Snake
	fruits *fruit.Manager
	score  score.Score
	menu   *menu.Menu
	state  State

	timer      engine.PausableClock // Wall-clock time since start
	timerSnake engine.PausableClock // Step cadence, restarted every step

	userAskedToQuit     bool
	userAskedToGoToMenu bool

	log *logrus.Entry
}

// New validates the configuration and starts the first session
// high is read at death and overwritten when beaten; nil keeps a private record
func New(cfg config.Game, bindings input.Bindings, high *score.HighScore, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	if err := bindings.Validate(); err != nil {
		return nil, fmt.Errorf("game bindings: %w", err)
	}
	if high == nil {
		high = &score.HighScore{}
	}

	g := &Game{
		cfg:      cfg,
		bindings: bindings,
		high:     high,
		start:    DefaultStart,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.start.X < 0 || g.start.X >= cfg.BoardWidth || g.start.Y < 0 || g.start.Y >= cfg.BoardHeight {
		return nil, fmt.Errorf("%w: %v on %dx%d", ErrStartOutOfBounds, g.start, cfg.BoardWidth, cfg.BoardHeight)
	}

	if g.provider == nil {
		g.provider = engine.NewMonotonicTimeProvider()
	}
	if g.rng == nil {
		seed := uint64(cfg.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
	if g.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		g.logger = l
	}
	if g.stats == nil {
		g.stats = status.NewRegistry()
	}
	g.statSteps = g.stats.Counter(status.Steps)
	g.statFruits = g.stats.Counter(status.FruitsEaten)
	g.statPauses = g.stats.Counter(status.Pauses)
	g.statDeaths = g.stats.Counter(status.Deaths)
	g.statHigh = g.stats.Counter(status.HighScores)
	g.statPaused = g.stats.Flag(status.Paused)
	g.statOver = g.stats.Flag(status.Over)

	if err := g.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

// Start discards the current session and begins a fresh one in Running
func (g *Game) Start() error {
	b, err := board.New(g.cfg.BoardWidth, g.cfg.BoardHeight, g.cfg.Boundary)
	if err != nil {
		return fmt.Errorf("game board: %w", err)
	}

	snake := player.New(g.start.X, g.start.Y)
	if g.cfg.RandomWalls {
		b.RandomlyFillExceptBy(g.start.X, g.start.Y, g.rng)
	}

	fruits, err := fruit.NewManager(g.cfg.FruitsAtOnce, g.rng)
	if err != nil {
		return fmt.Errorf("game fruit: %w", err)
	}
	fruits.Update(snake, b)

	id := uuid.New()
	s := &session{
		id:         id,
		board:      b,
		snake:      snake,
		fruits:     fruits,
		score:      score.New(g.cfg.StartingLevel),
		menu:       menu.NewPauseMenu(),
		state:      Running,
		timer:      engine.NewPausableClock(g.provider),
		timerSnake: engine.NewPausableClock(g.provider),
		log: g.logger.WithFields(logrus.Fields{
			"session": id.String(),
			"level":   g.cfg.StartingLevel,
		}),
	}

	g.s = s
	g.events = eventQueue{}
	g.stats.Counter(status.Sessions).Add(1)
	g.statPaused.Store(false)
	g.statOver.Store(false)

	s.log.WithFields(logrus.Fields{
		"board":    fmt.Sprintf("%dx%d", b.Width(), b.Height()),
		"boundary": b.Mode().String(),
		"walls":    len(b.Walls()),
		"fruits":   fruits.Count(),
	}).Info("session started")
	return nil
}

// transition moves to state to when the table allows it
func (g *Game) transition(to State) bool {
	s := g.s
	from := s.state
	if !CanTransition(from, to) {
		s.log.WithFields(logrus.Fields{"from": from, "to": to}).Warn("rejected state transition")
		return false
	}
	s.state = to
	g.statPaused.Store(to.Paused())
	s.log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("state transition")
	return true
}

// Pause stops or resumes both timers
// Pausing enters the pause menu; resuming leaves either overlay
// Repeated calls with the same value are no-ops
func (g *Game) Pause(pause bool) {
	s := g.s
	if pause {
		if s.state != Running {
			return
		}
		g.enterPause(PausedMenu)
		return
	}

	if !s.state.Paused() {
		return
	}
	g.transition(Running)
	s.timer.Resume()
	s.timerSnake.Resume()
	g.events.push(Event{Type: EventResumed, Points: s.score.Points})
}

func (g *Game) enterPause(overlay State) {
	s := g.s
	if !g.transition(overlay) {
		return
	}
	s.timer.Pause()
	s.timerSnake.Pause()
	g.statPauses.Add(1)
	g.events.push(Event{Type: EventPaused, Points: s.score.Points})
}

// Update advances the session by at most one snake step
// While paused only the menu result is handled; calls before the
// level delay has elapsed leave the simulation untouched
func (g *Game) Update() {
	s := g.s
	switch s.state {
	case PausedMenu:
		g.updateMenu()
		return
	case PausedHelp, GameOver:
		return
	}

	if s.timerSnake.Elapsed() < score.Delay(s.score.Level) {
		return
	}

	// Dead from an earlier step or from outside
	if !s.snake.IsAlive() {
		g.gameOver()
		return
	}

	s.snake.Update(s.board)
	g.statSteps.Add(1)
	if !s.snake.IsAlive() {
		g.gameOver()
		return
	}

	for s.fruits.EatenFruit(s.snake) {
		s.snake.Increase()
		s.score.AddFruit()
		g.statFruits.Add(1)
		g.events.push(Event{Type: EventFruitEaten, At: s.snake.Head(), Points: s.score.Points})
		s.log.WithFields(logrus.Fields{
			"points": s.score.Points,
			"length": s.snake.Len(),
		}).Debug("fruit eaten")
	}
	s.fruits.Update(s.snake, s.board)

	s.timerSnake.Start()
}

// updateMenu acts on a confirmed pause menu selection
func (g *Game) updateMenu() {
	s := g.s
	if !s.menu.Completed() {
		return
	}

	switch id := s.menu.CurrentID(); id {
	case menu.Resume:
		g.Pause(false)
	case menu.QuitToMenu:
		s.userAskedToGoToMenu = true
		s.log.Debug("return to menu requested")
	case menu.QuitGame:
		s.userAskedToQuit = true
		s.log.Debug("quit requested from menu")
	default:
		s.log.WithField("item", id).Warn("unhandled menu item")
	}
	s.menu.Reset()
}

// gameOver ends the session and records a beaten high score
func (g *Game) gameOver() {
	s := g.s
	if !g.transition(GameOver) {
		return
	}
	s.timer.Pause()
	s.timerSnake.Pause()
	g.statOver.Store(true)
	g.statDeaths.Add(1)

	g.events.push(Event{Type: EventDied, At: s.snake.Head(), Points: s.score.Points})
	s.log.WithFields(logrus.Fields{
		"points": s.score.Points,
		"length": s.snake.Len(),
	}).Info("snake died")

	if g.high.Submit(s.score) {
		g.statHigh.Add(1)
		g.events.push(Event{Type: EventHighScore, Points: s.score.Points})
		s.log.WithField("points", s.score.Points).Info("new high score")
	}
}

// IsOver reports whether the snake died this session
func (g *Game) IsOver() bool {
	return g.s.state == GameOver
}

// WillQuit reports whether the user asked to quit the program
func (g *Game) WillQuit() bool {
	return g.s.userAskedToQuit
}

// WillReturnToMenu reports whether the user asked to leave to the main menu
func (g *Game) WillReturnToMenu() bool {
	return g.s.userAskedToGoToMenu
}

// State returns the top-level state
func (g *Game) State() State {
	return g.s.state
}

// ID returns the current session identifier
func (g *Game) ID() uuid.UUID {
	return g.s.id
}

// Score returns the current points and level
func (g *Game) Score() score.Score {
	return g.s.score
}

// HighScore returns a copy of the high score record
func (g *Game) HighScore() score.HighScore {
	return *g.high
}

// Elapsed returns session time excluding pauses
func (g *Game) Elapsed() time.Duration {
	return g.s.timer.Elapsed()
}

// Status returns the counter registry
func (g *Game) Status() *status.Registry {
	return g.stats
}

// DrainEvents returns and clears the events since the last call
func (g *Game) DrainEvents() []Event {
	return g.events.consume()
}
