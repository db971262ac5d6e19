package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/terminal"
)

// maxPendingKeys bounds keys buffered between frames; extra keys are dropped
const maxPendingKeys = 8

// app couples one game with its front-end collaborators
type app struct {
	game     *game.Game
	renderer *terminal.Renderer
	sound    *audio.SoundManager
	logger   logrus.FieldLogger

	highScorePath string
	pending       []input.Code
	done          bool
}

// handleEvent buffers key presses and reacts to resize
func (a *app) handleEvent(ev tcell.Event, screen tcell.Screen) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if terminal.IsInterrupt(ev) {
			a.done = true
			return
		}
		code := terminal.KeyCode(ev)
		if code == input.None || len(a.pending) >= maxPendingKeys {
			return
		}
		a.pending = append(a.pending, code)
	case *tcell.EventResize:
		screen.Sync()
	}
}

// nextKey pops the oldest buffered key
func (a *app) nextKey() input.Code {
	if len(a.pending) == 0 {
		return input.None
	}
	c := a.pending[0]
	a.pending = a.pending[1:]
	return c
}

// frame runs one input, one update and one draw
func (a *app) frame() {
	code := a.nextKey()

	if a.game.IsOver() && input.IsConfirm(code) {
		a.restart("new game after death")
		code = input.None
	}

	a.game.HandleInput(code)
	a.game.Update()
	a.dispatchEvents()

	if a.game.WillQuit() {
		a.done = true
		return
	}
	if a.game.WillReturnToMenu() {
		// No main menu in this binary; leaving the session starts another
		a.restart("returned to menu")
	}

	snap := a.game.Snapshot()
	a.renderer.Draw(&snap)
}

func (a *app) restart(reason string) {
	if err := a.game.Start(); err != nil {
		a.logger.WithError(err).Error("session restart failed")
		a.done = true
		return
	}
	a.pending = a.pending[:0]
	a.logger.WithField("reason", reason).Debug("session restarted")
}

// dispatchEvents plays cues and persists a beaten high score
func (a *app) dispatchEvents() {
	for _, ev := range a.game.DrainEvents() {
		switch ev.Type {
		case game.EventFruitEaten:
			a.sound.PlayEat()
		case game.EventDied:
			a.sound.PlayDeath()
		case game.EventPaused, game.EventResumed:
			a.sound.PlayPause()
		case game.EventHighScore:
			a.saveHighScore()
		}
	}
}

func (a *app) saveHighScore() {
	if a.highScorePath == "" {
		return
	}
	hs := a.game.HighScore()
	if err := config.SaveHighScore(a.highScorePath, hs); err != nil {
		a.logger.WithError(err).Warn("high score not saved")
		return
	}
	a.logger.WithFields(logrus.Fields{
		"points": hs.Points,
		"path":   a.highScorePath,
	}).Info("high score saved")
}
