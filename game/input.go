package game

import (
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/menu"
	"github.com/lixenwraith/vi-snake/player"
)

// menuInputs maps navigation actions to pause menu commands
var menuInputs = map[input.Action]menu.Input{
	input.ActionUp:      menu.Previous,
	input.ActionDown:    menu.Next,
	input.ActionHome:    menu.First,
	input.ActionEnd:     menu.Last,
	input.ActionConfirm: menu.Confirm,
}

// steering maps direction actions to snake headings
var steering = map[input.Action]player.Direction{
	input.ActionLeft:  player.Left,
	input.ActionRight: player.Right,
	input.ActionUp:    player.Up,
	input.ActionDown:  player.Down,
}

// HandleInput routes one key code through the current state
// Quit is honored in every state; everything else is ignored after death
func (g *Game) HandleInput(c input.Code) {
	if c == input.None {
		return
	}

	s := g.s
	action := g.bindings.Action(c)

	switch action {
	case input.ActionNone:
		return
	case input.ActionQuit:
		s.userAskedToQuit = true
		s.log.Debug("quit requested")
		return
	}

	if s.state == GameOver {
		return
	}

	switch action {
	case input.ActionPause:
		g.Pause(!s.state.Paused())
		return
	case input.ActionHelp:
		switch s.state {
		case Running:
			g.enterPause(PausedHelp)
		case PausedHelp:
			g.Pause(false)
		}
		return
	}

	switch s.state {
	case Running:
		if action == input.ActionConfirm {
			// Enter opens the menu without selecting anything in it
			g.Pause(true)
			return
		}
		if dir, ok := steering[action]; ok {
			s.snake.Move(dir)
		}
	case PausedMenu:
		if in, ok := menuInputs[action]; ok {
			s.menu.HandleInput(in)
		}
	case PausedHelp:
		// Overlay swallows everything but help, pause and quit
	}
}
