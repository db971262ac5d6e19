package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/score"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/terminal"
)

// frameInterval paces input, update and render
// Levels whose delay is below it step once per frame
const frameInterval = 10 * time.Millisecond

var (
	configPath    = flag.String("config", defaultPath("config.toml"), "Path to the TOML config file")
	highScorePath = flag.String("highscore", defaultPath("highscore.toml"), "Path to the high score file, empty disables persistence")
	logPath       = flag.String("log", "", "Path to the log file, empty discards logs")
	verbose       = flag.Bool("v", false, "Log at debug level")
)

// defaultPath places name under the user config directory
func defaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "vi-snake", name)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logCloser, err := setupLogging(*logPath, *verbose)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	core.RegisterLogger(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	bindings, err := cfg.Keys.Bindings()
	if err != nil {
		return err
	}

	var high score.HighScore
	if *highScorePath != "" {
		if high, err = config.LoadHighScore(*highScorePath); err != nil {
			return err
		}
	}

	stats := status.NewRegistry()
	g, err := game.New(cfg.Game, bindings, &high,
		game.WithLogger(logger),
		game.WithStatus(stats),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.RegisterScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	screen.SetStyle(tcell.StyleDefault.Background(terminal.RgbBackground))
	screen.HideCursor()

	if w, h := screen.Size(); w < cfg.Game.BoardWidth+2 || h < cfg.Game.BoardHeight+3 {
		logger.WithFields(logrus.Fields{"width": w, "height": h}).Warn("terminal smaller than board, frame is clipped")
	}

	sound := audio.NewSoundManager(logger)
	if cfg.Sound.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.WithError(err).Warn("audio disabled")
		}
		defer sound.Cleanup()
	}

	a := &app{
		game:          g,
		renderer:      terminal.NewRenderer(screen, bindings),
		sound:         sound,
		logger:        logger,
		highScorePath: *highScorePath,
	}

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	for !a.done {
		select {
		case ev := <-eventChan:
			a.handleEvent(ev, screen)
		case <-frameTicker.C:
			a.frame()
		}
	}

	logger.WithFields(toFields(stats.IntSnapshot())).Info("exiting")
	return nil
}

func toFields(m map[string]int64) logrus.Fields {
	out := make(logrus.Fields, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
