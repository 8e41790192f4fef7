package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/render"
)

// runTUI plays a game on the terminal. It returns the process exit code.
func runTUI(cfg *config.Config) int {
	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error opening terminal: %v\n", err)
		return 1
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error opening terminal: %v\n", err)
		return 1
	}

	_, err = playTUI(cfg, s)
	s.Fini()
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

// playTUI runs the event loop on an initialized screen until the player
// quits or the game reports a fatal error. The caller owns the screen.
func playTUI(cfg *config.Config, s tcell.Screen) (*game.Game, error) {
	scr := render.NewScreen(s)
	g := game.New(cfg, scr)
	if err := g.InitFromFEN(cfg.StartFEN); err != nil {
		return g, err
	}

	for {
		ev := s.PollEvent()
		if ev == nil {
			return g, nil
		}
		action := scr.HandleEvent(ev)
		switch action.Kind {
		case render.ActionQuit:
			return g, nil
		case render.ActionText:
			g.Play(action.Text) //nolint:errcheck // reported through the screen
		case render.ActionMove:
			g.AttemptMove(int(action.From.File), int(action.From.Rank),
				int(action.To.File), int(action.To.Rank), chess.NoType)
		}
		if err := scr.Err(); err != nil {
			return g, err
		}
	}
}
