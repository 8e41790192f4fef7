package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
)

const lineHelp = `Enter moves as from and to squares, e.g. e2e4 or e7e8n.
Commands:
  moves    list the legal moves
  fen      print the position as FEN
  board    draw the board again
  history  list the moves played
  new      restart from the starting position
  quit     leave
`

// runLineMode plays a game from text commands read from in. It returns the
// process exit code.
func runLineMode(cfg *config.Config, in io.Reader) int {
	host := newConsoleHost(cfg)
	g := game.New(cfg, host)
	host.game = g
	defer host.writer.Close() //nolint:errcheck // G104: best effort on exit

	if err := g.InitFromFEN(cfg.StartFEN); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if quit := runCommand(cfg, host, g, line); quit {
			break
		}
		if host.fatal != nil {
			return 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error reading input: %v\n", err)
		return 1
	}
	return 0
}

// runCommand handles one input line and reports whether to stop.
func runCommand(cfg *config.Config, host *consoleHost, g *game.Game, line string) bool {
	switch strings.ToLower(line) {
	case "":
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(cfg.OutputFile, lineHelp)
	case "moves":
		moves := g.LegalMoves()
		texts := make([]string, 0, len(moves))
		for _, m := range moves {
			texts = append(texts, m.String())
		}
		fmt.Fprintln(cfg.OutputFile, strings.Join(texts, " "))
	case "fen":
		fmt.Fprintln(cfg.OutputFile, g.FEN())
	case "board":
		host.Redraw(g.Board())
	case "history":
		for i, m := range g.History() {
			fmt.Fprintf(cfg.OutputFile, "%d. %s\n", i+1, m)
		}
	case "new":
		if err := g.InitFromFEN(cfg.StartFEN); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		}
	default:
		// Rejections are logged and redrawn by the game itself.
		g.Play(line) //nolint:errcheck // reported through the host
	}
	return false
}
