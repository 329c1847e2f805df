package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/codesnake/internal/buffer"
	"github.com/vovakirdan/codesnake/internal/config"
	"github.com/vovakirdan/codesnake/internal/core"
	"github.com/vovakirdan/codesnake/internal/game"
	"github.com/vovakirdan/codesnake/internal/platform/tui"
	"github.com/vovakirdan/codesnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play over a file",
	Long: `Start a session over the given text file.

Controls:
  WASD/arrows/hjkl - Steer
  P/Esc            - Pause
  X                - End the session
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  codesnake play main.go
  codesnake play notes.txt --config ./my-config.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	buf, err := buffer.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		TickMS:  gameCfg.Game.TickMS,
		Seed:    flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	g := game.New(buf, gameCfg)
	runErr := tui.Run(g, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	// Final score summary after the alt screen is released.
	state := g.State()
	if state.Score > 0 {
		fmt.Printf("Final score on %s: %d\n", buf.Name(), state.Score)
	}
}
