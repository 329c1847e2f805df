package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/codesnake/internal/platform/tui"
	"github.com/vovakirdan/codesnake/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [file]",
	Short: "Show high scores",
	Long: `Display high scores.

With a file argument, prints the top 10 runs for that file.
Without arguments, opens the interactive leaderboard browser.

Examples:
  codesnake scores
  codesnake scores main.go`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	// Runs are keyed by document name, not path.
	file := filepath.Base(args[0])

	runs, err := store.TopRuns(file, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", file)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'codesnake play %s' to set the first high score!\n", args[0])
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "Rank", "Score", "Length", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "----", "-----", "------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  %s\n", i+1, entry.Score, entry.SnakeLen, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(file); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
