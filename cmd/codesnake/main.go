// codesnake overlays a snake game onto a text file in your terminal.
// The file's lines and characters form the grid: empty space is passable,
// text causes a collision that hides the line for a second, and the
// per-food reward scales with file size.
//
// Usage:
//
//	codesnake play <file>     - Play over a file
//	codesnake scores [file]   - Show high scores
//	codesnake serve --file f  - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.codesnake/runs.db)
//	--config <path> - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codesnake",
	Short: "Play snake over a text file in your terminal",
	Long: `codesnake turns any text file into a snake arcade grid.

The snake moves through character cells. Empty lines are passable; cells
with text cause a collision that temporarily hides the line. Food icons
spawn at random cells, and bigger files are worth more points per food.

Examples:
  codesnake play main.go
  codesnake play notes.txt --seed 42
  codesnake scores main.go
  codesnake serve --file main.go --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.codesnake/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
