// cartage is a terminal fantasy console for scene-based game cartridges.
//
// Usage:
//
//	cartage list             - List available carts
//	cartage play <cart>      - Play a cart
//	cartage serve            - Start SSH server for remote play
//	cartage scores <cart>    - Show high scores for a cart
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default from config)
//	--seed <value>  - Set RNG seed for reproducible play
//	--db <path>     - Set database path (default: ~/.cartage/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import carts to register them
	_ "github.com/avoronkov/cartage/internal/carts/demo"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cartage",
	Short: "Cartage - a fantasy console for your terminal",
	Long: `Cartage runs game cartridges built from scenes, entities, and
components on a small fixed-resolution terminal screen.

Available commands:
  list     - Show all available carts
  play     - Play a specific cart
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  cartage list
  cartage play demo
  cartage play demo --seed 42
  cartage serve --ssh :2222
  cartage scores demo`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cartage/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
