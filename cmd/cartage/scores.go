package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronkov/cartage/internal/platform/tui"
	"github.com/avoronkov/cartage/internal/registry"
	"github.com/avoronkov/cartage/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [cart]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the specified cart, or an
interactive scoreboard browser with --tui.

Examples:
  cartage scores demo
  cartage scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI || len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cartID := args[0]

	if !registry.Exists(cartID) {
		fmt.Fprintf(os.Stderr, "Error: unknown cart %q\n", cartID)
		fmt.Fprintln(os.Stderr, "Run 'cartage list' to see available carts.")
		os.Exit(1)
	}

	cart, err := registry.Create(cartID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating cart: %v\n", err)
		os.Exit(1)
	}
	title := cart.Title()

	scores, err := store.TopScores(cartID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cartage play %s' to set the first high score!\n", cartID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(cartID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
