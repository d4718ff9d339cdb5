package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avoronkov/cartage/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available carts",
	Long:  `Shows a list of all carts registered with the console.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	carts := registry.List()

	if len(carts) == 0 {
		fmt.Println("No carts available.")
		return
	}

	fmt.Println("Available carts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range carts {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, c := range carts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'cartage play <id>' to play a cart.")
}
