package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronkov/cartage/internal/config"
	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/platform/tui"
	"github.com/avoronkov/cartage/internal/registry"
	"github.com/avoronkov/cartage/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <cart>",
	Short: "Play a cart",
	Long: `Start playing the specified cart.

Controls (defaults, configurable):
  W/A/S/D    - D-pad
  Z/Enter    - O button
  X/Space    - X button
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  cartage play demo
  cartage play demo --seed 42
  cartage play demo --config ./my-console.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom console config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cartID := args[0]

	if !registry.Exists(cartID) {
		fmt.Fprintf(os.Stderr, "Error: unknown cart %q\n", cartID)
		fmt.Fprintln(os.Stderr, "Run 'cartage list' to see available carts.")
		os.Exit(1)
	}

	consoleCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  consoleCfg.Screen.Width,
		ScreenH:  consoleCfg.Screen.Height,
		TickRate: consoleCfg.Timing.TickRate,
		Seed:     flagSeed,
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	// The console runs at a fixed logical resolution; warn when the
	// terminal cannot fit the whole screen.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.ScreenW || h < cfg.ScreenH {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, cart needs %dx%d\n",
				w, h, cfg.ScreenW, cfg.ScreenH)
		}
	}

	cart, err := registry.Create(cartID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating cart: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the cart still works
		store = nil
	}

	runErr := tui.Run(cart, store, cfg, consoleCfg.Keys)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running cart: %v\n", runErr)
		os.Exit(1)
	}
}
