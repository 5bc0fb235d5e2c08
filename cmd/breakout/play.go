package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagQuick bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Breakout",
	Long: `Start an interactive game.

Without a variant a picker lists the built-in variants. With --quick the
variant from the config file starts immediately.

Controls:
  Mouse        - Move the paddle
  Left/Right   - Nudge the paddle (also a/d)
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle key help
  Q/Ctrl+C     - Quit

Examples:
  breakout play
  breakout play dense
  breakout play --quick --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagQuick, "quick", false, "Skip the picker and start the configured variant")
}

func runPlay(_ *cobra.Command, args []string) {
	// The alt screen owns stdout, so logs go to a file or nowhere.
	h := mustSetupHost(io.Discard)
	defer h.Close()

	width, height := 80, 24 // Defaults
	if w, ht, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, ht
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: h.cfg.TickRate,
		Clock:    core.NewSystemClock(),
	}

	var gameID string
	switch {
	case len(args) == 1:
		id, err := gameIDForVariant(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		gameID = id
	case flagQuick:
		id, err := gameIDForVariant(h.cfg.Variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		gameID = id
	default:
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		gameID = result.GameID
		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	h.logger.Info("session start", "game", gameID, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if err := tui.Run(game, cfg, h.logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	h.logger.Info("session end", "game", gameID, "score", game.State().Score)
}
