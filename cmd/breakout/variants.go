package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List built-in variants",
	Long:  `Shows the compiled-in brick layouts that play and sim accept.`,
	Run:   runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := breakout.Variants()

	fmt.Println("Available variants:")
	fmt.Println()

	fmt.Printf("  %-8s  %-16s  %-6s  %s\n", "Name", "Game ID", "Grid", "Title")
	fmt.Printf("  %-8s  %-16s  %-6s  %s\n", "----", "-------", "----", "-----")

	for _, p := range variants {
		grid := fmt.Sprintf("%dx%d", p.BrickRows, p.BrickCols)
		fmt.Printf("  %-8s  %-16s  %-6s  %s\n", p.Name, breakout.NewWithParams(p).ID(), grid, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play <name>' to play a variant.")
}
