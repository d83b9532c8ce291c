package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/logic-gates/internal/sokoban"
)

var flagShow int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	Long: `Shows the seven built-in levels in play order with the gate each one
teaches. --show prints one layout.

Legend: # wall, @ player, $ box, . target, * box on target, + player on target

Examples:
  gates levels
  gates levels --show 2`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagShow, "show", 0, "Print the layout of level N")
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := sokoban.MustLoadLevels()

	if flagShow != 0 {
		if flagShow < 1 || flagShow > len(levels) {
			fmt.Fprintf(os.Stderr, "Error: --show must be between 1 and %d\n", len(levels))
			os.Exit(1)
		}
		l := levels[flagShow-1]
		fmt.Printf("%s (%s)\n\n", l.Name, l.Gate)
		fmt.Print(sokoban.MustParse(l).RenderASCII())
		return
	}

	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-2s  %-*s  %-4s  %5s  %7s\n", "#", maxNameLen, "Name", "Gate", "Boxes", "Targets")
	fmt.Printf("  %-2s  %-*s  %-4s  %5s  %7s\n", "-", maxNameLen, "----", "----", "-----", "-------")
	for i, l := range levels {
		boxes, targets := l.Counts()
		fmt.Printf("  %-2d  %-*s  %-4s  %5d  %7d\n", i+1, maxNameLen, l.Name, l.Gate, boxes, targets)
	}

	fmt.Println()
	fmt.Println("Run 'gates play --level <#>' to start at a level.")
}
