package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/logic-gates/internal/gates"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson [GATE]",
	Short: "Read about a logic gate",
	Long: `Prints the lesson for one gate: what it does, its symbol, its truth
table and a real-world analogy. Without an argument, lists the gates.

Examples:
  gates lesson
  gates lesson nand`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLesson,
}

func runLesson(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		fmt.Println("Gates:")
		fmt.Println()
		for _, g := range gates.All() {
			l := gates.LessonFor(g)
			fmt.Printf("  %-5s  %-10s  %s\n", g, l.Name, l.Symbol)
		}
		fmt.Println()
		fmt.Println("Run 'gates lesson <gate>' to read one.")
		return
	}

	g, err := gates.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	md := gates.LessonFor(g).Markdown()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}

	wrap := 78
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && w > 20 {
		wrap = min(w-2, 100)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
