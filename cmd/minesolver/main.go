// Command minesolver runs the autonomous Minesweeper solver on a single
// board, as a repeated-trial benchmark, or as a spectator TUI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "minesolver",
		Short: "Autonomous Minesweeper solver",
	}
	root.AddCommand(solveCmd())
	root.AddCommand(benchCmd())
	root.AddCommand(watchCmd())
	return root
}
