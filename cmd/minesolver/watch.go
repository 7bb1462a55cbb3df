package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avery-hale/minesweeper-solver/internal/config"
	"github.com/avery-hale/minesweeper-solver/internal/tui"
)

func watchCmd() *cobra.Command {
	var (
		presetName string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the solver play a single board interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := config.Preset(presetName)
			switch preset {
			case config.PresetEasy, config.PresetMedium, config.PresetExpert:
			default:
				return fmt.Errorf("unknown preset %q (want easy, medium, or expert)", presetName)
			}

			p := tea.NewProgram(
				tui.New(preset, seed),
				tea.WithAltScreen(),
				tea.WithFPS(30),
			)
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "easy", "board preset: easy, medium, or expert")
	cmd.Flags().Int64Var(&seed, "seed", 1, "board PRNG seed")

	return cmd
}
