package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avery-hale/minesweeper-solver/internal/bench"
	"github.com/avery-hale/minesweeper-solver/internal/config"
)

func benchCmd() *cobra.Command {
	var (
		presetName string
		trials     int
		seed       int64
		workers    int
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run repeated trials against a board preset and report the win rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := config.Preset(presetName)
			switch preset {
			case config.PresetEasy, config.PresetMedium, config.PresetExpert:
			default:
				return fmt.Errorf("unknown preset %q (want easy, medium, or expert)", presetName)
			}

			result, err := bench.Run(context.Background(), preset, seed, trials, workers)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d/%d wins (%.1f%%), floor %.0f%%: %s\n",
				preset, result.Wins, result.Trials, result.WinRate()*100,
				preset.MinWinRate()*100, passFail(result.MeetsFloor()))

			if save {
				store, err := bench.LoadHistory()
				if err != nil {
					return err
				}
				store.Record(result)
				if err := store.Save(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "easy", "board preset: easy, medium, or expert")
	cmd.Flags().IntVar(&trials, "trials", 1000, "number of boards to solve")
	cmd.Flags().Int64Var(&seed, "seed", 1, "first board's PRNG seed; subsequent trials increment from it")
	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrent boards (0 = unlimited)")
	cmd.Flags().BoolVar(&save, "save", false, "persist this result to ~/.minesolver/results.json")

	return cmd
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
