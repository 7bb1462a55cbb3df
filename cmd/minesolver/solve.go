package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avery-hale/minesweeper-solver/internal/board"
	"github.com/avery-hale/minesweeper-solver/internal/config"
	"github.com/avery-hale/minesweeper-solver/internal/solver"
	"github.com/avery-hale/minesweeper-solver/internal/solver/lstsq"
)

func solveCmd() *cobra.Command {
	var (
		presetName string
		seed       int64
		debug      bool
		showReal   bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single board and print the final grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := config.Preset(presetName)
			switch preset {
			case config.PresetEasy, config.PresetMedium, config.PresetExpert:
			default:
				return fmt.Errorf("unknown preset %q (want easy, medium, or expert)", presetName)
			}
			width, height, mines := preset.Dims()

			b := board.New()
			s := solver.New(b, lstsq.DenseLstsq{})
			if debug {
				logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
				b.Debug = true
				b.SetLogger(logger)
				s.SetLogger(logger)
			}

			start := b.Configure(width, height, board.GenSettings{
				Mines:          mines,
				Seed:           &seed,
				ForceStartArea: true,
			})
			s.Solve(start)

			fmt.Println(b.StrRevealed(false))
			if showReal {
				fmt.Println()
				fmt.Println(b.StrReal())
			}

			res := b.GetResult()
			fmt.Printf("%s seed=%d: %s (%d/%d opened, %d flagged)\n",
				preset, seed, stateWord(res.State),
				b.OpenedCells(), width*height-res.Mines, b.FlaggedCells())
			return nil
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "easy", "board preset: easy, medium, or expert")
	cmd.Flags().Int64Var(&seed, "seed", 1, "board PRNG seed")
	cmd.Flags().BoolVar(&debug, "debug", false, "log mine generation and guess decisions to stderr")
	cmd.Flags().BoolVar(&showReal, "real", false, "also print the ground-truth board")

	return cmd
}

func stateWord(s board.GameState) string {
	switch s {
	case board.Won:
		return "won"
	case board.Lost:
		return "lost"
	}
	return "unfinished"
}
