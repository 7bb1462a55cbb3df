// Package bench runs repeated-trial benchmarks over many independently
// generated boards and reports win-rate statistics, parallelized
// across boards with golang.org/x/sync/errgroup. Shared-seed batches
// make win rates comparable across runs, so a solver regression shows
// up as a drop below a preset's expected floor.
package bench

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/avery-hale/minesweeper-solver/internal/board"
	"github.com/avery-hale/minesweeper-solver/internal/config"
	"github.com/avery-hale/minesweeper-solver/internal/solver"
	"github.com/avery-hale/minesweeper-solver/internal/solver/lstsq"
)

// Result summarizes a batch of trials against one preset.
type Result struct {
	Preset config.Preset
	Trials int
	Wins   int
	Losses int
}

// WinRate returns Wins/Trials, or 0 if Trials is 0.
func (r Result) WinRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Trials)
}

// MeetsFloor reports whether this result clears the preset's expected
// win-rate band.
func (r Result) MeetsFloor() bool {
	return r.WinRate() >= r.Preset.MinWinRate()
}

// Run plays trials independent boards at the given preset, starting
// each from seed+i, and reports the aggregate outcome. Boards are
// solved concurrently; each goroutine owns a private board and solver,
// so no state is shared across trials.
func Run(ctx context.Context, preset config.Preset, seed int64, trials int, workers int) (Result, error) {
	width, height, mines := preset.Dims()

	wins := make([]bool, trials)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := 0; i < trials; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trialSeed := seed + int64(i)
			res := solver.ConfigureAndSolve(board.New(), width, height, board.GenSettings{
				Mines:          mines,
				Seed:           &trialSeed,
				ForceStartArea: true,
			}, lstsq.DenseLstsq{})

			wins[i] = res.State == board.Won
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Preset: preset, Trials: trials}
	for _, won := range wins {
		if won {
			result.Wins++
		} else {
			result.Losses++
		}
	}
	return result, nil
}
