package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/avery-hale/minesweeper-solver/internal/board"
)

// secondOrderPass builds the constraint matrix over cells (see
// buildMatrix), solves it in the least-squares sense, and classifies
// each unknown column as a sure mine, a sure non-mine, or an estimated
// probability. When augmented is true, a trailing all-ones row ties
// the system to the board's remaining mine budget. When guess is
// true and no column classified, the least-risky remaining cell is
// opened.
//
// Returns whether any cell was flagged, opened, or guessed.
func (s *Solver) secondOrderPass(cells []int, augmented bool, guess bool) bool {
	b := s.Board

	unknowns, knowns := s.assignColumns(cells)

	if len(unknowns) == 0 {
		return false
	}
	if !augmented && len(knowns) == 0 {
		return false
	}

	a, bVec := s.buildMatrix(cells, unknowns, knowns, augmented)

	x, err := s.Backend.Solve(a, bVec)
	if err != nil {
		return false
	}
	snap(x)

	progress := false
	leastProbable := -1
	leastProbability := math.Inf(1)

	for col, idx := range unknowns {
		v := x[col]
		switch v {
		case 1:
			b.FlagCell(b.CellAt(idx))
			progress = true
		case 0:
			b.OpenCell(b.CellAt(idx))
			progress = true
		}
		if v > 0 && v < leastProbability {
			leastProbability = v
			leastProbable = idx
		}
	}

	if !progress && guess && leastProbable >= 0 {
		if s.Board.Debug {
			cell := b.CellAt(leastProbable)
			s.logger.Debug().
				Int("x", cell.X).Int("y", cell.Y).
				Float64("probability", leastProbability).
				Bool("mine", cell.Mine).
				Msg("guessed")
		}
		b.OpenCell(b.CellAt(leastProbable))
		progress = true
	}

	return progress
}

// assignColumns partitions cells into the Closed unknowns (matrix
// columns) and Opened knowns (matrix rows), in iteration order, and
// records each unknown's column index in the board's unknown lookup
// so buildMatrix can look it up again while filling rows.
func (s *Solver) assignColumns(cells []int) (unknowns, knowns []int) {
	for _, idx := range cells {
		c := s.Board.CellAt(idx)
		switch c.State {
		case board.Closed:
			s.Board.SetUnknownColumn(idx, len(unknowns))
			unknowns = append(unknowns, idx)
		case board.Opened:
			knowns = append(knowns, idx)
		}
	}
	return unknowns, knowns
}

// buildMatrix constructs A (len(knowns) x len(unknowns)) with a 1
// wherever a known row-cell is adjacent to an unknown column-cell, and
// b with each row's remaining unflagged neighbor-mine count. When
// augmented, a trailing all-ones row ties the system to the board's
// global remaining-mine budget.
func (s *Solver) buildMatrix(cells, unknowns, knowns []int, augmented bool) (*mat.Dense, []float64) {
	b := s.Board
	rows := len(knowns)
	if augmented {
		rows++
	}
	cols := len(unknowns)

	data := make([]float64, rows*cols)
	bVec := make([]float64, rows)

	for r, idx := range knowns {
		c := b.CellAt(idx)
		bVec[r] = float64(c.NeighborMineCount - c.NeighborFlagCount)
		for _, ni := range c.Neighbors() {
			if n := b.CellAt(ni); n.State == board.Closed {
				if col, ok := b.UnknownColumn(ni); ok {
					data[r*cols+col] = 1
				}
			}
		}
	}

	if augmented {
		last := rows - 1
		bVec[last] = float64(b.GeneratedMines() - b.FlaggedCells())
		for col := 0; col < cols; col++ {
			data[last*cols+col] = 1
		}
	}

	return mat.NewDense(rows, cols, data), bVec
}

// snap rounds near-integer components to exactly 0 or 1 in place.
// NaN fails both comparisons and is left untouched, which routes it
// away from both classification and guess selection.
func snap(x []float64) {
	for i, v := range x {
		if math.Abs(v) < epsilon {
			x[i] = 0
		} else if math.Abs(v-1) < epsilon {
			x[i] = 1
		}
	}
}
