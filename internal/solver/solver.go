// Package solver implements the two-stage deductive/probabilistic
// engine that plays a board.Board to a terminal state: fast local
// constraint propagation (first-order), a global least-squares
// relaxation over the frontier (second-order), and an informed guess
// when proof is impossible.
package solver

import (
	"github.com/rs/zerolog"

	"github.com/avery-hale/minesweeper-solver/internal/board"
	"github.com/avery-hale/minesweeper-solver/internal/solver/lstsq"
)

// epsilon is the snap threshold for treating a least-squares component
// as exactly 0 or 1.
const epsilon = 1e-4

// Solver drives a single board.Board to completion. It holds no state
// of its own beyond a pointer to the board, its configured backend and
// a debug logger, so it carries no cost to construct per game.
type Solver struct {
	Board   *board.Board
	Backend lstsq.Backend
	logger  zerolog.Logger
}

// New creates a solver for b using backend.
func New(b *board.Board, backend lstsq.Backend) *Solver {
	return &Solver{Board: b, Backend: backend, logger: zerolog.Nop()}
}

// SetLogger installs a zerolog.Logger for the solver's debug
// side-channel (guess outcomes). It has no effect unless the
// underlying board also has Debug set.
func (s *Solver) SetLogger(l zerolog.Logger) {
	s.logger = l
}

// ConfigureAndSolve configures b for a new game and plays it to a
// terminal state with backend, returning the board's final summary.
// It is the one-call entry point the benchmark harness uses per trial.
func ConfigureAndSolve(b *board.Board, width, height int, settings board.GenSettings, backend lstsq.Backend) board.Result {
	start := b.Configure(width, height, settings)
	New(b, backend).Solve(start)
	return b.GetResult()
}

// Solve opens start and alternates first-order and second-order
// passes until the board reaches Won or Lost. The outer loop is
// bounded by width*height iterations, matching the board's own
// termination guarantee; a well-formed board never needs the bound,
// but it prevents spinning if every pass degenerately reports no
// progress.
func (s *Solver) Solve(start [2]int) {
	s.Start(start)
	maxIterations := s.Board.Width() * s.Board.Height()
	for iter := 0; s.Board.State() == board.Undefined; iter++ {
		if iter >= maxIterations || !s.Step() {
			break
		}
	}
}

// Start opens the board's starting cell and resets the unknown lookup,
// leaving the solver ready for repeated Step calls. Callers driving the
// solver interactively (internal/tui) use Start once, then Step
// per displayed frame, instead of Solve's single blocking call.
func (s *Solver) Start(start [2]int) {
	b := s.Board
	b.InitUnknown()
	b.OpenAt(start[0], start[1])
}

// Step runs a single round of the orchestration loop: a win check,
// then first-order, non-augmented second-order, and augmented
// guessing passes in order, stopping at the first that makes
// progress. It returns false once the board is terminal or a round
// makes no progress at all (the degenerate case Solve's bound guards
// against).
func (s *Solver) Step() bool {
	b := s.Board
	if b.State() != board.Undefined {
		return false
	}

	nonMineCells := b.Width()*b.Height() - b.GeneratedMines()
	if b.OpenedCells() == nonMineCells {
		b.MarkWon()
		return false
	}

	active := s.activeCells()

	if s.firstOrderPass(active) {
		return true
	}
	if s.secondOrderPass(active, false, false) {
		return true
	}
	if s.secondOrderPass(s.remainingCells(), true, true) {
		return true
	}
	return false
}

// remainingCells returns the indices of every cell on the board that
// is not yet satisfied, opened or closed alike, in row-major order.
func (s *Solver) remainingCells() []int {
	n := s.Board.NumCells()
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !s.Board.CellAt(i).Satisfied {
			out = append(out, i)
		}
	}
	return out
}

// activeCells returns the subset of remainingCells that are either
// Opened themselves or Closed with at least one Opened neighbor: the
// frontier plus its opened border, which is the scope of first-order
// sweeps and the non-augmented second-order pass.
func (s *Solver) activeCells() []int {
	n := s.Board.NumCells()
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		c := s.Board.CellAt(i)
		if c.Satisfied {
			continue
		}
		if c.State == board.Opened || c.NeighborOpenedCount > 0 {
			out = append(out, i)
		}
	}
	return out
}
