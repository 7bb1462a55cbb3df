// Package board implements the Minesweeper grid model: cells, their
// incremental neighbor counters, mine generation, and the open/flag
// primitives that keep those counters consistent.
package board

// State is the visibility state of a cell.
type State int

const (
	Closed State = iota
	Opened
	Flagged
)

// GameState is the overall outcome of a board.
type GameState int

const (
	Undefined GameState = iota
	Won
	Lost
)

// Cell is a single square of the board. Neighbor relationships are
// stored as indices into the owning Board's flat cell slice, never as
// references to other cells, so cells carry no cycles and the grid can
// be allocated once and reused across Configure calls.
type Cell struct {
	X, Y int

	Mine  bool
	State State

	neighbors []int // indices into Board.cells, fixed per geometry

	NeighborCount       int
	NeighborMineCount   int
	NeighborFlagCount   int
	NeighborOpenedCount int
	Satisfied           bool
}

// Neighbors returns the indices of this cell's adjacent cells.
func (c *Cell) Neighbors() []int {
	return c.neighbors
}

// flagSatisfied reports whether every mine around the cell has been flagged.
func (c *Cell) flagSatisfied() bool {
	return c.NeighborMineCount == c.NeighborFlagCount
}

// flagForced reports whether every closed neighbor of the cell must be a mine.
func (c *Cell) flagForced() bool {
	return c.NeighborMineCount == c.NeighborCount-c.NeighborOpenedCount
}

// UpdateSatisfied sets Satisfied once the cell's counters prove all of
// its neighbors' mine status. Satisfied is sticky: once true it is
// never reset within a game (see Board.resetCells for the only place
// it is cleared, between games). The event engine calls this after
// every open/flag; the first-order solver also calls it directly when
// a rule fires outside of a cascade.
func (c *Cell) UpdateSatisfied() {
	if c.Satisfied {
		return
	}
	if c.State == Flagged || c.flagSatisfied() || c.flagForced() {
		c.Satisfied = true
	}
}
