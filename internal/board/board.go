package board

import "github.com/rs/zerolog"

// GenSettings configures mine generation. Mirrors the BoardGenerationSettings
// contract: Mines is clamped to the number of valid positions, Seed is
// drawn and written back when absent, StartPosition defaults to a random
// cell, and ForceStartArea additionally excludes the clicked cell's 3x3
// block from mine placement.
type GenSettings struct {
	Mines          int
	Seed           *int64
	StartPosition  *[2]int
	ForceStartArea bool
}

// Result is the public, immutable summary of a finished or in-progress board.
type Result struct {
	Width  int
	Height int
	Mines  int
	State  GameState
}

// Board owns the grid and all mutable per-cell state. It is meant to be
// reused across games: Configure reuses the allocated grid when the
// requested dimensions match the current one.
type Board struct {
	cells  []Cell
	width  int
	height int

	state          GameState
	openedCells    int
	flaggedCells   int
	generatedMines int

	settings GenSettings

	// unknown maps a cell index to its column index in the solver's
	// current matrix ordering. Populated by Solve/second-order
	// construction; cells are removed when opened or flagged.
	unknown map[int]int

	// Debug gates side-channel structured logging only; it never
	// changes solving behavior.
	Debug  bool
	logger zerolog.Logger
}

// New creates an empty, unconfigured board.
func New() *Board {
	return &Board{logger: zerolog.Nop()}
}

// SetLogger installs a zerolog.Logger used for Debug side-channel output.
func (b *Board) SetLogger(l zerolog.Logger) {
	b.logger = l
}

// Width and Height report the configured grid dimensions.
func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// State returns the current game outcome.
func (b *Board) State() GameState { return b.state }

// OpenedCells, FlaggedCells, and GeneratedMines report aggregate counters.
func (b *Board) OpenedCells() int    { return b.openedCells }
func (b *Board) FlaggedCells() int   { return b.flaggedCells }
func (b *Board) GeneratedMines() int { return b.generatedMines }

// Settings returns the generation settings in effect since the last Configure.
func (b *Board) Settings() GenSettings { return b.settings }

// Cell returns a pointer into the board's owned cell storage at (x, y).
// The pointer is a transient borrow: it is invalidated by the next
// Configure call that reallocates the grid.
func (b *Board) Cell(x, y int) *Cell {
	return &b.cells[b.index(x, y)]
}

// CellAt returns a pointer into the board's owned cell storage by flat index.
func (b *Board) CellAt(i int) *Cell {
	return &b.cells[i]
}

// NumCells returns width*height.
func (b *Board) NumCells() int {
	return len(b.cells)
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// Configure resets the board for a new game and generates mines. It
// returns the starting position that the caller should pass to Solve.
// If width and height match the previously allocated grid, the cell
// storage is reused; otherwise a fresh grid is allocated and neighbor
// lists are recomputed.
func (b *Board) Configure(width, height int, settings GenSettings) (start [2]int) {
	if width <= 0 || height <= 0 {
		panic("board: width and height must be positive")
	}
	if settings.Mines < 0 {
		panic("board: mines must be non-negative")
	}

	oldWidth, oldHeight := b.width, b.height

	b.resetCounters()
	b.settings = settings

	reconfigure := len(b.cells) != width*height || oldWidth != width || oldHeight != height
	if reconfigure {
		b.allocate(width, height)
	} else {
		b.resetCells()
	}

	return b.generateMines()
}

func (b *Board) resetCounters() {
	b.state = Undefined
	b.openedCells = 0
	b.flaggedCells = 0
	b.generatedMines = 0
	b.unknown = nil
}

func (b *Board) allocate(width, height int) {
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &b.cells[b.index(x, y)]
			c.X, c.Y = x, y
		}
	}
	b.linkNeighbors()
	b.resetCells()
}

// linkNeighbors computes, for every cell, the fixed list of up-to-8
// adjacent cell indices in a deterministic row-major scan of the 3x3
// block centered on the cell (excluding the center itself). This order
// is load-bearing: it is what makes the second-order solver's matrix
// rows reproducible for a given seed.
func (b *Board) linkNeighbors() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := &b.cells[b.index(x, y)]
			c.neighbors = c.neighbors[:0]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= b.width || ny < 0 || ny >= b.height {
						continue
					}
					c.neighbors = append(c.neighbors, b.index(nx, ny))
				}
			}
			c.NeighborCount = len(c.neighbors)
		}
	}
}

// resetCells clears per-game mutable cell state without touching
// neighbor lists, which depend only on geometry.
func (b *Board) resetCells() {
	for i := range b.cells {
		c := &b.cells[i]
		c.Mine = false
		c.State = Closed
		c.NeighborMineCount = 0
		c.NeighborFlagCount = 0
		c.NeighborOpenedCount = 0
		c.Satisfied = false
	}
}

// MarkWon declares the board won. Callers must only do this once
// OpenedCells reaches width*height-GeneratedMines; Board does not
// re-derive the condition itself since the solver already tracks it
// as part of its terminal-state check.
func (b *Board) MarkWon() {
	b.state = Won
}

// GetResult returns the current public summary of the board.
func (b *Board) GetResult() Result {
	return Result{
		Width:  b.width,
		Height: b.height,
		Mines:  b.generatedMines,
		State:  b.state,
	}
}
