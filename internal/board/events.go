package board

// This file holds the event engine: OpenAt/FlagAt, OpenCell/FlagCell
// and their index-based counterparts are the only writers of cell state
// during solving. Every solver rule goes through these.

// OpenAt opens the cell at (x, y). x and y must be in bounds;
// anything else is a programmer error and the call panics.
func (b *Board) OpenAt(x, y int) {
	b.openCellIndex(b.indexChecked(x, y))
}

// FlagAt flags the cell at (x, y). Same bounds contract as OpenAt.
func (b *Board) FlagAt(x, y int) {
	b.flagCellIndex(b.indexChecked(x, y))
}

func (b *Board) indexChecked(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic("board: coordinate out of bounds")
	}
	return b.index(x, y)
}

// OpenCell opens the given cell (by pointer into board storage). It is
// the solver-facing entry point for Rule A and the active-set classifier.
func (b *Board) OpenCell(c *Cell) {
	b.openCellIndex(b.index(c.X, c.Y))
}

// FlagCell flags the given cell. Solver-facing entry point for Rule B
// and the active-set classifier.
func (b *Board) FlagCell(c *Cell) {
	b.flagCellIndex(b.index(c.X, c.Y))
}

// openCellIndex is a no-op once the board has reached Won or Lost, or
// if the target cell isn't Closed. Otherwise it opens the cell and,
// unless it was a mine, cascades via an explicit worklist rather than
// recursion: a zero-count region can span most of an expert board,
// and the stack depth of a recursive cascade grows with it. Opening a
// mine anywhere in the cascade ends it at once, leaving whatever is
// still on the worklist Closed.
func (b *Board) openCellIndex(start int) {
	if b.state != Undefined || b.cells[start].State != Closed {
		return
	}

	stack := []int{start}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &b.cells[idx]
		if c.State != Closed {
			continue
		}

		c.State = Opened
		b.openedCells++

		if c.Mine {
			b.state = Lost
			if b.Debug {
				b.logger.Debug().Int("x", c.X).Int("y", c.Y).Msg("opened mine")
			}
			return
		}

		b.removeUnknown(idx)

		// Snapshot these before touching any neighbor: flagging a
		// neighbor below raises c's own NeighborFlagCount, and the rules
		// must use c's counts as they were when c was opened.
		flagSatisfied := c.flagSatisfied()
		flagForced := c.flagForced()

		for _, ni := range c.neighbors {
			n := &b.cells[ni]
			n.NeighborOpenedCount++

			if flagSatisfied && n.State == Closed {
				stack = append(stack, ni)
			}
			if flagForced && n.State == Closed {
				b.flagCellIndex(ni)
			}
		}

		c.UpdateSatisfied()
	}
}

// flagCellIndex is a no-op once the board has reached Won or Lost, or
// if the target cell isn't Closed.
func (b *Board) flagCellIndex(idx int) {
	c := &b.cells[idx]
	if b.state != Undefined || c.State != Closed {
		return
	}

	c.State = Flagged
	for _, ni := range c.neighbors {
		b.cells[ni].NeighborFlagCount++
	}

	b.removeUnknown(idx)
	b.flaggedCells++
	c.UpdateSatisfied()
}

// --- unknown-cell lookup ---
//
// The lookup maps a cell's flat index to its column index in the
// solver's current matrix ordering. It exists only while a Solve is in
// progress; InitUnknown starts it fresh and open/flag remove entries
// as cells resolve.

// InitUnknown (re)starts the unknown-cell lookup with every cell in the
// board, called once at the start of Solve.
func (b *Board) InitUnknown() {
	b.unknown = make(map[int]int, len(b.cells))
	for i := range b.cells {
		b.unknown[i] = 0
	}
}

// SetUnknownColumn records the matrix column index assigned to a cell.
func (b *Board) SetUnknownColumn(idx, col int) {
	b.unknown[idx] = col
}

// UnknownColumn returns the matrix column index assigned to a cell and
// whether that cell is still unknown (closed).
func (b *Board) UnknownColumn(idx int) (int, bool) {
	col, ok := b.unknown[idx]
	return col, ok
}

// UnknownLen returns the number of cells still in the unknown lookup.
func (b *Board) UnknownLen() int {
	return len(b.unknown)
}

func (b *Board) removeUnknown(idx int) {
	delete(b.unknown, idx)
}
