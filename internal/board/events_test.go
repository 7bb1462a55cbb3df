package board

import "testing"

// layout (mines at M):
//
//	M 1 0 1 M
//	1 2 1 2 1
//	0 1 M 1 0
//	1 2 1 2 1
//	M 1 0 1 M
func testGrid() *Board {
	return newTestBoard(5, 5, [][2]int{{0, 0}, {4, 0}, {2, 2}, {0, 4}, {4, 4}})
}

func TestOpenCellFloodFillsZeroRegion(t *testing.T) {
	b := testGrid()
	b.OpenCell(b.Cell(2, 0)) // a zero cell

	if b.Cell(2, 0).State != Opened {
		t.Error("(2,0) should be opened")
	}
	// The flood stops at the numbered cells around (2,0), so it does not
	// reach the zero cells at (0,2)/(4,2), and it must never open a mine.
	for _, pos := range [][2]int{{0, 0}, {4, 0}, {2, 2}, {0, 4}, {4, 4}} {
		if b.Cell(pos[0], pos[1]).State == Opened {
			t.Errorf("mine at %v must never be opened by a flood fill", pos)
		}
	}
}

func TestOpenCellNoOpWhenNotClosed(t *testing.T) {
	b := testGrid()
	b.OpenCell(b.Cell(2, 0))
	opened := b.openedCells

	b.OpenCell(b.Cell(2, 0))
	if b.openedCells != opened {
		t.Error("re-opening an already opened cell must be a no-op")
	}
}

func TestOpenMineSetsLost(t *testing.T) {
	b := testGrid()
	b.OpenCell(b.Cell(0, 0))
	if b.state != Lost {
		t.Errorf("state = %v, want Lost", b.state)
	}
	if b.Cell(0, 0).State != Opened {
		t.Error("the opened mine cell should be marked Opened (the losing move)")
	}
}

func TestFlagCellNoOpWhenNotClosed(t *testing.T) {
	b := testGrid()
	b.FlagCell(b.Cell(0, 0))
	flagged := b.flaggedCells

	b.FlagCell(b.Cell(0, 0))
	if b.flaggedCells != flagged {
		t.Error("re-flagging an already flagged cell must be a no-op")
	}
}

func TestFlagThenOpenIsNoOp(t *testing.T) {
	b := testGrid()
	b.FlagCell(b.Cell(2, 0))
	b.OpenCell(b.Cell(2, 0))
	if b.Cell(2, 0).State != Flagged {
		t.Error("a flagged cell must never transition to Opened")
	}
}

func TestNeighborCountersStayConsistent(t *testing.T) {
	b := testGrid()
	b.OpenCell(b.Cell(2, 0))
	b.FlagCell(b.Cell(0, 0))

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.Cell(x, y)
			wantFlag, wantOpened := 0, 0
			for _, ni := range c.neighbors {
				n := &b.cells[ni]
				if n.State == Flagged {
					wantFlag++
				}
				if n.State == Opened {
					wantOpened++
				}
			}
			if c.NeighborFlagCount != wantFlag {
				t.Errorf("(%d,%d) NeighborFlagCount = %d, want %d", x, y, c.NeighborFlagCount, wantFlag)
			}
			if c.NeighborOpenedCount != wantOpened {
				t.Errorf("(%d,%d) NeighborOpenedCount = %d, want %d", x, y, c.NeighborOpenedCount, wantOpened)
			}
		}
	}
}

func TestCellCountsPartitionGrid(t *testing.T) {
	b := testGrid()
	b.OpenCell(b.Cell(2, 0))
	b.FlagCell(b.Cell(4, 4))

	closed := 0
	for i := range b.cells {
		if b.cells[i].State == Closed {
			closed++
		}
	}
	if b.openedCells+b.flaggedCells+closed != b.width*b.height {
		t.Error("opened + flagged + closed must equal width*height")
	}
	if closed != b.UnknownLen() {
		t.Errorf("closed = %d, UnknownLen = %d, want equal", closed, b.UnknownLen())
	}
}

func TestRuleAOpensSatisfiedNeighbors(t *testing.T) {
	// A 3x3 board with a single mine at (0,0): opening (1,1) (adjacent
	// count 1) after the mine is flagged should open every other cell.
	b := newTestBoard(3, 3, [][2]int{{0, 0}})
	b.FlagCell(b.Cell(0, 0))
	b.OpenCell(b.Cell(1, 1))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if b.Cell(x, y).State != Opened {
				t.Errorf("(%d,%d) should have been opened via Rule A", x, y)
			}
		}
	}
}

func TestUpdateSatisfiedIsSticky(t *testing.T) {
	b := testGrid()
	b.FlagCell(b.Cell(0, 0))
	c := b.Cell(0, 0)
	if !c.Satisfied {
		t.Fatal("flagged cell must be satisfied")
	}
	// Nothing should ever be able to clear it within the same game.
	c.NeighborFlagCount = 999
	c.UpdateSatisfied()
	if !c.Satisfied {
		t.Error("Satisfied must be sticky")
	}
}

func TestOperationsAreNoOpsAfterLoss(t *testing.T) {
	b := testGrid()
	b.OpenCell(b.Cell(0, 0)) // mine: immediate loss
	if b.state != Lost {
		t.Fatal("setup: expected Lost")
	}

	opened, flagged := b.openedCells, b.flaggedCells
	b.OpenCell(b.Cell(2, 0))
	b.FlagCell(b.Cell(4, 0))

	if b.openedCells != opened || b.flaggedCells != flagged {
		t.Error("open/flag calls after Lost must be no-ops until the next Configure")
	}
	if b.Cell(2, 0).State != Closed || b.Cell(4, 0).State != Closed {
		t.Error("cells touched after Lost must remain untouched")
	}
}

func TestOutOfBoundsOpenAtPanics(t *testing.T) {
	b := New()
	b.Configure(3, 3, GenSettings{Mines: 0})
	defer func() {
		if recover() == nil {
			t.Error("OpenAt out of bounds should panic")
		}
	}()
	b.OpenAt(10, 10)
}
