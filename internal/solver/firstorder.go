package solver

import "github.com/avery-hale/minesweeper-solver/internal/board"

// firstOrderPass applies the two trivial local rules to every Opened,
// unsatisfied cell in cells:
//
//   - Rule A (open-safe): neighbor_mine_count == neighbor_flag_count
//     opens every Closed neighbor.
//   - Rule B (flag-forced): neighbor_mine_count == neighbor_count -
//     neighbor_opened_count flags every Closed neighbor.
//
// Most of this work already happens opportunistically inside the
// board's event engine as cells cascade open; this pass exists to
// catch cells whose rule preconditions became true only after the
// cascade that touched them last settled.
func (s *Solver) firstOrderPass(cells []int) bool {
	b := s.Board
	progress := false

	for _, idx := range cells {
		c := b.CellAt(idx)
		if c.State != board.Opened {
			continue
		}

		ruleA := c.NeighborMineCount == c.NeighborFlagCount
		ruleB := c.NeighborMineCount == c.NeighborCount-c.NeighborOpenedCount

		if ruleA {
			for _, ni := range c.Neighbors() {
				if n := b.CellAt(ni); n.State == board.Closed {
					b.OpenCell(n)
					progress = true
				}
			}
			c.UpdateSatisfied()
		}

		if ruleB {
			for _, ni := range c.Neighbors() {
				if n := b.CellAt(ni); n.State == board.Closed {
					b.FlagCell(n)
					progress = true
				}
			}
			c.UpdateSatisfied()
		}
	}

	return progress
}
