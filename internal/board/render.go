package board

import "strings"

// StrReal renders the ground-truth board regardless of player state:
// mines as a solid block, everything else as its neighbor mine count
// (space for zero). The output is stable for a given layout so golden
// tests can pin it.
func (b *Board) StrReal() string {
	var sb strings.Builder
	b.writeRows(&sb, func(c *Cell) rune {
		if c.Mine {
			return '█'
		}
		if c.NeighborMineCount == 0 {
			return ' '
		}
		return rune('0' + c.NeighborMineCount)
	})
	return sb.String()
}

// StrRevealed renders the player's view. When hide is true, satisfied
// cells render as a blank space instead of their number, matching the
// "hide solved cells" display mode.
func (b *Board) StrRevealed(hide bool) string {
	var sb strings.Builder
	b.writeRows(&sb, func(c *Cell) rune {
		switch {
		case c.Mine && c.State == Opened:
			return 'x'
		case c.State == Flagged:
			return '■'
		case c.Satisfied && hide:
			return ' '
		case c.State == Closed:
			return '█'
		case c.State == Opened:
			if c.NeighborMineCount == 0 {
				return ' '
			}
			return rune('0' + c.NeighborMineCount)
		}
		return ' '
	})
	return sb.String()
}

func (b *Board) writeRows(sb *strings.Builder, glyph func(*Cell) rune) {
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(glyph(&b.cells[b.index(x, y)]))
		}
	}
}
