package board

import (
	"math/rand"
)

// generateMines places b.settings.Mines mines on the grid, honoring the
// safe start region, and returns the chosen start position. It is a
// pure function of (width, height, settings): the same seed always
// yields the same placement, which is what makes golden-string tests
// possible.
func (b *Board) generateMines() [2]int {
	settings := &b.settings

	if settings.Seed == nil {
		seed := int64(rand.Uint64() >> 1) // keep it a non-negative 63-bit value for logging
		settings.Seed = &seed
	}
	rng := newRNG(*settings.Seed)

	var start [2]int
	if settings.StartPosition != nil {
		start = *settings.StartPosition
	} else {
		start = [2]int{rng.randrange(b.width), rng.randrange(b.height)}
	}

	validPositions := b.validMinePositions(start, settings.ForceStartArea)

	mineCount := settings.Mines
	if mineCount > len(validPositions) {
		mineCount = len(validPositions)
	}

	for _, pos := range rng.sample(validPositions, mineCount) {
		c := &b.cells[b.index(pos[0], pos[1])]
		c.Mine = true
		b.generatedMines++
		for _, ni := range c.neighbors {
			b.cells[ni].NeighborMineCount++
		}
	}

	if b.Debug {
		b.logger.Debug().
			Int64("seed", *settings.Seed).
			Ints("start", []int{start[0], start[1]}).
			Int("mines", b.generatedMines).
			Msg("generated mines")
	}

	return start
}

// validMinePositions enumerates every cell except the start position,
// additionally excluding the 3x3 block centered on it when
// forceStartArea is set. Construction order is row-major (y outer, x
// inner) to match the deterministic ordering the PRNG stream depends on.
func (b *Board) validMinePositions(start [2]int, forceStartArea bool) [][2]int {
	positions := make([][2]int, 0, b.width*b.height-1)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if x == start[0] && y == start[1] {
				continue
			}
			if forceStartArea &&
				x >= start[0]-1 && x <= start[0]+1 &&
				y >= start[1]-1 && y <= start[1]+1 {
				continue
			}
			positions = append(positions, [2]int{x, y})
		}
	}
	return positions
}
