package sim

import "github.com/Im-Defalt/GameOfLife/internal/core"

// Pattern is a set of live-cell offsets relative to an anchor at (0, 0).
type Pattern [][2]int

var (
	// Block is the 2×2 still life.
	Block = Pattern{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	// Blinker is the period-2 horizontal oscillator.
	Blinker = Pattern{{0, 0}, {0, 1}, {0, 2}}
	// Glider travels diagonally one cell every four generations.
	Glider = Pattern{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
)

// Stamp sets the pattern's cells alive with the anchor at (row, col). Cells
// falling off the board are dropped.
func (s *Session) Stamp(row, col int, p Pattern) {
	for _, off := range p {
		s.SetCell(row+off[0], col+off[1], Alive)
	}
}

// Randomize fills the board from a seeded source, making each cell alive with
// probability density. The same seed and density reproduce the same board.
func (s *Session) Randomize(seed int64, density float64) {
	rng := core.NewRNG(seed)
	cells := s.cur.Cells()
	for i := range cells {
		if rng.Float64() < density {
			cells[i] = 1
		} else {
			cells[i] = 0
		}
	}
}
