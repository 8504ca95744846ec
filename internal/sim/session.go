package sim

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Im-Defalt/GameOfLife/internal/core"
)

var (
	// ErrInvalidDimension rejects construction with non-positive dimensions.
	ErrInvalidDimension = errors.New("sim: grid dimensions must be positive")
	// ErrOutOfBounds reports a cell query outside the board.
	ErrOutOfBounds = errors.New("sim: cell coordinate out of bounds")
)

// State is the binary condition of a single cell.
type State uint8

const (
	// Dead marks an inactive cell.
	Dead State = 0
	// Alive marks an active cell.
	Alive State = 1
)

// Session owns one board together with the settings the front end drives it
// with: the current topology and whether the simulation is running. The board
// is double-buffered so each advance reads only the previous generation.
type Session struct {
	cur *core.Grid
	nxt *core.Grid

	wrapped    bool
	running    bool
	workers    int
	generation int
}

// New constructs a paused session with an all-dead rows×cols board.
func New(rows, cols int) (*Session, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%dx%d", rows, cols)
	}
	return &Session{
		cur:     core.NewGrid(rows, cols),
		nxt:     core.NewGrid(rows, cols),
		workers: 1,
	}, nil
}

// Rows returns the board height in cells.
func (s *Session) Rows() int { return s.cur.Rows }

// Cols returns the board width in cells.
func (s *Session) Cols() int { return s.cur.Cols }

// Cells exposes the current generation as a row-major 0/1 buffer.
func (s *Session) Cells() []uint8 { return s.cur.Cells() }

// Generation returns the number of advances since construction or reset.
func (s *Session) Generation() int { return s.generation }

// Wrapped reports the session's topology flag.
func (s *Session) Wrapped() bool { return s.wrapped }

// SetWrapped selects toroidal (true) or bounded (false) topology. The change
// takes effect on the next advance.
func (s *Session) SetWrapped(wrapped bool) { s.wrapped = wrapped }

// Running reports whether the front end has the simulation playing.
func (s *Session) Running() bool { return s.running }

// SetRunning records the play/pause mode. The engine itself never enforces
// it; cell edits while running still behave as documented.
func (s *Session) SetRunning(running bool) { s.running = running }

// SetWorkers splits future advances across up to n goroutines. Values below
// two keep the serial path.
func (s *Session) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// Reset returns the board to all-dead and rewinds the generation counter.
// Idempotent.
func (s *Session) Reset() {
	s.cur.Clear()
	s.nxt.Clear()
	s.generation = 0
}

// Cell returns the state at (row, col), or ErrOutOfBounds when the coordinate
// is off the board.
func (s *Session) Cell(row, col int) (State, error) {
	if !s.cur.InBounds(row, col) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "(%d,%d) on %dx%d board", row, col, s.cur.Rows, s.cur.Cols)
	}
	return State(s.cur.Cells()[s.cur.Index(row, col)]), nil
}

// SetCell writes the given state at (row, col). It sets, never flips: the
// front end decides the desired state from its draw/erase mode. Out-of-range
// coordinates are silently ignored so drag gestures past the board edge are
// harmless.
func (s *Session) SetCell(row, col int, state State) {
	if !s.cur.InBounds(row, col) {
		return
	}
	v := uint8(0)
	if state == Alive {
		v = 1
	}
	s.cur.Cells()[s.cur.Index(row, col)] = v
}

// AliveNeighbors counts live cells in the Moore neighborhood of (row, col).
// Wrapped topology folds coordinates onto the torus so every cell has eight
// neighbors; bounded topology skips coordinates off the board.
func (s *Session) AliveNeighbors(row, col int, wrapped bool) int {
	cells := s.cur.Cells()
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if wrapped {
				r, c = s.cur.Wrap(r, c)
			} else if !s.cur.InBounds(r, c) {
				continue
			}
			count += int(cells[s.cur.Index(r, c)])
		}
	}
	return count
}

// Advance computes the next generation under the given topology and swaps it
// in. Every neighbor count reads the old buffer, so the update is simultaneous
// across the whole board and deterministic for a given input.
func (s *Session) Advance(wrapped bool) {
	rows := s.cur.Rows
	if s.workers < 2 || rows < s.workers {
		s.advanceRows(wrapped, 0, rows)
	} else {
		var eg errgroup.Group
		per := (rows + s.workers - 1) / s.workers
		for start := 0; start < rows; start += per {
			from, to := start, min(start+per, rows)
			eg.Go(func() error {
				s.advanceRows(wrapped, from, to)
				return nil
			})
		}
		// Row workers write disjoint spans and never fail.
		_ = eg.Wait()
	}
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
}

// advanceRows applies the transition rule to rows [from, to), reading cur and
// writing nxt.
func (s *Session) advanceRows(wrapped bool, from, to int) {
	cols := s.cur.Cols
	src, dst := s.cur.Cells(), s.nxt.Cells()
	for row := from; row < to; row++ {
		for col := 0; col < cols; col++ {
			n := s.AliveNeighbors(row, col, wrapped)
			idx := row*cols + col
			alive := src[idx] == 1
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				dst[idx] = 1
			} else {
				dst[idx] = 0
			}
		}
	}
}

// Population returns the number of live cells in the current generation.
func (s *Session) Population() int {
	count := 0
	for _, c := range s.cur.Cells() {
		count += int(c)
	}
	return count
}
