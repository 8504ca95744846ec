package sim

import (
	"bytes"
	"errors"
	"testing"
)

func mustNew(t *testing.T, rows, cols int) *Session {
	t.Helper()
	s, err := New(rows, cols)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", rows, cols, err)
	}
	return s
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("New(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestNewBoardIsDead(t *testing.T) {
	s := mustNew(t, 4, 6)
	if s.Population() != 0 {
		t.Fatalf("fresh board population = %d, want 0", s.Population())
	}
	if s.Rows() != 4 || s.Cols() != 6 {
		t.Fatalf("dimensions = %dx%d, want 4x6", s.Rows(), s.Cols())
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	for _, wrapped := range []bool{false, true} {
		s := mustNew(t, 7, 7)
		s.Advance(wrapped)
		if s.Population() != 0 {
			t.Errorf("wrapped=%v: empty board grew population %d", wrapped, s.Population())
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	for _, wrapped := range []bool{false, true} {
		s := mustNew(t, 5, 5)
		s.Stamp(1, 1, Block)
		before := append([]uint8(nil), s.Cells()...)
		s.Advance(wrapped)
		if !bytes.Equal(before, s.Cells()) {
			t.Errorf("wrapped=%v: block changed after advance", wrapped)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	s := mustNew(t, 5, 5)
	s.Stamp(2, 1, Blinker)

	s.Advance(false)
	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			st, err := s.Cell(row, col)
			if err != nil {
				t.Fatalf("Cell(%d,%d): %v", row, col, err)
			}
			alive := st == Alive
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}

	s.Advance(false)
	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			st, _ := s.Cell(row, col)
			alive := st == Alive
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("after second advance cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestAdvanceIsDeterministic(t *testing.T) {
	for _, wrapped := range []bool{false, true} {
		a := mustNew(t, 12, 9)
		b := mustNew(t, 12, 9)
		a.Randomize(99, 0.3)
		b.Randomize(99, 0.3)
		for i := 0; i < 10; i++ {
			a.Advance(wrapped)
			b.Advance(wrapped)
		}
		if !bytes.Equal(a.Cells(), b.Cells()) {
			t.Errorf("wrapped=%v: identical boards diverged", wrapped)
		}
	}
}

func TestWrappedNeighborCount(t *testing.T) {
	s := mustNew(t, 3, 3)
	s.SetCell(0, 0, Alive)

	// (0,0) is the diagonal wrap neighbor of (2,2) on the torus.
	if n := s.AliveNeighbors(2, 2, true); n != 1 {
		t.Errorf("AliveNeighbors(2,2,wrapped) = %d, want 1", n)
	}
	if n := s.AliveNeighbors(1, 1, true); n != 1 {
		t.Errorf("AliveNeighbors(1,1,wrapped) = %d, want 1", n)
	}
	// Bounded, (2,2) has no live neighbors at all.
	if n := s.AliveNeighbors(2, 2, false); n != 0 {
		t.Errorf("AliveNeighbors(2,2,bounded) = %d, want 0", n)
	}
}

func TestBoundedCornerNeighborCount(t *testing.T) {
	s := mustNew(t, 3, 3)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			s.SetCell(row, col, Alive)
		}
	}
	if n := s.AliveNeighbors(0, 0, false); n != 3 {
		t.Errorf("bounded corner count = %d, want 3", n)
	}
	if n := s.AliveNeighbors(0, 1, false); n != 5 {
		t.Errorf("bounded edge count = %d, want 5", n)
	}
	if n := s.AliveNeighbors(0, 0, true); n != 8 {
		t.Errorf("wrapped corner count = %d, want 8", n)
	}
}

func TestSetCellOutOfBoundsIsNoop(t *testing.T) {
	s := mustNew(t, 4, 4)
	before := append([]uint8(nil), s.Cells()...)
	s.SetCell(-1, 0, Alive)
	s.SetCell(s.Rows(), 0, Alive)
	s.SetCell(0, -1, Alive)
	s.SetCell(0, s.Cols(), Alive)
	if !bytes.Equal(before, s.Cells()) {
		t.Fatal("out-of-bounds SetCell modified the board")
	}
}

func TestCellOutOfBounds(t *testing.T) {
	s := mustNew(t, 4, 4)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		st, err := s.Cell(pos[0], pos[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Cell(%d,%d) err = %v, want ErrOutOfBounds", pos[0], pos[1], err)
		}
		if st != Dead {
			t.Errorf("Cell(%d,%d) state = %v, want Dead", pos[0], pos[1], st)
		}
	}
}

func TestSetCellEraseSetsDead(t *testing.T) {
	s := mustNew(t, 4, 4)
	s.SetCell(1, 1, Alive)
	// Setting Dead on a dead cell must keep it dead, not flip it.
	s.SetCell(2, 2, Dead)
	s.SetCell(1, 1, Dead)
	if s.Population() != 0 {
		t.Fatalf("population = %d, want 0", s.Population())
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := mustNew(t, 6, 6)
	s.Randomize(7, 0.5)
	s.Advance(true)
	s.Reset()
	if s.Population() != 0 || s.Generation() != 0 {
		t.Fatalf("after reset population=%d generation=%d", s.Population(), s.Generation())
	}
	s.Reset()
	if s.Population() != 0 || s.Generation() != 0 {
		t.Fatal("second reset changed state")
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := mustNew(t, 33, 17)
	parallel := mustNew(t, 33, 17)
	serial.Randomize(1234, 0.35)
	parallel.Randomize(1234, 0.35)
	parallel.SetWorkers(4)

	for _, wrapped := range []bool{false, true} {
		for i := 0; i < 8; i++ {
			serial.Advance(wrapped)
			parallel.Advance(wrapped)
			if !bytes.Equal(serial.Cells(), parallel.Cells()) {
				t.Fatalf("wrapped=%v: parallel advance diverged at step %d", wrapped, i)
			}
		}
	}
}

func TestGenerationAndPopulation(t *testing.T) {
	s := mustNew(t, 5, 5)
	s.Stamp(2, 1, Blinker)
	if s.Population() != 3 {
		t.Fatalf("population = %d, want 3", s.Population())
	}
	s.Advance(false)
	s.Advance(false)
	if s.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", s.Generation())
	}
	if s.Population() != 3 {
		t.Fatalf("blinker population = %d, want 3", s.Population())
	}
}
