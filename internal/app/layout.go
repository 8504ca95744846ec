package app

import "image"

// Sidebar and slider geometry, matching the board view on its left.
const (
	PanelWidth = 250

	// MinSpeed and MaxSpeed bound the generations-per-second slider.
	MinSpeed = 1
	MaxSpeed = 60

	buttonWidth  = 180
	buttonHeight = 40
	sliderHeight = 10
)

// Layout computes the pixel geometry of the board view, the sidebar widgets
// and the start menu from the configured board size.
type Layout struct {
	Rows, Cols, Cell int
}

// GridWidth returns the pixel width of the board view.
func (l Layout) GridWidth() int { return l.Cols * l.Cell }

// Height returns the window height in pixels.
func (l Layout) Height() int { return l.Rows * l.Cell }

// WindowWidth returns the full window width including the sidebar.
func (l Layout) WindowWidth() int { return l.GridWidth() + PanelWidth }

// CellAt maps a pixel position to board coordinates. over reports whether the
// position is inside the board view; rows and cols past the board edge are
// left for the engine's tolerant cell write to ignore.
func (l Layout) CellAt(px, py int) (row, col int, over bool) {
	row = floorDiv(py, l.Cell)
	col = floorDiv(px, l.Cell)
	over = px >= 0 && px < l.GridWidth() && py >= 0 && py < l.Height()
	return row, col, over
}

// VerticalLines returns the x offsets of the board's vertical grid lines.
// The board/panel seam at GridWidth is not a line.
func (l Layout) VerticalLines() []int { return lineOffsets(l.GridWidth(), l.Cell) }

// HorizontalLines returns the y offsets of the board's horizontal grid lines.
func (l Layout) HorizontalLines() []int { return lineOffsets(l.Height(), l.Cell) }

func lineOffsets(extent, cell int) []int {
	offsets := make([]int, 0, extent/cell)
	for v := 0; v < extent; v += cell {
		offsets = append(offsets, v)
	}
	return offsets
}

// Sidebar widgets, anchored inside the panel.

// ColorButton cycles the live-cell color.
func (l Layout) ColorButton() image.Rectangle { return l.panelButton(230) }

// WrapButton toggles the board topology.
func (l Layout) WrapButton() image.Rectangle { return l.panelButton(280) }

// ModeButton toggles between drawing and erasing cells.
func (l Layout) ModeButton() image.Rectangle { return l.panelButton(330) }

// Slider is the speed slider track in the sidebar.
func (l Layout) Slider() image.Rectangle {
	x := l.GridWidth() + 35
	return image.Rect(x, 430, x+buttonWidth, 430+sliderHeight)
}

func (l Layout) panelButton(y int) image.Rectangle {
	x := l.GridWidth() + 35
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

// Start menu widgets, centered in the window.

// MenuStartButton leaves the menu and enters the game.
func (l Layout) MenuStartButton() image.Rectangle {
	cx := l.WindowWidth() / 2
	return image.Rect(cx-110, 200, cx+110, 260)
}

// MenuColorButton cycles the live-cell color from the menu.
func (l Layout) MenuColorButton() image.Rectangle { return l.menuButton(410) }

// MenuWrapButton toggles the topology from the menu.
func (l Layout) MenuWrapButton() image.Rectangle { return l.menuButton(460) }

// MenuSlider is the speed slider track on the menu.
func (l Layout) MenuSlider() image.Rectangle {
	x := l.WindowWidth()/2 - buttonWidth/2
	return image.Rect(x, 550, x+buttonWidth, 550+sliderHeight)
}

func (l Layout) menuButton(y int) image.Rectangle {
	x := l.WindowWidth()/2 - buttonWidth/2
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

// SliderSpeed converts a pointer x position on the track into a speed value,
// clamping to the track ends.
func SliderSpeed(track image.Rectangle, px int) int {
	rel := px - track.Min.X
	if rel < 0 {
		rel = 0
	}
	if rel > track.Dx() {
		rel = track.Dx()
	}
	return MinSpeed + rel*(MaxSpeed-MinSpeed)/track.Dx()
}

// SliderKnobX returns the knob center x for the current speed.
func SliderKnobX(track image.Rectangle, speed int) int {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	return track.Min.X + (speed-MinSpeed)*track.Dx()/(MaxSpeed-MinSpeed)
}

// floorDiv divides rounding toward negative infinity, so pointer positions
// just past the top or left edge map to negative cells instead of cell zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
