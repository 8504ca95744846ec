package ui

import "image/color"

// NamedColor couples a display label to a live-cell color.
type NamedColor struct {
	Name string
	RGBA color.RGBA
}

// CellColors lists the selectable live-cell colors in cycle order.
var CellColors = []NamedColor{
	{Name: "Green", RGBA: color.RGBA{G: 255, A: 255}},
	{Name: "Red", RGBA: color.RGBA{R: 255, A: 255}},
	{Name: "Blue", RGBA: color.RGBA{B: 255, A: 255}},
	{Name: "Yellow", RGBA: color.RGBA{R: 255, G: 255, A: 255}},
}

// NextColor returns the palette index after i, wrapping around.
func NextColor(i int) int {
	return (i + 1) % len(CellColors)
}

// Shared chrome colors.
var (
	colorPanel     = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	colorButton    = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	colorHighlight = color.RGBA{R: 255, G: 255, A: 255}
	colorTrack     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorKnob      = color.RGBA{R: 255, A: 255}
	colorTextDark  = color.RGBA{A: 255}
	colorTextLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPlaying   = color.RGBA{R: 255, A: 255}
	colorPaused    = color.RGBA{G: 255, A: 255}
)
