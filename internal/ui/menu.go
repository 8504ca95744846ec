//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState is the configuration shown on the start menu.
type MenuState struct {
	Color   NamedColor
	Speed   int
	KnobX   int
	Wrapped bool
}

// Menu draws the initial configuration screen.
type Menu struct {
	width    int
	startBtn image.Rectangle
	colorBtn image.Rectangle
	wrapBtn  image.Rectangle
	slider   image.Rectangle
	pixel    *ebiten.Image
}

// NewMenu constructs a start menu for a window of the given width.
func NewMenu(width int, startBtn, colorBtn, wrapBtn, slider image.Rectangle) *Menu {
	m := &Menu{width: width, startBtn: startBtn, colorBtn: colorBtn, wrapBtn: wrapBtn, slider: slider}
	m.pixel = ebiten.NewImage(1, 1)
	m.pixel.Fill(color.White)
	return m
}

// Draw paints the full-screen menu.
func (m *Menu) Draw(screen *ebiten.Image, st MenuState) {
	screen.Fill(colorPanel)

	m.drawCentered(screen, "G A M E   O F   L I F E", 120)
	m.drawCentered(screen, "Initial configuration", 370)

	drawButton(screen, m.pixel, m.startBtn, "Start Game", true)

	drawButton(screen, m.pixel, m.colorBtn, "Color", false)
	swatch := image.Rect(m.colorBtn.Max.X-35, m.colorBtn.Min.Y+10, m.colorBtn.Max.X-15, m.colorBtn.Min.Y+30)
	fillRect(screen, m.pixel, swatch, st.Color.RGBA)

	wrapLabel := "Wrapping: No"
	if st.Wrapped {
		wrapLabel = "Wrapping: Yes"
	}
	drawButton(screen, m.pixel, m.wrapBtn, wrapLabel, false)

	drawSlider(screen, m.pixel, m.slider, st.KnobX, st.Speed)
}

func (m *Menu) drawCentered(screen *ebiten.Image, label string, y int) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, (m.width-bounds.Dx())/2, y, colorTextLight)
}
