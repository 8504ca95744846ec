//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// PanelState is everything the sidebar shows on one frame.
type PanelState struct {
	Color      NamedColor
	Speed      int
	KnobX      int
	Wrapped    bool
	DrawMode   bool
	Running    bool
	Generation int
	Population int
}

// Panel draws the settings sidebar to the right of the board view.
type Panel struct {
	rect     image.Rectangle
	colorBtn image.Rectangle
	wrapBtn  image.Rectangle
	modeBtn  image.Rectangle
	slider   image.Rectangle
	pixel    *ebiten.Image
}

// NewPanel constructs a sidebar covering rect with the given widget areas.
func NewPanel(rect, colorBtn, wrapBtn, modeBtn, slider image.Rectangle) *Panel {
	p := &Panel{rect: rect, colorBtn: colorBtn, wrapBtn: wrapBtn, modeBtn: modeBtn, slider: slider}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Draw paints the sidebar onto screen.
func (p *Panel) Draw(screen *ebiten.Image, st PanelState) {
	fillRect(screen, p.pixel, p.rect, colorPanel)

	face := basicfont.Face7x13
	x := p.rect.Min.X + 24

	text.Draw(screen, "SPACE = start / pause", face, x, 50, colorTextLight)
	text.Draw(screen, "R = reset the board", face, x, 75, colorTextLight)
	text.Draw(screen, "ESC = quit", face, x, 100, colorTextLight)

	status, statusColor := "STATE: Pause", colorPaused
	if st.Running {
		status, statusColor = "STATE: Play", colorPlaying
	}
	text.Draw(screen, status, face, x+36, 180, statusColor)
	text.Draw(screen, fmt.Sprintf("Gen %d   Alive %d", st.Generation, st.Population), face, x, 205, colorTextLight)

	drawButton(screen, p.pixel, p.colorBtn, "Color", false)
	swatch := image.Rect(p.colorBtn.Max.X-35, p.colorBtn.Min.Y+10, p.colorBtn.Max.X-15, p.colorBtn.Min.Y+30)
	fillRect(screen, p.pixel, swatch, st.Color.RGBA)

	wrapLabel := "Wrapping: No"
	if st.Wrapped {
		wrapLabel = "Wrapping: Yes"
	}
	drawButton(screen, p.pixel, p.wrapBtn, wrapLabel, false)

	modeLabel := "Mode: Erase"
	if st.DrawMode {
		modeLabel = "Mode: Draw"
	}
	drawButton(screen, p.pixel, p.modeBtn, modeLabel, false)

	drawSlider(screen, p.pixel, p.slider, st.KnobX, st.Speed)
}
