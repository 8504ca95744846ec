//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const knobRadius = 8

// fillRect paints rect on dst by scaling a shared 1×1 white pixel.
func fillRect(dst, pixel *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
	dst.DrawImage(pixel, op)
}

// drawButton paints a labelled button, highlighted when selected.
func drawButton(dst, pixel *ebiten.Image, rect image.Rectangle, label string, selected bool) {
	bg := colorButton
	if selected {
		bg = colorHighlight
	}
	fillRect(dst, pixel, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, colorTextDark)
}

// drawSlider paints the speed slider track, knob, and current value label.
func drawSlider(dst, pixel *ebiten.Image, track image.Rectangle, knobX, speed int) {
	fillRect(dst, pixel, track, colorTrack)
	cy := float32(track.Min.Y) + float32(track.Dy())/2
	vector.DrawFilledCircle(dst, float32(knobX), cy, knobRadius, colorKnob, true)

	label := fmt.Sprintf("Speed: %d gen/s", speed)
	text.Draw(dst, label, basicfont.Face7x13, track.Min.X, track.Min.Y-12, colorTextLight)
}
