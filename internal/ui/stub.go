//go:build !ebiten

package ui

import "image"

// Panel is a no-op placeholder for headless builds.
type Panel struct{}

// NewPanel returns nil in the headless build.
func NewPanel(rect, colorBtn, wrapBtn, modeBtn, slider image.Rectangle) *Panel { return nil }

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any, PanelState) {}

// PanelState mirrors the GUI build's sidebar state.
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

// Menu is a no-op placeholder for headless builds.
type Menu struct{}

// NewMenu returns nil in the headless build.
func NewMenu(width int, startBtn, colorBtn, wrapBtn, slider image.Rectangle) *Menu { return nil }

// Draw is a no-op in the headless build.
func (m *Menu) Draw(any, MenuState) {}

// MenuState mirrors the GUI build's menu state.
type MenuState struct {
	Color   NamedColor
	Speed   int
	KnobX   int
	Wrapped bool
}
