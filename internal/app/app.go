//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Im-Defalt/GameOfLife/internal/core"
	"github.com/Im-Defalt/GameOfLife/internal/render"
	"github.com/Im-Defalt/GameOfLife/internal/sim"
	"github.com/Im-Defalt/GameOfLife/internal/ui"
)

type viewState int

const (
	viewMenu viewState = iota
	viewGame
)

var gridLineColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}

// Game adapts a simulation session to the ebiten.Game interface. It owns the
// pointer/keyboard handling the engine deliberately knows nothing about.
type Game struct {
	session *sim.Session
	layout  Layout
	painter *render.GridPainter
	panel   *ui.Panel
	menu    *ui.Menu
	ticker  *core.FixedStep

	view     viewState
	colorIdx int
	drawMode bool
	speed    int
	dragging bool
	debug    bool
}

// New builds the Game from a validated config.
func New(cfg *Config) (*Game, error) {
	session, err := sim.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	session.SetWrapped(cfg.Wrap)
	session.SetWorkers(cfg.Workers)
	if cfg.Density > 0 {
		session.Randomize(cfg.Seed, cfg.Density)
	}

	l := Layout{Rows: cfg.Rows, Cols: cfg.Cols, Cell: cfg.CellSize}
	panelRect := image.Rect(l.GridWidth(), 0, l.WindowWidth(), l.Height())
	return &Game{
		session:  session,
		layout:   l,
		painter:  render.NewGridPainter(cfg.Rows, cfg.Cols),
		panel:    ui.NewPanel(panelRect, l.ColorButton(), l.WrapButton(), l.ModeButton(), l.Slider()),
		menu:     ui.NewMenu(l.WindowWidth(), l.MenuStartButton(), l.MenuColorButton(), l.MenuWrapButton(), l.MenuSlider()),
		ticker:   core.NewFixedStep(cfg.Speed),
		drawMode: true,
		speed:    cfg.Speed,
	}, nil
}

// Update handles input and advances the simulation on its own clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.view == viewMenu {
		g.updateMenu()
		return nil
	}
	g.updateGame()
	return nil
}

func (g *Game) updateMenu() {
	mx, my := ebiten.CursorPosition()
	pos := image.Pt(mx, my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case pos.In(g.layout.MenuColorButton()):
			g.colorIdx = ui.NextColor(g.colorIdx)
		case pos.In(g.layout.MenuWrapButton()):
			g.session.SetWrapped(!g.session.Wrapped())
		case pos.In(g.layout.MenuStartButton()):
			g.view = viewGame
		case pos.In(g.layout.MenuSlider()):
			g.setSpeed(SliderSpeed(g.layout.MenuSlider(), mx))
		}
		return
	}
	// Dragging the knob along the track.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && pos.In(g.layout.MenuSlider()) {
		g.setSpeed(SliderSpeed(g.layout.MenuSlider(), mx))
	}
}

func (g *Game) updateGame() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.SetRunning(!g.session.Running())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	mx, my := ebiten.CursorPosition()
	pos := image.Pt(mx, my)
	paused := !g.session.Running()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && paused {
		if _, _, over := g.layout.CellAt(mx, my); over {
			g.dragging = true
			g.paint(mx, my)
		}
		switch {
		case pos.In(g.layout.ColorButton()):
			g.colorIdx = ui.NextColor(g.colorIdx)
		case pos.In(g.layout.WrapButton()):
			g.session.SetWrapped(!g.session.Wrapped())
		case pos.In(g.layout.ModeButton()):
			g.drawMode = !g.drawMode
		case pos.In(g.layout.Slider()):
			g.setSpeed(SliderSpeed(g.layout.Slider(), mx))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if paused && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			// Off-board drag positions are ignored by the engine.
			g.paint(mx, my)
		} else if pos.In(g.layout.Slider()) {
			g.setSpeed(SliderSpeed(g.layout.Slider(), mx))
		}
	}

	if g.session.Running() && g.ticker.ShouldStep() {
		g.session.Advance(g.session.Wrapped())
	}
}

func (g *Game) paint(mx, my int) {
	row, col, _ := g.layout.CellAt(mx, my)
	state := sim.Dead
	if g.drawMode {
		state = sim.Alive
	}
	g.session.SetCell(row, col, state)
}

func (g *Game) setSpeed(v int) {
	g.speed = v
	g.ticker.SetRate(v)
}

func (g *Game) cellColor() ui.NamedColor { return ui.CellColors[g.colorIdx] }

// Draw renders the current view.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.view == viewMenu {
		g.menu.Draw(screen, ui.MenuState{
			Color:   g.cellColor(),
			Speed:   g.speed,
			KnobX:   SliderKnobX(g.layout.MenuSlider(), g.speed),
			Wrapped: g.session.Wrapped(),
		})
		return
	}

	screen.Fill(color.Black)
	g.painter.Blit(screen, g.session.Cells(), g.cellColor().RGBA, color.Black, g.layout.Cell)
	g.drawGridLines(screen)
	g.panel.Draw(screen, ui.PanelState{
		Color:      g.cellColor(),
		Speed:      g.speed,
		KnobX:      SliderKnobX(g.layout.Slider(), g.speed),
		Wrapped:    g.session.Wrapped(),
		DrawMode:   g.drawMode,
		Running:    g.session.Running(),
		Generation: g.session.Generation(),
		Population: g.session.Population(),
	})

	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("tps %.1f fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, 4)
	}
}

func (g *Game) drawGridLines(screen *ebiten.Image) {
	w := float32(g.layout.GridWidth())
	h := float32(g.layout.Height())
	for _, x := range g.layout.VerticalLines() {
		vector.StrokeLine(screen, float32(x), 0, float32(x), h, 1, gridLineColor, false)
	}
	for _, y := range g.layout.HorizontalLines() {
		vector.StrokeLine(screen, 0, float32(y), w, float32(y), 1, gridLineColor, false)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.WindowWidth(), g.layout.Height()
}
