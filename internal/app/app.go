//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"termlife/internal/command"
	"termlife/internal/core"
	"termlife/internal/render"
	"termlife/internal/sim"
	"termlife/internal/ui"
)

const hudWidth = 220

// Game adapts a Simulation to the ebiten.Game interface.
type Game struct {
	sim      *sim.Simulation
	commands *command.Queue
	pacer    *core.FixedStep
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for s. Keyboard and HUD input is pushed onto
// commands, which may also be fed by the stdin listener.
func New(s *sim.Simulation, commands *command.Queue, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := s.Board().Size()
	return &Game{
		sim:      s,
		commands: commands,
		pacer:    core.NewFixedStep(s.Control().Delay),
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(hudWidth, commands),
		overlay:  ui.NewOverlay(size, scale),
		onColor:  color.RGBA{R: 80, G: 220, B: 100, A: 255},
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sim.Control().Paused {
			g.commands.Push(command.Resume)
		} else {
			g.commands.Push(command.Pause)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.commands.Push(command.Resume)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.commands.Push(command.Step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.commands.Push(command.ToggleWrap)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.commands.Push(command.Faster)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.commands.Push(command.Slower)
	}

	g.overlay.Update()
	g.hud.Update(ui.StatusOf(g.sim), g.boardWidth())

	if c, ok := g.commands.TryPop(); ok {
		g.sim.Apply(c)
	}

	ctl := g.sim.Control()
	g.pacer.SetStep(ctl.Delay)
	if ctl.Paused {
		if g.sim.TakeStep() {
			g.sim.Tick()
		}
		return nil
	}
	if g.pacer.ShouldStep() {
		g.sim.Tick()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Board(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.sim.Engine().Wrap())
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.boardWidth(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Board().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

func (g *Game) boardWidth() int {
	return g.sim.Board().W * g.scale
}
