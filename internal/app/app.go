//go:build ebiten

package app

import (
	"image/color"
	"time"

	icore "eca/internal/core"
	"eca/internal/render"
	"eca/internal/ui"
	"eca/pkg/core"
	"eca/pkg/eca"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulated automaton to the ebiten.Game interface, revealing
// its history one generation at a time.
type Game struct {
	rule    eca.Rule
	history *core.ByteGrid
	painter *render.GridPainter
	overlay *ui.Overlay
	pacer   *icore.Pacer
	play    *Playback

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided automaton, which must already be
// simulated. rate is the number of generations revealed per second.
func New(a *eca.Automaton, scale, rate int) (*Game, error) {
	history, err := a.History()
	if err != nil {
		return nil, err
	}
	return &Game{
		rule:     a.Rule(),
		history:  history,
		painter:  render.NewGridPainter(history.W, history.H),
		overlay:  ui.NewOverlay(history.W, scale),
		pacer:    icore.NewPacer(rate),
		play:     NewPlayback(history.H),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}, nil
}

// Update handles per-frame logic and reveals due generations.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.play.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.play.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.play.Restart()
	}

	g.overlay.Update()
	g.play.Advance(g.pacer.Due(time.Now()))
	return nil
}

// Draw renders the revealed generations.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.history, g.play.Revealed(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, Caption(g.rule, g.play), g.play.Revealed()-1)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.history.W * g.scale, g.history.H * g.scale
}
