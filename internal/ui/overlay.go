//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var cursorTint = color.RGBA{R: 255, G: 120, B: 40, A: 96}

// Overlay draws the playback caption and a marker on the newest generation.
type Overlay struct {
	width       int
	scale       int
	showCaption bool
	showCursor  bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for rows of width cells drawn at scale.
func NewOverlay(width, scale int) *Overlay {
	o := &Overlay{width: width, scale: max(scale, 1), showCaption: true, showCursor: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers: 1 for the caption, 2 for the cursor.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCaption = !o.showCaption
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders caption and highlights generation row on screen.
func (o *Overlay) Draw(screen *ebiten.Image, caption string, row int) {
	if o.showCursor && row >= 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.width*o.scale), float64(o.scale))
		op.GeoM.Translate(0, float64(row*o.scale))
		op.ColorScale.ScaleWithColor(cursorTint)
		screen.DrawImage(o.pixel, op)
	}
	if o.showCaption {
		ebitenutil.DebugPrintAt(screen, caption, 4, 4)
	}
}
