//go:build ebiten

package render

import (
	"image/color"

	"eca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an ebiten image of a history grid in sync with the number
// of generations revealed so far.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	painted int
}

// NewGridPainter allocates a painter for a history of h generations of w cells.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the first rows generations of grid and draws them scaled onto
// dst. Unrevealed generations stay transparent.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, rows int, on, off color.Color, scale int) {
	if grid == nil || grid.W != gp.w || grid.H != gp.h {
		return
	}
	rows = min(max(rows, 0), gp.h)
	if rows != gp.painted {
		n := gp.w * rows
		fillBinaryRGBA(gp.buf[:4*n], grid.Cells()[:n], on, off)
		clear(gp.buf[4*n:])
		gp.img.WritePixels(gp.buf)
		gp.painted = rows
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
