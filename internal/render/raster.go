package render

import (
	"image"
	"image/color"

	"eca/pkg/core"

	xdraw "golang.org/x/image/draw"
)

// Grey200 is the light grey used for off cells by default.
var Grey200 = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}

// Style controls how a history grid is rasterized.
type Style struct {
	// CellSize is the side of each cell square in pixels.
	CellSize int
	// Margin is painted in Background around each cell. It is skipped when
	// it would leave no room for the cell itself.
	Margin int

	On         color.Color
	Off        color.Color
	Background color.Color
}

// DefaultStyle draws black on-cells and grey off-cells separated by a white
// 1-pixel margin.
func DefaultStyle() Style {
	return Style{CellSize: 4, Margin: 1, On: color.Black, Off: Grey200, Background: color.White}
}

// Rasterize renders one square per cell of grid: column x, row y becomes the
// square at (x*CellSize, y*CellSize).
func Rasterize(grid *core.ByteGrid, style Style) *image.RGBA {
	cell := max(style.CellSize, 1)

	src := image.NewRGBA(image.Rect(0, 0, grid.W, grid.H))
	fillBinaryRGBA(src.Pix, grid.Cells(), style.On, style.Off)
	if cell == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, grid.W*cell, grid.H*cell))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	m := style.Margin
	if m <= 0 || 2*m >= cell {
		return dst
	}
	bg := image.NewUniform(style.Background)
	if style.Background == nil {
		bg = image.NewUniform(color.Transparent)
	}
	b := dst.Bounds()
	for x := 0; x < grid.W; x++ {
		x0 := x * cell
		xdraw.Draw(dst, image.Rect(x0, 0, x0+m, b.Max.Y), bg, image.Point{}, xdraw.Src)
		xdraw.Draw(dst, image.Rect(x0+cell-m, 0, x0+cell, b.Max.Y), bg, image.Point{}, xdraw.Src)
	}
	for y := 0; y < grid.H; y++ {
		y0 := y * cell
		xdraw.Draw(dst, image.Rect(0, y0, b.Max.X, y0+m), bg, image.Point{}, xdraw.Src)
		xdraw.Draw(dst, image.Rect(0, y0+cell-m, b.Max.X, y0+cell), bg, image.Point{}, xdraw.Src)
	}
	return dst
}
