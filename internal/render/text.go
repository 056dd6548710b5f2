package render

import (
	"strings"

	"eca/pkg/core"
)

// Text renders grid as one line per generation using on and off for cells.
func Text(grid *core.ByteGrid, on, off rune) string {
	var b strings.Builder
	b.Grow(grid.H * (grid.W + 1))
	for y := 0; y < grid.H; y++ {
		for _, c := range grid.Row(y) {
			if c != 0 {
				b.WriteRune(on)
			} else {
				b.WriteRune(off)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
