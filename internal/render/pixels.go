package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold at least 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := rgba(on), rgba(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// rgba returns the non-premultiplied bytes of c; nil is transparent.
func rgba(c color.Color) [4]byte {
	if c == nil {
		return [4]byte{}
	}
	v := color.RGBAModel.Convert(c).(color.RGBA)
	return [4]byte{v.R, v.G, v.B, v.A}
}
