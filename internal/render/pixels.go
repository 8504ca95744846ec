package render

import "image/color"

// fillBinaryRGBA converts 0/1 cell data into RGBA pixels in buf, painting
// live cells with on and dead cells with off.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	live := toRGBA(on)
	dead := toRGBA(off)
	for i, c := range cells {
		px := dead
		if c != 0 {
			px = live
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
