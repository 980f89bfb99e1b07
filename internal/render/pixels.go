package render

import (
	"image/color"

	"github.com/ill-usion/game-of-life/pkg/life"
)

// scatterRGBA clears the pixel buffer to the off color and then flips
// the pixels of every alive key to the on color. buf must hold 4*w*h
// bytes for a w x h grid.
func scatterRGBA(buf []byte, w, h int, alive life.Set, codec life.Codec, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()

	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}

	for k := range alive {
		x, y := codec.Decode(k)
		base := (y*w + x) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}
