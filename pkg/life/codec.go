package life

import "fmt"

// maxAxis bounds a grid axis so wrapped coordinates always fit in the
// 32-bit field reserved for them inside a Key.
const maxAxis = 1 << 30

// Key packs a wrapped cell coordinate into a single hashable value:
// y in the high 32 bits, x in the low 32 bits.
type Key uint64

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Codec maps between toroidal grid coordinates and packed keys.
// The zero value is unusable; construct one through NewCodec.
type Codec struct {
	w, h int
}

// NewCodec validates the grid dimensions and returns a codec for them.
func NewCodec(w, h int) (Codec, error) {
	if w <= 0 || h <= 0 {
		return Codec{}, fmt.Errorf("life: grid size %dx%d must be positive", w, h)
	}
	if w > maxAxis || h > maxAxis {
		return Codec{}, fmt.Errorf("life: grid size %dx%d exceeds %d per axis", w, h, maxAxis)
	}
	return Codec{w: w, h: h}, nil
}

// Size returns the grid dimensions the codec wraps against.
func (c Codec) Size() Size { return Size{W: c.w, H: c.h} }

// Wrap normalizes a coordinate pair onto the torus using floored
// modulo, so negative inputs land in [0, w) x [0, h).
func (c Codec) Wrap(x, y int) (int, int) {
	x = (x%c.w + c.w) % c.w
	y = (y%c.h + c.h) % c.h
	return x, y
}

// Encode wraps the coordinates and packs them into a Key.
func (c Codec) Encode(x, y int) Key {
	x, y = c.Wrap(x, y)
	return Key(uint32(y))<<32 | Key(uint32(x))
}

// Decode unpacks a Key back into coordinates. The result is re-wrapped
// so keys encoded against a larger grid still land in-bounds.
func (c Codec) Decode(k Key) (int, int) {
	x := int(uint32(k))
	y := int(uint32(k >> 32))
	return c.Wrap(x, y)
}
