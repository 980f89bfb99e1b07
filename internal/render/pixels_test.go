package render

import (
	"image/color"
	"testing"

	"github.com/ill-usion/game-of-life/pkg/life"
)

func TestScatterRGBA(t *testing.T) {
	codec, err := life.NewCodec(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	alive := life.NewSet()
	alive.Add(codec.Encode(0, 0))
	alive.Add(codec.Encode(1, 2))

	buf := make([]byte, 4*4*3)
	scatterRGBA(buf, 4, 3, alive, codec, color.White, color.Black)

	at := func(x, y int) [4]byte {
		base := (y*4 + x) * 4
		return [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
	}

	white := [4]byte{255, 255, 255, 255}
	black := [4]byte{0, 0, 0, 255}

	if at(0, 0) != white {
		t.Errorf("pixel (0,0) = %v, want white", at(0, 0))
	}
	if at(1, 2) != white {
		t.Errorf("pixel (1,2) = %v, want white", at(1, 2))
	}
	for _, p := range [][2]int{{1, 0}, {3, 2}, {2, 1}, {0, 2}} {
		if got := at(p[0], p[1]); got != black {
			t.Errorf("pixel (%d,%d) = %v, want black", p[0], p[1], got)
		}
	}
}

func TestScatterRGBAWrapsNothingOutOfRange(t *testing.T) {
	// Keys always decode in-bounds, so the rasterizer never writes
	// outside the buffer even for keys packed against a larger grid.
	codec, err := life.NewCodec(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	alive := life.Set{life.Key(5)<<32 | life.Key(7): {}}

	buf := make([]byte, 4*2*2)
	scatterRGBA(buf, 2, 2, alive, codec, color.White, color.Black)

	// (7, 5) wraps to (1, 1).
	base := (1*2 + 1) * 4
	if buf[base] != 255 {
		t.Fatalf("wrapped key did not light pixel (1,1)")
	}
}
