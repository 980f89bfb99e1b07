package life

import "testing"

func mustCodec(t *testing.T, w, h int) Codec {
	t.Helper()
	c, err := NewCodec(w, h)
	if err != nil {
		t.Fatalf("NewCodec(%d, %d): %v", w, h, err)
	}
	return c
}

func TestNewCodecRejectsBadSizes(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}, {maxAxis + 1, 4}} {
		if _, err := NewCodec(size[0], size[1]); err == nil {
			t.Errorf("NewCodec(%d, %d) accepted invalid size", size[0], size[1])
		}
	}
}

func TestWrapFlooredModulo(t *testing.T) {
	c := mustCodec(t, 10, 6)
	cases := []struct {
		inX, inY     int
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{9, 5, 9, 5},
		{10, 6, 0, 0},
		{-1, -1, 9, 5},
		{-10, -6, 0, 0},
		{-11, -7, 9, 5},
		{25, 13, 5, 1},
	}
	for _, tc := range cases {
		x, y := c.Wrap(tc.inX, tc.inY)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("Wrap(%d, %d) = (%d, %d), want (%d, %d)", tc.inX, tc.inY, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	c := mustCodec(t, 7, 11)
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			wx, wy := c.Wrap(x, y)
			wwx, wwy := c.Wrap(wx, wy)
			if wx != wwx || wy != wwy {
				t.Fatalf("Wrap not idempotent at (%d, %d): (%d, %d) vs (%d, %d)", x, y, wx, wy, wwx, wwy)
			}
		}
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	c := mustCodec(t, 10, 6)
	for x := -15; x <= 25; x++ {
		for y := -9; y <= 15; y++ {
			wx, wy := c.Wrap(x, y)
			dx, dy := c.Decode(c.Encode(x, y))
			if dx != wx || dy != wy {
				t.Fatalf("Decode(Encode(%d, %d)) = (%d, %d), want (%d, %d)", x, y, dx, dy, wx, wy)
			}
		}
	}
}

func TestEncodeDistinct(t *testing.T) {
	c := mustCodec(t, 12, 9)
	seen := map[Key][2]int{}
	for y := 0; y < 9; y++ {
		for x := 0; x < 12; x++ {
			k := c.Encode(x, y)
			if prev, ok := seen[k]; ok {
				t.Fatalf("key collision: (%d, %d) and (%d, %d) both map to %d", x, y, prev[0], prev[1], k)
			}
			seen[k] = [2]int{x, y}
		}
	}
}

func TestDecodeRewrapsStaleKeys(t *testing.T) {
	// Keys encoded against a larger grid must land in-bounds when
	// decoded after a shrink.
	c := mustCodec(t, 10, 6)
	stale := Key(7)<<32 | Key(12)
	x, y := c.Decode(stale)
	if x != 2 || y != 1 {
		t.Fatalf("Decode(stale) = (%d, %d), want (2, 1)", x, y)
	}
}
