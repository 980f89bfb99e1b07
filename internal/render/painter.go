//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ill-usion/game-of-life/pkg/life"
)

// GridPainter updates a single RGBA image from the sparse alive set.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit rasterizes the board into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, board *life.Life, on, off color.Color, scale int) {
	size := board.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	scatterRGBA(gp.buf, gp.w, gp.h, board.Alive(), board.Codec(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
