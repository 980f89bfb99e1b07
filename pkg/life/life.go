// Package life implements Conway's Game of Life on a toroidal grid
// using a sparse active-cell representation. Only cells flagged as
// potential candidates are evaluated each generation, so cost scales
// with activity rather than grid area.
package life

import "github.com/ill-usion/game-of-life/pkg/core"

// Life holds the full state of one simulation. It is not safe for
// concurrent use; callers must serialize access (see internal/core.Runner).
type Life struct {
	codec Codec

	cells     Set // published generation, read-only for collaborators
	potential Set // cells scheduled for evaluation on the next Step

	// Spare buffers swapped in by Step so map capacity is reused,
	// mirroring the current/next double buffering of the rule engine.
	nextCells     Set
	nextPotential Set

	gen int
}

// New returns an empty simulation for a w x h torus. Dimensions must
// be positive and within the codec's packing range.
func New(w, h int) (*Life, error) {
	codec, err := NewCodec(w, h)
	if err != nil {
		return nil, err
	}
	return &Life{
		codec:         codec,
		cells:         NewSet(),
		potential:     NewSet(),
		nextCells:     NewSet(),
		nextPotential: NewSet(),
	}, nil
}

// Size returns the grid dimensions.
func (l *Life) Size() Size { return l.codec.Size() }

// Codec exposes the coordinate codec for collaborators that need to
// unpack keys from the alive set.
func (l *Life) Codec() Codec { return l.codec }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.gen }

// Population returns the number of alive cells.
func (l *Life) Population() int { return len(l.cells) }

// Alive exposes the current alive set. Callers must treat it as
// read-only; Step replaces it wholesale each generation.
func (l *Life) Alive() Set { return l.cells }

// IsAlive reports whether the cell at (x, y) is alive, wrapping the
// coordinates onto the torus first.
func (l *Life) IsAlive(x, y int) bool {
	return l.cells.Has(l.codec.Encode(x, y))
}

// neighbors counts alive cells in the Moore neighborhood of (x, y).
// Encode wraps, so edge cells see the opposite side of the torus.
func (l *Life) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.cells.Has(l.codec.Encode(x+dx, y+dy)) {
				n++
			}
		}
	}
	return n
}

// spread marks the full 3x3 neighborhood of (x, y), the cell itself
// included, for evaluation in the following generation.
func (l *Life) spread(dst Set, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			dst.Add(l.codec.Encode(x+dx, y+dy))
		}
	}
}

// Step advances the simulation by one generation. Only cells in the
// potential set are evaluated; the expansion below keeps that set a
// superset of every cell whose state could change next generation:
// survivors re-schedule themselves, deaths and births re-schedule
// their whole neighborhood.
func (l *Life) Step() {
	next := l.nextCells
	nextPot := l.nextPotential
	clear(next)
	clear(nextPot)

	for k := range l.potential {
		x, y := l.codec.Decode(k)
		n := l.neighbors(x, y)
		switch {
		case l.cells.Has(k):
			if n == 2 || n == 3 {
				next.Add(k)
				nextPot.Add(k)
			} else {
				l.spread(nextPot, x, y)
			}
		case n == 3:
			next.Add(k)
			l.spread(nextPot, x, y)
		}
	}

	l.cells, l.nextCells = next, l.cells
	l.potential, l.nextPotential = nextPot, l.potential
	l.gen++
}

// InsertCell marks the cell at wrapped (x, y) alive, visible
// immediately without waiting for a step. Its neighborhood is queued
// for evaluation so the next Step picks up the change. Inserting an
// already-alive cell is a no-op on the alive set.
func (l *Life) InsertCell(x, y int) {
	l.cells.Add(l.codec.Encode(x, y))
	l.spread(l.potential, x, y)
}

// ToggleCell flips the cell at wrapped (x, y). Killing a cell queues
// its neighborhood the same way a rule-engine death would.
func (l *Life) ToggleCell(x, y int) {
	k := l.codec.Encode(x, y)
	if l.cells.Has(k) {
		delete(l.cells, k)
		wx, wy := l.codec.Decode(k)
		l.spread(l.potential, wx, wy)
		return
	}
	l.InsertCell(x, y)
}

// Marker is the rune that denotes an alive cell in pattern rows.
const Marker = '#'

// InsertPattern stamps the rows at (x, y): row index maps to the y
// offset, column index to the x offset. Runes other than Marker are
// dead; rows may be ragged. Columns are counted in runes, so dead
// cells drawn with multibyte characters do not shift the stamp.
func (l *Life) InsertPattern(x, y int, rows []string) {
	for dy, row := range rows {
		col := 0
		for _, r := range row {
			if r == Marker {
				l.InsertCell(x+col, y+dy)
			}
			col++
		}
	}
}

// Reset clears all cell state and zeroes the generation counter.
func (l *Life) Reset() {
	clear(l.cells)
	clear(l.potential)
	clear(l.nextCells)
	clear(l.nextPotential)
	l.gen = 0
}

// Randomize resets the board and fills it with a deterministic random
// soup. density is the per-cell alive probability, clamped to [0, 1].
func (l *Life) Randomize(seed int64, density float64) {
	l.Reset()
	if density <= 0 {
		return
	}
	rng := core.NewRNG(seed)
	size := l.codec.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if rng.Chance(density) {
				l.InsertCell(x, y)
			}
		}
	}
}

// Resize changes the grid dimensions and re-derives every stored key
// through the new codec, so state survives a resize with coordinates
// wrapped onto the new torus. The generation counter is preserved.
func (l *Life) Resize(w, h int) error {
	codec, err := NewCodec(w, h)
	if err != nil {
		return err
	}
	old := l.codec
	l.codec = codec
	l.cells = rekey(l.cells, old, codec)
	l.potential = rekey(l.potential, old, codec)
	clear(l.nextCells)
	clear(l.nextPotential)
	return nil
}

// rekey re-encodes every key of s from the old codec into the new one.
// Distinct keys may collide after shrinking; set semantics absorb that.
func rekey(s Set, old, next Codec) Set {
	out := make(Set, len(s))
	for k := range s {
		x, y := old.Decode(k)
		out.Add(next.Encode(x, y))
	}
	return out
}
