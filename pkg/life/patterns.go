package life

import "sort"

// Pattern is a named seed shape expressed as rows of rune art, where
// Marker denotes an alive cell.
type Pattern struct {
	Name  string
	Descr string
	Rows  []string
}

// Cells returns the number of alive cells the pattern stamps.
func (p Pattern) Cells() int {
	n := 0
	for _, row := range p.Rows {
		for _, r := range row {
			if r == Marker {
				n++
			}
		}
	}
	return n
}

// Width returns the widest row of the pattern.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of rows of the pattern.
func (p Pattern) Height() int { return len(p.Rows) }

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern to the library under its name.
func RegisterPattern(p Pattern) {
	if p.Name == "" || len(p.Rows) == 0 {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the named pattern from the library.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the library contents in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	for _, p := range []Pattern{
		{
			Name:  "block",
			Descr: "2x2 still life",
			Rows: []string{
				"##",
				"##",
			},
		},
		{
			Name:  "blinker",
			Descr: "period-2 oscillator",
			Rows: []string{
				"###",
			},
		},
		{
			Name:  "toad",
			Descr: "period-2 oscillator",
			Rows: []string{
				".###",
				"###.",
			},
		},
		{
			Name:  "beacon",
			Descr: "period-2 oscillator",
			Rows: []string{
				"##..",
				"##..",
				"..##",
				"..##",
			},
		},
		{
			Name:  "glider",
			Descr: "diagonal spaceship, period 4",
			Rows: []string{
				".#.",
				"..#",
				"###",
			},
		},
		{
			Name:  "lwss",
			Descr: "lightweight spaceship, period 4",
			Rows: []string{
				".####",
				"#...#",
				"....#",
				"#..#.",
			},
		},
		{
			Name:  "rpentomino",
			Descr: "methuselah, stabilizes after ~1100 generations",
			Rows: []string{
				".##",
				"##.",
				".#.",
			},
		},
		{
			Name:  "gosper-gun",
			Descr: "glider gun, emits a glider every 30 generations",
			Rows: []string{
				"........................#...........",
				"......................#.#...........",
				"............##......##............##",
				"...........#...#....##............##",
				"##........#.....#...##..............",
				"##........#...#.##....#.#...........",
				"..........#.....#.......#...........",
				"...........#...#....................",
				"............##......................",
			},
		},
	} {
		RegisterPattern(p)
	}
}
