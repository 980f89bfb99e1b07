package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"github.com/ill-usion/game-of-life/pkg/life"
)

// Config represents the command-line parameters shared by the GUI and
// terminal frontends.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Pattern string
	Random  bool
	Density float64

	// GUI only.
	Scale int
	TPS   int

	// Terminal only.
	Interval time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    200,
		Height:   150,
		Seed:     42,
		Pattern:  "glider",
		Density:  0.25,
		Scale:    4,
		TPS:      15,
		Interval: 100 * time.Millisecond,
	}
}

// Bind attaches the shared parameters to the flaggy parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "width of the grid in cells")
	p.Int(&c.Height, "y", "height", "height of the grid in cells")
	p.Int64(&c.Seed, "", "seed", "seed for the random soup")
	p.String(&c.Pattern, "p", "pattern", "seed pattern ["+strings.Join(life.PatternNames(), "|")+"]")
	p.Bool(&c.Random, "r", "random", "seed with a random soup instead of a pattern")
	p.Float64(&c.Density, "d", "density", "alive probability per cell for the random soup")
}

// BindGUI attaches the GUI-only parameters.
func (c *Config) BindGUI(p *flaggy.Parser) {
	p.Int(&c.Scale, "s", "scale", "pixel scale multiplier")
	p.Int(&c.TPS, "t", "tps", "simulation steps per second")
}

// BindTUI attaches the terminal-only parameters.
func (c *Config) BindTUI(p *flaggy.Parser) {
	p.Duration(&c.Interval, "i", "interval", "delay between steps, e.g. 150ms")
}

// Populate seeds an empty board from the configuration: a random soup
// when requested, otherwise the named pattern stamped at the center.
func Populate(board *life.Life, cfg *Config) error {
	if cfg.Random {
		board.Randomize(cfg.Seed, cfg.Density)
		return nil
	}
	p, ok := life.LookupPattern(cfg.Pattern)
	if !ok {
		return fmt.Errorf("unknown pattern %q (have %s)", cfg.Pattern, strings.Join(life.PatternNames(), ", "))
	}
	size := board.Size()
	board.InsertPattern((size.W-p.Width())/2, (size.H-p.Height())/2, p.Rows)
	return nil
}
