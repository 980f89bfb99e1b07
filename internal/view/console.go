// Package view implements the terminal frontend: a gocui layout with a
// live board, status panels and key bindings, driven by the step runner.
package view

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"github.com/ill-usion/game-of-life/internal/app"
	"github.com/ill-usion/game-of-life/internal/core"
	"github.com/ill-usion/game-of-life/pkg/life"
)

const (
	minInterval = 10 * time.Millisecond
	maxInterval = 2 * time.Second

	modeWaiting = "waiting"
	modeRunning = "running"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// snapshot carries one consistent view of the board from the runner
// goroutine into the gocui render callbacks.
type snapshot struct {
	w, h       int
	cells      []bool
	generation int
	population int
	interval   time.Duration
	mode       string
}

// Console is the terminal UI. All board and mode state is touched only
// on the runner goroutine; gocui callbacks receive immutable snapshots.
type Console struct {
	board   *life.Life
	runner  *core.Runner
	g       *gocui.Gui
	k       []keyBinding
	density float64

	// Runner-goroutine state.
	interval time.Duration
	mode     string

	first sync.Once

	liveFiller string
	deadFiller string
}

// NewConsole builds the terminal UI around the board and starts the
// step runner in its stopped state.
func NewConsole(board *life.Life, cfg *app.Config) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("view: init terminal: %w", err)
	}
	g.Mouse = true

	c := &Console{
		board:      board,
		g:          g,
		density:    cfg.Density,
		interval:   cfg.Interval,
		mode:       modeWaiting,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}
	c.runner = core.NewRunner(func() {
		c.board.Step()
		c.refresh()
	}, cfg.Interval)

	c.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "exit", c.cmdQuit, ""},
		{'n', "N", "next step", c.cmdStep, ""},
		{'r', "R", "run", c.cmdRun, ""},
		{'s', "S", "stop", c.cmdStop, ""},
		{'c', "C", "clear", c.cmdClear, ""},
		{'w', "W", "random soup", c.cmdSoup, ""},
		{'g', "G", "stamp glider", c.cmdGlider, ""},
		{'+', "+", "faster", c.cmdFaster, ""},
		{'-', "-", "slower", c.cmdSlower, ""},
		{gocui.MouseLeft, "MOUSE", "toggle cell", c.cmdMouse, "board"},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.k {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			c.runner.Close()
			return nil, fmt.Errorf("view: bind %v: %w", kb.key, err)
		}
	}
	return c, nil
}

// Run blocks in the gocui main loop until the user quits.
func (c *Console) Run() error {
	defer c.runner.Close()
	defer c.g.Close()
	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// refresh snapshots the board and hands the result to gocui. It must
// run on the runner goroutine.
func (c *Console) refresh() {
	size := c.board.Size()
	snap := snapshot{
		w:          size.W,
		h:          size.H,
		cells:      make([]bool, size.W*size.H),
		generation: c.board.Generation(),
		population: c.board.Population(),
		interval:   c.interval,
		mode:       c.mode,
	}
	codec := c.board.Codec()
	for k := range c.board.Alive() {
		x, y := codec.Decode(k)
		snap.cells[y*size.W+x] = true
	}
	c.g.Update(func(g *gocui.Gui) error {
		c.renderBoard(g, snap)
		c.renderStatus(g, snap)
		return nil
	})
}

func (c *Console) renderBoard(g *gocui.Gui, snap snapshot) {
	v, err := g.View("board")
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()

	var b bytes.Buffer
	for y := 0; y < snap.h && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < snap.w && x < maxW; x++ {
			if snap.cells[y*snap.w+x] {
				b.WriteString(c.liveFiller)
			} else {
				b.WriteString(c.deadFiller)
			}
		}
	}
	fmt.Fprint(v, b.String())
}

func (c *Console) renderStatus(g *gocui.Gui, snap snapshot) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	mode := snap.mode
	switch mode {
	case modeRunning:
		mode = aurora.Cyan(mode).String()
	default:
		mode = aurora.Blue(mode).String()
	}
	fmt.Fprintln(v, c.prop("Grid", "%d x %d", snap.w, snap.h))
	fmt.Fprintln(v, c.prop("Generation", "%d", snap.generation))
	fmt.Fprintln(v, c.prop("Alive", "%d", snap.population))
	fmt.Fprintln(v, c.prop("Interval", "%v", snap.interval))
	fmt.Fprintln(v, c.prop("Mode", "%s", mode))
}

func (c *Console) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+format, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	const leftWidth = 26
	if maxX < leftWidth+4 || maxY < 12 {
		return nil
	}

	if v, err := g.SetView("header", -1, -1, maxX+1, 2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		fmt.Fprintln(v, "\n  Game of Life on a torus")
	}

	if v, err := g.SetView("status", 0, 2, leftWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("board", leftWidth+1, 2, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-4, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, kb := range c.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(kb.name).String())
			b.WriteString(": ")
			b.WriteString(kb.descr)
		}
		fmt.Fprintln(v, b.String())
	}

	// First full render once the views exist.
	c.first.Do(func() {
		c.runner.Do(c.refresh)
	})
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.runner.StepOnce()
	return nil
}

func (c *Console) cmdRun(_ *gocui.View) error {
	c.runner.Do(func() {
		c.mode = modeRunning
		c.refresh()
	})
	c.runner.Start()
	return nil
}

func (c *Console) cmdStop(_ *gocui.View) error {
	c.runner.Stop()
	c.runner.Do(func() {
		c.mode = modeWaiting
		c.refresh()
	})
	return nil
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.runner.Stop()
	c.runner.Do(func() {
		c.board.Reset()
		c.mode = modeWaiting
		c.refresh()
	})
	return nil
}

func (c *Console) cmdSoup(_ *gocui.View) error {
	c.runner.Do(func() {
		c.board.Randomize(time.Now().UnixNano(), c.density)
		c.refresh()
	})
	return nil
}

func (c *Console) cmdGlider(_ *gocui.View) error {
	x, y := 0, 0
	if v, err := c.g.View("board"); err == nil {
		x, y = v.Cursor()
	}
	c.runner.Do(func() {
		if p, ok := life.LookupPattern("glider"); ok {
			c.board.InsertPattern(x, y, p.Rows)
		}
		c.refresh()
	})
	return nil
}

func (c *Console) cmdFaster(_ *gocui.View) error {
	c.runner.Do(func() {
		if c.interval/2 >= minInterval {
			c.interval /= 2
			c.runner.SetInterval(c.interval)
		}
		c.refresh()
	})
	return nil
}

func (c *Console) cmdSlower(_ *gocui.View) error {
	c.runner.Do(func() {
		if c.interval*2 <= maxInterval {
			c.interval *= 2
			c.runner.SetInterval(c.interval)
		}
		c.refresh()
	})
	return nil
}

func (c *Console) cmdMouse(v *gocui.View) error {
	if v == nil {
		return nil
	}
	x, y := v.Cursor()
	c.runner.Do(func() {
		c.board.ToggleCell(x, y)
		c.refresh()
	})
	return nil
}
