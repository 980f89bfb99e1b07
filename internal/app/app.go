//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ill-usion/game-of-life/internal/core"
	"github.com/ill-usion/game-of-life/internal/render"
	"github.com/ill-usion/game-of-life/internal/ui"
	"github.com/ill-usion/game-of-life/pkg/life"
)

// Game adapts a Life board to the ebiten.Game interface: it owns the
// pacing, input handling and drawing around the simulation core.
type Game struct {
	board   *life.Life
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep
	cfg     *Config

	onColor  color.Color
	offColor color.Color

	scale      int
	paused     bool
	tickOnce   bool
	patterns   []string
	patternIdx int
}

// New constructs a Game for the provided board.
func New(board *life.Life, cfg *Config) *Game {
	size := board.Size()
	return &Game{
		board:    board,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(),
		clock:    core.NewFixedStep(cfg.TPS),
		cfg:      cfg,
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		patterns: life.PatternNames(),
	}
}

// Update handles per-frame input and advances the simulation at the
// configured step rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.board.Randomize(time.Now().UnixNano(), g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(g.patterns) > 0 {
		g.patternIdx = (g.patternIdx + 1) % len(g.patterns)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.clock.SetTPS(g.clock.TPS() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.clock.SetTPS(g.clock.TPS() * 2)
	}

	g.handleMouse()

	if g.tickOnce {
		g.board.Step()
		g.tickOnce = false
	} else if !g.paused && g.clock.ShouldStep() {
		g.board.Step()
	}
	return nil
}

// handleMouse paints single cells with the left button and stamps the
// selected pattern with the right one.
func (g *Game) handleMouse() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := g.cursorCell()
		g.board.InsertCell(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && len(g.patterns) > 0 {
		if p, ok := life.LookupPattern(g.patterns[g.patternIdx]); ok {
			x, y := g.cursorCell()
			g.board.InsertPattern(x, y, p.Rows)
		}
	}
}

func (g *Game) cursorCell() (int, int) {
	cx, cy := ebiten.CursorPosition()
	return cx / g.scale, cy / g.scale
}

// Draw renders the board and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board, g.onColor, g.offColor, g.scale)
	pattern := ""
	if len(g.patterns) > 0 {
		pattern = g.patterns[g.patternIdx]
	}
	g.hud.Draw(screen, ui.Status{
		Generation: g.board.Generation(),
		Population: g.board.Population(),
		TPS:        g.clock.TPS(),
		Paused:     g.paused,
		Pattern:    pattern,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.board.Size()
	return s.W * g.scale, s.H * g.scale
}
