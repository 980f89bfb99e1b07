//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"github.com/ill-usion/game-of-life/internal/app"
	"github.com/ill-usion/game-of-life/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("life")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	cfg.Bind(flaggy.DefaultParser)
	cfg.BindGUI(flaggy.DefaultParser)
	flaggy.Parse()

	board, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if err := app.Populate(board, cfg); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	game := app.New(board, cfg)
	size := board.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("life — %dx%d torus", size.W, size.H))
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
