package main

import (
	"log"

	"github.com/integrii/flaggy"

	"github.com/ill-usion/game-of-life/internal/app"
	"github.com/ill-usion/game-of-life/internal/view"
	"github.com/ill-usion/game-of-life/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	// Terminal-sized defaults; a character cell is the pixel here.
	cfg.Width, cfg.Height = 80, 40

	flaggy.SetName("life-tui")
	flaggy.SetDescription("terminal frontend for the toroidal Game of Life")
	cfg.Bind(flaggy.DefaultParser)
	cfg.BindTUI(flaggy.DefaultParser)
	flaggy.Parse()

	board, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if err := app.Populate(board, cfg); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	console, err := view.NewConsole(board, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := console.Run(); err != nil {
		log.Fatal(err)
	}
}
