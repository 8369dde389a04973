package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
	log "github.com/sirupsen/logrus"

	"nonogrid/game"
)

func main() {
	config := game.DefaultConfig()

	flaggy.SetName("nonogram")
	flaggy.SetDescription("Toggle the blocks of a nonogram grid with the mouse")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&config.PuzzlePath, "p", "puzzle", "Puzzle file to load ('#' marks a filled block)")
	flaggy.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("NONOGRAM_DEBUG") == "1" {
		log.SetLevel(log.DebugLevel)
	}

	g, err := game.NewGame(config)
	if err != nil {
		log.WithError(err).Fatal("failed to start")
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game loop stopped")
	}
}
