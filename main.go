package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/game"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "starfield",
		ReportTimestamp: true,
	})

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowClosingHandled(true)

	g := game.NewGame(logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("window", "err", err)
		os.Exit(1)
	}
}
