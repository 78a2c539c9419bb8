package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/JoeLucas99/DemTestFinal3/settings"
)

func main() {
	cfgPath := settings.DefaultConfigPath()
	cfg, err := settings.Load(cfgPath)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}

	if err := initFonts(); err != nil {
		log.Fatal(err)
	}
	initWindowIcon()

	app := NewApp(cfg, cfgPath)

	ebiten.SetWindowSize(defaultWindowWidth, defaultWindowHeight)
	ebiten.SetWindowTitle("Line Orientation Test")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	if err := app.Close(); err != nil {
		log.Printf("Failed to close results store: %v", err)
	}
}
