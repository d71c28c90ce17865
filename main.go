package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"tttdisplay/game"
)

func main() {
	configPath := flag.String("config", os.Getenv("TTT_CONFIG"), "YAML config file (or set TTT_CONFIG)")
	surfaceName := flag.String("surface", "", "Canvas implementation: raster or vector (overrides config)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if *surfaceName != "" {
		config.Surface = *surfaceName
		if err := config.Validate(); err != nil {
			logrus.Fatalf("Invalid config: %v", err)
		}
	}

	log, err := game.SetupLogging(config.LogLevel)
	if err != nil {
		logrus.Fatal(err)
	}

	g, err := NewGame(config, log)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.ScreenWidth*config.WindowScale, config.ScreenHeight*config.WindowScale)
	ebiten.SetWindowTitle("Tic-Tac-Toe Display Test")

	log.WithFields(logrus.Fields{
		"surface": config.Surface,
		"board":   config.Board.Rect(),
	}).Info("starting display test")

	g.Start()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
