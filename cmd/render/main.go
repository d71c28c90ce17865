package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"tttdisplay/board"
	"tttdisplay/game"
	"tttdisplay/surface"
)

func main() {
	configPath := flag.String("config", os.Getenv("TTT_CONFIG"), "YAML config file (or set TTT_CONFIG)")
	position := flag.String("position", ".../.../...", "Board rows separated by '/', using X, O and '.'")
	out := flag.String("out", "board.png", "Output PNG path")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log, err := game.SetupLogging(config.LogLevel)
	if err != nil {
		logrus.Fatal(err)
	}

	marks, err := parsePosition(*position)
	if err != nil {
		log.Fatalf("Invalid position: %v", err)
	}

	style, err := config.Style()
	if err != nil {
		log.Fatal(err)
	}

	canvas := surface.NewRaster(config.ScreenWidth, config.ScreenHeight, config.Stroke)
	canvas.Fill(style.Background)

	display, err := board.NewDisplay(config.Board, canvas, nil, style)
	if err != nil {
		log.Fatalf("Failed to create display: %v", err)
	}

	display.DrawBoardLines()
	for row := range board.Size {
		for column := range board.Size {
			display.DrawMark(row, column, marks[row][column], false)
		}
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer file.Close()

	if err := canvas.EncodePNG(file); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	log.WithField("path", *out).Info("board rendered")
}

// parsePosition reads "XO./.X./..O" style boards
func parsePosition(s string) ([board.Size][board.Size]board.Mark, error) {
	var marks [board.Size][board.Size]board.Mark

	rows := strings.Split(s, "/")
	if len(rows) != board.Size {
		return marks, fmt.Errorf("want %d rows, got %d", board.Size, len(rows))
	}
	for r, row := range rows {
		cells := []rune(row)
		if len(cells) != board.Size {
			return marks, fmt.Errorf("row %d: want %d cells, got %d", r, board.Size, len(cells))
		}
		for c, ch := range cells {
			mark, err := board.ParseMark(ch)
			if err != nil {
				return marks, fmt.Errorf("row %d: %w", r, err)
			}
			marks[r][c] = mark
		}
	}
	return marks, nil
}
