//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Im-Defalt/GameOfLife/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "JSON config file (explicit flags override file values)")
	flag.Parse()

	if err := cfg.Load(flag.CommandLine, *configPath); err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	l := app.Layout{Rows: cfg.Rows, Cols: cfg.Cols, Cell: cfg.CellSize}
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(l.WindowWidth(), l.Height())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
