package main

import (
	"io"
	"log"
	"os"

	"github.com/saeidalz13/seabattle/api"
	"github.com/saeidalz13/seabattle/internal/config"
	"github.com/saeidalz13/seabattle/internal/random"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalln(err)
	}

	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}
	log.Printf("stage: %s\tboard size: %d\tlocale: %s\n", cfg.Stage, cfg.BoardSize, cfg.Locale)

	rng, seed, err := random.NewRNG(cfg.Seed)
	if err != nil {
		panic(err)
	}
	log.Println("seed:", seed)

	terminal, err := api.NewTerminal(api.WithLocale(cfg.Locale))
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}

	terminal.Greet()
	game := api.StartGame(terminal, rng, cfg.BoardSize)

	if _, err := game.Run(); err != nil {
		log.Printf("game %s aborted: %v\n", game.Uuid(), err)
		os.Exit(1)
	}
}
