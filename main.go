// bsp-roguelike plays a single-player dungeon crawl in the terminal. Build:
//
//	go build -o bsp-roguelike .
//
// Usage:
//
//	./bsp-roguelike [--width 100] [--height 100] [--seed 0] [--mode bsp] [--locale en]
//
// Every flag defaults to its ROGUE_* environment variable.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bsp-roguelike/internal/config"
	"bsp-roguelike/internal/engine"
	"bsp-roguelike/internal/game"
	"bsp-roguelike/internal/msg"
	"bsp-roguelike/internal/random"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("bsp-roguelike", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "map width in tiles")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "map height in tiles")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.StringVar(&cfg.MapMode, "mode", cfg.MapMode, "map layout: bsp or simple")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message language: en or ja")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write the structured log to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}

	eng := engine.New(engine.OptionsFromConfig(cfg), random.New(seed), msg.Printer(cfg.Locale), logger)
	g, err := game.New(eng, game.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   seed,
		Mode:   cfg.Mode().String(),
	}, logger)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}

// newLogger writes text records to cfg.LogFile. The terminal belongs to the
// game, so without a file the log is discarded.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
