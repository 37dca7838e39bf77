// Command mazegen generates a perfect maze, finds the shortest route
// to every sampled exit, and draws the result to stdout. It is a plain
// consumer of the lvlmaze core packages; all algorithmic work happens
// behind the maze.Session API.
//
// Usage:
//
//	mazegen [-config maze.toml] [-width N] [-height N] [-exits N] [-seed N] [-nodraw] [-v]
//
// Flag values override the config file, which overrides defaults
// (15×15 rooms, 4 exits, time-seeded randomness).
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlmaze/maze"
)

func main() {
	cfg := defaultSettings()

	configPath := flag.String("config", "", "optional TOML config file")
	width := flag.Int("width", cfg.Width, "maze width in rooms")
	height := flag.Int("height", cfg.Height, "maze height in rooms")
	numExits := flag.Int("exits", cfg.Exits, "number of boundary exits to sample")
	seed := flag.Int64("seed", 0, "random seed; omit for a time-seeded maze")
	noDraw := flag.Bool("nodraw", false, "skip ASCII rendering")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := newLogger(*verbose)

	if *configPath != "" {
		if err := applyConfigFile(*configPath, &cfg); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("cannot load config")
		}
	}
	// Explicitly passed flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "exits":
			cfg.Exits = *numExits
		case "seed":
			cfg.Seed = *seed
			cfg.Seeded = true
		}
	})
	cfg.NoDraw = *noDraw
	cfg.Verbose = *verbose

	opts := []maze.Option{maze.WithExits(cfg.Exits)}
	if cfg.Seeded {
		opts = append(opts, maze.WithSeed(cfg.Seed))
	}

	session, err := maze.New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		log.Fatal().Err(err).Int("width", cfg.Width).Int("height", cfg.Height).Msg("invalid configuration")
	}

	log.Info().Int("width", cfg.Width).Int("height", cfg.Height).Msg("starting maze generation")
	g, err := session.Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("maze generation failed")
	}
	placed := len(session.Exits())
	if placed < session.RequestedExits() {
		log.Warn().Int("requested", session.RequestedExits()).Int("placed", placed).
			Msg("exit count capped by boundary candidates")
	}
	log.Info().Int("exits", placed).Msg("maze generation completed")

	routes, err := session.FindAllPaths()
	if err != nil {
		log.Fatal().Err(err).Msg("pathfinding failed")
	}
	for _, r := range routes {
		if r.Found() {
			log.Info().Int("row", r.Exit.Row).Int("col", r.Exit.Col).Int("length", r.Len()).
				Msg("path found to exit")
		} else {
			log.Warn().Int("row", r.Exit.Row).Int("col", r.Exit.Col).Msg("no path found to exit")
		}
	}

	if !cfg.NoDraw {
		draw(os.Stdout, g, session.Start(), routes)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
