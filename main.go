package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"

	"reynard/pkg/engine/input"
	"reynard/pkg/engine/logger"
	"reynard/pkg/game/config"
	"reynard/pkg/game/devtools"
	"reynard/pkg/game/gameplay"
	"reynard/pkg/game/menu"
	"reynard/pkg/game/renderer/ebiten"
	"reynard/pkg/game/state"
)

var log = logger.For("main")

func initGettext() {
	gotext.Configure("locales", "en_GB", "default")
}

func main() {
	startLevel := flag.Int("level", 1, "starting campaign level (for developer testing)")
	levelFile := flag.String("file", "", "play a single level file instead of the campaign")
	tuningFile := flag.String("tuning", "", "YAML file overriding the default tuning")
	seed := flag.Int64("seed", 0, "level generation seed (0 picks one from the clock)")
	logLevel := flag.String("log", "", "log level (debug, info, warn, error)")
	dump := flag.Bool("dump", false, "print the level map to the terminal and exit")
	headless := flag.Int("headless", 0, "run this many idle frames without a window, then print the map")
	keys := flag.Bool("keys", false, "print the controls and exit")
	flag.Parse()

	initGettext()

	tune, err := config.Load(*tuningFile)
	if err != nil {
		log.WithError(err).Fatal("cannot load tuning")
	}
	level := tune.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if err := logger.SetLevel(level); err != nil {
		log.WithError(err).Warn("unknown log level")
	}
	if unknown := input.SetBindings(tune.Bindings); len(unknown) > 0 {
		log.WithField("actions", unknown).Warn("bindings name unknown actions")
	}
	if *keys {
		menu.PrintBindings(os.Stdout)
		return
	}

	g, err := gameplay.BuildGame(gameplay.Options{
		LevelPath: *levelFile,
		Level:     *startLevel,
		Seed:      *seed,
		Tuning:    tune,
	})
	if err != nil {
		log.WithError(err).Fatal("cannot build game")
	}

	switch {
	case *dump:
		printMap(g)
	case *headless > 0:
		runHeadless(g, *headless)
		printMap(g)
	default:
		runWindowed(g)
	}
}

// runHeadless steps the game with no input, for smoke tests and dumps.
func runHeadless(g *state.Game, frames int) {
	dt := 1.0 / float64(max(g.Tuning.Viewer.TPS, 1))
	for range frames {
		if gameplay.Step(g, dt, input.NewFrame()) {
			return
		}
	}
}

func runWindowed(g *state.Game) {
	v, err := ebiten.New(g)
	if err != nil {
		log.WithError(err).Fatal("cannot create viewer")
	}
	if err := v.Run(); err != nil {
		log.WithError(err).Fatal("viewer stopped")
	}
}

func printMap(g *state.Game) {
	if err := devtools.PrintMap(os.Stdout, g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
