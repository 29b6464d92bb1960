// Package gameplay provides the level lifecycle and the dispatch of
// meta intents around the per-frame game update.
package gameplay

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"reynard/pkg/engine/logger"
	"reynard/pkg/game/assets"
	"reynard/pkg/game/campaign"
	"reynard/pkg/game/config"
	"reynard/pkg/game/generator"
	"reynard/pkg/game/grid"
	"reynard/pkg/game/level"
	"reynard/pkg/game/state"
)

var log = logger.For("gameplay")

// Options selects where the levels of a game come from.
type Options struct {
	// LevelPath loads a single level file instead of running the campaign.
	LevelPath string
	// Level is the campaign level to start at (for developer testing).
	Level int
	// Seed drives generation and background picks. Zero picks one from the clock.
	Seed    int64
	Tuning  config.Tuning
	Catalog *assets.Catalog
}

// GridOptions derives the grid layout from the tuning.
func GridOptions(t config.Tuning) grid.Options {
	opts := grid.DefaultOptions(t.Room.Width, t.Room.Height, t.Physics.Scale)
	opts.SwapSeconds = t.Room.SwapSeconds
	return opts
}

// levelGenerator returns the default generator sized for the tuned rooms.
func levelGenerator(t config.Tuning) generator.LevelGenerator {
	if bsp, ok := generator.DefaultGenerator.(*generator.BSPGenerator); ok {
		sized := *bsp
		sized.RoomWidth, sized.RoomHeight = t.Room.Width, t.Room.Height
		return &sized
	}
	return generator.DefaultGenerator
}

// GenerateLevel creates the level file of campaign level depth.
func GenerateLevel(depth int, seed int64, t config.Tuning) *level.File {
	return levelGenerator(t).Generate(depth, rand.New(rand.NewSource(seed)))
}

// BuildGame creates the first level of a game.
func BuildGame(opts Options) (*state.Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = assets.NewCatalog()
	}

	var (
		f     *level.File
		depth int
		err   error
	)
	if opts.LevelPath != "" {
		if f, err = level.Load(opts.LevelPath); err != nil {
			return nil, err
		}
	} else {
		depth = max(opts.Level, 1)
		f = GenerateLevel(depth, seed, opts.Tuning)
	}

	g, err := startLevel(f, depth, seed, opts.Tuning, cat)
	if err != nil {
		return nil, err
	}
	logMessage(g, gotext.Get("WELCOME"))
	ShowLevelObjectives(g)
	return g, nil
}

// startLevel builds f into a fresh session. depth is 0 for levels loaded
// from a file.
func startLevel(f *level.File, depth int, seed int64, t config.Tuning, cat *assets.Catalog) (*state.Game, error) {
	lvl, err := level.Build(f, GridOptions(t), cat, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", f.Name, err)
	}
	g := state.NewGame(lvl, t)
	g.Level = depth
	g.Seed = seed
	g.File = f
	g.Catalog = cat
	log.WithFields(logrus.Fields{"level": depth, "name": f.Name, "seed": seed}).Info("level ready")
	return g, nil
}

// ResetLevel rebuilds the current level from its file and seed, so the
// layout, backgrounds and spawns come back exactly as they started.
func ResetLevel(g *state.Game) error {
	fresh, err := startLevel(g.File, g.Level, g.Seed, g.Tuning, g.Catalog)
	if err != nil {
		return err
	}
	deaths := g.Deaths
	*g = *fresh
	g.Deaths = deaths
	logMessage(g, gotext.Get("LEVEL_RESET"))
	ShowLevelObjectives(g)
	return nil
}

// AdvanceLevel replaces a completed level with the next one of the
// campaign. It reports whether a new level started; after the last level it
// marks the game complete instead. Levels loaded from a file have no next
// level.
func AdvanceLevel(g *state.Game) (bool, error) {
	if g.Level == 0 {
		return false, nil
	}
	next := campaign.Next(g.Level)
	if next == 0 {
		if !g.GameComplete {
			g.GameComplete = true
			logMessage(g, gotext.Get("GAME_COMPLETE"))
			log.WithField("deaths", g.Deaths).Info("campaign complete")
		}
		return false, nil
	}

	seed := g.Seed + int64(next)
	fresh, err := startLevel(GenerateLevel(next, seed, g.Tuning), next, seed, g.Tuning, g.Catalog)
	if err != nil {
		return false, err
	}
	*g = *fresh
	ShowLevelObjectives(g)
	return true, nil
}

// ShowLevelObjectives displays the objectives for the current level
func ShowLevelObjectives(g *state.Game) {
	if g.Level > 0 {
		logMessage(g, gotext.Get("LEVEL_START", g.Level, campaign.ThemeName(campaign.ThemeFor(g.Level))))
	} else {
		logMessage(g, gotext.Get("LEVEL_LOADED", g.Name))
	}
	if n := g.Grid.Outstanding(); n > 0 {
		logMessage(g, gotext.Get("OBJECTIVE_CHECKPOINTS", n))
	} else {
		logMessage(g, gotext.Get("OBJECTIVE_EXIT"))
	}
}

// logMessage adds a message to the game's message log
func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
