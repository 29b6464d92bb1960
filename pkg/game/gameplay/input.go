package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"reynard/pkg/engine/input"
	"reynard/pkg/game/devtools"
	"reynard/pkg/game/state"
)

// ProcessIntent handles the meta intents of a frame: everything that is not
// movement or room manipulation. It reports whether the player asked to quit.
func ProcessIntent(g *state.Game, intent input.Intent) (quit bool) {
	switch intent.Action {
	case input.ActionQuit:
		log.Info("quit requested")
		return true

	case input.ActionScreenshot:
		filename, err := devtools.SaveScreenshotHTML(g)
		if err != nil {
			logMessage(g, gotext.Get("SCREENSHOT_FAILED", err))
		} else {
			logMessage(g, gotext.Get("SCREENSHOT_SAVED", filename))
		}

	case input.ActionDevMap:
		if err := SwitchToDevLevel(g); err != nil {
			log.WithError(err).Error("dev level failed")
		}

	case input.ActionDebugMapDump:
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			logMessage(g, gotext.Get("MAP_DUMP_FAILED", err))
		} else {
			logMessage(g, gotext.Get("MAP_DUMPED", path))
		}

	case input.ActionResetLevel:
		if err := ResetLevel(g); err != nil {
			log.WithError(err).Error("reset failed")
		}
	}
	return false
}

// Step runs one frame: the meta intents first, then the ordered game update.
// A completed level is replaced by the next one of the campaign.
func Step(g *state.Game, dt float64, in input.Frame) (quit bool) {
	for _, intent := range in.Pressed {
		if ProcessIntent(g, intent) {
			return true
		}
	}
	g.Update(dt, in)
	if g.Complete && !g.GameComplete {
		if _, err := AdvanceLevel(g); err != nil {
			log.WithError(err).Error("advance failed")
		}
	}
	return false
}

// SwitchToDevLevel replaces the current level with the developer test level
// showing every room type and trap.
func SwitchToDevLevel(g *state.Game) error {
	f := devtools.DevLevel(g.Tuning.Room.Width, g.Tuning.Room.Height)
	fresh, err := startLevel(f, 0, g.Seed, g.Tuning, g.Catalog)
	if err != nil {
		return err
	}
	*g = *fresh
	ShowLevelObjectives(g)
	return nil
}
