// Package campaign defines the fixed sequence of generated levels: how many
// there are, which theme each level uses and how hard it is. The player
// never sees the total; they discover the end by reaching the final level.
package campaign

import (
	"github.com/leonelquinteros/gotext"
)

// Theme is the look and room palette of a level.
type Theme int

const (
	Burrow   Theme = iota // Low tunnels, mostly open rooms
	Woodland              // Ledges and stairs
	Ruins                 // Pillars, broken floors
	Orchard               // Open rooms with high ledges
	Quarry                // Spikes and pillars
	Keep                  // Everything, densely packed
)

// themeCount is the number of themes (for cycling).
const themeCount = 6

// ThemeFor returns the theme of the given level (1-based). Themes cycle so
// each level has an identity.
func ThemeFor(level int) Theme {
	if level <= 0 {
		return Burrow
	}
	return Theme((level - 1) % themeCount)
}

// TotalLevels is the fixed number of levels in a campaign.
const TotalLevels = 10

// IsFinal returns true if the given level (1-based) is the last one.
func IsFinal(level int) bool {
	return level >= TotalLevels
}

// Next returns the level after current, or 0 if current is the last.
func Next(current int) int {
	if current <= 0 || current >= TotalLevels {
		return 0
	}
	return current + 1
}

// Difficulty holds per-level generation knobs.
type Difficulty struct {
	Cols, Rows int
	Enemies    int
	// SpikeChance is the chance that a non-checkpoint room is a spike room.
	SpikeChance float64
	// RegionMin is the smallest region side the generator will split down to.
	RegionMin int
}

// DifficultyFor returns the generation knobs for the given level (1-based).
// Deeper levels are wider, have more enemies and more spikes.
func DifficultyFor(level int) Difficulty {
	if level <= 0 {
		level = 1
	}
	if level > TotalLevels {
		level = TotalLevels
	}
	d := Difficulty{
		Cols:        4 + level,
		Rows:        3 + level/2,
		Enemies:     1 + level/2,
		SpikeChance: 0.05 + 0.02*float64(level),
		RegionMin:   3,
	}
	// The final level is a short, dense gauntlet.
	if IsFinal(level) {
		d.Cols, d.Rows = 6, 4
		d.RegionMin = 2
	}
	return d
}

// Palette returns the weighted room types a theme draws from. Room type IDs
// match the generator's built-in room types.
func Palette(t Theme) map[string]int {
	switch t {
	case Burrow:
		return map[string]int{"open": 5, "ledge": 2, "stairs": 1}
	case Woodland:
		return map[string]int{"open": 2, "ledge": 4, "stairs": 3}
	case Ruins:
		return map[string]int{"open": 2, "pillar": 4, "broken": 3}
	case Orchard:
		return map[string]int{"open": 4, "high_ledge": 3, "ledge": 1}
	case Quarry:
		return map[string]int{"pillar": 3, "stairs": 2, "broken": 2}
	default:
		return map[string]int{"open": 1, "ledge": 1, "stairs": 1, "pillar": 1, "broken": 1, "high_ledge": 1}
	}
}

// ThemeKey returns the gettext message key naming theme t.
func ThemeKey(t Theme) string {
	switch t {
	case Woodland:
		return "THEME_WOODLAND"
	case Ruins:
		return "THEME_RUINS"
	case Orchard:
		return "THEME_ORCHARD"
	case Quarry:
		return "THEME_QUARRY"
	case Keep:
		return "THEME_KEEP"
	default:
		return "THEME_BURROW"
	}
}

// ThemeName returns the translated name of theme t. Uses gotext.Get with
// constant keys to satisfy vet.
func ThemeName(t Theme) string {
	switch ThemeKey(t) {
	case "THEME_WOODLAND":
		return gotext.Get("THEME_WOODLAND")
	case "THEME_RUINS":
		return gotext.Get("THEME_RUINS")
	case "THEME_ORCHARD":
		return gotext.Get("THEME_ORCHARD")
	case "THEME_QUARRY":
		return gotext.Get("THEME_QUARRY")
	case "THEME_KEEP":
		return gotext.Get("THEME_KEEP")
	default:
		return gotext.Get("THEME_BURROW")
	}
}
