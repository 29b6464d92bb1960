// Package generator builds level files procedurally.
package generator

import (
	"math/rand"

	"reynard/pkg/game/level"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(depth int, rng *rand.Rand) *level.File
	Name() string
}

// Available generators
var (
	BSP = &BSPGenerator{RoomWidth: 320, RoomHeight: 224}
)

// DefaultGenerator is the default level generator
var DefaultGenerator LevelGenerator = BSP
