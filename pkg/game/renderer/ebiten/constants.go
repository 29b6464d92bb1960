package ebiten

import "image/color"

// Color palette for the game
var (
	colorBackground     = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorGeometry       = color.RGBA{180, 180, 200, 255} // Light gray-blue for floors and walls
	colorRoomBorder     = color.RGBA{60, 60, 80, 255}
	colorRoomCleared    = color.RGBA{40, 80, 40, 255} // Dark green once a checkpoint clears the sublevel
	colorFog            = color.RGBA{10, 10, 20, 230}
	colorSelection      = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorLock           = color.RGBA{255, 220, 100, 255}
	colorReynard        = color.RGBA{255, 140, 40, 255} // Fox orange
	colorTrail          = color.RGBA{255, 140, 40, 90}
	colorEnemyPatrol    = color.RGBA{100, 150, 255, 255} // Bright blue
	colorEnemyRealizing = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorEnemyChasing   = color.RGBA{255, 80, 80, 255}   // Bright red
	colorEnemySearching = color.RGBA{220, 170, 255, 255} // Bright purple
	colorEnemyGreyed    = color.RGBA{90, 90, 110, 255}
	colorSpikes         = color.RGBA{255, 80, 80, 255}
	colorCheckpoint     = color.RGBA{0, 255, 255, 255}
	colorCheckpointDone = color.RGBA{0, 220, 0, 255}
	colorFalling        = color.RGBA{255, 150, 255, 255}
	colorFallen         = color.RGBA{120, 120, 140, 255}
	colorExitLocked     = color.RGBA{255, 100, 100, 255}
	colorExitUnlocked   = color.RGBA{100, 255, 100, 255}
	colorSubtle         = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText           = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint

	colorPanelBackground = color.RGBA{30, 30, 50, 220} // Semi-transparent dark
)

// roomBackgrounds tints rooms by their background texture so the variants of
// a region read apart.
var roomBackgrounds = []color.RGBA{
	{44, 44, 66, 255},
	{50, 44, 62, 255},
	{40, 50, 64, 255},
	{54, 48, 58, 255},
	{42, 52, 56, 255},
}

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720

	uiFontSize   = 14.0
	iconFontSize = 28.0
	hudPadding   = 10
	lineHeight   = 18

	selectionWidth = 3
	borderWidth    = 1
)
