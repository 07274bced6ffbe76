package constants

import "time"

// HUD text
const (
	TextBoost      = "BOOST!"
	TextBoostReady = "Boost Ready"
	TextGameOver   = "GAME OVER"
	TextRestart    = "r: restart   q: quit"
)

// BoostGaugeWidth is the number of cells in the remaining-boost bar under the marker
const BoostGaugeWidth = 6

// CooldownDisplayDivisor converts cooldown ticks to the seconds shown in the HUD
const CooldownDisplayDivisor = 13.0

// Input
const (
	// KeyHoldWindow keeps an action held after its last press event
	// Terminals report autorepeat presses but never releases
	KeyHoldWindow = 150 * time.Millisecond
)

// Glyphs
const (
	GlyphCar        = '█'
	GlyphPedestrian = '☻'
	GlyphWind       = '•'
	GlyphLane       = '┃'
	GlyphShoulder   = '│'
	GlyphGaugeFull  = '▮'
	GlyphGaugeEmpty = '▯'
)
