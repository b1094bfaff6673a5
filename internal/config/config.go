package config

import "time"

const (
	WindowTitle  = "J-25"
	ScreenWidth  = 512
	ScreenHeight = 512

	// Frame pacing for runners without a vsync-gated present
	TicksPerSecond = 60
	FrameInterval  = time.Second / TicksPerSecond

	// Star field parameters
	StarCount = 512

	// LutResolution must stay a power of two; lookups wrap with a mask.
	LutResolution = 1 << 9
	WobbleAmount  = 75.0
)
