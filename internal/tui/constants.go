package tui

import "time"

const (
	bannerWidth      = 44
	animTickInterval = 50 * time.Millisecond

	// Drag units per terminal row. The lifecycle store works in abstract
	// drag units so its thresholds stay independent of cell geometry.
	unitsPerRow = 10.0

	// Overlay geometry. The top margin keeps the first banner's anchor
	// away from row zero, which the store treats as "not yet anchored".
	overlayTopMargin = 1
	overlayRightPad  = 1
)

// Key constants for event handling.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
)
