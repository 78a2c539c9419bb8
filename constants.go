package main

import (
	"image/color"
	"time"
)

// Window constants
const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
	windowedSizeRatio   = 0.9 // window size relative to monitor when leaving fullscreen
)

// Screen layout constants
const (
	uiMargin     = 24.0
	headerHeight = 56.0
	refShare     = 0.28 // share of the content height given to the reference canvas
	refMinSize   = 96.0
	refMaxSize   = 220.0
	boardMinSize = 64.0
)

// Settings and results screen metrics
const (
	settingsPanelW = 560
	maxTrials      = 99
	rowHeight      = 46
	rowStartY      = 170
	stepButtonW    = 34
	stepButtonH    = 30
	startButtonW   = 220
	startButtonH   = 44
	resultButtonW  = 150
	resultButtonH  = 40
	tableRowH      = 20
)

// Trial pacing
const (
	// lingerDuration is how long the committed selection stays highlighted
	// before the next stimulus appears.
	lingerDuration = 600 * time.Millisecond
)

// UI color constants
var (
	colorWindow     = color.NRGBA{R: 236, G: 238, B: 240, A: 255}
	colorHeaderText = color.NRGBA{R: 24, G: 26, B: 32, A: 255}
	colorMutedText  = color.NRGBA{R: 110, G: 114, B: 122, A: 255}
	colorButtonFill = color.NRGBA{R: 219, G: 223, B: 228, A: 255}
	colorButtonHot  = color.NRGBA{R: 201, G: 209, B: 219, A: 255}
	colorButtonEdge = color.NRGBA{R: 150, G: 156, B: 164, A: 255}
	colorAccent     = color.NRGBA{R: 30, G: 110, B: 220, A: 255}
	colorCorrect    = color.NRGBA{R: 44, G: 138, B: 74, A: 255}
	colorWrong      = color.NRGBA{R: 198, G: 62, B: 42, A: 255}
)
