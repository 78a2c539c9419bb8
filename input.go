package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleGlobalKeys processes window-level shortcuts shared by every screen.
func (a *App) handleGlobalKeys() {
	// Handle Alt+Enter / F11 to toggle fullscreen
	altEnterPressed := isAltPressed() && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if (altEnterPressed && !a.prevAltEnter) || inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	a.prevAltEnter = altEnterPressed

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.showDebug = !a.showDebug
	}
}

// toggleFullscreen switches modes, restoring a window at a reasonable share
// of the monitor when leaving fullscreen.
func (a *App) toggleFullscreen() {
	if !ebiten.IsFullscreen() {
		ebiten.SetFullscreen(true)
		return
	}
	ebiten.SetFullscreen(false)
	monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
	ebiten.SetWindowSize(
		int(float64(monitorWidth)*windowedSizeRatio),
		int(float64(monitorHeight)*windowedSizeRatio),
	)
}

func isAltPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyAltRight)
}

// startPressed reports the keys that begin a run from the settings screen.
// Enter is skipped while Alt is down so the fullscreen chord does not also
// start a session.
func startPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if isAltPressed() {
		return false
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}
