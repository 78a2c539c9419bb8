// Package render draws the reference line and the option board onto Ebiten
// surfaces. It owns the line palette; callers own surface sizing and state.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JoeLucas99/DemTestFinal3/board"
)

var (
	colorCanvas    = color.NRGBA{R: 250, G: 250, B: 248, A: 255}
	colorSeparator = color.NRGBA{R: 214, G: 214, B: 214, A: 255}
	colorBorder    = color.NRGBA{R: 130, G: 130, B: 130, A: 255}
	colorLine      = color.NRGBA{R: 38, G: 38, B: 46, A: 255}
	colorHovered   = color.NRGBA{R: 30, G: 110, B: 220, A: 255}
	colorSelected  = color.NRGBA{R: 204, G: 64, B: 40, A: 255}
	colorReference = color.NRGBA{R: 38, G: 38, B: 46, A: 255}
)

const (
	lineWidth     float32 = 3
	hoverWidth    float32 = 4
	selectedWidth float32 = 5
	refWidth      float32 = 4
)

// State carries the per-paint selection context for the option board.
type State struct {
	// SelectedAngle is the committed selection, nil before the click
	SelectedAngle *float64

	// HoveredID is the line under the pointer, empty when none
	HoveredID string

	// Disabled suppresses hover emphasis once the trial is committed
	Disabled bool
}

// Board paints the option canvas from scratch: background fill, quadrant
// separators, then one segment per line at length size/8 from its anchor.
func Board(dst *ebiten.Image, lines []board.Line, st State) {
	dst.Fill(colorCanvas)
	size := float64(dst.Bounds().Dx())
	drawSeparators(dst, size)
	for _, ln := range lines {
		clr, width := styleFor(ln, st)
		end := ln.Pos.Extend(ln.Angle, size/8)
		vector.StrokeLine(dst,
			float32(ln.Pos.X), float32(ln.Pos.Y),
			float32(end.X), float32(end.Y),
			width, clr, true)
	}
}

// Reference paints the reference canvas: a single segment through the
// center at the target orientation, total length a quarter of the canvas.
func Reference(dst *ebiten.Image, angleDeg float64) {
	dst.Fill(colorCanvas)
	b := dst.Bounds()
	size := math.Min(float64(b.Dx()), float64(b.Dy()))
	center := board.Point{X: float64(b.Dx()) / 2, Y: float64(b.Dy()) / 2}
	from := center.Extend(angleDeg, -size/8)
	to := center.Extend(angleDeg, size/8)
	vector.StrokeLine(dst,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		refWidth, colorReference, true)
	vector.StrokeRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), 1, colorBorder, false)
}

// styleFor resolves a line's stroke: selection outranks hover, and hover
// only shows while the board is enabled.
func styleFor(ln board.Line, st State) (color.Color, float32) {
	if st.SelectedAngle != nil && ln.Angle == *st.SelectedAngle {
		return colorSelected, selectedWidth
	}
	if !st.Disabled && st.HoveredID != "" && ln.ID == st.HoveredID {
		return colorHovered, hoverWidth
	}
	return colorLine, lineWidth
}

func drawSeparators(dst *ebiten.Image, size float64) {
	s := float32(size)
	vector.StrokeLine(dst, s/2, 0, s/2, s, 1, colorSeparator, false)
	vector.StrokeLine(dst, 0, s/2, s, s/2, 1, colorSeparator, false)
	vector.StrokeRect(dst, 0, 0, s, s, 1, colorBorder, false)
}
