// Package board lays out option lines on the four-quadrant canvas and maps
// pointer positions back to them. Everything here works in canvas
// coordinates: origin top-left, y growing downward.
package board

import (
	"fmt"
	"math"

	"github.com/JoeLucas99/DemTestFinal3/angle"
)

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Extend returns the point reached from p after dist units along the given
// orientation. The vertical axis is inverted for screen coordinates, so
// 90 degrees points up.
func (p Point) Extend(angleDeg, dist float64) Point {
	rad := angle.Radians(angleDeg)
	return Point{
		X: p.X + math.Cos(rad)*dist,
		Y: p.Y - math.Sin(rad)*dist,
	}
}

// Line is one positioned option. Lines are derived values: the whole slice
// is rebuilt whenever the option list or the canvas size changes, never
// mutated in place.
type Line struct {
	// Angle is the line's orientation in degrees
	Angle float64

	// ID identifies the line within its board
	ID string

	// Quadrant is the board quadrant in reading order (0 TL, 1 TR, 2 BL, 3 BR)
	Quadrant int

	// Pos is the segment's anchor point
	Pos Point
}

// quadrantPatterns places 1-4 anchors inside a quadrant, as fractions of
// the quadrant size. All slots keep at least the 15% inset from the
// quadrant edges so segments stay clear of the separators.
var quadrantPatterns = [5][]Point{
	1: {{0.5, 0.5}},
	2: {{0.35, 0.35}, {0.65, 0.65}},
	3: {{0.5, 0.3}, {0.3, 0.7}, {0.7, 0.7}},
	4: {{0.3, 0.3}, {0.7, 0.3}, {0.3, 0.7}, {0.7, 0.7}},
}

func patternFor(density int) []Point {
	if density < 1 {
		density = 1
	}
	if density > 4 {
		density = 4
	}
	return quadrantPatterns[density]
}

// Layout positions one line per option on a square canvas of the given
// size. The canvas splits into four quadrants of size/2; option k goes to
// quadrant k/density at pattern slot k%density, where density is
// len(options)/4.
func Layout(options []float64, size float64) []Line {
	if len(options) == 0 || size <= 0 {
		return nil
	}
	density := len(options) / 4
	if density < 1 {
		density = 1
	}
	pattern := patternFor(density)
	half := size / 2
	lines := make([]Line, 0, len(options))
	for k, opt := range options {
		quadrant := k / density
		if quadrant > 3 {
			quadrant = 3
		}
		anchor := pattern[(k%density)%len(pattern)]
		origin := quadrantOrigin(quadrant, half)
		lines = append(lines, Line{
			Angle:    opt,
			ID:       fmt.Sprintf("opt-%02d", k),
			Quadrant: quadrant,
			Pos: Point{
				X: origin.X + anchor.X*half,
				Y: origin.Y + anchor.Y*half,
			},
		})
	}
	return lines
}

// quadrantOrigin returns the top-left corner of a quadrant in reading
// order.
func quadrantOrigin(q int, half float64) Point {
	return Point{
		X: float64(q%2) * half,
		Y: float64(q/2) * half,
	}
}
