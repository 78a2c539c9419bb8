// Package angle provides the orientation helpers shared by the stimulus
// generator, the board layout and the scoring code. Angles are degrees
// unless a name says otherwise; a line at deg and deg+180 has the same
// orientation.
package angle

import "math"

// Category classifies a line orientation by its angle modulo 180 degrees.
type Category int

const (
	Acute  Category = iota // strictly less than 90
	Right                  // exactly 90
	Obtuse                 // strictly greater than 90
)

func (c Category) String() string {
	switch c {
	case Acute:
		return "acute"
	case Right:
		return "right"
	case Obtuse:
		return "obtuse"
	}
	return "unknown"
}

// CategoryOf classifies deg by its value modulo 180.
func CategoryOf(deg float64) Category {
	m := Normalize(deg, 180)
	switch {
	case m < 90:
		return Acute
	case m > 90:
		return Obtuse
	}
	return Right
}

// Bounds returns the angular band decoy angles are confined to for the
// category: acute [0,80], right [80,100], obtuse [100,180].
func (c Category) Bounds() (lo, hi float64) {
	switch c {
	case Right:
		return 80, 100
	case Obtuse:
		return 100, 180
	}
	return 0, 80
}

// Normalize wraps deg into [0, span). span must be positive.
func Normalize(deg, span float64) float64 {
	m := math.Mod(deg, span)
	if m < 0 {
		m += span
	}
	if m >= span { // tiny negatives round back up to span
		m = 0
	}
	return m
}

// Diff returns the smallest separation between two orientations, treating
// angles 180 degrees apart as equal. The result is in [0, 90].
func Diff(a, b float64) float64 {
	d := math.Abs(Normalize(a, 180) - Normalize(b, 180))
	if d > 90 {
		d = 180 - d
	}
	return d
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
