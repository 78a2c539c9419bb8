package board

import (
	"math"

	"github.com/JoeLucas99/DemTestFinal3/angle"
)

const (
	// hitMaxLength caps the invisible extension of each drawn segment
	// used for pointer tests
	hitMaxLength = 150.0

	// hitEdgePadding keeps extended endpoints inside the canvas
	hitEdgePadding = 5.0

	// hitDistance is the maximum perpendicular distance that still
	// counts as touching a line
	hitDistance = 5.0

	// hitSlack expands the segment's bounding box for the containment
	// test
	hitSlack = 10.0
)

// HitTest returns the line under p. Each drawn segment is extended from its
// anchor to min(size/3, 150) and clamped inside the canvas, which makes
// short lines easier to click. Among the lines within reach, the one with
// the closest anchor wins; earlier lines win exact ties.
func HitTest(p Point, lines []Line, size float64) (Line, bool) {
	var (
		best     Line
		bestDist = math.MaxFloat64
		found    bool
	)
	length := math.Min(size/3, hitMaxLength)
	for _, ln := range lines {
		far := ln.Pos.Extend(ln.Angle, length)
		far.X = angle.Clamp(far.X, hitEdgePadding, size-hitEdgePadding)
		far.Y = angle.Clamp(far.Y, hitEdgePadding, size-hitEdgePadding)
		if !nearSegment(p, ln.Pos, far) {
			continue
		}
		if d := p.Dist(ln.Pos); d < bestDist {
			best = ln
			bestDist = d
			found = true
		}
	}
	return best, found
}

// nearSegment reports whether p lies within hitDistance of the infinite
// line through a and b, and inside the segment's bounding box expanded by
// hitSlack on every side.
func nearSegment(p, a, b Point) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return p.Dist(a) <= hitDistance
	}
	dist := math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / length
	if dist > hitDistance {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-hitSlack &&
		p.X <= math.Max(a.X, b.X)+hitSlack &&
		p.Y >= math.Min(a.Y, b.Y)-hitSlack &&
		p.Y <= math.Max(a.Y, b.Y)+hitSlack
}
