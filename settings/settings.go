// Package settings holds the test configuration, its clamping rules and the
// TOML persistence used by both the app and the CLI.
package settings

import "math"

// Profile selects one of the two generation variants.
type Profile int

const (
	// ProfileStandard honors configured target angles and perturbs decoys
	// in 2.5 degree steps.
	ProfileStandard Profile = iota
	// ProfileLegacy always randomizes targets over the full circle and
	// perturbs decoys in 10 degree steps.
	ProfileLegacy
)

func (p Profile) String() string {
	if p == ProfileLegacy {
		return "legacy"
	}
	return "standard"
}

// VarianceBounds returns the allowed degree-variance range and step for the
// profile.
func (p Profile) VarianceBounds() (min, max, step float64) {
	if p == ProfileLegacy {
		return 10, 50, 10
	}
	return 7.5, 50, 2.5
}

// TargetSpan returns the span random target angles are drawn from.
func (p Profile) TargetSpan() float64 {
	if p == ProfileLegacy {
		return 360
	}
	return 180
}

// RandomTargetsOnly reports whether configured target angles are ignored.
func (p Profile) RandomTargetsOnly() bool {
	return p == ProfileLegacy
}

// Config holds the tunable test parameters.
type Config struct {
	// StimulusCount is the number of trials in a session
	StimulusCount int

	// AnglesPerQuadrant is how many option lines each quadrant shows (1-4)
	AnglesPerQuadrant int

	// UseCorrectQuadrant forces the matching line into CorrectQuadrant
	UseCorrectQuadrant bool

	// CorrectQuadrant is the quadrant holding the match when
	// UseCorrectQuadrant is set (1 TL, 2 TR, 3 BL, 4 BR)
	CorrectQuadrant int

	// DegreeVariance is the decoy perturbation step in degrees
	DegreeVariance float64

	// TargetAngles optionally fixes the reference angle per trial;
	// missing entries are randomized
	TargetAngles []int

	// Profile selects the generation variant
	Profile Profile

	// Seed fixes the random sequence when nonzero
	Seed int64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		StimulusCount:      10,
		AnglesPerQuadrant:  2,
		UseCorrectQuadrant: false,
		CorrectQuadrant:    1,
		DegreeVariance:     10,
		Profile:            ProfileStandard,
	}
}

// Clamp returns a copy of c with every field forced into its valid range.
// Callers clamp before generating; generation itself never fails.
func (c Config) Clamp() Config {
	if c.Profile != ProfileLegacy {
		c.Profile = ProfileStandard
	}
	if c.StimulusCount < 1 {
		c.StimulusCount = 1
	}
	if c.AnglesPerQuadrant < 1 {
		c.AnglesPerQuadrant = 1
	}
	if c.AnglesPerQuadrant > 4 {
		c.AnglesPerQuadrant = 4
	}
	if c.CorrectQuadrant < 1 {
		c.CorrectQuadrant = 1
	}
	if c.CorrectQuadrant > 4 {
		c.CorrectQuadrant = 4
	}
	min, max, step := c.Profile.VarianceBounds()
	v := c.DegreeVariance
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	c.DegreeVariance = min + math.Round((v-min)/step)*step
	return c
}

// OptionsPerStimulus returns the number of option lines per trial
func (c Config) OptionsPerStimulus() int {
	return c.AnglesPerQuadrant * 4
}
