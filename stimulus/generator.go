// Package stimulus generates the per-trial angle sets shown on the board.
//
// Every stimulus starts from its reference angle and grows decoys by
// perturbing already-chosen options, so the option set stays clustered
// around the reference instead of scattering over the whole band.
package stimulus

import (
	"math/rand"
	"time"

	"github.com/JoeLucas99/DemTestFinal3/angle"
	"github.com/JoeLucas99/DemTestFinal3/settings"
)

// maxAttempts bounds every retry loop; an exhausted budget accepts the last
// candidate and marks the stimulus Relaxed instead of failing.
const maxAttempts = 100

// Stimulus is one trial: the reference orientation and the shuffled options.
type Stimulus struct {
	// TargetAngle is the reference orientation in degrees
	TargetAngle float64

	// Options holds one angle per board line; exactly one matches the
	// reference orientation unless Relaxed
	Options []float64

	// Relaxed reports that a spacing or uniqueness constraint was
	// abandoned after the retry budget
	Relaxed bool
}

// Generator produces randomized stimuli.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed. Equal seeds and equal
// configs yield identical stimuli.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// FromConfig returns a time-seeded generator, or a fixed-seed one when
// cfg.Seed is nonzero.
func FromConfig(cfg settings.Config) *Generator {
	if cfg.Seed != 0 {
		return NewSeeded(cfg.Seed)
	}
	return New()
}

// Generate builds cfg.StimulusCount stimuli. cfg is expected to be clamped
// already; generation degrades rather than fails.
func (g *Generator) Generate(cfg settings.Config) []Stimulus {
	if cfg.StimulusCount <= 0 {
		return nil
	}
	out := make([]Stimulus, 0, cfg.StimulusCount)
	for i := 0; i < cfg.StimulusCount; i++ {
		out = append(out, g.generateOne(cfg, i))
	}
	return out
}

func (g *Generator) generateOne(cfg settings.Config, index int) Stimulus {
	st := Stimulus{TargetAngle: g.resolveTarget(cfg, index)}
	g.fillOptions(&st, cfg)
	g.repairDuplicates(&st, cfg)
	g.rnd.Shuffle(len(st.Options), func(i, j int) {
		st.Options[i], st.Options[j] = st.Options[j], st.Options[i]
	})
	g.placeTarget(&st, cfg)
	return st
}

// resolveTarget picks the reference angle for the trial at index: the
// configured angle when one exists for this slot, a random multiple of ten
// degrees otherwise.
func (g *Generator) resolveTarget(cfg settings.Config, index int) float64 {
	if !cfg.Profile.RandomTargetsOnly() && index < len(cfg.TargetAngles) {
		return angle.Normalize(float64(cfg.TargetAngles[index]), cfg.Profile.TargetSpan())
	}
	if cfg.Profile == settings.ProfileLegacy {
		return float64(10 * g.rnd.Intn(36))
	}
	// skip 0: a horizontal reference reads as "no angle"
	return float64(10 * (1 + g.rnd.Intn(17)))
}

// fillOptions grows the option list from the bare target by perturbing
// random already-chosen options, rejecting exact duplicates while the
// attempt budget lasts.
func (g *Generator) fillOptions(st *Stimulus, cfg settings.Config) {
	total := cfg.OptionsPerStimulus()
	st.Options = make([]float64, 1, total)
	st.Options[0] = st.TargetAngle
	for len(st.Options) < total {
		cand, ok := boundedRetry(func() float64 {
			return g.perturb(st.Options, cfg.DegreeVariance, st.TargetAngle)
		}, func(v float64) bool {
			return !contains(st.Options, v)
		})
		if !ok {
			st.Relaxed = true
		}
		st.Options = append(st.Options, cand)
	}
}

// repairDuplicates regenerates decoys that collide with the reference
// orientation, leaving exactly one matching option. Slot 0 holds the
// reference itself until the shuffle.
func (g *Generator) repairDuplicates(st *Stimulus, cfg settings.Config) {
	for i := 1; i < len(st.Options); i++ {
		if !sameOrientation(st.Options[i], st.TargetAngle) {
			continue
		}
		cand, ok := boundedRetry(func() float64 {
			return g.perturb(st.Options, cfg.DegreeVariance, st.TargetAngle)
		}, func(v float64) bool {
			return !sameOrientation(v, st.TargetAngle) && !contains(st.Options, v)
		})
		if !ok {
			st.Relaxed = true
		}
		st.Options[i] = cand
	}
}

// placeTarget swaps the matching option into the configured quadrant's band
// of the option list. Runs after the shuffle so the slot inside the band is
// still uniform.
func (g *Generator) placeTarget(st *Stimulus, cfg settings.Config) {
	if !cfg.UseCorrectQuadrant {
		return
	}
	band := cfg.AnglesPerQuadrant
	lo := (cfg.CorrectQuadrant - 1) * band
	cur := -1
	for i, opt := range st.Options {
		if opt == st.TargetAngle {
			cur = i
			break
		}
	}
	if cur < 0 {
		return
	}
	if cur >= lo && cur < lo+band {
		return
	}
	dst := lo + g.rnd.Intn(band)
	st.Options[cur], st.Options[dst] = st.Options[dst], st.Options[cur]
}

// perturb derives a decoy from a random existing option: shift by the
// variance in a random direction, wrap mod 180 and confine to the reference
// category's band.
func (g *Generator) perturb(existing []float64, variance, target float64) float64 {
	base := angle.Normalize(existing[g.rnd.Intn(len(existing))], 180)
	if g.rnd.Intn(2) == 0 {
		base += variance
	} else {
		base -= variance
	}
	lo, hi := angle.CategoryOf(target).Bounds()
	return angle.Clamp(angle.Normalize(base, 180), lo, hi)
}

// boundedRetry evaluates pick until accept approves the candidate or the
// attempt budget runs out, returning the last candidate and whether it was
// accepted.
func boundedRetry(pick func() float64, accept func(float64) bool) (float64, bool) {
	var v float64
	for i := 0; i < maxAttempts; i++ {
		v = pick()
		if accept(v) {
			return v, true
		}
	}
	return v, false
}

func sameOrientation(a, b float64) bool {
	return angle.Normalize(a, 180) == angle.Normalize(b, 180)
}

func contains(list []float64, v float64) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
