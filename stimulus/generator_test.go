package stimulus

import (
	"math"
	"reflect"
	"testing"

	"github.com/JoeLucas99/DemTestFinal3/angle"
	"github.com/JoeLucas99/DemTestFinal3/settings"
)

func baseConfig() settings.Config {
	cfg := settings.DefaultConfig()
	cfg.StimulusCount = 4
	cfg.AnglesPerQuadrant = 2
	cfg.DegreeVariance = 10
	return cfg.Clamp()
}

func matchCount(st Stimulus) int {
	n := 0
	for _, opt := range st.Options {
		if angle.Normalize(opt, 180) == angle.Normalize(st.TargetAngle, 180) {
			n++
		}
	}
	return n
}

func TestGenerateCount(t *testing.T) {
	g := NewSeeded(1)
	for _, count := range []int{1, 3, 10} {
		cfg := baseConfig()
		cfg.StimulusCount = count
		if got := len(g.Generate(cfg)); got != count {
			t.Errorf("expected %d stimuli, got %d", count, got)
		}
	}
}

func TestGenerateZeroCount(t *testing.T) {
	cfg := baseConfig()
	cfg.StimulusCount = 0
	if got := NewSeeded(1).Generate(cfg); got != nil {
		t.Fatalf("expected no stimuli, got %d", len(got))
	}
}

func TestOptionCountPerDensity(t *testing.T) {
	for apq := 1; apq <= 4; apq++ {
		cfg := baseConfig()
		cfg.AnglesPerQuadrant = apq
		for _, st := range NewSeeded(7).Generate(cfg) {
			if len(st.Options) != apq*4 {
				t.Fatalf("apq=%d: expected %d options, got %d", apq, apq*4, len(st.Options))
			}
		}
	}
}

func TestExactlyOneMatch(t *testing.T) {
	cfg := baseConfig()
	cfg.StimulusCount = 4
	cfg.DegreeVariance = 7.5
	cfg.TargetAngles = []int{30, 150, 60, 45}
	for seed := int64(1); seed <= 10; seed++ {
		for i, st := range NewSeeded(seed).Generate(cfg) {
			if st.Relaxed {
				t.Fatalf("seed %d stimulus %d unexpectedly relaxed", seed, i)
			}
			if got := matchCount(st); got != 1 {
				t.Errorf("seed %d stimulus %d: expected 1 matching option, got %d (target %v, options %v)",
					seed, i, got, st.TargetAngle, st.Options)
			}
		}
	}
}

func TestOptionsStayInCategoryBand(t *testing.T) {
	for _, profile := range []settings.Profile{settings.ProfileStandard, settings.ProfileLegacy} {
		cfg := baseConfig()
		cfg.Profile = profile
		cfg = cfg.Clamp()
		cfg.StimulusCount = 8
		for seed := int64(1); seed <= 5; seed++ {
			for i, st := range NewSeeded(seed).Generate(cfg) {
				cat := angle.CategoryOf(st.TargetAngle)
				lo, hi := cat.Bounds()
				for _, opt := range st.Options {
					m := angle.Normalize(opt, 180)
					if m < lo || m > hi {
						t.Fatalf("%v seed %d stimulus %d: option %v outside band [%v,%v] of target %v",
							profile, seed, i, opt, lo, hi, st.TargetAngle)
					}
					if cat != angle.Right && angle.CategoryOf(opt) != cat {
						t.Fatalf("%v seed %d stimulus %d: option %v category %v, target category %v",
							profile, seed, i, opt, angle.CategoryOf(opt), cat)
					}
				}
			}
		}
	}
}

func TestConfiguredTargetsHonored(t *testing.T) {
	cfg := baseConfig()
	cfg.StimulusCount = 5
	cfg.TargetAngles = []int{30, 60, 120, 190}
	stimuli := NewSeeded(3).Generate(cfg)
	want := []float64{30, 60, 120, 10} // 190 wraps mod 180
	for i, w := range want {
		if stimuli[i].TargetAngle != w {
			t.Errorf("stimulus %d: expected target %v, got %v", i, w, stimuli[i].TargetAngle)
		}
	}
	last := stimuli[4].TargetAngle
	if math.Mod(last, 10) != 0 || last < 10 || last > 170 {
		t.Errorf("random target %v is not a multiple of 10 in [10,170]", last)
	}
}

func TestLegacyProfileRandomizesTargets(t *testing.T) {
	cfg := baseConfig()
	cfg.Profile = settings.ProfileLegacy
	cfg = cfg.Clamp()
	cfg.StimulusCount = 12
	cfg.TargetAngles = []int{33, 33, 33}
	for i, st := range NewSeeded(9).Generate(cfg) {
		if st.TargetAngle == 33 {
			t.Fatalf("stimulus %d: legacy profile honored a configured target", i)
		}
		if math.Mod(st.TargetAngle, 10) != 0 || st.TargetAngle < 0 || st.TargetAngle > 350 {
			t.Errorf("stimulus %d: target %v is not a multiple of 10 in [0,350]", i, st.TargetAngle)
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	cfg := baseConfig()
	cfg.StimulusCount = 6
	cfg.UseCorrectQuadrant = true
	cfg.CorrectQuadrant = 3
	a := NewSeeded(42).Generate(cfg)
	b := NewSeeded(42).Generate(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different stimuli:\n%v\n%v", a, b)
	}
}

func TestFromConfigSeed(t *testing.T) {
	cfg := baseConfig()
	cfg.Seed = 7
	a := FromConfig(cfg).Generate(cfg)
	b := FromConfig(cfg).Generate(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("seeded FromConfig generators disagree")
	}
}

func TestCorrectQuadrantPlacement(t *testing.T) {
	for q := 1; q <= 4; q++ {
		cfg := baseConfig()
		cfg.AnglesPerQuadrant = 3
		cfg.UseCorrectQuadrant = true
		cfg.CorrectQuadrant = q
		cfg.StimulusCount = 6
		for seed := int64(1); seed <= 5; seed++ {
			for i, st := range NewSeeded(seed).Generate(cfg) {
				idx := -1
				for j, opt := range st.Options {
					if opt == st.TargetAngle {
						idx = j
						break
					}
				}
				if idx < 0 {
					t.Fatalf("quadrant %d seed %d stimulus %d: target missing", q, seed, i)
				}
				lo := (q - 1) * cfg.AnglesPerQuadrant
				if idx < lo || idx >= lo+cfg.AnglesPerQuadrant {
					t.Errorf("quadrant %d seed %d stimulus %d: target at index %d, want [%d,%d)",
						q, seed, i, idx, lo, lo+cfg.AnglesPerQuadrant)
				}
			}
		}
	}
}

// A right-angle reference with the smallest variance can only reach a
// handful of distinct values inside its band, so a full board must exhaust
// the retry budget and degrade.
func TestOverconstrainedBoardRelaxes(t *testing.T) {
	cfg := baseConfig()
	cfg.StimulusCount = 1
	cfg.AnglesPerQuadrant = 4
	cfg.DegreeVariance = 7.5
	cfg.TargetAngles = []int{90}
	st := NewSeeded(5).Generate(cfg)[0]
	if !st.Relaxed {
		t.Fatal("expected an over-constrained stimulus to be marked relaxed")
	}
	if len(st.Options) != 16 {
		t.Fatalf("expected 16 options, got %d", len(st.Options))
	}
	if matchCount(st) < 1 {
		t.Fatal("expected the target to survive in the option list")
	}
}
