package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig represents the TOML configuration file.
type fileConfig struct {
	Test testConfig `toml:"test"`
}

// testConfig maps the [test] section. Pointer fields distinguish "absent"
// from zero values so the file only overrides what it mentions.
type testConfig struct {
	Stimuli            *int     `toml:"stimuli"`
	AnglesPerQuadrant  *int     `toml:"angles-per-quadrant"`
	DegreeVariance     *float64 `toml:"degree-variance"`
	UseCorrectQuadrant *bool    `toml:"use-correct-quadrant"`
	CorrectQuadrant    *int     `toml:"correct-quadrant"`
	Profile            *string  `toml:"profile"`
	Seed               *int64   `toml:"seed"`
	TargetAngles       []int    `toml:"target-angles"`
}

// Load reads the TOML config at path over the defaults and clamps the
// result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	applyInt(&cfg.StimulusCount, fc.Test.Stimuli)
	applyInt(&cfg.AnglesPerQuadrant, fc.Test.AnglesPerQuadrant)
	applyFloat(&cfg.DegreeVariance, fc.Test.DegreeVariance)
	applyBool(&cfg.UseCorrectQuadrant, fc.Test.UseCorrectQuadrant)
	applyInt(&cfg.CorrectQuadrant, fc.Test.CorrectQuadrant)
	if fc.Test.Profile != nil {
		cfg.Profile = ParseProfile(*fc.Test.Profile)
	}
	if fc.Test.Seed != nil {
		cfg.Seed = *fc.Test.Seed
	}
	if len(fc.Test.TargetAngles) > 0 {
		cfg.TargetAngles = fc.Test.TargetAngles
	}
	return cfg.Clamp(), nil
}

// Save writes cfg to path as a commented TOML file, creating the directory
// if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(renderConfig(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ParseProfile maps a profile name to its Profile; unknown names fall back
// to the standard profile.
func ParseProfile(s string) Profile {
	if strings.EqualFold(strings.TrimSpace(s), "legacy") {
		return ProfileLegacy
	}
	return ProfileStandard
}

func renderConfig(c Config) string {
	targets := "# target-angles = [30, 60, 120]"
	if len(c.TargetAngles) > 0 {
		parts := make([]string, len(c.TargetAngles))
		for i, a := range c.TargetAngles {
			parts[i] = fmt.Sprintf("%d", a)
		}
		targets = fmt.Sprintf("target-angles = [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf(`# demtest configuration
# Values override the built-in defaults.

[test]
stimuli = %d
angles-per-quadrant = %d
degree-variance = %.1f
use-correct-quadrant = %t
correct-quadrant = %d
profile = %q
seed = %d
%s
`,
		c.StimulusCount,
		c.AnglesPerQuadrant,
		c.DegreeVariance,
		c.UseCorrectQuadrant,
		c.CorrectQuadrant,
		c.Profile.String(),
		c.Seed,
		targets,
	)
}

func applyInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}

func applyFloat(target *float64, value *float64) {
	if value != nil {
		*target = *value
	}
}

func applyBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}
