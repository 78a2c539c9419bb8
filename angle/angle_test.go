package angle

import (
	"math"
	"testing"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Category
	}{
		{"zero", 0, Acute},
		{"shallow", 30, Acute},
		{"just below right", 89.9, Acute},
		{"right", 90, Right},
		{"just above right", 90.1, Obtuse},
		{"steep", 135, Obtuse},
		{"just below wrap", 179.9, Obtuse},
		{"wraps to zero", 180, Acute},
		{"reflex right", 270, Right},
		{"negative right", -90, Right},
		{"full turn plus", 450, Right},
		{"negative shallow", -150, Acute},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CategoryOf(tc.deg); got != tc.want {
				t.Errorf("CategoryOf(%v) = %v, want %v", tc.deg, got, tc.want)
			}
		})
	}
}

func TestCategoryBounds(t *testing.T) {
	tests := []struct {
		cat    Category
		lo, hi float64
	}{
		{Acute, 0, 80},
		{Right, 80, 100},
		{Obtuse, 100, 180},
	}
	for _, tc := range tests {
		lo, hi := tc.cat.Bounds()
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("%v.Bounds() = (%v, %v), want (%v, %v)", tc.cat, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		deg, span float64
		want      float64
	}{
		{"already in range", 45, 360, 45},
		{"one wrap", 370, 360, 10},
		{"negative", -20, 180, 160},
		{"exact span", 180, 180, 0},
		{"multiple wraps", 540, 180, 0},
		{"negative wrap", -360, 360, 0},
		{"just below zero", -1, 360, 359},
		{"large negative", -1000, 360, 80},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.deg, tc.span)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tc.deg, tc.span, got, tc.want)
			}
			if got < 0 || got >= tc.span {
				t.Errorf("Normalize(%v, %v) = %v, outside [0, %v)", tc.deg, tc.span, got, tc.span)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"identical", 45, 45, 0},
		{"simple", 30, 50, 20},
		{"across wrap", 170, 10, 20},
		{"perpendicular", 0, 90, 90},
		{"opposite orientations equal", 90, 270, 0},
		{"near wrap", 179, 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Diff(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Diff(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRadiansDegrees(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Radians(180) = %v, want %v", got, math.Pi)
	}
	if got := Degrees(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("Degrees(π/2) = %v, want 90", got)
	}
	for _, deg := range []float64{0, 10, 33.3, 90, 178, 359} {
		if got := Degrees(Radians(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("Degrees(Radians(%v)) = %v", deg, got)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{50, 0, 80, 50},
		{-10, 0, 80, 0},
		{120, 0, 80, 80},
		{80, 80, 100, 80},
		{100, 80, 100, 100},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
