package results

import (
	"math"
	"testing"
	"time"

	"github.com/JoeLucas99/DemTestFinal3/settings"
)

func TestSummarize(t *testing.T) {
	trials := []Trial{
		{Index: 0, TargetAngle: 30, SelectedAngle: 30, Correct: true, ElapsedMs: 1000},
		{Index: 1, TargetAngle: 60, SelectedAngle: 80, Correct: false, ElapsedMs: 2000},
		{Index: 2, TargetAngle: 120, SelectedAngle: 120, Correct: true, ElapsedMs: 3000},
	}
	s := Summarize(trials)
	if s.Trials != 3 || s.Correct != 2 {
		t.Fatalf("expected 2/3 correct, got %d/%d", s.Correct, s.Trials)
	}
	if math.Abs(s.Accuracy-2.0/3.0) > 1e-9 {
		t.Errorf("accuracy = %v, want 2/3", s.Accuracy)
	}
	if s.MeanMs != 2000 {
		t.Errorf("mean = %d, want 2000", s.MeanMs)
	}
	if s.MedianMs != 2000 {
		t.Errorf("median = %d, want 2000", s.MedianMs)
	}
	if math.Abs(s.MeanErrorDeg-20.0/3.0) > 1e-9 {
		t.Errorf("mean error = %v, want 20/3", s.MeanErrorDeg)
	}
}

func TestSummarizeEvenCount(t *testing.T) {
	trials := []Trial{
		{ElapsedMs: 1000, Correct: true},
		{ElapsedMs: 2000, Correct: true},
	}
	if got := Summarize(trials).MedianMs; got != 1500 {
		t.Fatalf("median = %d, want 1500", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestNewSession(t *testing.T) {
	cfg := settings.DefaultConfig()
	cfg.StimulusCount = 7
	cfg.UseCorrectQuadrant = true
	cfg.CorrectQuadrant = 3
	cfg.Profile = settings.ProfileLegacy
	cfg.Seed = 99
	started := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	ended := started.Add(2 * time.Minute)

	sess := NewSession(cfg, started, ended)
	if sess.StimulusCount != 7 || sess.CorrectQuadrant != 3 || !sess.UseCorrectQuadrant {
		t.Fatalf("config snapshot mismatch: %+v", sess)
	}
	if sess.Profile != "legacy" {
		t.Errorf("profile = %q, want legacy", sess.Profile)
	}
	if sess.Seed != 99 {
		t.Errorf("seed = %d, want 99", sess.Seed)
	}
	if !sess.StartedAt.Equal(started) || !sess.EndedAt.Equal(ended) {
		t.Error("timestamps not preserved")
	}
}
