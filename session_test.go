package main

import (
	"testing"
	"time"

	"github.com/JoeLucas99/DemTestFinal3/results"
	"github.com/JoeLucas99/DemTestFinal3/settings"
	"github.com/JoeLucas99/DemTestFinal3/stimulus"
)

func testSession(t *testing.T, count int) (*session, time.Time) {
	t.Helper()
	cfg := settings.Config{
		StimulusCount:     count,
		AnglesPerQuadrant: 2,
		DegreeVariance:    10,
	}.Clamp()
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return newSession(cfg, stimulus.NewSeeded(7), start), start
}

func TestSessionCommitOnce(t *testing.T) {
	s, start := testSession(t, 3)

	if !s.commit(s.current().TargetAngle, start.Add(time.Second)) {
		t.Fatal("first commit rejected")
	}
	if s.commit(30, start.Add(2*time.Second)) {
		t.Fatal("second commit accepted before advance")
	}
	if len(s.trials) != 1 {
		t.Fatalf("expected 1 trial, got %d", len(s.trials))
	}
}

func TestSessionElapsed(t *testing.T) {
	s, start := testSession(t, 2)

	s.commit(s.current().TargetAngle, start.Add(1500*time.Millisecond))
	s.advance(start.Add(2 * time.Second))
	s.commit(s.current().TargetAngle, start.Add(2700*time.Millisecond))

	if got := s.trials[0].ElapsedMs; got != 1500 {
		t.Errorf("trial 0 elapsed = %d ms, want 1500", got)
	}
	if got := s.trials[1].ElapsedMs; got != 700 {
		t.Errorf("trial 1 elapsed = %d ms, want 700", got)
	}
}

func TestSessionFullRun(t *testing.T) {
	s, start := testSession(t, 5)
	now := start

	for i := 0; !s.finished(); i++ {
		cur, total := s.progress()
		if cur != i+1 || total != 5 {
			t.Fatalf("progress = %d/%d, want %d/5", cur, total, i+1)
		}
		now = now.Add(time.Second)
		if !s.commit(s.current().TargetAngle, now) {
			t.Fatalf("commit %d rejected", i)
		}
		s.advance(now)
	}

	if len(s.trials) != 5 {
		t.Fatalf("expected 5 trials, got %d", len(s.trials))
	}
	sum := results.Summarize(s.trials)
	if sum.Correct != 5 {
		t.Errorf("picking the target every time scored %d/5", sum.Correct)
	}
}

func TestSessionScoresOrientation(t *testing.T) {
	s := &session{
		stimuli: []stimulus.Stimulus{
			{TargetAngle: 270, Options: []float64{90, 30, 60, 120}},
		},
	}
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s.shownAt = start

	// A 270 degree target and a 90 degree line share an orientation.
	s.commit(90, start.Add(time.Second))
	if !s.trials[0].Correct {
		t.Error("selecting 90 for a 270 degree target scored incorrect")
	}
}

func TestSessionScoresMismatch(t *testing.T) {
	s, start := testSession(t, 1)

	target := s.current().TargetAngle
	s.commit(target+45, start.Add(time.Second))
	if s.trials[0].Correct {
		t.Errorf("selecting %v for target %v scored correct", target+45, target)
	}
}

func TestSessionAdvancePastEnd(t *testing.T) {
	s, start := testSession(t, 1)

	s.commit(s.current().TargetAngle, start)
	if s.advance(start) {
		t.Error("advance past the last trial reported more to come")
	}
	if !s.finished() {
		t.Error("session not finished after advancing past the last trial")
	}
	if s.commit(10, start) {
		t.Error("commit accepted after the session finished")
	}
}
