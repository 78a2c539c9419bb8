package main

import (
	"time"

	"github.com/JoeLucas99/DemTestFinal3/angle"
	"github.com/JoeLucas99/DemTestFinal3/results"
	"github.com/JoeLucas99/DemTestFinal3/settings"
	"github.com/JoeLucas99/DemTestFinal3/stimulus"
)

// session tracks one run of trials from generation to scoring. It is plain
// state; the App feeds it pointer commits and advance ticks.
type session struct {
	cfg     settings.Config
	stimuli []stimulus.Stimulus
	trials  []results.Trial

	idx       int
	startedAt time.Time
	shownAt   time.Time
	committed bool
	selected  float64
}

// newSession generates the full stimulus sequence and presents the first
// one at now.
func newSession(cfg settings.Config, gen *stimulus.Generator, now time.Time) *session {
	return &session{
		cfg:       cfg,
		stimuli:   gen.Generate(cfg),
		trials:    make([]results.Trial, 0, cfg.StimulusCount),
		startedAt: now,
		shownAt:   now,
	}
}

// current returns the displayed stimulus. Only valid while !finished().
func (s *session) current() stimulus.Stimulus {
	return s.stimuli[s.idx]
}

// finished reports whether the last trial has been advanced past.
func (s *session) finished() bool {
	return s.idx >= len(s.stimuli)
}

// commit records the selection for the current trial and reports whether it
// was accepted. Only the first click per trial counts; later ones are
// ignored until advance.
func (s *session) commit(selectedAngle float64, now time.Time) bool {
	if s.committed || s.finished() {
		return false
	}
	st := s.current()
	s.trials = append(s.trials, results.Trial{
		Index:         s.idx,
		TargetAngle:   st.TargetAngle,
		SelectedAngle: selectedAngle,
		Correct:       angle.Diff(selectedAngle, st.TargetAngle) == 0,
		ElapsedMs:     now.Sub(s.shownAt).Milliseconds(),
	})
	s.committed = true
	s.selected = selectedAngle
	return true
}

// advance moves to the next stimulus, restarting the trial clock. It
// returns false once the session is finished.
func (s *session) advance(now time.Time) bool {
	s.idx++
	s.committed = false
	s.shownAt = now
	return !s.finished()
}

// progress returns the 1-based trial number and the total.
func (s *session) progress() (current, total int) {
	current = s.idx + 1
	if current > len(s.stimuli) {
		current = len(s.stimuli)
	}
	return current, len(s.stimuli)
}
