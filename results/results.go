// Package results records completed sessions, summarizes them and exports
// them to CSV.
package results

import (
	"sort"
	"time"

	"github.com/JoeLucas99/DemTestFinal3/angle"
	"github.com/JoeLucas99/DemTestFinal3/settings"
)

// Trial is one committed selection.
type Trial struct {
	// Index is the trial's 0-based position in the session
	Index int

	// TargetAngle is the reference orientation shown
	TargetAngle float64

	// SelectedAngle is the orientation of the clicked line
	SelectedAngle float64

	// Correct reports an exact orientation match
	Correct bool

	// ElapsedMs is the time from stimulus display to the click
	ElapsedMs int64
}

// Session is a completed run together with the configuration that produced
// it, so stored results stay interpretable after settings change.
type Session struct {
	StartedAt time.Time
	EndedAt   time.Time

	StimulusCount      int
	AnglesPerQuadrant  int
	UseCorrectQuadrant bool
	CorrectQuadrant    int
	DegreeVariance     float64
	Profile            string
	Seed               int64
}

// NewSession snapshots cfg into a Session covering [startedAt, endedAt].
func NewSession(cfg settings.Config, startedAt, endedAt time.Time) Session {
	return Session{
		StartedAt:          startedAt,
		EndedAt:            endedAt,
		StimulusCount:      cfg.StimulusCount,
		AnglesPerQuadrant:  cfg.AnglesPerQuadrant,
		UseCorrectQuadrant: cfg.UseCorrectQuadrant,
		CorrectQuadrant:    cfg.CorrectQuadrant,
		DegreeVariance:     cfg.DegreeVariance,
		Profile:            cfg.Profile.String(),
		Seed:               cfg.Seed,
	}
}

// SessionRecord is a stored session row with its trial tallies.
type SessionRecord struct {
	ID int64
	Session
	TrialCount   int
	CorrectCount int
}

// Summary aggregates a session's trials.
type Summary struct {
	Trials   int
	Correct  int
	Accuracy float64 // fraction of correct trials in [0,1]

	MeanMs   int64
	MedianMs int64

	// MeanErrorDeg is the mean orientation error across all trials;
	// correct picks contribute zero
	MeanErrorDeg float64
}

// Summarize folds trials into a Summary. Empty input yields zeros.
func Summarize(trials []Trial) Summary {
	s := Summary{Trials: len(trials)}
	if len(trials) == 0 {
		return s
	}
	elapsed := make([]int64, 0, len(trials))
	var sumMs int64
	var sumErr float64
	for _, tr := range trials {
		if tr.Correct {
			s.Correct++
		}
		sumMs += tr.ElapsedMs
		sumErr += angle.Diff(tr.SelectedAngle, tr.TargetAngle)
		elapsed = append(elapsed, tr.ElapsedMs)
	}
	s.Accuracy = float64(s.Correct) / float64(s.Trials)
	s.MeanMs = sumMs / int64(s.Trials)
	s.MeanErrorDeg = sumErr / float64(s.Trials)
	sort.Slice(elapsed, func(i, j int) bool { return elapsed[i] < elapsed[j] })
	mid := len(elapsed) / 2
	if len(elapsed)%2 == 1 {
		s.MedianMs = elapsed[mid]
	} else {
		s.MedianMs = (elapsed[mid-1] + elapsed[mid]) / 2
	}
	return s
}
