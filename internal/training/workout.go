// Package training computes distance, mean speed and spent calories for
// workouts recorded by a fitness tracker.
package training

import (
	"errors"
	"fmt"
)

const (
	lenStep = 0.65 // km per step
	mInKm   = 1000
	minInH  = 60
)

// ErrNotImplemented is returned when calories are requested from the bare
// Training base instead of a concrete workout.
var ErrNotImplemented = errors.New("spent calories not implemented for base training")

// Workout is a single recorded activity.
type Workout interface {
	// Kind returns the display name used in summaries.
	Kind() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
}

// Training holds the fields shared by every workout.
// Embedded by concrete workouts; on its own it has no calorie formula.
type Training struct {
	Action   int     // steps or strokes
	Hours    float64 // duration
	WeightKg float64

	stepLen float64
}

// NewTraining creates a base training with the default step length.
func NewTraining(action int, duration, weight float64) Training {
	return Training{
		Action:   action,
		Hours:    duration,
		WeightKg: weight,
		stepLen:  lenStep,
	}
}

func (t Training) Kind() string { return "Training" }

func (t Training) Duration() float64 { return t.Hours }

// Distance returns the covered distance in km.
func (t Training) Distance() float64 {
	return float64(t.Action) * t.stepLen / mInKm
}

// MeanSpeed returns the average speed in km/h.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Hours
}

func (t Training) SpentCalories() (float64, error) {
	return 0, ErrNotImplemented
}

// Summary is the derived, read-only result of a workout.
type Summary struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Summarize computes the summary of w. Pure: repeated calls return equal values.
func Summarize(w Workout) (Summary, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", w.Kind(), err)
	}
	return Summary{
		TrainingType: w.Kind(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     calories,
	}, nil
}

// Message renders the summary as a single human-readable line.
func (s Summary) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; "+
		"Длительность: %.3f ч; "+
		"Дистанция: %.3f км; "+
		"Ср. скорость: %.3f км/ч; "+
		"Потрачено ккал: %.3f.",
		s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}
