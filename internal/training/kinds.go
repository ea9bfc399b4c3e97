package training

import "math"

const (
	runCaloriesCoeff1 = 18
	runCaloriesCoeff2 = 20

	walkCaloriesCoeff1 = 0.035
	walkCaloriesCoeff2 = 0.029

	swimLenStep        = 1.38
	swimCaloriesCoeff1 = 1.1
	swimCaloriesCoeff2 = 2
)

// Running is a run counted in steps.
type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) *Running {
	return &Running{Training: NewTraining(action, duration, weight)}
}

func (r *Running) Kind() string { return "Running" }

func (r *Running) SpentCalories() (float64, error) {
	minutes := r.Hours * minInH
	return (runCaloriesCoeff1*r.MeanSpeed() - runCaloriesCoeff2) *
		r.WeightKg / mInKm * minutes, nil
}

// SportsWalking is a walk counted in steps. Height is in cm.
type SportsWalking struct {
	Training
	HeightCm float64
}

func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		Training: NewTraining(action, duration, weight),
		HeightCm: height,
	}
}

func (w *SportsWalking) Kind() string { return "SportsWalking" }

// SpentCalories floors speed²/height before weighting it. The floor is kept
// for compatibility with existing tracker reports.
func (w *SportsWalking) SpentCalories() (float64, error) {
	minutes := w.Hours * minInH
	speed := w.MeanSpeed()
	return (walkCaloriesCoeff1*w.WeightKg +
		math.Floor(speed*speed/w.HeightCm)*walkCaloriesCoeff2*w.WeightKg) *
		minutes, nil
}

// Swimming is a pool swim counted in strokes. Speed comes from pool
// geometry, distance from strokes.
type Swimming struct {
	Training
	PoolLengthM float64
	PoolCount   int
}

func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) *Swimming {
	t := NewTraining(action, duration, weight)
	t.stepLen = swimLenStep
	return &Swimming{
		Training:    t,
		PoolLengthM: poolLength,
		PoolCount:   poolCount,
	}
}

func (s *Swimming) Kind() string { return "Swimming" }

func (s *Swimming) MeanSpeed() float64 {
	return s.PoolLengthM * float64(s.PoolCount) / mInKm / s.Hours
}

func (s *Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimCaloriesCoeff1) * swimCaloriesCoeff2 * s.WeightKg, nil
}
