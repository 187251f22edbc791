package workouts

import (
	"errors"
	"time"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type ExerciseType string

const (
	ExerciseTypeStrength ExerciseType = "strength"
	ExerciseTypeCardio   ExerciseType = "cardio"
	ExerciseTypeTime     ExerciseType = "time"
)

func (t ExerciseType) Valid() bool {
	switch t {
	case ExerciseTypeStrength, ExerciseTypeCardio, ExerciseTypeTime:
		return true
	}
	return false
}

// Workout is a single logged exercise. Only the fields matching the
// exercise type are set, the rest stay at their zero value.
type Workout struct {
	ID           string       `json:"id"`
	ExerciseName string       `json:"exerciseName"`
	ExerciseType ExerciseType `json:"exerciseType"`

	// strength
	Sets   int     `json:"sets,omitempty"`
	Reps   int     `json:"reps,omitempty"`
	Weight float64 `json:"weight,omitempty"` // kilos

	// cardio
	Distance float64 `json:"distance,omitempty"` // kilometers
	Duration int     `json:"duration,omitempty"` // minutes

	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Suggestions is the fixed list of exercise names offered in the add form.
// Free-text names are accepted too, this is just the quick-pick list.
var Suggestions = []string{
	"Bench Press",
	"Squat",
	"Deadlift",
	"Overhead Press",
	"Pull-ups",
	"Push-ups",
	"Running",
	"Cycling",
	"Rowing",
	"Plank",
}
