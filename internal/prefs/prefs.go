package prefs

import (
	"time"
)

const (
	// MinDailyGoal and MaxDailyGoal bound the accepted daily workout goal.
	// Values outside the range are clamped, not rejected.
	MinDailyGoal = 1
	MaxDailyGoal = 10

	DefaultDailyGoal = 3
)

// Prefs is the single user profile record of the fitness tracker.
type Prefs struct {
	Name          string    `json:"name"`
	DailyGoal     int       `json:"dailyGoal"`
	JoinDate      time.Time `json:"joinDate"`
	CurrentStreak int       `json:"currentStreak"`
	LongestStreak int       `json:"longestStreak"`
}

// Default returns the record used as the merge base for a user
// that never completed onboarding.
func Default(now time.Time) Prefs {
	return Prefs{
		Name:          "",
		DailyGoal:     DefaultDailyGoal,
		JoinDate:      now,
		CurrentStreak: 0,
		LongestStreak: 0,
	}
}

// Update is a partial profile update. Nil fields keep their current value.
type Update struct {
	Name          *string    `json:"name,omitempty"`
	DailyGoal     *int       `json:"dailyGoal,omitempty"`
	JoinDate      *time.Time `json:"joinDate,omitempty"`
	CurrentStreak *int       `json:"currentStreak,omitempty"`
	LongestStreak *int       `json:"longestStreak,omitempty"`
}

// ClampDailyGoal forces goal into the [MinDailyGoal, MaxDailyGoal] range.
func ClampDailyGoal(goal int) int {
	if goal < MinDailyGoal {
		return MinDailyGoal
	}
	if goal > MaxDailyGoal {
		return MaxDailyGoal
	}
	return goal
}
