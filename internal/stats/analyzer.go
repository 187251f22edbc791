// Package stats derives all displayed statistics from the workout log and
// the profile settings. Nothing here is cached or persisted (except the
// streak counters written back to the profile): every call is a fresh fold
// over the current data.
package stats

import (
	"context"
	"math"
	"time"

	"github.com/2beens/hamzfitness/internal/telemetry/tracing"
	"github.com/2beens/hamzfitness/internal/workouts"
)

type workoutsRepo interface {
	Load(ctx context.Context) []workouts.Workout
}

type goalRepo interface {
	DailyGoal(ctx context.Context) int
}

// personalRecordsDisplayCount limits the records list to what the
// records card can show.
const personalRecordsDisplayCount = 4

type TodayProgress struct {
	Count   int     `json:"count"`
	Goal    int     `json:"goal"`
	Ratio   float64 `json:"ratio"` // clamped to [0, 1]
	GoalMet bool    `json:"goalMet"`
}

type DayCount struct {
	Date    string `json:"date"` // yyyy-mm-dd
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

type Totals struct {
	Workouts          int `json:"workouts"`
	DistinctExercises int `json:"distinctExercises"`
}

type PersonalRecord struct {
	ExerciseName string           `json:"exerciseName"`
	Value        float64          `json:"value"` // kilos for strength, kilometers for cardio
	Workout      workouts.Workout `json:"workout"`
}

type Achievement struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Unlocked  bool   `json:"unlocked"`
}

type Analyzer struct {
	workouts workoutsRepo
	goal     goalRepo
	now      func() time.Time
}

func NewAnalyzer(workouts workoutsRepo, goal goalRepo) *Analyzer {
	return &Analyzer{
		workouts: workouts,
		goal:     goal,
		now:      time.Now,
	}
}

// TodayProgress counts the workouts logged on the current calendar day
// (local time, not a rolling 24h window) against the daily goal.
func (a *Analyzer) TodayProgress(ctx context.Context) TodayProgress {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.today-progress")
	defer span.End()

	now := a.now()
	count := 0
	for _, w := range a.workouts.Load(ctx) {
		if sameDay(w.Timestamp, now) {
			count++
		}
	}

	goal := a.goal.DailyGoal(ctx)
	ratio := float64(count) / float64(goal)
	if ratio > 1 {
		ratio = 1
	}
	// 2 of 3 displays as 67%, not 66%
	ratio = math.Round(ratio*1000) / 1000

	return TodayProgress{
		Count:   count,
		Goal:    goal,
		Ratio:   ratio,
		GoalMet: count >= goal,
	}
}

// WeeklyHistogram returns workout counts for the trailing 7 calendar days,
// oldest first, today last. Days without workouts get a zero bucket.
func (a *Analyzer) WeeklyHistogram(ctx context.Context) []DayCount {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.weekly-histogram")
	defer span.End()

	all := a.workouts.Load(ctx)
	now := a.now()

	histogram := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := 0
		for _, w := range all {
			if sameDay(w.Timestamp, day) {
				count++
			}
		}
		histogram = append(histogram, DayCount{
			Date:    day.Format("2006-01-02"),
			Weekday: day.Format("Monday"),
			Count:   count,
		})
	}

	return histogram
}

// Totals counts all workouts and the distinct exercise names among them
// (exact, case-sensitive match).
func (a *Analyzer) Totals(ctx context.Context) Totals {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.totals")
	defer span.End()

	all := a.workouts.Load(ctx)

	distinct := make(map[string]struct{})
	for _, w := range all {
		distinct[w.ExerciseName] = struct{}{}
	}

	return Totals{
		Workouts:          len(all),
		DistinctExercises: len(distinct),
	}
}

// PersonalRecords returns the best entry per exercise name, by weight for
// strength and by distance for cardio. The first entry seen wins a tie.
// At most personalRecordsDisplayCount records are returned, in the order
// their exercise names were first encountered.
func (a *Analyzer) PersonalRecords(ctx context.Context) []PersonalRecord {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.personal-records")
	defer span.End()

	all := a.workouts.Load(ctx)

	bestPerName := make(map[string]int) // exercise name -> index in records
	var records []PersonalRecord
	for _, w := range all {
		value := recordValue(w)
		i, seen := bestPerName[w.ExerciseName]
		if !seen {
			bestPerName[w.ExerciseName] = len(records)
			records = append(records, PersonalRecord{
				ExerciseName: w.ExerciseName,
				Value:        value,
				Workout:      w,
			})
			continue
		}
		if value > records[i].Value {
			records[i].Value = value
			records[i].Workout = w
		}
	}

	if len(records) > personalRecordsDisplayCount {
		records = records[:personalRecordsDisplayCount]
	}
	return records
}

// Achievements evaluates the fixed unlock table against the total workout
// count.
func (a *Analyzer) Achievements(ctx context.Context) []Achievement {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.achievements")
	defer span.End()

	total := len(a.workouts.Load(ctx))

	achievements := []Achievement{
		{Name: "First Step", Threshold: 1},
		{Name: "On Fire", Threshold: 5},
		{Name: "Perfect Ten", Threshold: 10},
		{Name: "Half Century", Threshold: 50},
	}
	for i := range achievements {
		achievements[i].Unlocked = total >= achievements[i].Threshold
	}
	return achievements
}

func recordValue(w workouts.Workout) float64 {
	switch w.ExerciseType {
	case workouts.ExerciseTypeStrength:
		return w.Weight
	case workouts.ExerciseTypeCardio:
		return w.Distance
	}
	return 0
}

// sameDay compares the year/month/day components in local time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// dayStart truncates t to midnight local time.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
