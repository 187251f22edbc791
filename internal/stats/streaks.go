package stats

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/hamzfitness/internal/telemetry/tracing"
)

type Streaks struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

// Streaks computes the goal streaks from the workout log. A day counts as
// "met" when its workout count reaches the daily goal. The current streak
// is the run of met days ending today, or ending yesterday while today is
// still in progress. The longest streak is the longest run anywhere in
// the log.
func (a *Analyzer) Streaks(ctx context.Context) Streaks {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.streaks")
	defer span.End()

	goal := a.goal.DailyGoal(ctx)

	counts := make(map[time.Time]int)
	for _, w := range a.workouts.Load(ctx) {
		counts[dayStart(w.Timestamp)]++
	}

	metDays := make([]time.Time, 0, len(counts))
	for day, count := range counts {
		if count >= goal {
			metDays = append(metDays, day)
		}
	}
	sort.Slice(metDays, func(i, j int) bool {
		return metDays[i].Before(metDays[j])
	})

	met := make(map[time.Time]bool, len(metDays))
	for _, day := range metDays {
		met[day] = true
	}

	// a day with an unmet goal is not a broken streak while it can still
	// be met, so an unmet today falls back to counting from yesterday
	today := dayStart(a.now())
	day := today
	if !met[day] {
		day = today.AddDate(0, 0, -1)
	}
	current := 0
	for met[day] {
		current++
		day = day.AddDate(0, 0, -1)
	}

	longest := 0
	run := 0
	for i, day := range metDays {
		if i > 0 && metDays[i-1].AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return Streaks{
		Current: current,
		Longest: longest,
	}
}
