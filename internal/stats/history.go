package stats

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/2beens/hamzfitness/internal/telemetry/tracing"
	"github.com/2beens/hamzfitness/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

type HistoryFilter string

const (
	HistoryFilterAll      HistoryFilter = "all"
	HistoryFilterStrength HistoryFilter = "strength"
	HistoryFilterCardio   HistoryFilter = "cardio"
)

// ParseHistoryFilter maps the UI filter labels to a HistoryFilter,
// falling back to "all" for anything unknown.
func ParseHistoryFilter(s string) HistoryFilter {
	switch strings.ToLower(s) {
	case "strength":
		return HistoryFilterStrength
	case "cardio":
		return HistoryFilterCardio
	}
	return HistoryFilterAll
}

// HistoryGroup is one calendar day of matching workouts, newest first.
type HistoryGroup struct {
	Label    string             `json:"label"` // Today, Yesterday, or e.g. "Monday, Jan 2"
	Date     string             `json:"date"`  // yyyy-mm-dd
	Workouts []workouts.Workout `json:"workouts"`
}

// History filters the workout log by exercise type and a case-insensitive
// name substring, then groups the matches by calendar day, newest day
// first, newest timestamp first within a day.
func (a *Analyzer) History(ctx context.Context, filter HistoryFilter, query string) []HistoryGroup {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.history")
	defer span.End()
	span.SetAttributes(attribute.String("filter", string(filter)))
	span.SetAttributes(attribute.String("query", query))

	query = strings.ToLower(query)

	all := a.workouts.Load(ctx)
	matches := make([]workouts.Workout, 0, len(all))
	for _, w := range all {
		if !filterMatches(filter, w.ExerciseType) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(w.ExerciseName), query) {
			continue
		}
		matches = append(matches, w)
	}

	// the log is kept in insertion order, which diverges from timestamp
	// order as soon as an entry is backdated (client-supplied timestamps,
	// seeded data), so the grouping has to sort first
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Timestamp.After(matches[j].Timestamp)
	})

	var groups []HistoryGroup
	groupIndex := make(map[string]int) // date -> index in groups
	for _, w := range matches {
		date := w.Timestamp.Local().Format("2006-01-02")
		i, ok := groupIndex[date]
		if !ok {
			groupIndex[date] = len(groups)
			groups = append(groups, HistoryGroup{
				Label: dayLabel(w.Timestamp, a.now()),
				Date:  date,
			})
			i = len(groups) - 1
		}
		groups[i].Workouts = append(groups[i].Workouts, w)
	}

	return groups
}

func filterMatches(filter HistoryFilter, exerciseType workouts.ExerciseType) bool {
	switch filter {
	case HistoryFilterStrength:
		return exerciseType == workouts.ExerciseTypeStrength
	case HistoryFilterCardio:
		return exerciseType == workouts.ExerciseTypeCardio
	}
	return true
}

func dayLabel(t, now time.Time) string {
	day := dayStart(t)
	today := dayStart(now)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return day.Format("Monday, Jan 2")
}
