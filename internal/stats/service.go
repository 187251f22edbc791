package stats

import (
	"context"

	"github.com/2beens/hamzfitness/internal/prefs"
	"github.com/2beens/hamzfitness/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type prefsRepo interface {
	Load(ctx context.Context) (*prefs.Prefs, bool)
	Update(ctx context.Context, u prefs.Update) *prefs.Prefs
}

// Summary bundles everything the stats screen shows into one response.
type Summary struct {
	Today        TodayProgress    `json:"today"`
	Weekly       []DayCount       `json:"weekly"`
	Totals       Totals           `json:"totals"`
	Records      []PersonalRecord `json:"records"`
	Achievements []Achievement    `json:"achievements"`
	Streaks      Streaks          `json:"streaks"`
}

// Service is the Analyzer plus the one stateful concern of the stats
// layer: writing recomputed streak counters back to the profile.
type Service struct {
	*Analyzer
	prefs prefsRepo
}

func NewService(analyzer *Analyzer, prefs prefsRepo) *Service {
	return &Service{
		Analyzer: analyzer,
		prefs:    prefs,
	}
}

// RefreshStreaks recomputes the streaks from the workout log and stores
// them on the profile. The stored longest streak is never lowered, so a
// record survives deleting the workouts that earned it. No-op before
// onboarding: refreshing must not create a profile record.
func (s *Service) RefreshStreaks(ctx context.Context) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.service.refresh-streaks")
	defer span.End()

	current, ok := s.prefs.Load(ctx)
	if !ok {
		return
	}

	streaks := s.Streaks(ctx)
	longest := streaks.Longest
	if current.LongestStreak > longest {
		longest = current.LongestStreak
	}

	if current.CurrentStreak == streaks.Current && current.LongestStreak == longest {
		return
	}

	s.prefs.Update(ctx, prefs.Update{
		CurrentStreak: &streaks.Current,
		LongestStreak: &longest,
	})
	log.Tracef("streaks refreshed: current %d, longest %d", streaks.Current, longest)
}

// Summary computes all stats in one go.
func (s *Service) Summary(ctx context.Context) Summary {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.service.summary")
	defer span.End()

	return Summary{
		Today:        s.TodayProgress(ctx),
		Weekly:       s.WeeklyHistogram(ctx),
		Totals:       s.Totals(ctx),
		Records:      s.PersonalRecords(ctx),
		Achievements: s.Achievements(ctx),
		Streaks:      s.Streaks(ctx),
	}
}
