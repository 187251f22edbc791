package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/hamzfitness/internal/kvstore"
	"github.com/2beens/hamzfitness/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// PrefsKey is the fixed key the whole profile record lives under.
const PrefsKey = "hamz-fitness::user-prefs"

// Store keeps the user profile in memory and mirrors every change to the
// underlying key-value storage. The in-memory copy is authoritative: persist
// failures are logged and never rolled back, so a flaky backend degrades to
// an in-memory-only profile instead of breaking the caller.
type Store struct {
	mu      sync.Mutex
	kv      kvstore.Store
	current *Prefs // nil means onboarding was never completed
	loaded  bool
	now     func() time.Time
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{
		kv:  kv,
		now: time.Now,
	}
}

// Load returns the current profile, or false when no profile exists yet.
// Absence is a normal state (pre-onboarding), not an error.
func (s *Store) Load(ctx context.Context) (_ *Prefs, _ bool) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "prefs.store.load")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	if s.current == nil {
		return nil, false
	}

	current := *s.current
	return &current, true
}

// Update merges the given partial update over the defaults and the current
// record, then rewrites the whole persisted value. The merged record is
// always returned, even if persisting it failed.
//
// The join date is set once, on the first update, and ignored afterwards.
func (s *Store) Update(ctx context.Context, u Update) *Prefs {
	ctx, span := tracing.GlobalTracer.Start(ctx, "prefs.store.update")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	merged := Default(s.now())
	firstUpdate := s.current == nil
	if !firstUpdate {
		merged = *s.current
	}

	if u.Name != nil {
		merged.Name = *u.Name
	}
	if u.DailyGoal != nil {
		merged.DailyGoal = ClampDailyGoal(*u.DailyGoal)
	}
	if u.JoinDate != nil && firstUpdate {
		merged.JoinDate = *u.JoinDate
	}
	if u.CurrentStreak != nil {
		merged.CurrentStreak = *u.CurrentStreak
	}
	if u.LongestStreak != nil {
		merged.LongestStreak = *u.LongestStreak
	}

	s.current = &merged
	s.loaded = true
	s.persist(ctx)

	current := merged
	return &current
}

// Reset deletes the stored profile. After a successful reset the user is
// back in the pre-onboarding state.
func (s *Store) Reset(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "prefs.store.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, PrefsKey); err != nil {
		return fmt.Errorf("delete prefs: %w", err)
	}

	s.current = nil
	s.loaded = true
	return nil
}

// IsOnboarded reports whether a profile record exists.
func (s *Store) IsOnboarded(ctx context.Context) bool {
	_, ok := s.Load(ctx)
	return ok
}

// DailyGoal returns the configured daily workout goal, falling back to the
// default when no profile exists yet. The stored value is clamped again on
// the way out: a hand-edited or legacy record can hold a goal of 0, which
// would otherwise poison every ratio computed from it.
func (s *Store) DailyGoal(ctx context.Context) int {
	p, ok := s.Load(ctx)
	if !ok {
		return DefaultDailyGoal
	}
	return ClampDailyGoal(p.DailyGoal)
}

// ensureLoaded populates the in-memory copy from storage on first use.
// Backend failures are logged and treated as "no profile yet"; the next
// call retries. Caller must hold s.mu.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}

	value, err := s.kv.Get(ctx, PrefsKey)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			s.current = nil
			s.loaded = true
			return
		}
		log.Errorf("prefs store: load profile: %s", err)
		return
	}

	var p Prefs
	if err := json.Unmarshal(value, &p); err != nil {
		// unreadable record, treat it as absent
		log.Errorf("prefs store: unmarshal profile: %s", err)
		s.current = nil
		s.loaded = true
		return
	}

	s.current = &p
	s.loaded = true
}

// persist rewrites the whole stored record. Caller must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	value, err := json.Marshal(s.current)
	if err != nil {
		log.Errorf("prefs store: marshal profile: %s", err)
		return
	}
	if err := s.kv.Set(ctx, PrefsKey, value); err != nil {
		log.Errorf("prefs store: persist profile: %s", err)
	}
}
