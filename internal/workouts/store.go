package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/hamzfitness/internal/kvstore"
	"github.com/2beens/hamzfitness/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// WorkoutsKey is the fixed key the whole workout log lives under.
const WorkoutsKey = "hamz-fitness::workouts"

// Store keeps the workout log in memory, newest first, and rewrites the
// whole persisted array on every mutation. Like the profile store, the
// in-memory list is authoritative: a failed persist is logged, not rolled
// back, and the next successful mutation writes the full current state.
type Store struct {
	mu       sync.Mutex
	kv       kvstore.Store
	workouts []Workout
	loaded   bool
	now      func() time.Time
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{
		kv:  kv,
		now: time.Now,
	}
}

// Load returns the current workout log, newest first. Backend or parse
// failures are logged and yield an empty log, never an error.
func (s *Store) Load(ctx context.Context) []Workout {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.load")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	workouts := make([]Workout, len(s.workouts))
	copy(workouts, s.workouts)
	return workouts
}

// Add prepends the workout to the log and persists the whole resulting
// list. A missing id gets a fresh one, a zero timestamp gets the current
// time. Returns the stored entry.
func (s *Store) Add(ctx context.Context, workout Workout) Workout {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.add")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	if workout.Timestamp.IsZero() {
		workout.Timestamp = s.now()
	}

	s.workouts = append([]Workout{workout}, s.workouts...)
	s.persist(ctx)

	return workout
}

// Get returns the workout with the given id, or ErrWorkoutNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Workout, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.get")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	for i := range s.workouts {
		if s.workouts[i].ID == id {
			workout := s.workouts[i]
			return &workout, nil
		}
	}
	return nil, ErrWorkoutNotFound
}

// Delete removes all entries with the given id and persists the result.
// Deleting an unknown id returns ErrWorkoutNotFound and changes nothing.
func (s *Store) Delete(ctx context.Context, id string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.delete")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	filtered := make([]Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		if w.ID != id {
			filtered = append(filtered, w)
		}
	}
	if len(filtered) == len(s.workouts) {
		return ErrWorkoutNotFound
	}

	s.workouts = filtered
	s.persist(ctx)
	return nil
}

// Clear wipes the whole workout log, in memory and in storage.
func (s *Store) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, WorkoutsKey); err != nil {
		return fmt.Errorf("delete workouts: %w", err)
	}

	s.workouts = nil
	s.loaded = true
	return nil
}

// ensureLoaded populates the in-memory log from storage on first use.
// Caller must hold s.mu.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}

	value, err := s.kv.Get(ctx, WorkoutsKey)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			s.workouts = nil
			s.loaded = true
			return
		}
		log.Errorf("workouts store: load workouts: %s", err)
		return
	}

	var workouts []Workout
	if err := json.Unmarshal(value, &workouts); err != nil {
		// unreadable log, treat it as empty
		log.Errorf("workouts store: unmarshal workouts: %s", err)
		s.workouts = nil
		s.loaded = true
		return
	}

	s.workouts = workouts
	s.loaded = true
}

// persist rewrites the whole stored array. Caller must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	value, err := json.Marshal(s.workouts)
	if err != nil {
		log.Errorf("workouts store: marshal workouts: %s", err)
		return
	}
	if err := s.kv.Set(ctx, WorkoutsKey, value); err != nil {
		log.Errorf("workouts store: persist workouts: %s", err)
	}
}
