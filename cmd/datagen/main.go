package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/2beens/hamzfitness/internal/kvstore"
	"github.com/2beens/hamzfitness/internal/prefs"
	"github.com/2beens/hamzfitness/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// datagen fills the key-value store with a fake profile and a bunch of
// fake workouts, spread over the last N days. Handy for poking at the
// stats endpoints locally without logging everything by hand.
func main() {
	redisHost := flag.String("redis-host", "localhost", "redis host")
	redisPort := flag.String("redis-port", "6379", "redis port")
	count := flag.Int("count", 60, "number of workouts to generate")
	days := flag.Int("days", 30, "spread workouts over the last N days")
	flag.Parse()

	log.SetLevel(log.DebugLevel)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(*redisHost, *redisPort),
		Password: os.Getenv("HAMZ_REDIS_PASS"),
		DB:       0,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("ping redis: %s", err)
	}

	kv := kvstore.NewRedisStore(rdb)
	prefsStore := prefs.NewStore(kv)
	workoutsStore := workouts.NewStore(kv)

	name := gofakeit.FirstName()
	goal := gofakeit.Number(prefs.MinDailyGoal, 5)
	joinDate := time.Now().AddDate(0, 0, -*days)
	profile := prefsStore.Update(ctx, prefs.Update{
		Name:      &name,
		DailyGoal: &goal,
		JoinDate:  &joinDate,
	})
	log.Debugf("profile: %s, daily goal %d, joined %s", profile.Name, profile.DailyGoal, profile.JoinDate.Format("2006-01-02"))

	for i := 0; i < *count; i++ {
		workoutsStore.Add(ctx, randomWorkout(*days))
	}

	log.Infof("done, %d workouts generated over the last %d days", *count, *days)
	fmt.Println("bye :)")
}

func randomWorkout(days int) workouts.Workout {
	w := workouts.Workout{
		ExerciseName: gofakeit.RandomString(workouts.Suggestions),
		Timestamp: time.Now().
			AddDate(0, 0, -gofakeit.Number(0, days-1)).
			Add(-time.Duration(gofakeit.Number(0, 12)) * time.Hour),
	}

	if gofakeit.Bool() {
		w.Notes = gofakeit.Sentence(5)
	}

	switch gofakeit.Number(0, 2) {
	case 0:
		w.ExerciseType = workouts.ExerciseTypeStrength
		w.Sets = gofakeit.Number(2, 5)
		w.Reps = gofakeit.Number(5, 15)
		w.Weight = float64(gofakeit.Number(20, 140))
	case 1:
		w.ExerciseType = workouts.ExerciseTypeCardio
		w.Distance = float64(gofakeit.Number(1, 20))
		w.Duration = gofakeit.Number(10, 90)
	default:
		w.ExerciseType = workouts.ExerciseTypeTime
		w.Duration = gofakeit.Number(5, 60)
	}

	return w
}
