package main

import (
	"context"
	"os"
	"time"

	"github.com/dafibh/liftlog/liftlog-backend/db"
	"github.com/dafibh/liftlog/liftlog-backend/internal/config"
	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type exerciseSeed struct {
	name      string
	category  string
	equipment bool
}

type workoutSeed struct {
	date    string
	minutes int32
	notes   string
}

type linkSeed struct {
	workout  int
	exercise int
	reps     *int32
	sets     *int32
	duration *int32
}

func i32(v int32) *int32 { return &v }

var (
	exerciseSeeds = []exerciseSeed{
		{"Back Squat", "Strength", true},
		{"Push-up", "Strength", false},
		{"Run", "Cardio", false},
	}
	workoutSeeds = []workoutSeed{
		{"2025-09-01", 45, "Lower body"},
		{"2025-09-03", 30, "Upper + cardio"},
	}
	// indexes into exerciseSeeds / workoutSeeds
	linkSeeds = []linkSeed{
		{workout: 0, exercise: 0, reps: i32(5), sets: i32(5)},
		{workout: 1, exercise: 1, reps: i32(15), sets: i32(4)},
		{workout: 1, exercise: 2, duration: i32(1200)},
	}
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool, db.Migrations); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
	if err := seed(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	log.Info().
		Int("exercises", len(exerciseSeeds)).
		Int("workouts", len(workoutSeeds)).
		Int("workout_exercises", len(linkSeeds)).
		Msg("Seed complete")
}

// seed wipes every table and recreates the sample data through the
// repositories, so both validation passes apply.
func seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.ResetData(ctx, pool); err != nil {
		return err
	}

	exerciseRepo := postgres.NewExerciseRepository(pool)
	workoutRepo := postgres.NewWorkoutRepository(pool)
	linkRepo := postgres.NewWorkoutExerciseRepository(pool)

	exercises := make([]*domain.Exercise, 0, len(exerciseSeeds))
	for _, s := range exerciseSeeds {
		e, err := domain.NewExercise(s.name, s.category, s.equipment)
		if err != nil {
			return err
		}
		created, err := exerciseRepo.Create(ctx, e)
		if err != nil {
			return err
		}
		exercises = append(exercises, created)
	}

	workouts := make([]*domain.Workout, 0, len(workoutSeeds))
	for _, s := range workoutSeeds {
		date, err := time.Parse(time.DateOnly, s.date)
		if err != nil {
			return err
		}
		notes := s.notes
		w, err := domain.NewWorkout(date, s.minutes, &notes)
		if err != nil {
			return err
		}
		created, err := workoutRepo.Create(ctx, w)
		if err != nil {
			return err
		}
		workouts = append(workouts, created)
	}

	for _, s := range linkSeeds {
		we, err := domain.NewWorkoutExercise(workouts[s.workout].ID, exercises[s.exercise].ID, s.reps, s.sets, s.duration)
		if err != nil {
			return err
		}
		if _, err := linkRepo.Create(ctx, we); err != nil {
			return err
		}
	}
	return nil
}
