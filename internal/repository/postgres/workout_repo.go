package postgres

import (
	"context"
	"errors"

	"github.com/dafibh/liftlog/liftlog-backend/db/sqlc"
	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WorkoutRepository implements domain.WorkoutRepository using PostgreSQL
type WorkoutRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewWorkoutRepository creates a new WorkoutRepository
func NewWorkoutRepository(pool *pgxpool.Pool) *WorkoutRepository {
	return &WorkoutRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create inserts a workout
func (r *WorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (result *domain.Workout, err error) {
	defer func() { observability.RecordStoreOperation("workout", "create", outcomeOf(err)) }()

	if err := workout.Validate(); err != nil {
		return nil, err
	}
	params := sqlc.CreateWorkoutParams{
		Date:            pgtype.Date{Time: workout.Date, Valid: true},
		DurationMinutes: workout.DurationMinutes,
	}
	if workout.Notes != nil {
		params.Notes = pgtype.Text{String: *workout.Notes, Valid: true}
	}

	created, err := r.queries.CreateWorkout(ctx, params)
	if err != nil {
		return nil, translatePgError(err)
	}
	return sqlcWorkoutToDomain(created), nil
}

// GetByID retrieves a workout by its ID
func (r *WorkoutRepository) GetByID(ctx context.Context, id int32) (*domain.Workout, error) {
	workout, err := r.queries.GetWorkoutByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}
	return sqlcWorkoutToDomain(workout), nil
}

// List retrieves all workouts, most recent first
func (r *WorkoutRepository) List(ctx context.Context) ([]*domain.Workout, error) {
	workouts, err := r.queries.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Workout, len(workouts))
	for i, w := range workouts {
		result[i] = sqlcWorkoutToDomain(w)
	}
	return result, nil
}

// Delete atomically removes the workout together with its WorkoutExercise
// rows, returning the number of association rows removed
func (r *WorkoutRepository) Delete(ctx context.Context, id int32) (removed int64, err error) {
	defer func() { observability.RecordStoreOperation("workout", "delete", outcomeOf(err)) }()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	qtx := r.queries.WithTx(tx)

	removed, err = qtx.DeleteWorkoutExercisesByWorkout(ctx, id)
	if err != nil {
		return 0, err
	}
	if _, err = qtx.DeleteWorkout(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrWorkoutNotFound
		}
		return 0, err
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}

	observability.RecordCascade("workout", removed)
	return removed, nil
}

// ListExercises returns the distinct exercises the workout references
func (r *WorkoutRepository) ListExercises(ctx context.Context, workoutID int32) ([]*domain.Exercise, error) {
	exercises, err := r.queries.ListExercisesForWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Exercise, len(exercises))
	for i, e := range exercises {
		result[i] = sqlcExerciseToDomain(e)
	}
	return result, nil
}

func sqlcWorkoutToDomain(w sqlc.Workout) *domain.Workout {
	workout := &domain.Workout{
		ID:              w.ID,
		Date:            domain.CalendarDate(w.Date.Time),
		DurationMinutes: w.DurationMinutes,
	}
	if w.Notes.Valid {
		notes := w.Notes.String
		workout.Notes = &notes
	}
	return workout
}
