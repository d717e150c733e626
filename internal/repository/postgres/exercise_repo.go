package postgres

import (
	"context"
	"errors"

	"github.com/dafibh/liftlog/liftlog-backend/db/sqlc"
	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExerciseRepository implements domain.ExerciseRepository using PostgreSQL
type ExerciseRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewExerciseRepository creates a new ExerciseRepository
func NewExerciseRepository(pool *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create inserts an exercise; a duplicate name yields a ConstraintViolation
func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (result *domain.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("exercise", "create", outcomeOf(err)) }()

	if err := exercise.Validate(); err != nil {
		return nil, err
	}
	created, err := r.queries.CreateExercise(ctx, sqlc.CreateExerciseParams{
		Name:            exercise.Name,
		Category:        exercise.Category,
		EquipmentNeeded: exercise.EquipmentNeeded,
	})
	if err != nil {
		return nil, translatePgError(err)
	}
	return sqlcExerciseToDomain(created), nil
}

// GetByID retrieves an exercise by its ID
func (r *ExerciseRepository) GetByID(ctx context.Context, id int32) (*domain.Exercise, error) {
	exercise, err := r.queries.GetExerciseByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, err
	}
	return sqlcExerciseToDomain(exercise), nil
}

// List retrieves all exercises ordered by name
func (r *ExerciseRepository) List(ctx context.Context) ([]*domain.Exercise, error) {
	exercises, err := r.queries.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Exercise, len(exercises))
	for i, e := range exercises {
		result[i] = sqlcExerciseToDomain(e)
	}
	return result, nil
}

// Delete atomically removes the exercise and every WorkoutExercise that
// references it, returning the number of association rows removed
func (r *ExerciseRepository) Delete(ctx context.Context, id int32) (removed int64, err error) {
	defer func() { observability.RecordStoreOperation("exercise", "delete", outcomeOf(err)) }()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	qtx := r.queries.WithTx(tx)

	removed, err = qtx.DeleteWorkoutExercisesByExercise(ctx, id)
	if err != nil {
		return 0, err
	}
	if _, err = qtx.DeleteExercise(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrExerciseNotFound
		}
		return 0, err
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}

	observability.RecordCascade("exercise", removed)
	return removed, nil
}

// ListWorkouts returns the distinct workouts referencing the exercise
func (r *ExerciseRepository) ListWorkouts(ctx context.Context, exerciseID int32) ([]*domain.Workout, error) {
	workouts, err := r.queries.ListWorkoutsForExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Workout, len(workouts))
	for i, w := range workouts {
		result[i] = sqlcWorkoutToDomain(w)
	}
	return result, nil
}

func sqlcExerciseToDomain(e sqlc.Exercise) *domain.Exercise {
	return &domain.Exercise{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		EquipmentNeeded: e.EquipmentNeeded,
	}
}
