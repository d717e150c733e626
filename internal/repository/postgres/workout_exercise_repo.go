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

// WorkoutExerciseRepository implements domain.WorkoutExerciseRepository using PostgreSQL
type WorkoutExerciseRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewWorkoutExerciseRepository creates a new WorkoutExerciseRepository
func NewWorkoutExerciseRepository(pool *pgxpool.Pool) *WorkoutExerciseRepository {
	return &WorkoutExerciseRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create appends a WorkoutExercise to its workout. The workout row is locked
// for the duration of the transaction so positions are assigned one writer
// at a time.
func (r *WorkoutExerciseRepository) Create(ctx context.Context, we *domain.WorkoutExercise) (result *domain.WorkoutExercise, err error) {
	defer func() { observability.RecordStoreOperation("workout_exercise", "create", outcomeOf(err)) }()

	if err := we.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	qtx := r.queries.WithTx(tx)

	// 1. Lock the parent workout
	if _, err = qtx.LockWorkout(ctx, we.WorkoutID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}

	// 2. Next position within the workout
	position, err := qtx.NextWorkoutExercisePosition(ctx, we.WorkoutID)
	if err != nil {
		return nil, err
	}

	// 3. Insert
	created, err := qtx.CreateWorkoutExercise(ctx, sqlc.CreateWorkoutExerciseParams{
		WorkoutID:       we.WorkoutID,
		ExerciseID:      we.ExerciseID,
		Position:        position,
		Reps:            int32PtrToPg(we.Reps),
		Sets:            int32PtrToPg(we.Sets),
		DurationSeconds: int32PtrToPg(we.DurationSeconds),
	})
	if err != nil {
		return nil, translatePgError(err)
	}

	// 4. Commit
	if err = tx.Commit(ctx); err != nil {
		return nil, translatePgError(err)
	}
	return sqlcWorkoutExerciseToDomain(created), nil
}

// ListByWorkout returns the workout's rows joined with their exercises, in position order
func (r *WorkoutExerciseRepository) ListByWorkout(ctx context.Context, workoutID int32) ([]*domain.WorkoutEntry, error) {
	rows, err := r.queries.ListWorkoutEntries(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.WorkoutEntry, len(rows))
	for i, row := range rows {
		result[i] = &domain.WorkoutEntry{
			WorkoutExercise: domain.WorkoutExercise{
				ID:              row.ID,
				WorkoutID:       row.WorkoutID,
				ExerciseID:      row.ExerciseID,
				Position:        row.Position,
				Reps:            pgToInt32Ptr(row.Reps),
				Sets:            pgToInt32Ptr(row.Sets),
				DurationSeconds: pgToInt32Ptr(row.DurationSeconds),
			},
			Exercise: domain.Exercise{
				ID:              row.ExerciseID,
				Name:            row.ExerciseName,
				Category:        row.ExerciseCategory,
				EquipmentNeeded: row.ExerciseEquipmentNeeded,
			},
		}
	}
	return result, nil
}

// CountByWorkout counts the rows owned by a workout
func (r *WorkoutExerciseRepository) CountByWorkout(ctx context.Context, workoutID int32) (int64, error) {
	return r.queries.CountWorkoutExercisesByWorkout(ctx, workoutID)
}

// CountByExercise counts the rows referencing an exercise
func (r *WorkoutExerciseRepository) CountByExercise(ctx context.Context, exerciseID int32) (int64, error) {
	return r.queries.CountWorkoutExercisesByExercise(ctx, exerciseID)
}

// Helper functions

func sqlcWorkoutExerciseToDomain(we sqlc.WorkoutExercise) *domain.WorkoutExercise {
	return &domain.WorkoutExercise{
		ID:              we.ID,
		WorkoutID:       we.WorkoutID,
		ExerciseID:      we.ExerciseID,
		Position:        we.Position,
		Reps:            pgToInt32Ptr(we.Reps),
		Sets:            pgToInt32Ptr(we.Sets),
		DurationSeconds: pgToInt32Ptr(we.DurationSeconds),
	}
}

func int32PtrToPg(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *v, Valid: true}
}

func pgToInt32Ptr(v pgtype.Int4) *int32 {
	if !v.Valid {
		return nil
	}
	n := v.Int32
	return &n
}
