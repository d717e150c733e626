package postgres

import (
	"context"

	"github.com/dafibh/liftlog/liftlog-backend/db/sqlc"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetData deletes every row in dependency order (associations, then
// workouts, then exercises) inside a single transaction
func ResetData(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	qtx := sqlc.New(pool).WithTx(tx)
	if err := qtx.DeleteAllWorkoutExercises(ctx); err != nil {
		return err
	}
	if err := qtx.DeleteAllWorkouts(ctx); err != nil {
		return err
	}
	if err := qtx.DeleteAllExercises(ctx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
