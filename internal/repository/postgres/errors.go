package postgres

import (
	"errors"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/observability"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"
)

type constraintInfo struct {
	fields  []string
	message string
}

// constraintFields maps schema constraint names to the client-facing fields
// they guard. Messages are safe to return verbatim.
var constraintFields = map[string]constraintInfo{
	"uq_exercises_name":             {[]string{"name"}, "an exercise with this name already exists"},
	"ck_exercises_name_present":     {[]string{"name"}, "is required and cannot be blank"},
	"ck_exercises_category_present": {[]string{"category"}, "is required and cannot be blank"},
	"ck_exercises_name_trimmed":     {[]string{"name"}, "must not have leading or trailing whitespace"},
	"ck_exercises_category_trimmed": {[]string{"category"}, "must not have leading or trailing whitespace"},
	"ck_workout_duration_pos":       {[]string{"duration_minutes"}, "must be >= 1"},
	"uq_we_payload":                 {[]string{"reps", "sets", "duration_seconds"}, "this exercise is already recorded in the workout with the same payload"},
	"uq_we_position":                {[]string{"workout_id"}, "the workout was modified concurrently, retry the request"},
	"ck_we_reps_pos":                {[]string{"reps"}, "must be >= 1 when provided"},
	"ck_we_sets_pos":                {[]string{"sets"}, "must be >= 1 when provided"},
	"ck_we_duration_pos":            {[]string{"duration_seconds"}, "must be >= 1 when provided"},
}

// translatePgError converts constraint failures into domain errors. Foreign
// key failures on workout_exercises mean a parent vanished mid-write.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "fk_we_workout":
			return domain.ErrWorkoutNotFound
		case "fk_we_exercise":
			return domain.ErrExerciseNotFound
		}
	case pgUniqueViolation, pgCheckViolation:
		if info, ok := constraintFields[pgErr.ConstraintName]; ok {
			return &domain.ConstraintViolation{
				Constraint: pgErr.ConstraintName,
				Fields:     info.fields,
				Message:    info.message,
			}
		}
		return &domain.ConstraintViolation{
			Constraint: pgErr.ConstraintName,
			Message:    "constraint violated",
		}
	case pgStringTooLong:
		return &domain.ConstraintViolation{Message: "value too long"}
	}
	return err
}

func outcomeOf(err error) string {
	if err == nil {
		return observability.OutcomeOK
	}
	var cv *domain.ConstraintViolation
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return observability.OutcomeNotFound
	case errors.As(err, &cv):
		return observability.OutcomeConstraint
	case errors.As(err, &verr):
		return observability.OutcomeInvalid
	}
	return observability.OutcomeError
}
