package service

import (
	"time"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
)

// PayloadRequiredMessage is reported on the "payload" field when a
// workout exercise carries none of reps, sets or duration_seconds
const PayloadRequiredMessage = "Provide at least one of: reps, sets, duration_seconds."

// CreateExerciseInput is the raw payload of an exercise create. Pointer
// fields distinguish an absent key from a present zero value.
type CreateExerciseInput struct {
	Name            *string
	Category        *string
	EquipmentNeeded *bool
}

// CreateWorkoutInput is the raw payload of a workout create
type CreateWorkoutInput struct {
	Date            *string
	DurationMinutes *int32
	Notes           *string
}

// AddWorkoutExerciseInput is the raw payload of attaching an exercise to a workout
type AddWorkoutExerciseInput struct {
	WorkoutID       int32
	ExerciseID      int32
	Reps            *int32
	Sets            *int32
	DurationSeconds *int32
}

// ValidateExerciseInput checks a create payload and reports every failing field at once
func ValidateExerciseInput(input CreateExerciseInput) error {
	verr := &domain.ValidationError{}

	if input.Name == nil {
		verr.Add("name", "is required")
	} else if _, fe := domain.RequireText("name", *input.Name, domain.MaxExerciseNameLength); fe != nil {
		verr.Add(fe.Field, fe.Message)
	}

	if input.Category == nil {
		verr.Add("category", "is required")
	} else if _, fe := domain.RequireText("category", *input.Category, domain.MaxExerciseCategoryLength); fe != nil {
		verr.Add(fe.Field, fe.Message)
	}

	if input.EquipmentNeeded == nil {
		verr.Add("equipment_needed", "is required")
	}

	return verr.ErrOrNil()
}

// ValidateWorkoutInput checks a create payload and returns the parsed date
func ValidateWorkoutInput(input CreateWorkoutInput) (time.Time, error) {
	verr := &domain.ValidationError{}

	var date time.Time
	if input.Date == nil {
		verr.Add("date", "is required")
	} else {
		parsed, fe := domain.ParseDate("date", *input.Date)
		if fe != nil {
			verr.Add(fe.Field, fe.Message)
		}
		date = parsed
	}

	if input.DurationMinutes == nil {
		verr.Add("duration_minutes", "is required")
	} else if fe := domain.RequirePositive("duration_minutes", *input.DurationMinutes); fe != nil {
		verr.Add(fe.Field, fe.Message)
	}

	if err := verr.ErrOrNil(); err != nil {
		return time.Time{}, err
	}
	return date, nil
}

// ValidateWorkoutExerciseInput checks an attach payload. At least one of the
// payload fields must be present; this rule exists only here.
func ValidateWorkoutExerciseInput(input AddWorkoutExerciseInput) error {
	verr := &domain.ValidationError{}

	if fe := domain.RequireID("workout_id", input.WorkoutID); fe != nil {
		verr.Add(fe.Field, fe.Message)
	}
	if fe := domain.RequireID("exercise_id", input.ExerciseID); fe != nil {
		verr.Add(fe.Field, fe.Message)
	}

	if input.Reps == nil && input.Sets == nil && input.DurationSeconds == nil {
		verr.Add("payload", PayloadRequiredMessage)
	}

	for _, f := range []struct {
		name  string
		value *int32
	}{
		{"reps", input.Reps},
		{"sets", input.Sets},
		{"duration_seconds", input.DurationSeconds},
	} {
		if fe := domain.OptionalPositive(f.name, f.value); fe != nil {
			verr.Add(fe.Field, fe.Message)
		}
	}

	return verr.ErrOrNil()
}
