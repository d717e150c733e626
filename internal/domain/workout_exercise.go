package domain

import "context"

// WorkoutExercise records one exercise performed within a workout together
// with its payload. The same exercise may appear in a workout more than
// once as long as the payload differs.
type WorkoutExercise struct {
	ID              int32
	WorkoutID       int32
	ExerciseID      int32
	Position        int32
	Reps            *int32
	Sets            *int32
	DurationSeconds *int32
}

// WorkoutEntry is a WorkoutExercise joined with the exercise it references
type WorkoutEntry struct {
	WorkoutExercise
	Exercise Exercise
}

// NewWorkoutExercise builds a WorkoutExercise, assigning every field through
// its setter. An all-nil payload is accepted here; requiring at least one
// payload field is a boundary rule.
func NewWorkoutExercise(workoutID, exerciseID int32, reps, sets, durationSeconds *int32) (*WorkoutExercise, error) {
	we := &WorkoutExercise{}
	verr := &ValidationError{}
	verr.Merge("workout_id", we.SetWorkoutID(workoutID))
	verr.Merge("exercise_id", we.SetExerciseID(exerciseID))
	verr.Merge("reps", we.SetReps(reps))
	verr.Merge("sets", we.SetSets(sets))
	verr.Merge("duration_seconds", we.SetDurationSeconds(durationSeconds))
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}
	return we, nil
}

// SetWorkoutID assigns the owning workout
func (we *WorkoutExercise) SetWorkoutID(id int32) error {
	if err := asError(RequireID("workout_id", id)); err != nil {
		return err
	}
	we.WorkoutID = id
	return nil
}

// SetExerciseID assigns the referenced exercise
func (we *WorkoutExercise) SetExerciseID(id int32) error {
	if err := asError(RequireID("exercise_id", id)); err != nil {
		return err
	}
	we.ExerciseID = id
	return nil
}

// SetReps assigns reps; nil clears it
func (we *WorkoutExercise) SetReps(reps *int32) error {
	if err := asError(OptionalPositive("reps", reps)); err != nil {
		return err
	}
	we.Reps = copyInt32(reps)
	return nil
}

// SetSets assigns sets; nil clears it
func (we *WorkoutExercise) SetSets(sets *int32) error {
	if err := asError(OptionalPositive("sets", sets)); err != nil {
		return err
	}
	we.Sets = copyInt32(sets)
	return nil
}

// SetDurationSeconds assigns duration_seconds; nil clears it
func (we *WorkoutExercise) SetDurationSeconds(seconds *int32) error {
	if err := asError(OptionalPositive("duration_seconds", seconds)); err != nil {
		return err
	}
	we.DurationSeconds = copyInt32(seconds)
	return nil
}

// HasPayload reports whether any of reps, sets or duration_seconds is set
func (we *WorkoutExercise) HasPayload() bool {
	return we.Reps != nil || we.Sets != nil || we.DurationSeconds != nil
}

// SamePayload reports whether both rows link the same workout and exercise
// with an identical payload, nil matching nil.
func (we *WorkoutExercise) SamePayload(other *WorkoutExercise) bool {
	return we.WorkoutID == other.WorkoutID &&
		we.ExerciseID == other.ExerciseID &&
		equalInt32(we.Reps, other.Reps) &&
		equalInt32(we.Sets, other.Sets) &&
		equalInt32(we.DurationSeconds, other.DurationSeconds)
}

// Validate re-runs the setter checks over the current field values
func (we *WorkoutExercise) Validate() error {
	check := *we
	verr := &ValidationError{}
	verr.Merge("workout_id", check.SetWorkoutID(we.WorkoutID))
	verr.Merge("exercise_id", check.SetExerciseID(we.ExerciseID))
	verr.Merge("reps", check.SetReps(we.Reps))
	verr.Merge("sets", check.SetSets(we.Sets))
	verr.Merge("duration_seconds", check.SetDurationSeconds(we.DurationSeconds))
	return verr.ErrOrNil()
}

// WorkoutExerciseRepository persists WorkoutExercise rows. Create assigns
// the next position within the workout and fails with ErrWorkoutNotFound or
// ErrExerciseNotFound when a parent is missing.
type WorkoutExerciseRepository interface {
	Create(ctx context.Context, we *WorkoutExercise) (*WorkoutExercise, error)
	// ListByWorkout returns the workout's rows in position order
	ListByWorkout(ctx context.Context, workoutID int32) ([]*WorkoutEntry, error)
	CountByWorkout(ctx context.Context, workoutID int32) (int64, error)
	CountByExercise(ctx context.Context, exerciseID int32) (int64, error)
}

func copyInt32(v *int32) *int32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func equalInt32(a, b *int32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
