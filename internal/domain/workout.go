package domain

import (
	"context"
	"time"
)

// Workout is a dated training session
type Workout struct {
	ID              int32
	Date            time.Time
	DurationMinutes int32
	Notes           *string
}

// NewWorkout builds a Workout, assigning every field through its setter
func NewWorkout(date time.Time, durationMinutes int32, notes *string) (*Workout, error) {
	w := &Workout{}
	verr := &ValidationError{}
	verr.Merge("date", w.SetDate(date))
	verr.Merge("duration_minutes", w.SetDurationMinutes(durationMinutes))
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}
	w.SetNotes(notes)
	return w, nil
}

// SetDate assigns the calendar date. Any date is accepted, future ones included.
func (w *Workout) SetDate(date time.Time) error {
	if date.IsZero() {
		return NewValidationError("date", "is required")
	}
	w.Date = CalendarDate(date)
	return nil
}

// SetDurationMinutes assigns the duration, rejecting values below 1
func (w *Workout) SetDurationMinutes(minutes int32) error {
	if err := asError(RequirePositive("duration_minutes", minutes)); err != nil {
		return err
	}
	w.DurationMinutes = minutes
	return nil
}

// SetNotes assigns the optional free-text notes
func (w *Workout) SetNotes(notes *string) {
	w.Notes = notes
}

// Validate re-runs the setter checks over the current field values
func (w *Workout) Validate() error {
	check := *w
	verr := &ValidationError{}
	verr.Merge("date", check.SetDate(w.Date))
	verr.Merge("duration_minutes", check.SetDurationMinutes(w.DurationMinutes))
	return verr.ErrOrNil()
}

// WorkoutRepository persists workouts. List is ordered most recent first
// (date descending, then id descending). Delete removes the workout's
// WorkoutExercise rows in the same transaction and reports how many were
// removed.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *Workout) (*Workout, error)
	GetByID(ctx context.Context, id int32) (*Workout, error)
	List(ctx context.Context) ([]*Workout, error)
	Delete(ctx context.Context, id int32) (int64, error)
	// ListExercises returns the distinct exercises the workout references,
	// in order of first appearance
	ListExercises(ctx context.Context, workoutID int32) ([]*Exercise, error)
}
