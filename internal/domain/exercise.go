package domain

import "context"

// Exercise is a named movement that workouts can reference
type Exercise struct {
	ID              int32
	Name            string
	Category        string
	EquipmentNeeded bool
}

// NewExercise builds an Exercise, assigning every field through its setter
func NewExercise(name, category string, equipmentNeeded bool) (*Exercise, error) {
	e := &Exercise{EquipmentNeeded: equipmentNeeded}
	verr := &ValidationError{}
	verr.Merge("name", e.SetName(name))
	verr.Merge("category", e.SetCategory(category))
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}
	return e, nil
}

// SetName trims and assigns the name, rejecting blank or over-long values
func (e *Exercise) SetName(name string) error {
	trimmed, fe := RequireText("name", name, MaxExerciseNameLength)
	if fe != nil {
		return asError(fe)
	}
	e.Name = trimmed
	return nil
}

// SetCategory trims and assigns the category, rejecting blank or over-long values
func (e *Exercise) SetCategory(category string) error {
	trimmed, fe := RequireText("category", category, MaxExerciseCategoryLength)
	if fe != nil {
		return asError(fe)
	}
	e.Category = trimmed
	return nil
}

// Validate re-runs the setter checks over the current field values. The
// store calls it before writing so entities populated field-by-field are
// held to the same invariants. Text assigned without its setter must
// already be trimmed, otherwise name uniqueness could be sidestepped.
func (e *Exercise) Validate() error {
	check := *e
	verr := &ValidationError{}
	verr.Merge("name", check.SetName(e.Name))
	verr.Merge("category", check.SetCategory(e.Category))
	if check.Name != "" && check.Name != e.Name {
		verr.Add("name", untrimmedMessage)
	}
	if check.Category != "" && check.Category != e.Category {
		verr.Add("category", untrimmedMessage)
	}
	return verr.ErrOrNil()
}

// ExerciseRepository persists exercises. Delete removes every
// WorkoutExercise referencing the exercise in the same transaction and
// reports how many were removed.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *Exercise) (*Exercise, error)
	GetByID(ctx context.Context, id int32) (*Exercise, error)
	List(ctx context.Context) ([]*Exercise, error)
	Delete(ctx context.Context, id int32) (int64, error)
	// ListWorkouts returns the distinct workouts that reference the exercise
	ListWorkouts(ctx context.Context, exerciseID int32) ([]*Workout, error)
}
