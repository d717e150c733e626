// Package view builds the JSON shapes returned to clients. Every shape is a
// plain value tree built from domain values, so nested objects never point
// back at their parents.
package view

import (
	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
)

// ExerciseView is the flat exercise shape
type ExerciseView struct {
	ID              int32  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	EquipmentNeeded bool   `json:"equipment_needed"`
}

// WorkoutView is the flat workout shape
type WorkoutView struct {
	ID              int32   `json:"id"`
	Date            string  `json:"date"`
	DurationMinutes int32   `json:"duration_minutes"`
	Notes           *string `json:"notes"`
}

// WorkoutExerciseView is one entry of a workout detail
type WorkoutExerciseView struct {
	ID              int32        `json:"id"`
	Exercise        ExerciseView `json:"exercise"`
	Reps            *int32       `json:"reps"`
	Sets            *int32       `json:"sets"`
	DurationSeconds *int32       `json:"duration_seconds"`
}

// WorkoutDetailView is a flat workout plus its entries in insertion order
type WorkoutDetailView struct {
	WorkoutView
	WorkoutExercises []WorkoutExerciseView `json:"workout_exercises"`
}

// WorkoutRefView is the abbreviated workout shape nested in an exercise detail
type WorkoutRefView struct {
	ID              int32  `json:"id"`
	Date            string `json:"date"`
	DurationMinutes int32  `json:"duration_minutes"`
}

// ExerciseDetailView is a flat exercise plus the workouts that reference it
type ExerciseDetailView struct {
	ExerciseView
	Workouts []WorkoutRefView `json:"workouts"`
}

// Exercise projects an exercise
func Exercise(e *domain.Exercise) ExerciseView {
	return ExerciseView{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		EquipmentNeeded: e.EquipmentNeeded,
	}
}

// Exercises projects a list of exercises, preserving order
func Exercises(list []*domain.Exercise) []ExerciseView {
	out := make([]ExerciseView, len(list))
	for i, e := range list {
		out[i] = Exercise(e)
	}
	return out
}

// Workout projects a workout
func Workout(w *domain.Workout) WorkoutView {
	var notes *string
	if w.Notes != nil {
		n := *w.Notes
		notes = &n
	}
	return WorkoutView{
		ID:              w.ID,
		Date:            w.Date.Format(domain.DateLayout),
		DurationMinutes: w.DurationMinutes,
		Notes:           notes,
	}
}

// Workouts projects a list of workouts, preserving order
func Workouts(list []*domain.Workout) []WorkoutView {
	out := make([]WorkoutView, len(list))
	for i, w := range list {
		out[i] = Workout(w)
	}
	return out
}

// WorkoutDetail projects a workout together with its entries
func WorkoutDetail(w *domain.Workout, entries []*domain.WorkoutEntry) WorkoutDetailView {
	items := make([]WorkoutExerciseView, len(entries))
	for i, entry := range entries {
		items[i] = WorkoutExerciseView{
			ID:              entry.ID,
			Exercise:        Exercise(&entry.Exercise),
			Reps:            copyInt32(entry.Reps),
			Sets:            copyInt32(entry.Sets),
			DurationSeconds: copyInt32(entry.DurationSeconds),
		}
	}
	return WorkoutDetailView{
		WorkoutView:      Workout(w),
		WorkoutExercises: items,
	}
}

// ExerciseDetail projects an exercise together with the workouts that use it
func ExerciseDetail(e *domain.Exercise, workouts []*domain.Workout) ExerciseDetailView {
	refs := make([]WorkoutRefView, len(workouts))
	for i, w := range workouts {
		refs[i] = WorkoutRefView{
			ID:              w.ID,
			Date:            w.Date.Format(domain.DateLayout),
			DurationMinutes: w.DurationMinutes,
		}
	}
	return ExerciseDetailView{
		ExerciseView: Exercise(e),
		Workouts:     refs,
	}
}

func copyInt32(v *int32) *int32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
