package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Fields()
}

func TestValidateExerciseInput(t *testing.T) {
	tests := []struct {
		name       string
		input      CreateExerciseInput
		wantFields []string
	}{
		{"valid", exerciseInput("Back Squat", "Strength", true), nil},
		{"equipment false is present", exerciseInput("Push-up", "Strength", false), nil},
		{"blank name", exerciseInput("  ", "Strength", true), []string{"name"}},
		{"name at limit", exerciseInput(strings.Repeat("x", 120), "Strength", true), nil},
		{"category too long", exerciseInput("Run", strings.Repeat("x", 81), false), []string{"category"}},
		{"everything absent", CreateExerciseInput{}, []string{"name", "category", "equipment_needed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExerciseInput(tt.input)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, validationFields(t, err))
		})
	}
}

func TestValidateWorkoutInput(t *testing.T) {
	date, err := ValidateWorkoutInput(CreateWorkoutInput{Date: strPtr("2025-09-03"), DurationMinutes: int32Ptr(30)})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), date)

	tests := []struct {
		name       string
		input      CreateWorkoutInput
		wantFields []string
	}{
		{"missing both", CreateWorkoutInput{}, []string{"date", "duration_minutes"}},
		{"bad date", CreateWorkoutInput{Date: strPtr("2025-13-01"), DurationMinutes: int32Ptr(5)}, []string{"date"}},
		{"datetime rejected", CreateWorkoutInput{Date: strPtr("2025-09-01T10:00:00Z"), DurationMinutes: int32Ptr(5)}, []string{"date"}},
		{"negative duration", CreateWorkoutInput{Date: strPtr("2025-09-01"), DurationMinutes: int32Ptr(-5)}, []string{"duration_minutes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateWorkoutInput(tt.input)
			assert.Equal(t, tt.wantFields, validationFields(t, err))
		})
	}
}

func TestValidateWorkoutExerciseInput(t *testing.T) {
	tests := []struct {
		name       string
		input      AddWorkoutExerciseInput
		wantFields []string
	}{
		{"reps only", AddWorkoutExerciseInput{WorkoutID: 1, ExerciseID: 1, Reps: int32Ptr(5)}, nil},
		{"duration only", AddWorkoutExerciseInput{WorkoutID: 1, ExerciseID: 1, DurationSeconds: int32Ptr(1200)}, nil},
		{"no payload", AddWorkoutExerciseInput{WorkoutID: 1, ExerciseID: 1}, []string{"payload"}},
		{"zero sets", AddWorkoutExerciseInput{WorkoutID: 1, ExerciseID: 1, Sets: int32Ptr(0)}, []string{"sets"}},
		{"missing ids", AddWorkoutExerciseInput{Reps: int32Ptr(1)}, []string{"workout_id", "exercise_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWorkoutExerciseInput(tt.input)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, validationFields(t, err))
		})
	}
}

// Boundary and invariant passes are independent: an all-nil payload is
// rejected at the boundary but accepted by the entity constructor.
func TestPayloadRuleIsBoundaryOnly(t *testing.T) {
	assert.Error(t, ValidateWorkoutExerciseInput(AddWorkoutExerciseInput{WorkoutID: 1, ExerciseID: 1}))

	we, err := domain.NewWorkoutExercise(1, 1, nil, nil, nil)
	require.NoError(t, err)
	assert.False(t, we.HasPayload())
}
