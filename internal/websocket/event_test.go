package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":   1,
		"name": "Back Squat",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypeExercise, payload)
	after := time.Now()

	assert.Equal(t, "exercise.created", evt.Type)
	assert.Equal(t, EntityTypeExercise, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_ToJSON(t *testing.T) {
	evt := WorkoutDeleted(7, 3)

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "workout.deleted", decoded["type"])
	assert.Equal(t, "workout", decoded["entity"])
	assert.Equal(t, map[string]interface{}{
		"id":                        float64(7),
		"removed_workout_exercises": float64(3),
	}, decoded["payload"])
	assert.NotNil(t, decoded["timestamp"])
}

func TestEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{"id": float64(1)}

	tests := []struct {
		name     string
		evt      Event
		wantType string
		entity   EntityType
	}{
		{"WorkoutCreated", WorkoutCreated(payload), "workout.created", EntityTypeWorkout},
		{"WorkoutDeleted", WorkoutDeleted(1, 0), "workout.deleted", EntityTypeWorkout},
		{"ExerciseCreated", ExerciseCreated(payload), "exercise.created", EntityTypeExercise},
		{"ExerciseDeleted", ExerciseDeleted(1, 0), "exercise.deleted", EntityTypeExercise},
		{"WorkoutExerciseCreated", WorkoutExerciseCreated(payload), "workout_exercise.created", EntityTypeWorkoutExercise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.evt.Type)
			assert.Equal(t, tt.entity, tt.evt.Entity)
		})
	}
}
