package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, deleted)
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeDeleted EventType = "deleted"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeWorkout         EntityType = "workout"
	EntityTypeExercise        EntityType = "exercise"
	EntityTypeWorkoutExercise EntityType = "workout_exercise"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "workout.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "workout"
	Payload   interface{} `json:"payload"`   // Projected entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// DeletedPayload is the payload of every *.deleted event
type DeletedPayload struct {
	ID                      int32 `json:"id"`
	RemovedWorkoutExercises int64 `json:"removed_workout_exercises"`
}

// WorkoutCreated creates a workout.created event
func WorkoutCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeWorkout, payload)
}

// WorkoutDeleted creates a workout.deleted event
func WorkoutDeleted(id int32, removed int64) Event {
	return NewEvent(EventTypeDeleted, EntityTypeWorkout, DeletedPayload{ID: id, RemovedWorkoutExercises: removed})
}

// ExerciseCreated creates an exercise.created event
func ExerciseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeExercise, payload)
}

// ExerciseDeleted creates an exercise.deleted event
func ExerciseDeleted(id int32, removed int64) Event {
	return NewEvent(EventTypeDeleted, EntityTypeExercise, DeletedPayload{ID: id, RemovedWorkoutExercises: removed})
}

// WorkoutExerciseCreated creates a workout_exercise.created event carrying
// the refreshed workout detail
func WorkoutExerciseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeWorkoutExercise, payload)
}
