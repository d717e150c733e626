package service

import (
	"context"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/view"
	"github.com/dafibh/liftlog/liftlog-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// WorkoutService handles workout business logic, including attaching
// exercises to a workout
type WorkoutService struct {
	workoutRepo         domain.WorkoutRepository
	exerciseRepo        domain.ExerciseRepository
	workoutExerciseRepo domain.WorkoutExerciseRepository
	eventPublisher      websocket.EventPublisher
}

// NewWorkoutService creates a new WorkoutService
func NewWorkoutService(
	workoutRepo domain.WorkoutRepository,
	exerciseRepo domain.ExerciseRepository,
	workoutExerciseRepo domain.WorkoutExerciseRepository,
) *WorkoutService {
	return &WorkoutService{
		workoutRepo:         workoutRepo,
		exerciseRepo:        exerciseRepo,
		workoutExerciseRepo: workoutExerciseRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *WorkoutService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// WorkoutDetail is a workout together with its entries in insertion order
type WorkoutDetail struct {
	Workout *domain.Workout
	Entries []*domain.WorkoutEntry
}

// CreateWorkout validates the payload, builds the entity and persists it
func (s *WorkoutService) CreateWorkout(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error) {
	date, err := ValidateWorkoutInput(input)
	if err != nil {
		return nil, err
	}

	workout, err := domain.NewWorkout(date, *input.DurationMinutes, input.Notes)
	if err != nil {
		return nil, err
	}

	created, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}

	s.publish(websocket.WorkoutCreated(view.Workout(created)))
	return created, nil
}

// GetWorkouts returns every workout, most recent first
func (s *WorkoutService) GetWorkouts(ctx context.Context) ([]*domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

// GetWorkoutDetail loads a workout and its entries
func (s *WorkoutService) GetWorkoutDetail(ctx context.Context, id int32) (*WorkoutDetail, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.workoutExerciseRepo.ListByWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	return &WorkoutDetail{Workout: workout, Entries: entries}, nil
}

// GetWorkoutExercises returns the distinct exercises a workout references
func (s *WorkoutService) GetWorkoutExercises(ctx context.Context, id int32) ([]*domain.Exercise, error) {
	if _, err := s.workoutRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.workoutRepo.ListExercises(ctx, id)
}

// DeleteWorkout removes the workout and every workout exercise it owns
func (s *WorkoutService) DeleteWorkout(ctx context.Context, id int32) error {
	removed, err := s.workoutRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	log.Info().Int32("workout_id", id).Int64("removed_workout_exercises", removed).Msg("Workout deleted")
	s.publish(websocket.WorkoutDeleted(id, removed))
	return nil
}

// CheckParents reports ErrWorkoutNotFound or ErrExerciseNotFound, in that
// order, when either side of a new workout exercise is missing
func (s *WorkoutService) CheckParents(ctx context.Context, workoutID, exerciseID int32) error {
	if _, err := s.workoutRepo.GetByID(ctx, workoutID); err != nil {
		return err
	}
	if _, err := s.exerciseRepo.GetByID(ctx, exerciseID); err != nil {
		return err
	}
	return nil
}

// AddExercise attaches an exercise to a workout and returns the refreshed
// workout detail. Missing parents are reported before payload errors.
func (s *WorkoutService) AddExercise(ctx context.Context, input AddWorkoutExerciseInput) (*WorkoutDetail, error) {
	if err := s.CheckParents(ctx, input.WorkoutID, input.ExerciseID); err != nil {
		return nil, err
	}
	return s.AttachExercise(ctx, input)
}

// AttachExercise is AddExercise for callers that already ran CheckParents.
// A parent deleted in between still surfaces as a not-found error from the
// store.
func (s *WorkoutService) AttachExercise(ctx context.Context, input AddWorkoutExerciseInput) (*WorkoutDetail, error) {
	// 1. Boundary validation
	if err := ValidateWorkoutExerciseInput(input); err != nil {
		return nil, err
	}

	// 2. Build through the invariant setters and persist
	we, err := domain.NewWorkoutExercise(input.WorkoutID, input.ExerciseID, input.Reps, input.Sets, input.DurationSeconds)
	if err != nil {
		return nil, err
	}
	created, err := s.workoutExerciseRepo.Create(ctx, we)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("workout_id", created.WorkoutID).
		Int32("exercise_id", created.ExerciseID).
		Int32("workout_exercise_id", created.ID).
		Int32("position", created.Position).
		Msg("Exercise added to workout")

	// 3. Refreshed detail
	detail, err := s.GetWorkoutDetail(ctx, input.WorkoutID)
	if err != nil {
		return nil, err
	}

	s.publish(websocket.WorkoutExerciseCreated(view.WorkoutDetail(detail.Workout, detail.Entries)))
	return detail, nil
}

func (s *WorkoutService) publish(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}
