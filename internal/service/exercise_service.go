package service

import (
	"context"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/view"
	"github.com/dafibh/liftlog/liftlog-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// ExerciseService handles exercise business logic
type ExerciseService struct {
	exerciseRepo   domain.ExerciseRepository
	eventPublisher websocket.EventPublisher
}

// NewExerciseService creates a new ExerciseService
func NewExerciseService(exerciseRepo domain.ExerciseRepository) *ExerciseService {
	return &ExerciseService{exerciseRepo: exerciseRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ExerciseService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateExercise validates the payload, builds the entity and persists it
func (s *ExerciseService) CreateExercise(ctx context.Context, input CreateExerciseInput) (*domain.Exercise, error) {
	if err := ValidateExerciseInput(input); err != nil {
		return nil, err
	}

	exercise, err := domain.NewExercise(*input.Name, *input.Category, *input.EquipmentNeeded)
	if err != nil {
		return nil, err
	}

	created, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}

	s.publish(websocket.ExerciseCreated(view.Exercise(created)))
	return created, nil
}

// GetExercises returns every exercise ordered by name
func (s *ExerciseService) GetExercises(ctx context.Context) ([]*domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// GetExerciseByID returns one exercise
func (s *ExerciseService) GetExerciseByID(ctx context.Context, id int32) (*domain.Exercise, error) {
	return s.exerciseRepo.GetByID(ctx, id)
}

// ExerciseDetail is an exercise together with the workouts that reference it
type ExerciseDetail struct {
	Exercise *domain.Exercise
	Workouts []*domain.Workout
}

// GetExerciseDetail loads an exercise and its derived workouts
func (s *ExerciseService) GetExerciseDetail(ctx context.Context, id int32) (*ExerciseDetail, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	workouts, err := s.exerciseRepo.ListWorkouts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ExerciseDetail{Exercise: exercise, Workouts: workouts}, nil
}

// DeleteExercise removes the exercise and every workout exercise referencing it
func (s *ExerciseService) DeleteExercise(ctx context.Context, id int32) error {
	removed, err := s.exerciseRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	log.Info().Int32("exercise_id", id).Int64("removed_workout_exercises", removed).Msg("Exercise deleted")
	s.publish(websocket.ExerciseDeleted(id, removed))
	return nil
}

func (s *ExerciseService) publish(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}
