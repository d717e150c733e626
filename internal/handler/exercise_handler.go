package handler

import (
	"net/http"

	"github.com/dafibh/liftlog/liftlog-backend/internal/service"
	"github.com/dafibh/liftlog/liftlog-backend/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExerciseHandler handles exercise-related HTTP requests
type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// CreateExerciseRequest represents the create exercise request body
type CreateExerciseRequest struct {
	Name            *string `json:"name" example:"Back Squat"`
	Category        *string `json:"category" example:"Strength"`
	EquipmentNeeded *bool   `json:"equipment_needed" example:"true"`
}

// GetExercises godoc
// @Summary List exercises
// @Description Get every exercise ordered by name
// @Tags exercises
// @Produce json
// @Success 200 {array} view.ExerciseView
// @Failure 500 {object} ErrorResponse
// @Router /exercises [get]
func (h *ExerciseHandler) GetExercises(c echo.Context) error {
	exercises, err := h.exerciseService.GetExercises(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to get exercises")
	}
	return c.JSON(http.StatusOK, view.Exercises(exercises))
}

// GetExercise godoc
// @Summary Get an exercise
// @Description Get an exercise with the workouts that reference it
// @Tags exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} view.ExerciseDetailView
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return NewNotFoundError(c, "Exercise not found")
	}

	detail, err := h.exerciseService.GetExerciseDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to get exercise")
	}
	return c.JSON(http.StatusOK, view.ExerciseDetail(detail.Exercise, detail.Workouts))
}

// CreateExercise godoc
// @Summary Create an exercise
// @Description Create a new exercise. Names are unique (case-sensitive).
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body CreateExerciseRequest true "Exercise"
// @Success 201 {object} view.ExerciseView
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c echo.Context) error {
	var req CreateExerciseRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request().Context(), service.CreateExerciseInput{
		Name:            req.Name,
		Category:        req.Category,
		EquipmentNeeded: req.EquipmentNeeded,
	})
	if err != nil {
		return respondError(c, err, "Failed to create exercise")
	}

	log.Info().Int32("exercise_id", exercise.ID).Str("name", exercise.Name).Msg("Exercise created")

	return c.JSON(http.StatusCreated, view.Exercise(exercise))
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Description Delete an exercise and every workout exercise that references it
// @Tags exercises
// @Param id path int true "Exercise ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return NewNotFoundError(c, "Exercise not found")
	}

	if err := h.exerciseService.DeleteExercise(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Failed to delete exercise")
	}
	return c.NoContent(http.StatusNoContent)
}
