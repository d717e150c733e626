package handler

import (
	"net/http"

	"github.com/dafibh/liftlog/liftlog-backend/internal/service"
	"github.com/dafibh/liftlog/liftlog-backend/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// WorkoutHandler handles workout-related HTTP requests
type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler
func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// CreateWorkoutRequest represents the create workout request body
type CreateWorkoutRequest struct {
	Date            *string `json:"date" example:"2025-09-01"`
	DurationMinutes *int32  `json:"duration_minutes" example:"45"`
	Notes           *string `json:"notes" example:"Lower body"`
}

// AddWorkoutExerciseRequest represents the payload of attaching an exercise.
// At least one field must be present.
type AddWorkoutExerciseRequest struct {
	Reps            *int32 `json:"reps" example:"5"`
	Sets            *int32 `json:"sets" example:"5"`
	DurationSeconds *int32 `json:"duration_seconds"`
}

// GetWorkouts godoc
// @Summary List workouts
// @Description Get every workout, most recent first
// @Tags workouts
// @Produce json
// @Success 200 {array} view.WorkoutView
// @Failure 500 {object} ErrorResponse
// @Router /workouts [get]
func (h *WorkoutHandler) GetWorkouts(c echo.Context) error {
	workouts, err := h.workoutService.GetWorkouts(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to get workouts")
	}
	return c.JSON(http.StatusOK, view.Workouts(workouts))
}

// GetWorkout godoc
// @Summary Get a workout
// @Description Get a workout with its exercises in the order they were added
// @Tags workouts
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {object} view.WorkoutDetailView
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return NewNotFoundError(c, "Workout not found")
	}

	detail, err := h.workoutService.GetWorkoutDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to get workout")
	}
	return c.JSON(http.StatusOK, view.WorkoutDetail(detail.Workout, detail.Entries))
}

// CreateWorkout godoc
// @Summary Create a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param request body CreateWorkoutRequest true "Workout"
// @Success 201 {object} view.WorkoutView
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	var req CreateWorkoutRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	workout, err := h.workoutService.CreateWorkout(c.Request().Context(), service.CreateWorkoutInput{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		return respondError(c, err, "Failed to create workout")
	}

	log.Info().Int32("workout_id", workout.ID).Msg("Workout created")

	return c.JSON(http.StatusCreated, view.Workout(workout))
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Description Delete a workout and all of its workout exercises
// @Tags workouts
// @Param id path int true "Workout ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return NewNotFoundError(c, "Workout not found")
	}

	if err := h.workoutService.DeleteWorkout(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Failed to delete workout")
	}
	return c.NoContent(http.StatusNoContent)
}

// AddWorkoutExercise godoc
// @Summary Add an exercise to a workout
// @Description Append an exercise with its reps, sets and/or duration to a workout and return the updated workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param wid path int true "Workout ID"
// @Param eid path int true "Exercise ID"
// @Param request body AddWorkoutExerciseRequest true "Payload"
// @Success 201 {object} view.WorkoutDetailView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts/{wid}/exercises/{eid}/workout_exercises [post]
func (h *WorkoutHandler) AddWorkoutExercise(c echo.Context) error {
	workoutID, ok := parseID(c, "wid")
	if !ok {
		return NewNotFoundError(c, "Workout not found")
	}
	exerciseID, ok := parseID(c, "eid")
	if !ok {
		return NewNotFoundError(c, "Exercise not found")
	}

	// Missing parents take precedence over anything wrong with the body
	if err := h.workoutService.CheckParents(c.Request().Context(), workoutID, exerciseID); err != nil {
		return respondError(c, err, "Failed to add exercise to workout")
	}

	var req AddWorkoutExerciseRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	detail, err := h.workoutService.AttachExercise(c.Request().Context(), service.AddWorkoutExerciseInput{
		WorkoutID:       workoutID,
		ExerciseID:      exerciseID,
		Reps:            req.Reps,
		Sets:            req.Sets,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		return respondError(c, err, "Failed to add exercise to workout")
	}

	return c.JSON(http.StatusCreated, view.WorkoutDetail(detail.Workout, detail.Entries))
}
