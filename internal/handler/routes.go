package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. writeLimit guards the mutating
// endpoints and may be nil.
func RegisterRoutes(e *echo.Echo, workoutHandler *WorkoutHandler, exerciseHandler *ExerciseHandler, writeLimit echo.MiddlewareFunc) {
	writes := []echo.MiddlewareFunc{}
	if writeLimit != nil {
		writes = append(writes, writeLimit)
	}

	// Workout routes
	workouts := e.Group("/workouts")
	workouts.GET("", workoutHandler.GetWorkouts)
	workouts.GET("/:id", workoutHandler.GetWorkout)
	workouts.POST("", workoutHandler.CreateWorkout, writes...)
	workouts.DELETE("/:id", workoutHandler.DeleteWorkout, writes...)
	workouts.POST("/:wid/exercises/:eid/workout_exercises", workoutHandler.AddWorkoutExercise, writes...)

	// Exercise routes
	exercises := e.Group("/exercises")
	exercises.GET("", exerciseHandler.GetExercises)
	exercises.GET("/:id", exerciseHandler.GetExercise)
	exercises.POST("", exerciseHandler.CreateExercise, writes...)
	exercises.DELETE("/:id", exerciseHandler.DeleteExercise, writes...)
}
