package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/service"
	"github.com/dafibh/liftlog/liftlog-backend/internal/testutil"
	"github.com/dafibh/liftlog/liftlog-backend/internal/view"
	"github.com/labstack/echo/v4"
)

func TestCreateExercise_Success(t *testing.T) {
	e := echo.New()
	repos := testutil.NewMockRepositories()
	handler := NewExerciseHandler(service.NewExerciseService(repos.Exercises))

	reqBody := `{"name": "Back Squat", "category": "Strength", "equipment_needed": true}`
	req := httptest.NewRequest(http.MethodPost, "/exercises", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateExercise(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expectStatus(t, rec, http.StatusCreated)

	var response view.ExerciseView
	decode(t, rec, &response)
	if response.ID == 0 {
		t.Error("Expected an assigned id")
	}
	if response.Name != "Back Squat" || response.Category != "Strength" || !response.EquipmentNeeded {
		t.Errorf("Unexpected exercise %+v", response)
	}
}

func TestCreateExercise_DuplicateName(t *testing.T) {
	api := newTestAPI()
	api.seedExercise("Back Squat", "Strength", true)

	rec := api.do(http.MethodPost, "/exercises", `{"name": "Back Squat", "category": "Strength", "equipment_needed": true}`)

	resp := expectFieldError(t, rec, "name")
	if resp.Error == "" {
		t.Error("Expected an error message")
	}
	if len(api.publisher.Events) != 0 {
		t.Errorf("Expected no events, got %v", api.publisher.Types())
	}
}

func TestCreateExercise_NameIsCaseSensitive(t *testing.T) {
	api := newTestAPI()
	api.seedExercise("Back Squat", "Strength", true)

	rec := api.do(http.MethodPost, "/exercises", `{"name": "back squat", "category": "Strength", "equipment_needed": true}`)
	expectStatus(t, rec, http.StatusCreated)
}

func TestCreateExercise_PaddedNameBypassingHandlerRejected(t *testing.T) {
	api := newTestAPI()
	expectStatus(t, api.do(http.MethodPost, "/exercises", `{"name": "Back Squat", "category": "Strength", "equipment_needed": true}`), http.StatusCreated)

	_, err := api.repos.Exercises.Create(context.Background(), &domain.Exercise{Name: " Back Squat ", Category: "Strength"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "name" {
		t.Errorf("Expected a single name error, got %+v", verr.Errors)
	}

	rec := api.do(http.MethodGet, "/exercises", "")
	var list []view.ExerciseView
	decode(t, rec, &list)
	if len(list) != 1 {
		t.Errorf("Expected one stored exercise, got %d", len(list))
	}
}

func TestCreateExercise_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"blank name", `{"name": "   ", "category": "Strength", "equipment_needed": true}`, "name"},
		{"missing category", `{"name": "Row", "equipment_needed": true}`, "category"},
		{"missing equipment", `{"name": "Row", "category": "Strength"}`, "equipment_needed"},
		{"equipment as string", `{"name": "Row", "category": "Strength", "equipment_needed": "yes"}`, "equipment_needed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI()
			rec := api.do(http.MethodPost, "/exercises", tt.body)
			expectFieldError(t, rec, tt.field)
		})
	}
}

func TestCreateExercise_MalformedJSON(t *testing.T) {
	api := newTestAPI()

	rec := api.do(http.MethodPost, "/exercises", `{"name": "Row",`)
	expectStatus(t, rec, http.StatusBadRequest)

	var resp ErrorResponse
	decode(t, rec, &resp)
	if resp.Error == "" {
		t.Error("Expected an error message")
	}
}

func TestGetExercises_OrderedByName(t *testing.T) {
	api := newTestAPI()
	api.seedExercise("Run", "Cardio", false)
	api.seedExercise("Back Squat", "Strength", true)
	api.seedExercise("Push-up", "Strength", false)

	rec := api.do(http.MethodGet, "/exercises", "")
	expectStatus(t, rec, http.StatusOK)

	var response []view.ExerciseView
	decode(t, rec, &response)
	got := make([]string, 0, len(response))
	for _, ex := range response {
		got = append(got, ex.Name)
	}
	want := []string{"Back Squat", "Push-up", "Run"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestGetExercises_Empty(t *testing.T) {
	api := newTestAPI()

	rec := api.do(http.MethodGet, "/exercises", "")
	expectStatus(t, rec, http.StatusOK)
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %s", rec.Body.String())
	}
}

func TestGetExercise_WithWorkouts(t *testing.T) {
	api := newTestAPI()
	squat := api.seedExercise("Back Squat", "Strength", true)

	rec := api.do(http.MethodPost, "/workouts", `{"date": "2025-09-01", "duration_minutes": 45}`)
	expectStatus(t, rec, http.StatusCreated)
	var workout view.WorkoutView
	decode(t, rec, &workout)

	path := "/workouts/" + itoa(workout.ID) + "/exercises/" + itoa(squat.ID) + "/workout_exercises"
	expectStatus(t, api.do(http.MethodPost, path, `{"reps": 5, "sets": 5}`), http.StatusCreated)
	expectStatus(t, api.do(http.MethodPost, path, `{"reps": 3, "sets": 5}`), http.StatusCreated)

	rec = api.do(http.MethodGet, "/exercises/"+itoa(squat.ID), "")
	expectStatus(t, rec, http.StatusOK)

	var detail view.ExerciseDetailView
	decode(t, rec, &detail)
	if detail.Name != "Back Squat" {
		t.Errorf("Expected Back Squat, got %s", detail.Name)
	}
	if len(detail.Workouts) != 1 {
		t.Fatalf("Expected one distinct workout, got %d", len(detail.Workouts))
	}
	if detail.Workouts[0].ID != workout.ID || detail.Workouts[0].Date != "2025-09-01" || detail.Workouts[0].DurationMinutes != 45 {
		t.Errorf("Unexpected workout ref %+v", detail.Workouts[0])
	}
	if strings.Contains(rec.Body.String(), "notes") {
		t.Errorf("Workout refs must not carry notes: %s", rec.Body.String())
	}
}

func TestGetExercise_NotFound(t *testing.T) {
	api := newTestAPI()

	for _, path := range []string{"/exercises/99", "/exercises/abc", "/exercises/0", "/exercises/-1"} {
		rec := api.do(http.MethodGet, path, "")
		expectStatus(t, rec, http.StatusNotFound)
		var resp ErrorResponse
		decode(t, rec, &resp)
		if resp.Error != "Exercise not found" {
			t.Errorf("%s: expected 'Exercise not found', got %q", path, resp.Error)
		}
	}
}

func TestDeleteExercise_Cascades(t *testing.T) {
	api := newTestAPI()
	squat := api.seedExercise("Back Squat", "Strength", true)
	rec := api.do(http.MethodPost, "/workouts", `{"date": "2025-09-01", "duration_minutes": 45}`)
	var workout view.WorkoutView
	decode(t, rec, &workout)
	path := "/workouts/" + itoa(workout.ID) + "/exercises/" + itoa(squat.ID) + "/workout_exercises"
	expectStatus(t, api.do(http.MethodPost, path, `{"reps": 5}`), http.StatusCreated)

	rec = api.do(http.MethodDelete, "/exercises/"+itoa(squat.ID), "")
	expectStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %s", rec.Body.String())
	}
	if api.repos.Store.EntryCount() != 0 {
		t.Errorf("Expected workout exercises removed, %d left", api.repos.Store.EntryCount())
	}

	expectStatus(t, api.do(http.MethodGet, "/exercises/"+itoa(squat.ID), ""), http.StatusNotFound)
	expectStatus(t, api.do(http.MethodGet, "/workouts/"+itoa(workout.ID), ""), http.StatusOK)
}

func TestDeleteExercise_NotFound(t *testing.T) {
	e := echo.New()
	repos := testutil.NewMockRepositories()
	handler := NewExerciseHandler(service.NewExerciseService(repos.Exercises))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/exercises/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.DeleteExercise(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expectStatus(t, rec, http.StatusNotFound)
}
