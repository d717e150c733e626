package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/dafibh/liftlog/liftlog-backend/internal/service"
	"github.com/dafibh/liftlog/liftlog-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

// testAPI wires handlers over the in-memory repositories behind a real router
type testAPI struct {
	e         *echo.Echo
	repos     *testutil.MockRepositories
	publisher *testutil.MockEventPublisher
}

func newTestAPI() *testAPI {
	repos := testutil.NewMockRepositories()
	publisher := testutil.NewMockEventPublisher()

	workoutService := service.NewWorkoutService(repos.Workouts, repos.Exercises, repos.WorkoutExercises)
	workoutService.SetEventPublisher(publisher)
	exerciseService := service.NewExerciseService(repos.Exercises)
	exerciseService.SetEventPublisher(publisher)

	e := echo.New()
	RegisterRoutes(e, NewWorkoutHandler(workoutService), NewExerciseHandler(exerciseService), nil)
	return &testAPI{e: e, repos: repos, publisher: publisher}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("Expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// expectFieldError asserts a 422 body whose errors name field
func expectFieldError(t *testing.T, rec *httptest.ResponseRecorder, field string) ErrorResponse {
	t.Helper()
	expectStatus(t, rec, http.StatusUnprocessableEntity)
	var resp ErrorResponse
	decode(t, rec, &resp)
	for _, fe := range resp.Errors {
		if fe.Field == field {
			return resp
		}
	}
	t.Fatalf("Expected an error for field %q, got %+v", field, resp.Errors)
	return resp
}

func (a *testAPI) seedExercise(name, category string, equipment bool) *domain.Exercise {
	return a.repos.Store.AddExercise(&domain.Exercise{Name: name, Category: category, EquipmentNeeded: equipment})
}

func itoa(id int32) string {
	return strconv.Itoa(int(id))
}
