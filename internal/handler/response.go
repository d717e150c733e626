package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/dafibh/liftlog/liftlog-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed request. Errors is present only
// for validation and constraint failures.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

// NewValidationError creates a 422 response listing the failing fields
func NewValidationError(c echo.Context, detail string, errs []domain.FieldError) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: detail, Errors: errs})
}

// NewBadRequestError creates a 400 response
func NewBadRequestError(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: detail})
}

// NewNotFoundError creates a 404 response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: detail})
}

// NewInternalError creates a 500 response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: detail})
}

// respondError maps a service error onto the response taxonomy. Unknown
// errors are logged and reported with the generic fallback message.
func respondError(c echo.Context, err error, fallback string) error {
	var verr *domain.ValidationError
	var cv *domain.ConstraintViolation
	switch {
	case errors.Is(err, domain.ErrWorkoutNotFound):
		return NewNotFoundError(c, "Workout not found")
	case errors.Is(err, domain.ErrExerciseNotFound):
		return NewNotFoundError(c, "Exercise not found")
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, "Not found")
	case errors.As(err, &verr):
		return NewValidationError(c, "Validation failed", verr.Errors)
	case errors.As(err, &cv):
		return NewValidationError(c, cv.Message, cv.FieldErrors())
	}

	log.Error().
		Err(err).
		Str("path", c.Request().URL.Path).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg(fallback)
	return NewInternalError(c, fallback)
}

// bindJSON decodes the request body. Malformed JSON is a 400; a value of
// the wrong JSON type for a known field is a 422 naming that field. When ok
// is false the response has already been written and err is its result.
func bindJSON(c echo.Context, dst interface{}) (ok bool, err error) {
	bindErr := c.Bind(dst)
	if bindErr == nil {
		return true, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(bindErr, &typeErr) && typeErr.Field != "" {
		return false, NewValidationError(c, "Validation failed", []domain.FieldError{
			{Field: typeErr.Field, Message: expectedType(typeErr.Type)},
		})
	}
	log.Debug().Err(bindErr).Str("path", c.Request().URL.Path).Msg("Rejected request body")
	return false, NewBadRequestError(c, "Invalid request body")
}

func expectedType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "must be an integer"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.String:
		return "must be a string"
	}
	return "has the wrong type"
}

// parseID reads a positive integer path parameter. Anything else addresses
// no resource, so callers answer 404.
func parseID(c echo.Context, name string) (int32, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil || id < 1 {
		return 0, false
	}
	return int32(id), true
}
