package controllers

import (
	"errors"
	"net/http"

	"nutriplan/models"
)

// statusFor maps domain errors onto HTTP status codes. Anything
// unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidDay),
		errors.Is(err, models.ErrInvalidMealType),
		errors.Is(err, models.ErrInvalidGoal),
		errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrInvalidTime),
		errors.Is(err, models.ErrSnackIndex):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrReminderNotFound),
		errors.Is(err, models.ErrMealNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
