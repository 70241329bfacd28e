package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"nutriplan/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusForMapsDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{models.ErrInvalidDay, http.StatusBadRequest},
		{models.ErrInvalidMealType, http.StatusBadRequest},
		{models.ErrInvalidGoal, http.StatusBadRequest},
		{models.ErrMissingField, http.StatusBadRequest},
		{models.ErrInvalidTime, http.StatusBadRequest},
		{models.ErrSnackIndex, http.StatusBadRequest},
		{models.ErrReminderNotFound, http.StatusNotFound},
		{models.ErrMealNotFound, http.StatusNotFound},
		{models.ErrEmailTaken, http.StatusConflict},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, statusFor(c.err), "%v", c.err)
	}
}

func TestStatusForWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("register user: %w", models.ErrEmailTaken)
	assert.Equal(t, http.StatusConflict, statusFor(wrapped))
}

func TestStatusForUnknownErrorIsInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("bcrypt: password too long")))
	assert.Equal(t, http.StatusInternalServerError, statusFor(models.ErrPersistence))
}
