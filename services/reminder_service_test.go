package services

import (
	"testing"

	"nutriplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memReminderRepo keeps reminders in insertion order, the order the
// Postgres repository returns them in.
type memReminderRepo struct {
	reminders []models.Reminder
}

func (m *memReminderRepo) Create(r *models.Reminder) error {
	m.reminders = append(m.reminders, *r)
	return nil
}

func (m *memReminderRepo) List(userID uint) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range m.reminders {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReminderRepo) Get(userID uint, id string) (*models.Reminder, error) {
	for _, r := range m.reminders {
		if r.UserID == userID && r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memReminderRepo) Update(r *models.Reminder) error {
	for i := range m.reminders {
		if m.reminders[i].ID == r.ID {
			m.reminders[i] = *r
		}
	}
	return nil
}

func (m *memReminderRepo) Delete(userID uint, id string) error {
	for i, r := range m.reminders {
		if r.UserID == userID && r.ID == id {
			m.reminders = append(m.reminders[:i], m.reminders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memReminderRepo) ListEnabled() ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range m.reminders {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out, nil
}

func validReq() *ReminderRequest {
	return &ReminderRequest{Day: "Monday", MealType: models.MealLunch, Time: "12:00"}
}

func TestValidateReminderRequest(t *testing.T) {
	assert.NoError(t, ValidateReminderRequest(validReq()))
}

func TestValidateReminderRequestMissingFields(t *testing.T) {
	for name, mutate := range map[string]func(*ReminderRequest){
		"day":       func(r *ReminderRequest) { r.Day = "" },
		"meal type": func(r *ReminderRequest) { r.MealType = "" },
		"time":      func(r *ReminderRequest) { r.Time = "" },
	} {
		req := validReq()
		mutate(req)
		assert.ErrorIs(t, ValidateReminderRequest(req), models.ErrMissingField, name)
	}
}

func TestValidateReminderRequestBadValues(t *testing.T) {
	req := validReq()
	req.Day = "Funday"
	assert.ErrorIs(t, ValidateReminderRequest(req), models.ErrInvalidDay)

	req = validReq()
	req.MealType = "brunch"
	assert.ErrorIs(t, ValidateReminderRequest(req), models.ErrInvalidMealType)

	for _, bad := range []string{"25:00", "12:60", "9:00", "noon", "12:00:00"} {
		req = validReq()
		req.Time = bad
		assert.ErrorIs(t, ValidateReminderRequest(req), models.ErrInvalidTime, bad)
	}
}

func TestAddDefaultsEnabledWhenOmitted(t *testing.T) {
	svc := NewReminderService(&memReminderRepo{})

	r, err := svc.Add(1, validReq())
	require.NoError(t, err)
	assert.True(t, r.Enabled)
	assert.NotEmpty(t, r.ID)

	// an explicit false is honored, not overridden by the default
	off := false
	req := validReq()
	req.Enabled = &off
	r, err = svc.Add(1, req)
	require.NoError(t, err)
	assert.False(t, r.Enabled)
}

func TestAddAssignsFreshIDsAndKeepsCreationOrder(t *testing.T) {
	svc := NewReminderService(&memReminderRepo{})

	var ids []string
	for _, hhmm := range []string{"08:00", "12:00", "19:00"} {
		req := validReq()
		req.Time = hhmm
		r, err := svc.Add(1, req)
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}

	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])

	list, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, r := range list {
		assert.Equal(t, ids[i], r.ID)
	}
}

func TestToggleFlipsEnabled(t *testing.T) {
	svc := NewReminderService(&memReminderRepo{})
	r, err := svc.Add(1, validReq())
	require.NoError(t, err)

	toggled, err := svc.Toggle(1, r.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)

	toggled, err = svc.Toggle(1, r.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Enabled)
}

func TestToggleUnknownIDReturnsNotFound(t *testing.T) {
	svc := NewReminderService(&memReminderRepo{})

	_, err := svc.Toggle(1, "no-such-id")
	assert.ErrorIs(t, err, models.ErrReminderNotFound)

	// another user's reminder is invisible too
	r, err := svc.Add(1, validReq())
	require.NoError(t, err)
	_, err = svc.Toggle(2, r.ID)
	assert.ErrorIs(t, err, models.ErrReminderNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := NewReminderService(&memReminderRepo{})
	r, err := svc.Add(1, validReq())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, r.ID))
	// deleting the same id again, or one that never existed, is a no-op
	assert.NoError(t, svc.Delete(1, r.ID))
	assert.NoError(t, svc.Delete(1, "no-such-id"))

	list, err := svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDisabledRemindersExcludedFromEnabledScan(t *testing.T) {
	svc := NewReminderService(&memReminderRepo{})
	r, err := svc.Add(1, validReq())
	require.NoError(t, err)

	enabled, err := svc.ListEnabled()
	require.NoError(t, err)
	assert.Len(t, enabled, 1)

	_, err = svc.Toggle(1, r.ID)
	require.NoError(t, err)

	enabled, err = svc.ListEnabled()
	require.NoError(t, err)
	assert.Empty(t, enabled)
}
