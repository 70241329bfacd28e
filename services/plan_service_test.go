package services

import (
	"encoding/json"
	"errors"
	"testing"

	"nutriplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPlanRepo keeps documents as encoded JSON, the same shape the Postgres
// repository stores, so save/load behaves like a real round trip.
type memPlanRepo struct {
	docs    map[uint][]byte
	saveErr error
}

func newMemPlanRepo() *memPlanRepo {
	return &memPlanRepo{docs: make(map[uint][]byte)}
}

func (m *memPlanRepo) Load(userID uint) (*PlanState, error) {
	raw, ok := m.docs[userID]
	if !ok {
		return nil, nil
	}
	var st PlanState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	st.Plan.Normalize()
	return &st, nil
}

func (m *memPlanRepo) Save(userID uint, state *PlanState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.docs[userID] = raw
	return nil
}

func TestStateDefaultsOnFirstUse(t *testing.T) {
	svc := NewPlanService(newMemPlanRepo())

	st, err := svc.State(1)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultGoals(), st.Goals)
	for _, d := range models.Days {
		require.NotNil(t, st.Plan[d])
		assert.Nil(t, st.Plan[d].Breakfast)
		assert.Empty(t, st.Plan[d].Snacks)
	}
}

func TestAddMealPersistsAndRoundTrips(t *testing.T) {
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)

	slot, err := svc.AddMeal(1, "Monday", models.MealLunch, "palak-paneer-roti")
	require.NoError(t, err)
	require.NotNil(t, slot.Lunch)
	assert.Equal(t, "palak-paneer-roti", slot.Lunch.ID)

	// a fresh load sees a deep-equal copy of what was saved
	before, err := svc.State(1)
	require.NoError(t, err)
	after, err := svc.State(1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	require.NotNil(t, after.Plan["Monday"].Lunch)
	assert.Equal(t, "palak-paneer-roti", after.Plan["Monday"].Lunch.ID)
}

func TestAddMealUnknownCatalogID(t *testing.T) {
	svc := NewPlanService(newMemPlanRepo())
	_, err := svc.AddMeal(1, "Monday", models.MealLunch, "no-such-meal")
	assert.ErrorIs(t, err, models.ErrMealNotFound)
}

func TestFailedSaveLeavesStoredStateUntouched(t *testing.T) {
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)

	_, err := svc.AddMeal(1, "Monday", models.MealDinner, "salmon-teriyaki")
	require.NoError(t, err)

	repo.saveErr = errors.New("connection reset")
	_, err = svc.AddMeal(1, "Monday", models.MealDinner, "turkey-chili")
	require.Error(t, err)

	repo.saveErr = nil
	st, err := svc.State(1)
	require.NoError(t, err)
	require.NotNil(t, st.Plan["Monday"].Dinner)
	assert.Equal(t, "salmon-teriyaki", st.Plan["Monday"].Dinner.ID)
}

func TestRemoveMealByIndex(t *testing.T) {
	svc := NewPlanService(newMemPlanRepo())

	for _, id := range []string{"trail-mix", "roasted-chana", "edamame-sea-salt"} {
		_, err := svc.AddMeal(1, "Tuesday", models.MealSnacks, id)
		require.NoError(t, err)
	}

	slot, err := svc.RemoveMeal(1, "Tuesday", models.MealSnacks, 1)
	require.NoError(t, err)
	require.Len(t, slot.Snacks, 2)
	assert.Equal(t, "trail-mix", slot.Snacks[0].ID)
	assert.Equal(t, "edamame-sea-salt", slot.Snacks[1].ID)

	_, err = svc.RemoveMeal(1, "Tuesday", models.MealSnacks, 5)
	assert.ErrorIs(t, err, models.ErrSnackIndex)
}

func TestNutritionPercentageCapsAt100(t *testing.T) {
	svc := NewPlanService(newMemPlanRepo())

	// pile on dinners as snacks until calories far exceed the 2000 goal
	for i := 0; i < 8; i++ {
		_, err := svc.AddMeal(1, "Sunday", models.MealSnacks, "paneer-tikka-masala")
		require.NoError(t, err)
	}
	totals, err := svc.DailyTotals(1, "Sunday")
	require.NoError(t, err)
	require.Greater(t, totals.Calories, 4000.0)

	pct, err := svc.NutritionPercentage(1, "Sunday", "calories")
	require.NoError(t, err)
	assert.Equal(t, 100.0, pct)
}

func TestProgressShape(t *testing.T) {
	svc := NewPlanService(newMemPlanRepo())
	_, err := svc.AddMeal(1, "Monday", models.MealBreakfast, "oatmeal-berries")
	require.NoError(t, err)

	progress, err := svc.Progress(1, "Monday")
	require.NoError(t, err)
	for _, k := range []string{"calories", "protein", "carbs", "fat"} {
		require.Contains(t, progress, k)
		assert.Equal(t, progress[k]["consumed"]/progress[k]["goal"]*100, progress[k]["percent"], k)
	}

	// empty day reports zero consumed, zero percent
	empty, err := svc.Progress(1, "Thursday")
	require.NoError(t, err)
	assert.Zero(t, empty["calories"]["consumed"])
	assert.Zero(t, empty["calories"]["percent"])
}

func TestSetGoalsValidatesAndPersists(t *testing.T) {
	svc := NewPlanService(newMemPlanRepo())

	err := svc.SetGoals(1, models.NutritionGoals{Calories: 1800, Protein: 90, Carbs: 200, Fat: 60})
	require.NoError(t, err)

	goals, err := svc.Goals(1)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, goals.Calories)

	err = svc.SetGoals(1, models.NutritionGoals{Calories: 0, Protein: 90, Carbs: 200, Fat: 60})
	assert.ErrorIs(t, err, models.ErrInvalidGoal)

	// the invalid update did not clobber the stored goals
	goals, err = svc.Goals(1)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, goals.Calories)
}

func TestWeekSummaryCoversAllDaysInOrder(t *testing.T) {
	svc := NewPlanService(newMemPlanRepo())
	_, err := svc.AddMeal(1, "Wednesday", models.MealLunch, "rajma-chawal")
	require.NoError(t, err)

	week, err := svc.WeekSummary(1)
	require.NoError(t, err)
	require.Len(t, week, 7)
	for i, d := range models.Days {
		assert.Equal(t, d, week[i].Day)
	}
	assert.NotZero(t, week[2].Totals.Calories) // Wednesday
	assert.Zero(t, week[0].Totals.Calories)    // Monday untouched
}

func TestUsersAreIsolated(t *testing.T) {
	svc := NewPlanService(newMemPlanRepo())

	_, err := svc.AddMeal(1, "Monday", models.MealLunch, "tuna-nicoise")
	require.NoError(t, err)

	st, err := svc.State(2)
	require.NoError(t, err)
	assert.Nil(t, st.Plan["Monday"].Lunch)
}
