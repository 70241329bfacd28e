package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string, calories int) MealRecord {
	return MealRecord{
		ID:       id,
		Name:     id,
		Calories: calories,
		Protein:  10,
		Carbs:    20,
		Fat:      5,
		Category: MealLunch,
	}
}

func TestNewMealPlanHasAllSevenDays(t *testing.T) {
	p := NewMealPlan()
	assert.Len(t, p, 7)
	for _, d := range Days {
		require.NotNil(t, p[d])
		assert.NotNil(t, p[d].Snacks)
	}
}

func TestUntouchedDaysHaveZeroTotals(t *testing.T) {
	p := NewMealPlan()
	_, err := p.AddMeal("Monday", MealBreakfast, record("m1", 300))
	require.NoError(t, err)

	for _, d := range Days[1:] {
		totals, err := p.DailyTotals(d)
		require.NoError(t, err)
		assert.Equal(t, NutritionTotals{}, totals, d)
	}
}

func TestAddMealOverwritesSingularSlot(t *testing.T) {
	p := NewMealPlan()
	_, err := p.AddMeal("Tuesday", MealBreakfast, record("m1", 300))
	require.NoError(t, err)
	slot, err := p.AddMeal("Tuesday", MealBreakfast, record("m2", 400))
	require.NoError(t, err)

	require.NotNil(t, slot.Breakfast)
	assert.Equal(t, "m2", slot.Breakfast.ID)

	totals, err := p.DailyTotals("Tuesday")
	require.NoError(t, err)
	assert.Equal(t, 400.0, totals.Calories)
}

func TestSnacksAppendInInsertionOrder(t *testing.T) {
	p := NewMealPlan()
	for _, id := range []string{"s1", "s2", "s3"} {
		_, err := p.AddMeal("Wednesday", MealSnacks, record(id, 100))
		require.NoError(t, err)
	}

	slot := p["Wednesday"]
	require.Len(t, slot.Snacks, 3)

	// dropping the middle snack keeps the others in relative order
	slot, err := p.RemoveMeal("Wednesday", MealSnacks, 1)
	require.NoError(t, err)
	require.Len(t, slot.Snacks, 2)
	assert.Equal(t, "s1", slot.Snacks[0].ID)
	assert.Equal(t, "s3", slot.Snacks[1].ID)
}

func TestSnacksAllowDuplicates(t *testing.T) {
	p := NewMealPlan()
	for i := 0; i < 3; i++ {
		_, err := p.AddMeal("Friday", MealSnacks, record("same", 100))
		require.NoError(t, err)
	}
	assert.Len(t, p["Friday"].Snacks, 3)
}

func TestRemoveSnackIndexOutOfRange(t *testing.T) {
	p := NewMealPlan()
	_, err := p.AddMeal("Thursday", MealSnacks, record("s1", 100))
	require.NoError(t, err)

	_, err = p.RemoveMeal("Thursday", MealSnacks, 1)
	assert.ErrorIs(t, err, ErrSnackIndex)
	_, err = p.RemoveMeal("Thursday", MealSnacks, -1)
	assert.ErrorIs(t, err, ErrSnackIndex)

	// the failed removal changed nothing
	assert.Len(t, p["Thursday"].Snacks, 1)
}

func TestRemoveSingularSlotIsIdempotent(t *testing.T) {
	p := NewMealPlan()
	_, err := p.AddMeal("Monday", MealDinner, record("m1", 500))
	require.NoError(t, err)

	slot, err := p.RemoveMeal("Monday", MealDinner, -1)
	require.NoError(t, err)
	assert.Nil(t, slot.Dinner)

	// clearing an already-empty slot succeeds
	_, err = p.RemoveMeal("Monday", MealDinner, -1)
	assert.NoError(t, err)
}

func TestInvalidDayRejected(t *testing.T) {
	p := NewMealPlan()
	_, err := p.AddMeal("Funday", MealLunch, record("m1", 100))
	assert.ErrorIs(t, err, ErrInvalidDay)
	_, err = p.RemoveMeal("Funday", MealLunch, -1)
	assert.ErrorIs(t, err, ErrInvalidDay)
	_, err = p.DailyTotals("Funday")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestInvalidMealTypeRejected(t *testing.T) {
	p := NewMealPlan()
	_, err := p.AddMeal("Monday", MealType("brunch"), record("m1", 100))
	assert.ErrorIs(t, err, ErrInvalidMealType)
}

func TestDailyTotalsSumAllSlots(t *testing.T) {
	p := NewMealPlan()
	_, err := p.AddMeal("Saturday", MealBreakfast, record("b", 300))
	require.NoError(t, err)
	_, err = p.AddMeal("Saturday", MealLunch, record("l", 500))
	require.NoError(t, err)
	_, err = p.AddMeal("Saturday", MealDinner, record("d", 600))
	require.NoError(t, err)
	_, err = p.AddMeal("Saturday", MealSnacks, record("s1", 150))
	require.NoError(t, err)
	_, err = p.AddMeal("Saturday", MealSnacks, record("s2", 150))
	require.NoError(t, err)

	totals, err := p.DailyTotals("Saturday")
	require.NoError(t, err)
	assert.Equal(t, 1700.0, totals.Calories)
	assert.Equal(t, 50.0, totals.Protein)
	assert.Equal(t, 100.0, totals.Carbs)
	assert.Equal(t, 25.0, totals.Fat)
}

func TestGoalsValidation(t *testing.T) {
	assert.NoError(t, DefaultGoals().Validate())
	assert.ErrorIs(t, NutritionGoals{Calories: 0, Protein: 75, Carbs: 250, Fat: 65}.Validate(), ErrInvalidGoal)
	assert.ErrorIs(t, NutritionGoals{Calories: 2000, Protein: -1, Carbs: 250, Fat: 65}.Validate(), ErrInvalidGoal)
}
