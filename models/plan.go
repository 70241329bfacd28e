package models

// MealType names one slot of a day. Breakfast, lunch and dinner hold a
// single meal; snacks hold an ordered list.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnacks    MealType = "snacks"
)

// Days is the fixed week ordering, Monday first.
var Days = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

func ValidMealType(mt MealType) bool {
	switch mt {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks:
		return true
	}
	return false
}

// DaySlot holds the meals planned for one day.
type DaySlot struct {
	Breakfast *MealRecord  `json:"breakfast,omitempty"`
	Lunch     *MealRecord  `json:"lunch,omitempty"`
	Dinner    *MealRecord  `json:"dinner,omitempty"`
	Snacks    []MealRecord `json:"snacks"`
}

// NutritionTotals is the macro sum for one day. Recomputed on demand,
// never stored.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealPlan maps every day of the week to its slot. All 7 keys are always
// present; NewMealPlan is the only way plans are created.
type MealPlan map[string]*DaySlot

func NewMealPlan() MealPlan {
	p := make(MealPlan, len(Days))
	for _, d := range Days {
		p[d] = &DaySlot{Snacks: []MealRecord{}}
	}
	return p
}

// Normalize repairs a plan decoded from storage so the all-keys invariant
// holds even if the stored document predates a schema change.
func (p MealPlan) Normalize() {
	for _, d := range Days {
		if p[d] == nil {
			p[d] = &DaySlot{Snacks: []MealRecord{}}
		} else if p[d].Snacks == nil {
			p[d].Snacks = []MealRecord{}
		}
	}
}

// AddMeal places meal into the (day, mealType) slot. Singular slots are
// overwritten silently; snacks append in insertion order.
func (p MealPlan) AddMeal(day string, mealType MealType, meal MealRecord) (*DaySlot, error) {
	if !ValidDay(day) {
		return nil, ErrInvalidDay
	}
	slot := p[day]
	switch mealType {
	case MealBreakfast:
		slot.Breakfast = &meal
	case MealLunch:
		slot.Lunch = &meal
	case MealDinner:
		slot.Dinner = &meal
	case MealSnacks:
		slot.Snacks = append(slot.Snacks, meal)
	default:
		return nil, ErrInvalidMealType
	}
	return slot, nil
}

// RemoveMeal clears the (day, mealType) slot. For snacks, index selects the
// entry to drop and must be in range; for singular slots index is ignored
// and clearing an empty slot is a no-op.
func (p MealPlan) RemoveMeal(day string, mealType MealType, index int) (*DaySlot, error) {
	if !ValidDay(day) {
		return nil, ErrInvalidDay
	}
	slot := p[day]
	switch mealType {
	case MealBreakfast:
		slot.Breakfast = nil
	case MealLunch:
		slot.Lunch = nil
	case MealDinner:
		slot.Dinner = nil
	case MealSnacks:
		if index < 0 || index >= len(slot.Snacks) {
			return nil, ErrSnackIndex
		}
		slot.Snacks = append(slot.Snacks[:index], slot.Snacks[index+1:]...)
	default:
		return nil, ErrInvalidMealType
	}
	return slot, nil
}

// DailyTotals sums macros across every meal present on the given day.
func (p MealPlan) DailyTotals(day string) (NutritionTotals, error) {
	if !ValidDay(day) {
		return NutritionTotals{}, ErrInvalidDay
	}
	var t NutritionTotals
	slot := p[day]
	for _, m := range []*MealRecord{slot.Breakfast, slot.Lunch, slot.Dinner} {
		if m == nil {
			continue
		}
		t.Calories += float64(m.Calories)
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	for _, m := range slot.Snacks {
		t.Calories += float64(m.Calories)
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t, nil
}
