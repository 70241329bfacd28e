package models

// NutritionGoals holds each user's daily intake targets.
type NutritionGoals struct {
	Calories float64 `json:"calories"` // e.g. 2000 kcal
	Protein  float64 `json:"protein"`  // e.g. 75 g
	Carbs    float64 `json:"carbs"`    // e.g. 250 g
	Fat      float64 `json:"fat"`      // e.g. 65 g
}

func DefaultGoals() NutritionGoals {
	return NutritionGoals{Calories: 2000, Protein: 75, Carbs: 250, Fat: 65}
}

// Validate rejects non-positive targets; a zero goal would make every
// percentage meaningless.
func (g NutritionGoals) Validate() error {
	if g.Calories <= 0 || g.Protein <= 0 || g.Carbs <= 0 || g.Fat <= 0 {
		return ErrInvalidGoal
	}
	return nil
}
