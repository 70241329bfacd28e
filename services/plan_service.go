package services

import (
	"nutriplan/models"
)

// PlanService owns the weekly meal plan and nutrition goals of each user.
// Every mutation loads the current document, applies the change in memory
// and saves the document back; a failed save leaves the stored state
// untouched, so no operation is ever half-applied.
type PlanService struct {
	repo PlanRepository
}

func NewPlanService(repo PlanRepository) *PlanService {
	return &PlanService{repo: repo}
}

// State returns the user's current plan and goals, falling back to an
// empty week and default goals on first use.
func (s *PlanService) State(userID uint) (*PlanState, error) {
	st, err := s.repo.Load(userID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		st = &PlanState{Plan: models.NewMealPlan(), Goals: models.DefaultGoals()}
	}
	return st, nil
}

// AddMeal puts the catalog meal with the given id into the (day, mealType)
// slot and persists the updated document. Singular slots overwrite;
// snacks append.
func (s *PlanService) AddMeal(userID uint, day string, mealType models.MealType, mealID string) (*models.DaySlot, error) {
	meal, ok := CatalogMeal(mealID)
	if !ok {
		return nil, models.ErrMealNotFound
	}

	st, err := s.State(userID)
	if err != nil {
		return nil, err
	}
	slot, err := st.Plan.AddMeal(day, mealType, meal)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(userID, st); err != nil {
		return nil, err
	}
	return slot, nil
}

// RemoveMeal clears the (day, mealType) slot. index picks the snack to
// drop and is ignored for singular slots.
func (s *PlanService) RemoveMeal(userID uint, day string, mealType models.MealType, index int) (*models.DaySlot, error) {
	st, err := s.State(userID)
	if err != nil {
		return nil, err
	}
	slot, err := st.Plan.RemoveMeal(day, mealType, index)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(userID, st); err != nil {
		return nil, err
	}
	return slot, nil
}

// DailyTotals sums the macros planned for one day.
func (s *PlanService) DailyTotals(userID uint, day string) (models.NutritionTotals, error) {
	st, err := s.State(userID)
	if err != nil {
		return models.NutritionTotals{}, err
	}
	return st.Plan.DailyTotals(day)
}

// NutritionPercentage reports how much of the daily goal for one nutrient
// the planned day covers, capped at 100 so UI meters never overflow.
func (s *PlanService) NutritionPercentage(userID uint, day, nutrient string) (float64, error) {
	st, err := s.State(userID)
	if err != nil {
		return 0, err
	}
	totals, err := st.Plan.DailyTotals(day)
	if err != nil {
		return 0, err
	}
	return percentages(totals, st.Goals)[nutrient], nil
}

// Progress returns consumed/goal/percent per nutrient for one day, the
// shape the dashboard meters render directly.
func (s *PlanService) Progress(userID uint, day string) (map[string]map[string]float64, error) {
	st, err := s.State(userID)
	if err != nil {
		return nil, err
	}
	totals, err := st.Plan.DailyTotals(day)
	if err != nil {
		return nil, err
	}

	pct := percentages(totals, st.Goals)
	return map[string]map[string]float64{
		"calories": {"consumed": totals.Calories, "goal": st.Goals.Calories, "percent": pct["calories"]},
		"protein":  {"consumed": totals.Protein, "goal": st.Goals.Protein, "percent": pct["protein"]},
		"carbs":    {"consumed": totals.Carbs, "goal": st.Goals.Carbs, "percent": pct["carbs"]},
		"fat":      {"consumed": totals.Fat, "goal": st.Goals.Fat, "percent": pct["fat"]},
	}, nil
}

// DaySummary is one row of the weekly overview.
type DaySummary struct {
	Day      string                 `json:"day"`
	Totals   models.NutritionTotals `json:"totals"`
	Percents map[string]float64     `json:"percents"`
}

// WeekSummary returns totals and capped percentages for all seven days,
// Monday first.
func (s *PlanService) WeekSummary(userID uint) ([]DaySummary, error) {
	st, err := s.State(userID)
	if err != nil {
		return nil, err
	}

	out := make([]DaySummary, 0, len(models.Days))
	for _, day := range models.Days {
		totals, err := st.Plan.DailyTotals(day)
		if err != nil {
			return nil, err
		}
		out = append(out, DaySummary{Day: day, Totals: totals, Percents: percentages(totals, st.Goals)})
	}
	return out, nil
}

// SetGoals validates and persists new daily targets alongside the plan.
func (s *PlanService) SetGoals(userID uint, goals models.NutritionGoals) error {
	if err := goals.Validate(); err != nil {
		return err
	}
	st, err := s.State(userID)
	if err != nil {
		return err
	}
	st.Goals = goals
	return s.repo.Save(userID, st)
}

func (s *PlanService) Goals(userID uint) (models.NutritionGoals, error) {
	st, err := s.State(userID)
	if err != nil {
		return models.NutritionGoals{}, err
	}
	return st.Goals, nil
}

func percentages(t models.NutritionTotals, g models.NutritionGoals) map[string]float64 {
	pct := func(consumed, goal float64) float64 {
		if goal <= 0 {
			return 0
		}
		p := consumed / goal * 100
		if p > 100 {
			return 100
		}
		return p
	}
	return map[string]float64{
		"calories": pct(t.Calories, g.Calories),
		"protein":  pct(t.Protein, g.Protein),
		"carbs":    pct(t.Carbs, g.Carbs),
		"fat":      pct(t.Fat, g.Fat),
	}
}
