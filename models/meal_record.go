package models

// MealRecord is one entry of the built-in meal catalog. Records are loaded
// once at startup and never mutated; the plan stores value copies so a
// stored plan survives catalog edits between releases.
type MealRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Category    MealType `json:"category"` // breakfast|lunch|dinner|snacks
	Cuisine     string   `json:"cuisine,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PrepMinutes int      `json:"prep_minutes"`
}
