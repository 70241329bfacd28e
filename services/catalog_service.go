package services

import (
	"strings"

	"nutriplan/models"
)

// The built-in meal catalog. Fixed at compile time; filtering never
// re-sorts, so handlers can rely on this order.
var catalog = []models.MealRecord{
	{ID: "oatmeal-berries", Name: "Oatmeal with Berries", Description: "Rolled oats simmered in milk, topped with mixed berries and honey", Calories: 320, Protein: 11, Carbs: 56, Fat: 7, Category: models.MealBreakfast, Cuisine: "American", Tags: []string{"fiber", "vegetarian"}, PrepMinutes: 10},
	{ID: "masala-omelette", Name: "Masala Omelette", Description: "Three-egg omelette with onion, green chilli and coriander", Calories: 280, Protein: 19, Carbs: 4, Fat: 21, Category: models.MealBreakfast, Cuisine: "Indian", Tags: []string{"protein", "spicy"}, PrepMinutes: 12},
	{ID: "paneer-bhurji", Name: "Paneer Bhurji", Description: "Scrambled paneer with tomatoes, peas and toasted spices", Calories: 350, Protein: 18, Carbs: 12, Fat: 26, Category: models.MealBreakfast, Cuisine: "Indian", Tags: []string{"protein", "vegetarian"}, PrepMinutes: 15},
	{ID: "greek-yogurt-bowl", Name: "Greek Yogurt Bowl", Description: "Strained yogurt with walnuts, figs and a drizzle of honey", Calories: 290, Protein: 17, Carbs: 31, Fat: 11, Category: models.MealBreakfast, Cuisine: "Mediterranean", Tags: []string{"probiotic", "vegetarian"}, PrepMinutes: 5},
	{ID: "avocado-toast", Name: "Avocado Toast", Description: "Sourdough topped with smashed avocado, chilli flakes and lime", Calories: 340, Protein: 9, Carbs: 36, Fat: 19, Category: models.MealBreakfast, Cuisine: "American", Tags: []string{"vegan"}, PrepMinutes: 8},
	{ID: "idli-sambar", Name: "Idli with Sambar", Description: "Steamed rice cakes served with lentil sambar and coconut chutney", Calories: 310, Protein: 10, Carbs: 58, Fat: 5, Category: models.MealBreakfast, Cuisine: "Indian", Tags: []string{"fermented", "vegan"}, PrepMinutes: 20},

	{ID: "grilled-chicken-salad", Name: "Grilled Chicken Salad", Description: "Charred chicken breast over greens with olive oil vinaigrette", Calories: 420, Protein: 38, Carbs: 14, Fat: 24, Category: models.MealLunch, Cuisine: "American", Tags: []string{"protein", "low-carb"}, PrepMinutes: 25},
	{ID: "palak-paneer-roti", Name: "Palak Paneer with Roti", Description: "Paneer cubes in spinach gravy, served with two whole-wheat rotis", Calories: 520, Protein: 24, Carbs: 48, Fat: 26, Category: models.MealLunch, Cuisine: "Indian", Tags: []string{"vegetarian", "iron"}, PrepMinutes: 35},
	{ID: "chickpea-buddha-bowl", Name: "Chickpea Buddha Bowl", Description: "Roasted chickpeas, quinoa, pickled cabbage and tahini dressing", Calories: 480, Protein: 18, Carbs: 62, Fat: 18, Category: models.MealLunch, Cuisine: "Mediterranean", Tags: []string{"vegan", "fiber"}, PrepMinutes: 30},
	{ID: "chicken-burrito-bowl", Name: "Chicken Burrito Bowl", Description: "Rice, black beans, shredded chicken, salsa and guacamole", Calories: 610, Protein: 36, Carbs: 68, Fat: 22, Category: models.MealLunch, Cuisine: "Mexican", Tags: []string{"protein"}, PrepMinutes: 30},
	{ID: "rajma-chawal", Name: "Rajma Chawal", Description: "Kidney bean curry over steamed basmati rice", Calories: 540, Protein: 19, Carbs: 92, Fat: 10, Category: models.MealLunch, Cuisine: "Indian", Tags: []string{"vegan", "comfort"}, PrepMinutes: 40},
	{ID: "tuna-nicoise", Name: "Tuna Nicoise", Description: "Seared tuna, green beans, egg, olives and baby potatoes", Calories: 450, Protein: 34, Carbs: 28, Fat: 22, Category: models.MealLunch, Cuisine: "Mediterranean", Tags: []string{"omega-3"}, PrepMinutes: 25},

	{ID: "salmon-teriyaki", Name: "Salmon Teriyaki", Description: "Glazed salmon fillet with steamed rice and broccoli", Calories: 560, Protein: 35, Carbs: 52, Fat: 23, Category: models.MealDinner, Cuisine: "Japanese", Tags: []string{"omega-3"}, PrepMinutes: 30},
	{ID: "dal-tadka-rice", Name: "Dal Tadka with Rice", Description: "Yellow lentils tempered with garlic and cumin, over rice", Calories: 490, Protein: 17, Carbs: 84, Fat: 10, Category: models.MealDinner, Cuisine: "Indian", Tags: []string{"vegan", "comfort"}, PrepMinutes: 35},
	{ID: "paneer-tikka-masala", Name: "Paneer Tikka Masala", Description: "Grilled paneer in a spiced tomato-cream gravy with naan", Calories: 640, Protein: 26, Carbs: 54, Fat: 36, Category: models.MealDinner, Cuisine: "Indian", Tags: []string{"vegetarian"}, PrepMinutes: 45},
	{ID: "pasta-primavera", Name: "Pasta Primavera", Description: "Penne with seasonal vegetables, garlic and parmesan", Calories: 520, Protein: 17, Carbs: 74, Fat: 17, Category: models.MealDinner, Cuisine: "Italian", Tags: []string{"vegetarian"}, PrepMinutes: 25},
	{ID: "turkey-chili", Name: "Turkey Chili", Description: "Lean ground turkey simmered with beans, tomato and smoked paprika", Calories: 470, Protein: 37, Carbs: 42, Fat: 17, Category: models.MealDinner, Cuisine: "Mexican", Tags: []string{"protein", "batch-cook"}, PrepMinutes: 50},
	{ID: "miso-tofu-stirfry", Name: "Miso Tofu Stir-fry", Description: "Crispy tofu and vegetables in a miso-ginger glaze", Calories: 430, Protein: 22, Carbs: 40, Fat: 20, Category: models.MealDinner, Cuisine: "Japanese", Tags: []string{"vegan"}, PrepMinutes: 20},

	{ID: "apple-peanut-butter", Name: "Apple with Peanut Butter", Description: "Sliced apple with two tablespoons of peanut butter", Calories: 270, Protein: 8, Carbs: 29, Fat: 16, Category: models.MealSnacks, Cuisine: "American", Tags: []string{"quick"}, PrepMinutes: 3},
	{ID: "paneer-tikka-bites", Name: "Paneer Tikka Bites", Description: "Skewered paneer cubes char-grilled with peppers", Calories: 210, Protein: 12, Carbs: 7, Fat: 15, Category: models.MealSnacks, Cuisine: "Indian", Tags: []string{"protein", "vegetarian"}, PrepMinutes: 20},
	{ID: "roasted-chana", Name: "Roasted Chana", Description: "Crunchy spiced roasted chickpeas", Calories: 180, Protein: 9, Carbs: 27, Fat: 4, Category: models.MealSnacks, Cuisine: "Indian", Tags: []string{"vegan", "fiber"}, PrepMinutes: 5},
	{ID: "hummus-carrots", Name: "Hummus with Carrot Sticks", Description: "Classic chickpea hummus with fresh carrot batons", Calories: 190, Protein: 6, Carbs: 21, Fat: 10, Category: models.MealSnacks, Cuisine: "Mediterranean", Tags: []string{"vegan"}, PrepMinutes: 5},
	{ID: "trail-mix", Name: "Trail Mix", Description: "Almonds, cashews, raisins and dark chocolate chips", Calories: 240, Protein: 7, Carbs: 22, Fat: 15, Category: models.MealSnacks, Cuisine: "American", Tags: []string{"quick"}, PrepMinutes: 1},
	{ID: "edamame-sea-salt", Name: "Edamame with Sea Salt", Description: "Steamed soybean pods tossed in flaky salt", Calories: 150, Protein: 13, Carbs: 12, Fat: 6, Category: models.MealSnacks, Cuisine: "Japanese", Tags: []string{"vegan", "protein"}, PrepMinutes: 6},
}

// Catalog returns the full built-in catalog in its fixed order.
func Catalog() []models.MealRecord {
	out := make([]models.MealRecord, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogMeal looks a record up by id.
func CatalogMeal(id string) (models.MealRecord, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return models.MealRecord{}, false
}

// FilterCatalog applies, in order: a meal-type equality filter (unless
// "all"), a cuisine equality filter (unless "all"), then a case-insensitive
// substring match of the trimmed query against name, tags, description and
// cuisine. The result keeps catalog order. Safe to call on every keystroke.
func FilterCatalog(mealType, cuisine, query string) []models.MealRecord {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.MealRecord, 0, len(catalog))
	for _, m := range catalog {
		if mealType != "" && mealType != "all" && string(m.Category) != mealType {
			continue
		}
		if cuisine != "" && cuisine != "all" && !strings.EqualFold(m.Cuisine, cuisine) {
			continue
		}
		if query != "" && !matchesQuery(m, query) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesQuery(m models.MealRecord, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Description), q) ||
		strings.Contains(strings.ToLower(m.Cuisine), q) {
		return true
	}
	for _, t := range m.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
