package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"nutriplan/models"

	"gorm.io/gorm"
)

// PlanState is everything the planner persists for one user. It is saved
// and loaded as a single document; saves overwrite the prior document
// wholesale.
type PlanState struct {
	Plan  models.MealPlan       `json:"plan"`
	Goals models.NutritionGoals `json:"goals"`
}

// PlanRepository is the document-store boundary for planner state. Load
// returns (nil, nil) when the user has no document yet; callers fall back
// to defaults.
type PlanRepository interface {
	Load(userID uint) (*PlanState, error)
	Save(userID uint, state *PlanState) error
}

type gormPlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &gormPlanRepository{db: db}
}

func (r *gormPlanRepository) Load(userID uint) (*PlanState, error) {
	var doc models.PlanDocument
	err := r.db.Where("user_id = ?", userID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load plan: %v", models.ErrPersistence, err)
	}

	var st PlanState
	if err := json.Unmarshal(doc.Data, &st); err != nil {
		return nil, fmt.Errorf("%w: decode plan document: %v", models.ErrPersistence, err)
	}
	if st.Plan == nil {
		st.Plan = models.NewMealPlan()
	}
	st.Plan.Normalize()
	return &st, nil
}

func (r *gormPlanRepository) Save(userID uint, state *PlanState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: encode plan document: %v", models.ErrPersistence, err)
	}

	doc := models.PlanDocument{UserID: userID, Data: raw}
	err = r.db.
		Where("user_id = ?", userID).
		Assign(models.PlanDocument{Data: raw}).
		FirstOrCreate(&doc).Error
	if err != nil {
		return fmt.Errorf("%w: save plan: %v", models.ErrPersistence, err)
	}
	return nil
}
