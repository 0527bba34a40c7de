package repository

import (
	"planning-backend/internal/model"

	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(plan *model.Plan) error
	GetByID(id uint) (*model.Plan, error)
	Update(plan *model.Plan) error
	Delete(id uint) error

	ListByOrganizations(orgIDs []uint) ([]model.Plan, error)
	ListAll() ([]model.Plan, error)
	ListByStatus(status string, orgIDs []uint) ([]model.Plan, error)

	// HasActivePlan reports whether another SUBMITTED or APPROVED plan exists
	// for the same (organization, strategic objective) pair.
	HasActivePlan(orgID, objectiveID, excludePlanID uint) (bool, error)
	ReplaceSelectedObjectives(plan *model.Plan, objectives []model.StrategicObjective) error

	GetReviews(planID uint) ([]model.PlanReview, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db}
}

func (r *planRepository) Create(plan *model.Plan) error {
	return r.db.Create(plan).Error
}

func (r *planRepository) GetByID(id uint) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.Preload("Organization").Preload("StrategicObjective").
		Preload("SelectedObjectives").Preload("Reviews").First(&plan, id).Error
	return &plan, err
}

func (r *planRepository) Update(plan *model.Plan) error {
	return r.db.Save(plan).Error
}

func (r *planRepository) Delete(id uint) error {
	return r.db.Delete(&model.Plan{}, id).Error
}

func (r *planRepository) ListByOrganizations(orgIDs []uint) ([]model.Plan, error) {
	var plans []model.Plan
	err := r.db.Where("organization_id IN ?", orgIDs).
		Preload("Organization").Preload("StrategicObjective").Preload("Reviews").
		Order("created_at desc").Find(&plans).Error
	return plans, err
}

func (r *planRepository) ListAll() ([]model.Plan, error) {
	var plans []model.Plan
	err := r.db.Preload("Organization").Preload("StrategicObjective").Preload("Reviews").
		Order("created_at desc").Find(&plans).Error
	return plans, err
}

func (r *planRepository) ListByStatus(status string, orgIDs []uint) ([]model.Plan, error) {
	var plans []model.Plan
	q := r.db.Where("status = ?", status).
		Preload("Organization").Preload("StrategicObjective").Preload("SelectedObjectives").Preload("Reviews").
		Order("submitted_at desc")
	if orgIDs != nil {
		q = q.Where("organization_id IN ?", orgIDs)
	}
	err := q.Find(&plans).Error
	return plans, err
}

func (r *planRepository) HasActivePlan(orgID, objectiveID, excludePlanID uint) (bool, error) {
	var count int64
	q := r.db.Model(&model.Plan{}).
		Where("organization_id = ? AND strategic_objective_id = ?", orgID, objectiveID).
		Where("status IN ?", []string{model.PlanSubmitted, model.PlanApproved})
	if excludePlanID != 0 {
		q = q.Where("id <> ?", excludePlanID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *planRepository) ReplaceSelectedObjectives(plan *model.Plan, objectives []model.StrategicObjective) error {
	return r.db.Model(plan).Association("SelectedObjectives").Replace(objectives)
}

func (r *planRepository) GetReviews(planID uint) ([]model.PlanReview, error) {
	var reviews []model.PlanReview
	err := r.db.Where("plan_id = ?", planID).Preload("Evaluator").Order("reviewed_at desc").Find(&reviews).Error
	return reviews, err
}
