package repository

import (
	"planning-backend/internal/model"
	"planning-backend/internal/validation"

	"gorm.io/gorm"
)

type ObjectiveRepository interface {
	Create(obj *model.StrategicObjective) error
	GetByID(id uint) (*model.StrategicObjective, error)
	GetAll() ([]model.StrategicObjective, error)
	Update(obj *model.StrategicObjective) error
	Delete(id uint) error
	TotalEffectiveWeight() (float64, error)

	CreateProgram(p *model.Program) error
	GetProgramByID(id uint) (*model.Program, error)
	GetPrograms(objectiveID *uint) ([]model.Program, error)
	UpdateProgram(p *model.Program) error
	DeleteProgram(id uint) error

	CreateFeed(f *model.InitiativeFeed) error
	GetFeeds(objectiveID *uint) ([]model.InitiativeFeed, error)
	GetFeedByID(id uint) (*model.InitiativeFeed, error)
	UpdateFeed(f *model.InitiativeFeed) error
	DeleteFeed(id uint) error
}

type objectiveRepository struct {
	db *gorm.DB
}

func NewObjectiveRepository(db *gorm.DB) ObjectiveRepository {
	return &objectiveRepository{db}
}

func (r *objectiveRepository) Create(obj *model.StrategicObjective) error {
	if err := validation.CheckObjectiveWeight(obj.Weight); err != nil {
		return err
	}
	if obj.PlannerWeight != nil {
		if err := validation.CheckObjectiveWeight(*obj.PlannerWeight); err != nil {
			return err
		}
	}
	return r.db.Create(obj).Error
}

func (r *objectiveRepository) GetByID(id uint) (*model.StrategicObjective, error) {
	var obj model.StrategicObjective
	err := r.db.First(&obj, id).Error
	return &obj, err
}

func (r *objectiveRepository) GetAll() ([]model.StrategicObjective, error) {
	var objs []model.StrategicObjective
	err := r.db.Order("id").Find(&objs).Error
	return objs, err
}

func (r *objectiveRepository) Update(obj *model.StrategicObjective) error {
	if err := validation.CheckObjectiveWeight(obj.Weight); err != nil {
		return err
	}
	if obj.PlannerWeight != nil {
		if err := validation.CheckObjectiveWeight(*obj.PlannerWeight); err != nil {
			return err
		}
	}
	return r.db.Save(obj).Error
}

func (r *objectiveRepository) Delete(id uint) error {
	return r.db.Delete(&model.StrategicObjective{}, id).Error
}

// TotalEffectiveWeight sums planner_weight where set, else weight, across all
// objectives. Checked on demand; never blocks a write.
func (r *objectiveRepository) TotalEffectiveWeight() (float64, error) {
	var total float64
	err := r.db.Model(&model.StrategicObjective{}).
		Select("COALESCE(SUM(COALESCE(planner_weight, weight)), 0)").
		Scan(&total).Error
	return total, err
}

func (r *objectiveRepository) CreateProgram(p *model.Program) error {
	return r.db.Create(p).Error
}

func (r *objectiveRepository) GetProgramByID(id uint) (*model.Program, error) {
	var p model.Program
	err := r.db.First(&p, id).Error
	return &p, err
}

func (r *objectiveRepository) GetPrograms(objectiveID *uint) ([]model.Program, error) {
	var list []model.Program
	q := r.db.Order("id")
	if objectiveID != nil {
		q = q.Where("strategic_objective_id = ?", *objectiveID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *objectiveRepository) UpdateProgram(p *model.Program) error {
	return r.db.Save(p).Error
}

func (r *objectiveRepository) DeleteProgram(id uint) error {
	return r.db.Delete(&model.Program{}, id).Error
}

func (r *objectiveRepository) CreateFeed(f *model.InitiativeFeed) error {
	return r.db.Create(f).Error
}

func (r *objectiveRepository) GetFeeds(objectiveID *uint) ([]model.InitiativeFeed, error) {
	var list []model.InitiativeFeed
	q := r.db.Where("is_active = ?", true).Order("name")
	if objectiveID != nil {
		q = q.Where("strategic_objective_id = ?", *objectiveID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *objectiveRepository) GetFeedByID(id uint) (*model.InitiativeFeed, error) {
	var f model.InitiativeFeed
	err := r.db.First(&f, id).Error
	return &f, err
}

func (r *objectiveRepository) UpdateFeed(f *model.InitiativeFeed) error {
	return r.db.Save(f).Error
}

func (r *objectiveRepository) DeleteFeed(id uint) error {
	return r.db.Delete(&model.InitiativeFeed{}, id).Error
}
