package repository

import (
	"planning-backend/internal/model"
	"planning-backend/internal/validation"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(a *model.MainActivity) error
	GetByID(id uint) (*model.MainActivity, error)
	Update(a *model.MainActivity) error
	Delete(id uint) error

	ListVisible(initiativeID uint, orgIDs []uint) ([]model.MainActivity, error)
	SumWeightByInitiative(initiativeID uint, excludeID uint) (float64, error)

	GetBudget(activityID uint) (*model.ActivityBudget, error)
	UpsertBudget(b *model.ActivityBudget) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

func (r *activityRepository) Create(a *model.MainActivity) error {
	return r.save(a, 0)
}

func (r *activityRepository) Update(a *model.MainActivity) error {
	return r.save(a, a.ID)
}

func (r *activityRepository) save(a *model.MainActivity, excludeID uint) error {
	if err := validation.ValidatePeriods(a.SelectedMonths, a.SelectedQuarters); err != nil {
		return err
	}
	a.NormalizePeriods()
	if err := validation.ValidateTargets(a.TargetType, a.Baseline, a.Q1Target, a.Q2Target, a.Q3Target, a.Q4Target, a.AnnualTarget); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var init model.StrategicInitiative
		if err := lockForUpdate(tx).First(&init, a.InitiativeID).Error; err != nil {
			return err
		}
		if a.OrganizationID == nil {
			a.OrganizationID = init.OrganizationID
		}

		siblingTotal, err := sumActivityWeight(tx, a.InitiativeID, excludeID)
		if err != nil {
			return err
		}
		if err := validation.CheckActivityWeight(init.Weight, siblingTotal, a.Weight); err != nil {
			return err
		}
		return tx.Save(a).Error
	})
}

func (r *activityRepository) GetByID(id uint) (*model.MainActivity, error) {
	var a model.MainActivity
	err := r.db.Preload("Budget").First(&a, id).Error
	return &a, err
}

func (r *activityRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&model.ActivityBudget{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MainActivity{}, id).Error
	})
}

func (r *activityRepository) ListVisible(initiativeID uint, orgIDs []uint) ([]model.MainActivity, error) {
	var list []model.MainActivity
	q := r.db.Where("initiative_id = ?", initiativeID).Preload("Budget").Order("id")
	if len(orgIDs) > 0 {
		q = q.Where("organization_id IS NULL OR organization_id IN ?", orgIDs)
	} else {
		q = q.Where("organization_id IS NULL")
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *activityRepository) SumWeightByInitiative(initiativeID uint, excludeID uint) (float64, error) {
	return sumActivityWeight(r.db, initiativeID, excludeID)
}

// GetBudget returns the one budget attached to an activity, if any.
func (r *activityRepository) GetBudget(activityID uint) (*model.ActivityBudget, error) {
	var b model.ActivityBudget
	err := r.db.Where("activity_id = ?", activityID).First(&b).Error
	return &b, err
}

// UpsertBudget creates or replaces the activity's single budget after the
// rollup validation passes. Re-running with the same payload is a no-op
// beyond the update itself.
func (r *activityRepository) UpsertBudget(b *model.ActivityBudget) error {
	if err := validation.ValidateBudget(b); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.ActivityBudget
		err := tx.Where("activity_id = ?", b.ActivityID).First(&existing).Error
		switch {
		case err == nil:
			b.ID = existing.ID
			b.CreatedAt = existing.CreatedAt
			return tx.Save(b).Error
		case err == gorm.ErrRecordNotFound:
			return tx.Create(b).Error
		default:
			return err
		}
	})
}

func sumActivityWeight(tx *gorm.DB, initiativeID uint, excludeID uint) (float64, error) {
	var total float64
	q := tx.Model(&model.MainActivity{}).Select("COALESCE(SUM(weight), 0)").Where("initiative_id = ?", initiativeID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Scan(&total).Error
	return total, err
}
