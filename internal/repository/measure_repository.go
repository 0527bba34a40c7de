package repository

import (
	"planning-backend/internal/model"
	"planning-backend/internal/validation"

	"gorm.io/gorm"
)

type MeasureRepository interface {
	Create(m *model.PerformanceMeasure) error
	GetByID(id uint) (*model.PerformanceMeasure, error)
	Update(m *model.PerformanceMeasure) error
	Delete(id uint) error

	ListVisible(initiativeID uint, orgIDs []uint) ([]model.PerformanceMeasure, error)
	SumWeightByInitiative(initiativeID uint, excludeID uint) (float64, error)
}

type measureRepository struct {
	db *gorm.DB
}

func NewMeasureRepository(db *gorm.DB) MeasureRepository {
	return &measureRepository{db}
}

func (r *measureRepository) Create(m *model.PerformanceMeasure) error {
	return r.save(m, 0)
}

func (r *measureRepository) Update(m *model.PerformanceMeasure) error {
	return r.save(m, m.ID)
}

func (r *measureRepository) save(m *model.PerformanceMeasure, excludeID uint) error {
	if err := validation.ValidatePeriods(m.SelectedMonths, m.SelectedQuarters); err != nil {
		return err
	}
	m.NormalizePeriods()
	if err := validation.ValidateTargets(m.TargetType, m.Baseline, m.Q1Target, m.Q2Target, m.Q3Target, m.Q4Target, m.AnnualTarget); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var init model.StrategicInitiative
		if err := lockForUpdate(tx).First(&init, m.InitiativeID).Error; err != nil {
			return err
		}
		// Custom measures inherit the initiative's organization when unset.
		if m.OrganizationID == nil {
			m.OrganizationID = init.OrganizationID
		}

		siblingTotal, err := sumMeasureWeight(tx, m.InitiativeID, excludeID)
		if err != nil {
			return err
		}
		if err := validation.CheckMeasureWeight(init.Weight, siblingTotal, m.Weight); err != nil {
			return err
		}
		return tx.Save(m).Error
	})
}

func (r *measureRepository) GetByID(id uint) (*model.PerformanceMeasure, error) {
	var m model.PerformanceMeasure
	err := r.db.First(&m, id).Error
	return &m, err
}

func (r *measureRepository) Delete(id uint) error {
	return r.db.Delete(&model.PerformanceMeasure{}, id).Error
}

func (r *measureRepository) ListVisible(initiativeID uint, orgIDs []uint) ([]model.PerformanceMeasure, error) {
	var list []model.PerformanceMeasure
	q := r.db.Where("initiative_id = ?", initiativeID).Order("id")
	if len(orgIDs) > 0 {
		q = q.Where("organization_id IS NULL OR organization_id IN ?", orgIDs)
	} else {
		q = q.Where("organization_id IS NULL")
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *measureRepository) SumWeightByInitiative(initiativeID uint, excludeID uint) (float64, error) {
	return sumMeasureWeight(r.db, initiativeID, excludeID)
}

func sumMeasureWeight(tx *gorm.DB, initiativeID uint, excludeID uint) (float64, error) {
	var total float64
	q := tx.Model(&model.PerformanceMeasure{}).Select("COALESCE(SUM(weight), 0)").Where("initiative_id = ?", initiativeID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Scan(&total).Error
	return total, err
}
