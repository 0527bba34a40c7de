package repository

import (
	"errors"

	"planning-backend/internal/model"
	"planning-backend/internal/validation"

	"gorm.io/gorm"
)

var ErrCustomNeedsOrganization = errors.New("organization is required for custom initiatives")

// ProgramParentWeight is the allocation ceiling for initiatives under a
// program. Programs carry no weight of their own.
const ProgramParentWeight = 100.0

type InitiativeRepository interface {
	Create(init *model.StrategicInitiative) error
	GetByID(id uint) (*model.StrategicInitiative, error)
	Update(init *model.StrategicInitiative) error
	Delete(id uint) error

	// ListVisible returns default initiatives plus custom ones owned by any
	// of the given organizations, optionally scoped to one parent.
	ListVisible(objectiveID, programID *uint, orgIDs []uint) ([]model.StrategicInitiative, error)
	SumWeightByObjective(objectiveID uint, excludeID uint) (float64, error)
	SumWeightByProgram(programID uint, excludeID uint) (float64, error)
}

type initiativeRepository struct {
	db *gorm.DB
}

func NewInitiativeRepository(db *gorm.DB) InitiativeRepository {
	return &initiativeRepository{db}
}

func (r *initiativeRepository) Create(init *model.StrategicInitiative) error {
	return r.save(init, 0)
}

func (r *initiativeRepository) Update(init *model.StrategicInitiative) error {
	return r.save(init, init.ID)
}

// save validates the candidate weight against the persisted sibling total
// inside one transaction, holding a lock on the parent row so two writers
// cannot both pass against the same stale snapshot.
func (r *initiativeRepository) save(init *model.StrategicInitiative, excludeID uint) error {
	if err := init.ValidateParent(); err != nil {
		return err
	}
	if !init.IsDefault && init.OrganizationID == nil {
		return ErrCustomNeedsOrganization
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var parentWeight float64
		if init.StrategicObjectiveID != nil {
			var obj model.StrategicObjective
			if err := lockForUpdate(tx).First(&obj, *init.StrategicObjectiveID).Error; err != nil {
				return err
			}
			parentWeight = obj.EffectiveWeight()
		} else {
			var prog model.Program
			if err := lockForUpdate(tx).First(&prog, *init.ProgramID).Error; err != nil {
				return err
			}
			parentWeight = ProgramParentWeight
		}

		siblingTotal, err := sumInitiativeWeight(tx, init.StrategicObjectiveID, init.ProgramID, excludeID)
		if err != nil {
			return err
		}
		if err := validation.CheckInitiativeWeight(parentWeight, siblingTotal, init.Weight); err != nil {
			return err
		}
		return tx.Save(init).Error
	})
}

func (r *initiativeRepository) GetByID(id uint) (*model.StrategicInitiative, error) {
	var init model.StrategicInitiative
	err := r.db.Preload("StrategicObjective").Preload("Program").First(&init, id).Error
	return &init, err
}

func (r *initiativeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("initiative_id = ?", id).Delete(&model.PerformanceMeasure{}).Error; err != nil {
			return err
		}
		if err := tx.Where("initiative_id = ?", id).Delete(&model.MainActivity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.StrategicInitiative{}, id).Error
	})
}

func (r *initiativeRepository) ListVisible(objectiveID, programID *uint, orgIDs []uint) ([]model.StrategicInitiative, error) {
	var list []model.StrategicInitiative
	q := r.db.Order("id")
	if objectiveID != nil {
		q = q.Where("strategic_objective_id = ?", *objectiveID)
	}
	if programID != nil {
		q = q.Where("program_id = ?", *programID)
	}
	if len(orgIDs) > 0 {
		q = q.Where("is_default = ? OR organization_id IN ?", true, orgIDs)
	} else {
		q = q.Where("is_default = ?", true)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *initiativeRepository) SumWeightByObjective(objectiveID uint, excludeID uint) (float64, error) {
	objID := objectiveID
	return sumInitiativeWeight(r.db, &objID, nil, excludeID)
}

func (r *initiativeRepository) SumWeightByProgram(programID uint, excludeID uint) (float64, error) {
	progID := programID
	return sumInitiativeWeight(r.db, nil, &progID, excludeID)
}

func sumInitiativeWeight(tx *gorm.DB, objectiveID, programID *uint, excludeID uint) (float64, error) {
	var total float64
	q := tx.Model(&model.StrategicInitiative{}).Select("COALESCE(SUM(weight), 0)")
	if objectiveID != nil {
		q = q.Where("strategic_objective_id = ?", *objectiveID)
	}
	if programID != nil {
		q = q.Where("program_id = ?", *programID)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Scan(&total).Error
	return total, err
}
