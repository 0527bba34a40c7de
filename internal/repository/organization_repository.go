package repository

import (
	"planning-backend/internal/model"

	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(org *model.Organization) error
	GetByID(id uint) (*model.Organization, error)
	GetAll() ([]model.Organization, error)
	Update(org *model.Organization) error
	Delete(id uint) error
	GetAdmins(orgID uint) ([]model.OrganizationUser, error)
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db}
}

func (r *organizationRepository) Create(org *model.Organization) error {
	return r.db.Create(org).Error
}

func (r *organizationRepository) GetByID(id uint) (*model.Organization, error) {
	var org model.Organization
	err := r.db.Preload("Children").First(&org, id).Error
	return &org, err
}

func (r *organizationRepository) GetAll() ([]model.Organization, error) {
	var orgs []model.Organization
	err := r.db.Order("name").Find(&orgs).Error
	return orgs, err
}

func (r *organizationRepository) Update(org *model.Organization) error {
	return r.db.Save(org).Error
}

// Delete detaches children first so they become roots instead of orphans.
func (r *organizationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Organization{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Organization{}, id).Error
	})
}

func (r *organizationRepository) GetAdmins(orgID uint) ([]model.OrganizationUser, error) {
	var admins []model.OrganizationUser
	err := r.db.Where("organization_id = ? AND role = ?", orgID, model.RoleAdmin).Preload("User").Find(&admins).Error
	return admins, err
}
