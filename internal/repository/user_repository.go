package repository

import (
	"planning-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	Update(user *model.User) error

	AddToOrganization(link *model.OrganizationUser) error
	GetMemberships(userID uint) ([]model.OrganizationUser, error)
	GetMembership(userID, orgID uint, role string) (*model.OrganizationUser, error)
	GetOrganizationIDs(userID uint) ([]uint, error)
	GetRoles(userID uint) ([]string, error)
	RemoveFromOrganization(linkID uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("OrganizationUsers.Organization").First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) AddToOrganization(link *model.OrganizationUser) error {
	return r.db.Create(link).Error
}

func (r *userRepository) GetMemberships(userID uint) ([]model.OrganizationUser, error) {
	var list []model.OrganizationUser
	err := r.db.Where("user_id = ?", userID).Preload("Organization").Find(&list).Error
	return list, err
}

func (r *userRepository) GetMembership(userID, orgID uint, role string) (*model.OrganizationUser, error) {
	var link model.OrganizationUser
	err := r.db.Where("user_id = ? AND organization_id = ? AND role = ?", userID, orgID, role).First(&link).Error
	return &link, err
}

func (r *userRepository) GetOrganizationIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.OrganizationUser{}).Where("user_id = ?", userID).Pluck("organization_id", &ids).Error
	return ids, err
}

func (r *userRepository) GetRoles(userID uint) ([]string, error) {
	var roles []string
	err := r.db.Model(&model.OrganizationUser{}).Where("user_id = ?", userID).Distinct().Pluck("role", &roles).Error
	return roles, err
}

func (r *userRepository) RemoveFromOrganization(linkID uint) error {
	return r.db.Delete(&model.OrganizationUser{}, linkID).Error
}
