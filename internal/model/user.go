package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `json:"username" gorm:"unique;not null"`
	Email    string `json:"email"`
	Password string `json:"-"`

	OrganizationUsers []OrganizationUser `json:"organization_users"`
}

// Roles a user can hold inside an organization.
const (
	RoleAdmin     = "ADMIN"
	RolePlanner   = "PLANNER"
	RoleEvaluator = "EVALUATOR"
)

type OrganizationUser struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"uniqueIndex:idx_user_org_role;not null"`
	OrganizationID uint   `json:"organization_id" gorm:"uniqueIndex:idx_user_org_role;not null"`
	Role           string `json:"role" gorm:"size:20;uniqueIndex:idx_user_org_role;not null"`

	User         User         `json:"-" gorm:"foreignKey:UserID"`
	Organization Organization `json:"organization" gorm:"foreignKey:OrganizationID"`
}
