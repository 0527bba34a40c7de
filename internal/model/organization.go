package model

import "gorm.io/gorm"

// Organization hierarchy levels, top to bottom.
const (
	OrgTypeMinister       = "MINISTER"
	OrgTypeStateMinister  = "STATE_MINISTER"
	OrgTypeChiefExecutive = "CHIEF_EXECUTIVE"
	OrgTypeLeadExecutive  = "LEAD_EXECUTIVE"
	OrgTypeExecutive      = "EXECUTIVE"
	OrgTypeTeamLead       = "TEAM_LEAD"
	OrgTypeDesk           = "DESK"
)

type Organization struct {
	gorm.Model
	Name       string   `json:"name" gorm:"not null"`
	Type       string   `json:"type" gorm:"size:20;not null"`
	ParentID   *uint    `json:"parent_id"`
	Vision     string   `json:"vision"`
	Mission    string   `json:"mission"`
	CoreValues []string `json:"core_values" gorm:"serializer:json"`

	// Deleting a parent promotes its children to roots.
	Parent   *Organization  `json:"parent" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	Children []Organization `json:"children" gorm:"foreignKey:ParentID"`
	Users    []OrganizationUser `json:"users" gorm:"foreignKey:OrganizationID"`
}
