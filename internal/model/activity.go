package model

import "gorm.io/gorm"

type MainActivity struct {
	gorm.Model
	InitiativeID     uint     `json:"initiative_id" gorm:"not null;index"`
	Name             string   `json:"name" gorm:"not null"`
	Weight           float64  `json:"weight" gorm:"type:decimal(5,2);not null"`
	Baseline         string   `json:"baseline"`
	TargetType       string   `json:"target_type" gorm:"size:20;default:cumulative"`
	Q1Target         float64  `json:"q1_target" gorm:"type:decimal(20,2);default:0"`
	Q2Target         float64  `json:"q2_target" gorm:"type:decimal(20,2);default:0"`
	Q3Target         float64  `json:"q3_target" gorm:"type:decimal(20,2);default:0"`
	Q4Target         float64  `json:"q4_target" gorm:"type:decimal(20,2);default:0"`
	AnnualTarget     float64  `json:"annual_target" gorm:"type:decimal(20,2);default:0"`
	OrganizationID   *uint    `json:"organization_id" gorm:"index"`
	SelectedMonths   []string `json:"selected_months" gorm:"serializer:json"`
	SelectedQuarters []string `json:"selected_quarters" gorm:"serializer:json"`

	Initiative   StrategicInitiative `json:"-" gorm:"foreignKey:InitiativeID"`
	Organization *Organization       `json:"organization" gorm:"foreignKey:OrganizationID"`
	Budget       *ActivityBudget     `json:"budget" gorm:"foreignKey:ActivityID"`
}

func (a *MainActivity) NormalizePeriods() {
	if a.SelectedMonths == nil {
		a.SelectedMonths = []string{}
	}
	if a.SelectedQuarters == nil {
		a.SelectedQuarters = []string{}
	}
}
