package model

import (
	"errors"

	"gorm.io/gorm"
)

var ErrInitiativeParent = errors.New("initiative must be linked to exactly one parent: strategic objective or program")

// StrategicInitiative hangs off exactly one of StrategicObjective or Program.
// Custom (non-default) initiatives belong to the organization that authored them.
type StrategicInitiative struct {
	gorm.Model
	Name                 string  `json:"name" gorm:"not null"`
	Weight               float64 `json:"weight" gorm:"type:decimal(5,2);not null"`
	StrategicObjectiveID *uint   `json:"strategic_objective_id" gorm:"index:idx_initiative_objective"`
	ProgramID            *uint   `json:"program_id" gorm:"index:idx_initiative_program"`
	IsDefault            bool    `json:"is_default" gorm:"default:true"`
	OrganizationID       *uint   `json:"organization_id" gorm:"index:idx_initiative_organization"`
	InitiativeFeedID     *uint   `json:"initiative_feed_id"`

	StrategicObjective *StrategicObjective `json:"strategic_objective" gorm:"foreignKey:StrategicObjectiveID"`
	Program            *Program            `json:"program" gorm:"foreignKey:ProgramID"`
	Organization       *Organization       `json:"organization" gorm:"foreignKey:OrganizationID"`
	InitiativeFeed     *InitiativeFeed     `json:"initiative_feed" gorm:"foreignKey:InitiativeFeedID;constraint:OnDelete:SET NULL"`

	PerformanceMeasures []PerformanceMeasure `json:"performance_measures" gorm:"foreignKey:InitiativeID"`
	MainActivities      []MainActivity       `json:"main_activities" gorm:"foreignKey:InitiativeID"`
}

// ValidateParent enforces the objective-xor-program constraint.
func (i *StrategicInitiative) ValidateParent() error {
	hasObjective := i.StrategicObjectiveID != nil
	hasProgram := i.ProgramID != nil
	if hasObjective == hasProgram {
		return ErrInitiativeParent
	}
	return nil
}
