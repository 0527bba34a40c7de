package model

import "gorm.io/gorm"

type StrategicObjective struct {
	gorm.Model
	Title         string   `json:"title" gorm:"not null"`
	Description   string   `json:"description"`
	Weight        float64  `json:"weight" gorm:"type:decimal(5,2);not null"`
	IsDefault     bool     `json:"is_default" gorm:"default:true"`
	PlannerWeight *float64 `json:"planner_weight" gorm:"type:decimal(5,2)"`

	Programs    []Program             `json:"programs" gorm:"foreignKey:StrategicObjectiveID"`
	Initiatives []StrategicInitiative `json:"initiatives" gorm:"foreignKey:StrategicObjectiveID"`
}

// EffectiveWeight is the planner override when set, else the admin weight.
func (o *StrategicObjective) EffectiveWeight() float64 {
	if o.PlannerWeight != nil {
		return *o.PlannerWeight
	}
	return o.Weight
}

// Program groups initiatives under an objective. It carries no weight of
// its own; weight authority stays at the objective/initiative level.
type Program struct {
	gorm.Model
	StrategicObjectiveID uint   `json:"strategic_objective_id" gorm:"not null"`
	Name                 string `json:"name" gorm:"not null"`
	Description          string `json:"description"`
	IsDefault            bool   `json:"is_default" gorm:"default:true"`

	Initiatives []StrategicInitiative `json:"initiatives" gorm:"foreignKey:ProgramID"`
}

// InitiativeFeed is the catalog of predefined initiatives planners can pick
// from when building a plan.
type InitiativeFeed struct {
	gorm.Model
	Name                 string `json:"name" gorm:"not null"`
	Description          string `json:"description"`
	StrategicObjectiveID *uint  `json:"strategic_objective_id"`
	IsActive             bool   `json:"is_active" gorm:"default:true"`

	StrategicObjective *StrategicObjective `json:"strategic_objective" gorm:"foreignKey:StrategicObjectiveID"`
}
