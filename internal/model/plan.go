package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PlanTypeLEOEO      = "LEO/EO Plan"
	PlanTypeDeskTeam   = "Desk/Team Plan"
	PlanTypeIndividual = "Individual Plan"
)

// Plan lifecycle: DRAFT -> SUBMITTED -> APPROVED | REJECTED.
const (
	PlanDraft     = "DRAFT"
	PlanSubmitted = "SUBMITTED"
	PlanApproved  = "APPROVED"
	PlanRejected  = "REJECTED"
)

type Plan struct {
	gorm.Model
	OrganizationID       uint    `json:"organization_id" gorm:"not null;index"`
	PlannerName          string  `json:"planner_name" gorm:"not null"`
	Type                 string  `json:"type" gorm:"size:20;not null"`
	ExecutiveName        string  `json:"executive_name"`
	StrategicObjectiveID uint    `json:"strategic_objective_id" gorm:"not null;index"`
	ProgramID            *uint   `json:"program_id"`
	FiscalYear           string  `json:"fiscal_year" gorm:"size:10;not null"`
	FromDate             time.Time `json:"from_date" gorm:"not null"`
	ToDate               time.Time `json:"to_date" gorm:"not null"`
	Status               string    `json:"status" gorm:"size:20;default:DRAFT;index"`
	SubmittedAt          *time.Time `json:"submitted_at"`

	// SelectedObjectivesWeights is the planner's weight per selected objective
	// (objective id -> weight). It is the submission-time snapshot source and
	// stays frozen on the plan even if objectives are edited later.
	SelectedObjectivesWeights map[string]float64 `json:"selected_objectives_weights" gorm:"serializer:json"`

	Organization       Organization         `json:"organization" gorm:"foreignKey:OrganizationID"`
	StrategicObjective StrategicObjective   `json:"strategic_objective" gorm:"foreignKey:StrategicObjectiveID"`
	Program            *Program             `json:"program" gorm:"foreignKey:ProgramID"`
	SelectedObjectives []StrategicObjective `json:"selected_objectives" gorm:"many2many:plan_selected_objectives;"`
	Reviews            []PlanReview         `json:"reviews" gorm:"foreignKey:PlanID"`
}

type PlanReview struct {
	gorm.Model
	PlanID      uint      `json:"plan_id" gorm:"not null;index"`
	EvaluatorID *uint     `json:"evaluator_id"`
	Status      string    `json:"status" gorm:"size:20;not null"` // APPROVED or REJECTED
	Feedback    string    `json:"feedback"`
	ReviewedAt  time.Time `json:"reviewed_at"`

	Plan      Plan              `json:"-" gorm:"foreignKey:PlanID"`
	Evaluator *OrganizationUser `json:"evaluator" gorm:"foreignKey:EvaluatorID;constraint:OnDelete:SET NULL"`
}
