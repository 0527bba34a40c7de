package model

import "gorm.io/gorm"

const (
	BudgetWithTool    = "WITH_TOOL"
	BudgetWithoutTool = "WITHOUT_TOOL"
)

// Activity types a budget can be costed for. The type selects which detail
// payload applies.
const (
	ActivityTraining    = "Training"
	ActivityMeeting     = "Meeting"
	ActivityWorkshop    = "Workshop"
	ActivityPrinting    = "Printing"
	ActivitySupervision = "Supervision"
	ActivityProcurement = "Procurement"
	ActivityOther       = "Other"
)

// TrainingDetails captures the inputs of the training costing tool.
type TrainingDetails struct {
	Description         string  `json:"description"`
	NumberOfDays        int     `json:"number_of_days"`
	NumberOfParticipants int    `json:"number_of_participants"`
	NumberOfSessions    int     `json:"number_of_sessions"`
	LocationID          uint    `json:"location_id"`
	AdditionalCost      float64 `json:"additional_cost"`
}

type MeetingWorkshopDetails struct {
	Description         string  `json:"description"`
	NumberOfDays        int     `json:"number_of_days"`
	NumberOfParticipants int    `json:"number_of_participants"`
	LocationID          uint    `json:"location_id"`
	AdditionalCost      float64 `json:"additional_cost"`
}

type ProcurementDetails struct {
	Description string            `json:"description"`
	Items       []ProcurementLine `json:"items"`
}

type ProcurementLine struct {
	ItemID   uint    `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

type PrintingDetails struct {
	Description   string `json:"description"`
	DocumentType  string `json:"document_type"`
	NumberOfPages int    `json:"number_of_pages"`
	NumberOfCopies int   `json:"number_of_copies"`
}

type SupervisionDetails struct {
	Description          string  `json:"description"`
	NumberOfDays         int     `json:"number_of_days"`
	NumberOfSupervisors  int     `json:"number_of_supervisors"`
	AdditionalCost       float64 `json:"additional_cost"`
}

type PartnersDetails struct {
	Partners []PartnerFunding `json:"partners"`
}

type PartnerFunding struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ActivityBudget is the single budget attached to a main activity. Exactly
// one estimated-cost field is authoritative, selected by CalculationType.
type ActivityBudget struct {
	gorm.Model
	ActivityID               uint    `json:"activity_id" gorm:"uniqueIndex;not null"`
	CalculationType          string  `json:"budget_calculation_type" gorm:"size:20;default:WITHOUT_TOOL"`
	ActivityType             string  `json:"activity_type" gorm:"size:20"`
	EstimatedCostWithTool    float64 `json:"estimated_cost_with_tool" gorm:"type:decimal(12,2);default:0"`
	EstimatedCostWithoutTool float64 `json:"estimated_cost_without_tool" gorm:"type:decimal(12,2);default:0"`
	GovernmentTreasury       float64 `json:"government_treasury" gorm:"type:decimal(12,2);default:0"`
	SDGFunding               float64 `json:"sdg_funding" gorm:"type:decimal(12,2);default:0"`
	PartnersFunding          float64 `json:"partners_funding" gorm:"type:decimal(12,2);default:0"`
	OtherFunding             float64 `json:"other_funding" gorm:"type:decimal(12,2);default:0"`

	TrainingDetails        *TrainingDetails        `json:"training_details" gorm:"serializer:json"`
	MeetingWorkshopDetails *MeetingWorkshopDetails `json:"meeting_workshop_details" gorm:"serializer:json"`
	ProcurementDetails     *ProcurementDetails     `json:"procurement_details" gorm:"serializer:json"`
	PrintingDetails        *PrintingDetails        `json:"printing_details" gorm:"serializer:json"`
	SupervisionDetails     *SupervisionDetails     `json:"supervision_details" gorm:"serializer:json"`
	PartnersDetails        *PartnersDetails        `json:"partners_details" gorm:"serializer:json"`

	Activity MainActivity `json:"-" gorm:"foreignKey:ActivityID"`
}

// EstimatedCost returns whichever estimate the calculation type makes authoritative.
func (b *ActivityBudget) EstimatedCost() float64 {
	if b.CalculationType == BudgetWithTool {
		return b.EstimatedCostWithTool
	}
	return b.EstimatedCostWithoutTool
}

func (b *ActivityBudget) TotalFunding() float64 {
	return b.GovernmentTreasury + b.SDGFunding + b.PartnersFunding + b.OtherFunding
}

func (b *ActivityBudget) FundingGap() float64 {
	return b.EstimatedCost() - b.TotalFunding()
}
