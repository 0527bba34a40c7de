package model

import "gorm.io/gorm"

// Reference cost tables. Static lookup data maintained by admins and read by
// the budget costing tools; none of the weight invariants apply here.

type Location struct {
	gorm.Model
	Name           string `json:"name" gorm:"not null"`
	Region         string `json:"region" gorm:"not null"`
	IsHardshipArea bool   `json:"is_hardship_area" gorm:"default:false"`
}

const (
	TripSingle = "SINGLE"
	TripRound  = "ROUND"
)

type LandTransport struct {
	gorm.Model
	OriginID      uint    `json:"origin_id" gorm:"not null"`
	DestinationID uint    `json:"destination_id" gorm:"not null"`
	TripType      string  `json:"trip_type" gorm:"size:10;default:SINGLE"`
	Price         float64 `json:"price" gorm:"type:decimal(10,2);not null"`

	Origin      Location `json:"origin" gorm:"foreignKey:OriginID"`
	Destination Location `json:"destination" gorm:"foreignKey:DestinationID"`
}

type AirTransport struct {
	gorm.Model
	OriginID      uint    `json:"origin_id" gorm:"not null"`
	DestinationID uint    `json:"destination_id" gorm:"not null"`
	Price         float64 `json:"price" gorm:"type:decimal(10,2);not null"`

	Origin      Location `json:"origin" gorm:"foreignKey:OriginID"`
	Destination Location `json:"destination" gorm:"foreignKey:DestinationID"`
}

type PerDiem struct {
	gorm.Model
	LocationID              uint    `json:"location_id" gorm:"not null"`
	Amount                  float64 `json:"amount" gorm:"type:decimal(10,2);not null"`
	HardshipAllowanceAmount float64 `json:"hardship_allowance_amount" gorm:"type:decimal(10,2);default:0"`

	Location Location `json:"location" gorm:"foreignKey:LocationID"`
}

type Accommodation struct {
	gorm.Model
	LocationID  uint    `json:"location_id" gorm:"not null"`
	ServiceType string  `json:"service_type" gorm:"size:20;not null"` // LUNCH, HALL_REFRESHMENT, DINNER, BED, FULL_BOARD
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`

	Location Location `json:"location" gorm:"foreignKey:LocationID"`
}

type ParticipantCost struct {
	gorm.Model
	CostType string  `json:"cost_type" gorm:"size:20;not null"` // FLASH_DISK, STATIONARY, ALL
	Price    float64 `json:"price" gorm:"type:decimal(10,2);not null"`
}

type SessionCost struct {
	gorm.Model
	CostType string  `json:"cost_type" gorm:"size:20;not null"` // FLIP_CHART, MARKER, TONER_PAPER, ALL
	Price    float64 `json:"price" gorm:"type:decimal(10,2);not null"`
}

type PrintingCost struct {
	gorm.Model
	DocumentType string  `json:"document_type" gorm:"size:20;not null"` // MANUAL, BOOKLET, LEAFLET, BROCHURE
	PricePerPage float64 `json:"price_per_page" gorm:"type:decimal(10,2);not null"`
}

type SupervisorCost struct {
	gorm.Model
	CostType string  `json:"cost_type" gorm:"size:20;not null"` // MOBILE_CARD_300, MOBILE_CARD_500, STATIONARY, ALL
	Amount   float64 `json:"amount" gorm:"type:decimal(10,2);not null"`
}

type ProcurementItem struct {
	gorm.Model
	Category  string  `json:"category" gorm:"size:20;uniqueIndex:idx_procurement_item;not null"`
	Name      string  `json:"name" gorm:"uniqueIndex:idx_procurement_item,length:191;not null"`
	Unit      string  `json:"unit" gorm:"size:20;uniqueIndex:idx_procurement_item;not null"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(12,2);not null"`
}

type ActivityCostingAssumption struct {
	gorm.Model
	ActivityType string  `json:"activity_type" gorm:"size:20;uniqueIndex:idx_costing_assumption;not null"`
	Location     string  `json:"location" gorm:"size:20;uniqueIndex:idx_costing_assumption;not null"`
	CostType     string  `json:"cost_type" gorm:"size:30;uniqueIndex:idx_costing_assumption;not null"`
	Amount       float64 `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description  string  `json:"description"`
}
