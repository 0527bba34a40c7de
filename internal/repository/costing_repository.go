package repository

import (
	"planning-backend/internal/model"

	"gorm.io/gorm"
)

// CostingFilters narrows reference-cost list queries. Zero values mean no
// filter.
type CostingFilters struct {
	Region       string
	Hardship     *bool
	OriginID     uint
	DestinationID uint
	TripType     string
	LocationID   uint
	ServiceType  string
	CostType     string
	DocumentType string
	Category     string
	ActivityType string
	Location     string
}

// CostingRepository is plain CRUD over the static reference-cost tables.
// Create/Save/Remove take any of the costing models; the typed list methods
// carry each table's filters.
type CostingRepository interface {
	Create(rec any) error
	Save(rec any) error
	Remove(rec any, id uint) error

	ListLocations(f CostingFilters) ([]model.Location, error)
	GetLocation(id uint) (*model.Location, error)
	ListLandTransports(f CostingFilters) ([]model.LandTransport, error)
	ListAirTransports(f CostingFilters) ([]model.AirTransport, error)
	ListPerDiems(f CostingFilters) ([]model.PerDiem, error)
	ListAccommodations(f CostingFilters) ([]model.Accommodation, error)
	ListParticipantCosts(f CostingFilters) ([]model.ParticipantCost, error)
	ListSessionCosts(f CostingFilters) ([]model.SessionCost, error)
	ListPrintingCosts(f CostingFilters) ([]model.PrintingCost, error)
	ListSupervisorCosts(f CostingFilters) ([]model.SupervisorCost, error)
	ListProcurementItems(f CostingFilters) ([]model.ProcurementItem, error)
	GetProcurementItem(id uint) (*model.ProcurementItem, error)
	ListCostingAssumptions(f CostingFilters) ([]model.ActivityCostingAssumption, error)
}

type costingRepository struct {
	db *gorm.DB
}

func NewCostingRepository(db *gorm.DB) CostingRepository {
	return &costingRepository{db}
}

func (r *costingRepository) Create(rec any) error {
	return r.db.Create(rec).Error
}

func (r *costingRepository) Save(rec any) error {
	return r.db.Save(rec).Error
}

func (r *costingRepository) Remove(rec any, id uint) error {
	return r.db.Delete(rec, id).Error
}

func (r *costingRepository) ListLocations(f CostingFilters) ([]model.Location, error) {
	var list []model.Location
	q := r.db.Order("region, name")
	if f.Region != "" {
		q = q.Where("region = ?", f.Region)
	}
	if f.Hardship != nil {
		q = q.Where("is_hardship_area = ?", *f.Hardship)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) GetLocation(id uint) (*model.Location, error) {
	var loc model.Location
	err := r.db.First(&loc, id).Error
	return &loc, err
}

func (r *costingRepository) ListLandTransports(f CostingFilters) ([]model.LandTransport, error) {
	var list []model.LandTransport
	q := r.db.Preload("Origin").Preload("Destination")
	if f.OriginID != 0 {
		q = q.Where("origin_id = ?", f.OriginID)
	}
	if f.DestinationID != 0 {
		q = q.Where("destination_id = ?", f.DestinationID)
	}
	if f.TripType != "" {
		q = q.Where("trip_type = ?", f.TripType)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) ListAirTransports(f CostingFilters) ([]model.AirTransport, error) {
	var list []model.AirTransport
	q := r.db.Preload("Origin").Preload("Destination")
	if f.OriginID != 0 {
		q = q.Where("origin_id = ?", f.OriginID)
	}
	if f.DestinationID != 0 {
		q = q.Where("destination_id = ?", f.DestinationID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) ListPerDiems(f CostingFilters) ([]model.PerDiem, error) {
	var list []model.PerDiem
	q := r.db.Preload("Location")
	if f.LocationID != 0 {
		q = q.Where("location_id = ?", f.LocationID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) ListAccommodations(f CostingFilters) ([]model.Accommodation, error) {
	var list []model.Accommodation
	q := r.db.Preload("Location")
	if f.LocationID != 0 {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) ListParticipantCosts(f CostingFilters) ([]model.ParticipantCost, error) {
	var list []model.ParticipantCost
	q := r.db
	if f.CostType != "" {
		q = q.Where("cost_type = ?", f.CostType)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) ListSessionCosts(f CostingFilters) ([]model.SessionCost, error) {
	var list []model.SessionCost
	q := r.db
	if f.CostType != "" {
		q = q.Where("cost_type = ?", f.CostType)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) ListPrintingCosts(f CostingFilters) ([]model.PrintingCost, error) {
	var list []model.PrintingCost
	q := r.db
	if f.DocumentType != "" {
		q = q.Where("document_type = ?", f.DocumentType)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) ListSupervisorCosts(f CostingFilters) ([]model.SupervisorCost, error) {
	var list []model.SupervisorCost
	q := r.db
	if f.CostType != "" {
		q = q.Where("cost_type = ?", f.CostType)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) ListProcurementItems(f CostingFilters) ([]model.ProcurementItem, error) {
	var list []model.ProcurementItem
	q := r.db.Order("category, name")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *costingRepository) GetProcurementItem(id uint) (*model.ProcurementItem, error) {
	var item model.ProcurementItem
	err := r.db.First(&item, id).Error
	return &item, err
}

func (r *costingRepository) ListCostingAssumptions(f CostingFilters) ([]model.ActivityCostingAssumption, error) {
	var list []model.ActivityCostingAssumption
	q := r.db
	if f.ActivityType != "" {
		q = q.Where("activity_type = ?", f.ActivityType)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.CostType != "" {
		q = q.Where("cost_type = ?", f.CostType)
	}
	err := q.Find(&list).Error
	return list, err
}
