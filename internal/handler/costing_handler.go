package handler

import (
	"strconv"

	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CostingHandler serves the static reference-cost tables behind the costing
// tool. Lookup routes are open to any authenticated user; writes are wired
// behind the admin role.
type CostingHandler struct {
	repo repository.CostingRepository
}

func NewCostingHandler(repo repository.CostingRepository) *CostingHandler {
	return &CostingHandler{repo: repo}
}

// costingRecord returns a fresh pointer for the named table, nil for unknown
// tables.
func costingRecord(table string) any {
	switch table {
	case "locations":
		return &model.Location{}
	case "land-transports":
		return &model.LandTransport{}
	case "air-transports":
		return &model.AirTransport{}
	case "per-diems":
		return &model.PerDiem{}
	case "accommodations":
		return &model.Accommodation{}
	case "participant-costs":
		return &model.ParticipantCost{}
	case "session-costs":
		return &model.SessionCost{}
	case "printing-costs":
		return &model.PrintingCost{}
	case "supervisor-costs":
		return &model.SupervisorCost{}
	case "procurement-items":
		return &model.ProcurementItem{}
	case "costing-assumptions":
		return &model.ActivityCostingAssumption{}
	}
	return nil
}

func setCostingID(rec any, id uint) {
	switch r := rec.(type) {
	case *model.Location:
		r.ID = id
	case *model.LandTransport:
		r.ID = id
	case *model.AirTransport:
		r.ID = id
	case *model.PerDiem:
		r.ID = id
	case *model.Accommodation:
		r.ID = id
	case *model.ParticipantCost:
		r.ID = id
	case *model.SessionCost:
		r.ID = id
	case *model.PrintingCost:
		r.ID = id
	case *model.SupervisorCost:
		r.ID = id
	case *model.ProcurementItem:
		r.ID = id
	case *model.ActivityCostingAssumption:
		r.ID = id
	}
}

func (h *CostingHandler) Create(c *fiber.Ctx) error {
	rec := costingRecord(c.Params("table"))
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown costing table"})
	}
	if err := c.BodyParser(rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.repo.Create(rec); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Created", "data": rec})
}

func (h *CostingHandler) Update(c *fiber.Ctx) error {
	rec := costingRecord(c.Params("table"))
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown costing table"})
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	if err := c.BodyParser(rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	setCostingID(rec, uint(id))
	if err := h.repo.Save(rec); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Updated", "data": rec})
}

func (h *CostingHandler) Delete(c *fiber.Ctx) error {
	rec := costingRecord(c.Params("table"))
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown costing table"})
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	if err := h.repo.Remove(rec, uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}

func (h *CostingHandler) List(c *fiber.Ctx) error {
	f := filtersFromQuery(c)
	var (
		data any
		err  error
	)
	switch c.Params("table") {
	case "locations":
		data, err = h.repo.ListLocations(f)
	case "land-transports":
		data, err = h.repo.ListLandTransports(f)
	case "air-transports":
		data, err = h.repo.ListAirTransports(f)
	case "per-diems":
		data, err = h.repo.ListPerDiems(f)
	case "accommodations":
		data, err = h.repo.ListAccommodations(f)
	case "participant-costs":
		data, err = h.repo.ListParticipantCosts(f)
	case "session-costs":
		data, err = h.repo.ListSessionCosts(f)
	case "printing-costs":
		data, err = h.repo.ListPrintingCosts(f)
	case "supervisor-costs":
		data, err = h.repo.ListSupervisorCosts(f)
	case "procurement-items":
		data, err = h.repo.ListProcurementItems(f)
	case "costing-assumptions":
		data, err = h.repo.ListCostingAssumptions(f)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown costing table"})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": data})
}

func (h *CostingHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	switch c.Params("table") {
	case "locations":
		loc, err := h.repo.GetLocation(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": loc})
	case "procurement-items":
		item, err := h.repo.GetProcurementItem(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": item})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown costing table"})
}

func filtersFromQuery(c *fiber.Ctx) repository.CostingFilters {
	f := repository.CostingFilters{
		Region:       c.Query("region"),
		TripType:     c.Query("trip_type"),
		ServiceType:  c.Query("service_type"),
		CostType:     c.Query("cost_type"),
		DocumentType: c.Query("document_type"),
		Category:     c.Query("category"),
		ActivityType: c.Query("activity_type"),
		Location:     c.Query("location"),
	}
	if raw := c.Query("hardship"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.Hardship = &v
		}
	}
	if id := queryUint(c, "origin"); id != nil {
		f.OriginID = *id
	}
	if id := queryUint(c, "destination"); id != nil {
		f.DestinationID = *id
	}
	if id := queryUint(c, "location_id"); id != nil {
		f.LocationID = *id
	}
	return f
}
