package handler

import (
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type MeasureHandler struct {
	repo        repository.MeasureRepository
	initiatives repository.InitiativeRepository
	users       repository.UserRepository
}

func NewMeasureHandler(repo repository.MeasureRepository, initiatives repository.InitiativeRepository, users repository.UserRepository) *MeasureHandler {
	return &MeasureHandler{repo: repo, initiatives: initiatives, users: users}
}

type MeasureRequest struct {
	InitiativeID     uint     `json:"initiative_id"`
	Name             string   `json:"name"`
	Weight           *float64 `json:"weight"`
	Baseline         *string  `json:"baseline"`
	TargetType       string   `json:"target_type"`
	Q1Target         *float64 `json:"q1_target"`
	Q2Target         *float64 `json:"q2_target"`
	Q3Target         *float64 `json:"q3_target"`
	Q4Target         *float64 `json:"q4_target"`
	AnnualTarget     *float64 `json:"annual_target"`
	OrganizationID   *uint    `json:"organization_id"`
	SelectedMonths   []string `json:"selected_months"`
	SelectedQuarters []string `json:"selected_quarters"`
}

func (h *MeasureHandler) Create(c *fiber.Ctx) error {
	var req MeasureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.InitiativeID == 0 || req.Name == "" || req.Weight == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Initiative, name and weight are required"})
	}

	m := model.PerformanceMeasure{
		InitiativeID:     req.InitiativeID,
		Name:             req.Name,
		Weight:           *req.Weight,
		TargetType:       model.TargetCumulative,
		OrganizationID:   req.OrganizationID,
		SelectedMonths:   req.SelectedMonths,
		SelectedQuarters: req.SelectedQuarters,
	}
	applyMeasureTargets(&m, &req)
	if err := h.repo.Create(&m); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Performance measure created", "data": m})
}

func (h *MeasureHandler) GetAll(c *fiber.Ctx) error {
	initiativeID := queryUint(c, "initiative")
	if initiativeID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter initiative is required"})
	}
	orgIDs, err := h.users.GetOrganizationIDs(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.repo.ListVisible(*initiativeID, orgIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *MeasureHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid measure id"})
	}
	m, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": m})
}

func (h *MeasureHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid measure id"})
	}
	m, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	var req MeasureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != "" {
		m.Name = req.Name
	}
	if req.Weight != nil {
		m.Weight = *req.Weight
	}
	if req.InitiativeID != 0 {
		m.InitiativeID = req.InitiativeID
	}
	if req.OrganizationID != nil {
		m.OrganizationID = req.OrganizationID
	}
	if req.SelectedMonths != nil {
		m.SelectedMonths = req.SelectedMonths
	}
	if req.SelectedQuarters != nil {
		m.SelectedQuarters = req.SelectedQuarters
	}
	applyMeasureTargets(m, &req)

	if err := h.repo.Update(m); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Performance measure updated", "data": m})
}

func (h *MeasureHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid measure id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Performance measure deleted"})
}

// WeightSummary reports measure allocation under one initiative against the
// 35% ceiling of the initiative weight.
func (h *MeasureHandler) WeightSummary(c *fiber.Ctx) error {
	initiativeID := queryUint(c, "initiative")
	if initiativeID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter initiative is required"})
	}
	init, err := h.initiatives.GetByID(*initiativeID)
	if err != nil {
		return respondError(c, err)
	}
	total, err := h.repo.SumWeightByInitiative(*initiativeID, 0)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(validation.MeasureSummary(init.Weight, total))
}

func (h *MeasureHandler) ValidateWeight(c *fiber.Ctx) error {
	initiativeID := queryUint(c, "initiative")
	if initiativeID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter initiative is required"})
	}
	init, err := h.initiatives.GetByID(*initiativeID)
	if err != nil {
		return respondError(c, err)
	}
	total, err := h.repo.SumWeightByInitiative(*initiativeID, 0)
	if err != nil {
		return respondError(c, err)
	}
	summary := validation.MeasureSummary(init.Weight, total)
	if summary.IsValid {
		return c.JSON(fiber.Map{"message": "Performance measure weights are valid", "is_valid": true, "data": summary})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message":  "Performance measure weights exceed the available share of the initiative weight",
		"is_valid": false,
		"data":     summary,
	})
}

func applyMeasureTargets(m *model.PerformanceMeasure, req *MeasureRequest) {
	if req.TargetType != "" {
		m.TargetType = req.TargetType
	}
	if req.Baseline != nil {
		m.Baseline = *req.Baseline
	}
	if req.Q1Target != nil {
		m.Q1Target = *req.Q1Target
	}
	if req.Q2Target != nil {
		m.Q2Target = *req.Q2Target
	}
	if req.Q3Target != nil {
		m.Q3Target = *req.Q3Target
	}
	if req.Q4Target != nil {
		m.Q4Target = *req.Q4Target
	}
	if req.AnnualTarget != nil {
		m.AnnualTarget = *req.AnnualTarget
	}
}
