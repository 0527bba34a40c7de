package handler

import (
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	repo        repository.ActivityRepository
	initiatives repository.InitiativeRepository
	users       repository.UserRepository
}

func NewActivityHandler(repo repository.ActivityRepository, initiatives repository.InitiativeRepository, users repository.UserRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo, initiatives: initiatives, users: users}
}

type ActivityRequest struct {
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

type BudgetRequest struct {
	CalculationType          string   `json:"budget_calculation_type"`
	ActivityType             string   `json:"activity_type"`
	EstimatedCostWithTool    *float64 `json:"estimated_cost_with_tool"`
	EstimatedCostWithoutTool *float64 `json:"estimated_cost_without_tool"`
	GovernmentTreasury       *float64 `json:"government_treasury"`
	SDGFunding               *float64 `json:"sdg_funding"`
	PartnersFunding          *float64 `json:"partners_funding"`
	OtherFunding             *float64 `json:"other_funding"`

	TrainingDetails        *model.TrainingDetails        `json:"training_details"`
	MeetingWorkshopDetails *model.MeetingWorkshopDetails `json:"meeting_workshop_details"`
	ProcurementDetails     *model.ProcurementDetails     `json:"procurement_details"`
	PrintingDetails        *model.PrintingDetails        `json:"printing_details"`
	SupervisionDetails     *model.SupervisionDetails     `json:"supervision_details"`
	PartnersDetails        *model.PartnersDetails        `json:"partners_details"`
}

func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.InitiativeID == 0 || req.Name == "" || req.Weight == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Initiative, name and weight are required"})
	}

	a := model.MainActivity{
		InitiativeID:     req.InitiativeID,
		Name:             req.Name,
		Weight:           *req.Weight,
		TargetType:       model.TargetCumulative,
		OrganizationID:   req.OrganizationID,
		SelectedMonths:   req.SelectedMonths,
		SelectedQuarters: req.SelectedQuarters,
	}
	applyActivityTargets(&a, &req)
	if err := h.repo.Create(&a); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Main activity created", "data": a})
}

func (h *ActivityHandler) GetAll(c *fiber.Ctx) error {
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

func (h *ActivityHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity id"})
	}
	a, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": a})
}

func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity id"})
	}
	a, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != "" {
		a.Name = req.Name
	}
	if req.Weight != nil {
		a.Weight = *req.Weight
	}
	if req.InitiativeID != 0 {
		a.InitiativeID = req.InitiativeID
	}
	if req.OrganizationID != nil {
		a.OrganizationID = req.OrganizationID
	}
	if req.SelectedMonths != nil {
		a.SelectedMonths = req.SelectedMonths
	}
	if req.SelectedQuarters != nil {
		a.SelectedQuarters = req.SelectedQuarters
	}
	applyActivityTargets(a, &req)

	a.Budget = nil
	if err := h.repo.Update(a); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Main activity updated", "data": a})
}

func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Main activity deleted"})
}

// WeightSummary reports activity allocation under one initiative against the
// 65% ceiling of the initiative weight.
func (h *ActivityHandler) WeightSummary(c *fiber.Ctx) error {
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
	return c.JSON(validation.ActivitySummary(init.Weight, total))
}

func (h *ActivityHandler) ValidateWeight(c *fiber.Ctx) error {
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
	summary := validation.ActivitySummary(init.Weight, total)
	if summary.IsValid {
		return c.JSON(fiber.Map{"message": "Main activity weights are valid", "is_valid": true, "data": summary})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message":  "Main activity weights exceed the available share of the initiative weight",
		"is_valid": false,
		"data":     summary,
	})
}

func (h *ActivityHandler) GetBudget(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity id"})
	}
	b, err := h.repo.GetBudget(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": b, "estimated_cost": b.EstimatedCost(), "total_funding": b.TotalFunding(), "funding_gap": b.FundingGap()})
}

// UpsertBudget creates or replaces the single budget of an activity.
func (h *ActivityHandler) UpsertBudget(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity id"})
	}
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return respondError(c, err)
	}

	var req BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	b := model.ActivityBudget{
		ActivityID:             uint(id),
		CalculationType:        model.BudgetWithoutTool,
		ActivityType:           req.ActivityType,
		TrainingDetails:        req.TrainingDetails,
		MeetingWorkshopDetails: req.MeetingWorkshopDetails,
		ProcurementDetails:     req.ProcurementDetails,
		PrintingDetails:        req.PrintingDetails,
		SupervisionDetails:     req.SupervisionDetails,
		PartnersDetails:        req.PartnersDetails,
	}
	if req.CalculationType != "" {
		b.CalculationType = req.CalculationType
	}
	if req.EstimatedCostWithTool != nil {
		b.EstimatedCostWithTool = *req.EstimatedCostWithTool
	}
	if req.EstimatedCostWithoutTool != nil {
		b.EstimatedCostWithoutTool = *req.EstimatedCostWithoutTool
	}
	if req.GovernmentTreasury != nil {
		b.GovernmentTreasury = *req.GovernmentTreasury
	}
	if req.SDGFunding != nil {
		b.SDGFunding = *req.SDGFunding
	}
	if req.PartnersFunding != nil {
		b.PartnersFunding = *req.PartnersFunding
	}
	if req.OtherFunding != nil {
		b.OtherFunding = *req.OtherFunding
	}

	if err := h.repo.UpsertBudget(&b); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Budget saved", "data": b, "funding_gap": b.FundingGap()})
}

func applyActivityTargets(a *model.MainActivity, req *ActivityRequest) {
	if req.TargetType != "" {
		a.TargetType = req.TargetType
	}
	if req.Baseline != nil {
		a.Baseline = *req.Baseline
	}
	if req.Q1Target != nil {
		a.Q1Target = *req.Q1Target
	}
	if req.Q2Target != nil {
		a.Q2Target = *req.Q2Target
	}
	if req.Q3Target != nil {
		a.Q3Target = *req.Q3Target
	}
	if req.Q4Target != nil {
		a.Q4Target = *req.Q4Target
	}
	if req.AnnualTarget != nil {
		a.AnnualTarget = *req.AnnualTarget
	}
}
