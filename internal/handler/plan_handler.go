package handler

import (
	"time"

	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const planDateLayout = "2006-01-02"

type PlanHandler struct {
	uc         *usecase.PlanUsecase
	repo       repository.PlanRepository
	users      repository.UserRepository
	visibility *usecase.VisibilityResolver
}

func NewPlanHandler(uc *usecase.PlanUsecase, repo repository.PlanRepository, users repository.UserRepository, visibility *usecase.VisibilityResolver) *PlanHandler {
	return &PlanHandler{uc: uc, repo: repo, users: users, visibility: visibility}
}

type PlanRequest struct {
	OrganizationID            uint               `json:"organization_id"`
	PlannerName               string             `json:"planner_name"`
	Type                      string             `json:"type"`
	ExecutiveName             string             `json:"executive_name"`
	StrategicObjectiveID      uint               `json:"strategic_objective_id"`
	ProgramID                 *uint              `json:"program_id"`
	FiscalYear                string             `json:"fiscal_year"`
	FromDate                  string             `json:"from_date"`
	ToDate                    string             `json:"to_date"`
	SelectedObjectivesWeights map[string]float64 `json:"selected_objectives_weights"`
}

type ReviewRequest struct {
	Feedback string `json:"feedback"`
}

func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan := model.Plan{
		OrganizationID:            req.OrganizationID,
		PlannerName:               req.PlannerName,
		Type:                      req.Type,
		ExecutiveName:             req.ExecutiveName,
		StrategicObjectiveID:      req.StrategicObjectiveID,
		ProgramID:                 req.ProgramID,
		FiscalYear:                req.FiscalYear,
		SelectedObjectivesWeights: req.SelectedObjectivesWeights,
	}
	if plan.OrganizationID == 0 {
		plan.OrganizationID = middleware.OrganizationID(c)
	}
	if err := parsePlanDates(&plan, req.FromDate, req.ToDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.uc.Create(&plan); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Plan created", "data": plan})
}

func (h *PlanHandler) GetAll(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role == model.RoleAdmin || role == model.RoleEvaluator {
		plans, err := h.repo.ListAll()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": plans})
	}

	orgIDs, err := h.users.GetOrganizationIDs(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if len(orgIDs) == 0 {
		return c.JSON(fiber.Map{"data": []model.Plan{}})
	}
	plans, err := h.repo.ListByOrganizations(orgIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": plans})
}

func (h *PlanHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}
	plan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": plan})
}

func (h *PlanHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}
	plan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.PlannerName != "" {
		plan.PlannerName = req.PlannerName
	}
	if req.Type != "" {
		plan.Type = req.Type
	}
	plan.ExecutiveName = req.ExecutiveName
	if req.StrategicObjectiveID != 0 {
		plan.StrategicObjectiveID = req.StrategicObjectiveID
	}
	if req.ProgramID != nil {
		plan.ProgramID = req.ProgramID
	}
	if req.FiscalYear != "" {
		plan.FiscalYear = req.FiscalYear
	}
	if req.SelectedObjectivesWeights != nil {
		plan.SelectedObjectivesWeights = req.SelectedObjectivesWeights
	}
	if req.FromDate != "" || req.ToDate != "" {
		from, to := req.FromDate, req.ToDate
		if from == "" {
			from = plan.FromDate.Format(planDateLayout)
		}
		if to == "" {
			to = plan.ToDate.Format(planDateLayout)
		}
		if err := parsePlanDates(plan, from, to); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	plan.SelectedObjectives = nil
	if err := h.uc.Update(plan); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Plan updated", "data": plan})
}

func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Plan deleted"})
}

func (h *PlanHandler) Submit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}
	plan, err := h.uc.Submit(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Plan submitted", "data": plan})
}

func (h *PlanHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, true)
}

func (h *PlanHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, false)
}

func (h *PlanHandler) review(c *fiber.Ctx, approve bool) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var plan *model.Plan
	if approve {
		plan, err = h.uc.Approve(uint(id), middleware.UserID(c), req.Feedback)
	} else {
		plan, err = h.uc.Reject(uint(id), middleware.UserID(c), req.Feedback)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Plan " + plan.Status, "data": plan})
}

func (h *PlanHandler) PendingReviews(c *fiber.Ctx) error {
	plans, err := h.uc.PendingReviews(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": plans})
}

func (h *PlanHandler) Reviews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}
	reviews, err := h.repo.GetReviews(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": reviews})
}

// Tree returns the plan's objective tree scoped to what its organization may
// see, using the weights frozen on the plan.
func (h *PlanHandler) Tree(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}
	plan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": h.visibility.PlanTree(plan)})
}

func parsePlanDates(plan *model.Plan, from, to string) error {
	fromDate, err := time.Parse(planDateLayout, from)
	if err != nil {
		return err
	}
	toDate, err := time.Parse(planDateLayout, to)
	if err != nil {
		return err
	}
	plan.FromDate = fromDate
	plan.ToDate = toDate
	return nil
}
