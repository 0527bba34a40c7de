package handler

import (
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type InitiativeHandler struct {
	repo       repository.InitiativeRepository
	objectives repository.ObjectiveRepository
	users      repository.UserRepository
}

func NewInitiativeHandler(repo repository.InitiativeRepository, objectives repository.ObjectiveRepository, users repository.UserRepository) *InitiativeHandler {
	return &InitiativeHandler{repo: repo, objectives: objectives, users: users}
}

type InitiativeRequest struct {
	Name                 string   `json:"name"`
	Weight               *float64 `json:"weight"`
	StrategicObjectiveID *uint    `json:"strategic_objective_id"`
	ProgramID            *uint    `json:"program_id"`
	IsDefault            *bool    `json:"is_default"`
	OrganizationID       *uint    `json:"organization_id"`
	InitiativeFeedID     *uint    `json:"initiative_feed_id"`
}

func (h *InitiativeHandler) Create(c *fiber.Ctx) error {
	var req InitiativeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" || req.Weight == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and weight are required"})
	}

	init := model.StrategicInitiative{
		Name:                 req.Name,
		Weight:               *req.Weight,
		StrategicObjectiveID: req.StrategicObjectiveID,
		ProgramID:            req.ProgramID,
		IsDefault:            true,
		OrganizationID:       req.OrganizationID,
		InitiativeFeedID:     req.InitiativeFeedID,
	}
	if req.IsDefault != nil {
		init.IsDefault = *req.IsDefault
	}
	// Custom initiatives authored by a planner inherit the planner's
	// organization when none is given.
	if !init.IsDefault && init.OrganizationID == nil {
		if orgID := middleware.OrganizationID(c); orgID != 0 {
			init.OrganizationID = &orgID
		}
	}

	if err := h.repo.Create(&init); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Initiative created", "data": init})
}

func (h *InitiativeHandler) GetAll(c *fiber.Ctx) error {
	orgIDs, err := h.users.GetOrganizationIDs(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.repo.ListVisible(queryUint(c, "objective"), queryUint(c, "program"), orgIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *InitiativeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid initiative id"})
	}
	init, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": init})
}

func (h *InitiativeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid initiative id"})
	}
	init, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	var req InitiativeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != "" {
		init.Name = req.Name
	}
	if req.Weight != nil {
		init.Weight = *req.Weight
	}
	if req.StrategicObjectiveID != nil || req.ProgramID != nil {
		init.StrategicObjectiveID = req.StrategicObjectiveID
		init.ProgramID = req.ProgramID
	}
	if req.IsDefault != nil {
		init.IsDefault = *req.IsDefault
	}
	if req.OrganizationID != nil {
		init.OrganizationID = req.OrganizationID
	}
	if req.InitiativeFeedID != nil {
		init.InitiativeFeedID = req.InitiativeFeedID
	}

	init.StrategicObjective = nil
	init.Program = nil
	if err := h.repo.Update(init); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Initiative updated", "data": init})
}

func (h *InitiativeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid initiative id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Initiative deleted"})
}

// WeightSummary reports the allocation state under one parent. Initiatives
// under an objective must consume its effective weight exactly; under a
// program they may stay below the ceiling.
func (h *InitiativeHandler) WeightSummary(c *fiber.Ctx) error {
	summary, err := h.summarize(c)
	if err != nil {
		return respondError(c, err)
	}
	if summary == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter objective or program is required"})
	}
	return c.JSON(summary)
}

func (h *InitiativeHandler) ValidateWeight(c *fiber.Ctx) error {
	summary, err := h.summarize(c)
	if err != nil {
		return respondError(c, err)
	}
	if summary == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter objective or program is required"})
	}
	if summary.IsValid {
		return c.JSON(fiber.Map{"message": "Initiative weights are valid", "is_valid": true, "data": summary})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message":  "Initiative weights must total the parent weight",
		"is_valid": false,
		"data":     summary,
	})
}

func (h *InitiativeHandler) summarize(c *fiber.Ctx) (*validation.Summary, error) {
	if objectiveID := queryUint(c, "objective"); objectiveID != nil {
		obj, err := h.objectives.GetByID(*objectiveID)
		if err != nil {
			return nil, err
		}
		total, err := h.repo.SumWeightByObjective(*objectiveID, 0)
		if err != nil {
			return nil, err
		}
		s := validation.InitiativeSummary(obj.EffectiveWeight(), total, true)
		return &s, nil
	}
	if programID := queryUint(c, "program"); programID != nil {
		if _, err := h.objectives.GetProgramByID(*programID); err != nil {
			return nil, err
		}
		total, err := h.repo.SumWeightByProgram(*programID, 0)
		if err != nil {
			return nil, err
		}
		s := validation.InitiativeSummary(repository.ProgramParentWeight, total, false)
		return &s, nil
	}
	return nil, nil
}
