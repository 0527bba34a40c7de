package handler

import (
	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ProgramHandler struct {
	repo repository.ObjectiveRepository
}

func NewProgramHandler(repo repository.ObjectiveRepository) *ProgramHandler {
	return &ProgramHandler{repo: repo}
}

type ProgramRequest struct {
	StrategicObjectiveID uint   `json:"strategic_objective_id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	IsDefault            *bool  `json:"is_default"`
}

func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	var req ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.StrategicObjectiveID == 0 || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Objective and name are required"})
	}
	if _, err := h.repo.GetByID(req.StrategicObjectiveID); err != nil {
		return respondError(c, err)
	}

	p := model.Program{
		StrategicObjectiveID: req.StrategicObjectiveID,
		Name:                 req.Name,
		Description:          req.Description,
		IsDefault:            true,
	}
	if req.IsDefault != nil {
		p.IsDefault = *req.IsDefault
	}
	if err := h.repo.CreateProgram(&p); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Program created", "data": p})
}

func (h *ProgramHandler) GetAll(c *fiber.Ctx) error {
	objectiveID := queryUint(c, "objective")
	list, err := h.repo.GetPrograms(objectiveID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *ProgramHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}
	p, err := h.repo.GetProgramByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": p})
}

func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}
	p, err := h.repo.GetProgramByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	var req ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	p.Description = req.Description
	if req.StrategicObjectiveID != 0 {
		p.StrategicObjectiveID = req.StrategicObjectiveID
	}
	if req.IsDefault != nil {
		p.IsDefault = *req.IsDefault
	}

	if err := h.repo.UpdateProgram(p); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Program updated", "data": p})
}

func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}
	if err := h.repo.DeleteProgram(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Program deleted"})
}

type FeedHandler struct {
	repo repository.ObjectiveRepository
}

func NewFeedHandler(repo repository.ObjectiveRepository) *FeedHandler {
	return &FeedHandler{repo: repo}
}

type FeedRequest struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	StrategicObjectiveID *uint  `json:"strategic_objective_id"`
	IsActive             *bool  `json:"is_active"`
}

func (h *FeedHandler) Create(c *fiber.Ctx) error {
	var req FeedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	f := model.InitiativeFeed{
		Name:                 req.Name,
		Description:          req.Description,
		StrategicObjectiveID: req.StrategicObjectiveID,
		IsActive:             true,
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}
	if err := h.repo.CreateFeed(&f); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Initiative feed created", "data": f})
}

func (h *FeedHandler) GetAll(c *fiber.Ctx) error {
	objectiveID := queryUint(c, "objective")
	list, err := h.repo.GetFeeds(objectiveID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *FeedHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid feed id"})
	}
	f, err := h.repo.GetFeedByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	var req FeedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != "" {
		f.Name = req.Name
	}
	f.Description = req.Description
	if req.StrategicObjectiveID != nil {
		f.StrategicObjectiveID = req.StrategicObjectiveID
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}

	if err := h.repo.UpdateFeed(f); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Initiative feed updated", "data": f})
}

func (h *FeedHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid feed id"})
	}
	if err := h.repo.DeleteFeed(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Initiative feed deleted"})
}
