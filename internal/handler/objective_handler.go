package handler

import (
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ObjectiveHandler struct {
	repo repository.ObjectiveRepository
}

func NewObjectiveHandler(repo repository.ObjectiveRepository) *ObjectiveHandler {
	return &ObjectiveHandler{repo: repo}
}

type ObjectiveRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Weight        *float64 `json:"weight"`
	IsDefault     *bool    `json:"is_default"`
	PlannerWeight *float64 `json:"planner_weight"`
}

func (h *ObjectiveHandler) Create(c *fiber.Ctx) error {
	var req ObjectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Weight == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Weight is required"})
	}

	obj := model.StrategicObjective{
		Title:         req.Title,
		Description:   req.Description,
		Weight:        *req.Weight,
		IsDefault:     true,
		PlannerWeight: req.PlannerWeight,
	}
	if req.IsDefault != nil {
		obj.IsDefault = *req.IsDefault
	}
	if err := h.repo.Create(&obj); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Objective created", "data": obj})
}

func (h *ObjectiveHandler) GetAll(c *fiber.Ctx) error {
	objs, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": objs})
}

func (h *ObjectiveHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid objective id"})
	}
	obj, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": obj})
}

func (h *ObjectiveHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid objective id"})
	}
	obj, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	var req ObjectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title != "" {
		obj.Title = req.Title
	}
	obj.Description = req.Description

	// A planner adjusting a default objective sets the override, never the
	// admin weight itself.
	role, _ := c.Locals("role").(string)
	if req.Weight != nil {
		if role == model.RolePlanner && obj.IsDefault {
			obj.PlannerWeight = req.Weight
		} else {
			obj.Weight = *req.Weight
		}
	}
	if req.PlannerWeight != nil {
		obj.PlannerWeight = req.PlannerWeight
	}

	if err := h.repo.Update(obj); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Objective updated", "data": obj})
}

func (h *ObjectiveHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid objective id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Objective deleted"})
}

// WeightSummary reports whether all objectives' effective weights reach 100.
// This is the on-demand system check; writes are never blocked by it.
func (h *ObjectiveHandler) WeightSummary(c *fiber.Ctx) error {
	total, err := h.repo.TotalEffectiveWeight()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(validation.ObjectiveSummary(total))
}

func (h *ObjectiveHandler) ValidateWeight(c *fiber.Ctx) error {
	total, err := h.repo.TotalEffectiveWeight()
	if err != nil {
		return respondError(c, err)
	}
	summary := validation.ObjectiveSummary(total)
	if summary.IsValid {
		return c.JSON(fiber.Map{"message": "Total weight of all objectives is 100%", "is_valid": true})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message":  fiber.Map{"detail": "Total weight of all objectives should be 100%", "total": summary.Total},
		"is_valid": false,
	})
}
