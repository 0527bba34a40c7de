package handler

import (
	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type OrganizationHandler struct {
	repo repository.OrganizationRepository
}

func NewOrganizationHandler(repo repository.OrganizationRepository) *OrganizationHandler {
	return &OrganizationHandler{repo: repo}
}

type OrganizationRequest struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	ParentID   *uint    `json:"parent_id"`
	Vision     string   `json:"vision"`
	Mission    string   `json:"mission"`
	CoreValues []string `json:"core_values"`
}

func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var req OrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	org := model.Organization{
		Name:       req.Name,
		Type:       req.Type,
		ParentID:   req.ParentID,
		Vision:     req.Vision,
		Mission:    req.Mission,
		CoreValues: req.CoreValues,
	}
	if err := h.repo.Create(&org); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Organization created", "data": org})
}

func (h *OrganizationHandler) GetAll(c *fiber.Ctx) error {
	orgs, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": orgs})
}

func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid organization id"})
	}
	org, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": org})
}

func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid organization id"})
	}

	org, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	var req OrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name != "" {
		org.Name = req.Name
	}
	if req.Type != "" {
		org.Type = req.Type
	}
	org.ParentID = req.ParentID
	org.Vision = req.Vision
	org.Mission = req.Mission
	if req.CoreValues != nil {
		org.CoreValues = req.CoreValues
	}

	if err := h.repo.Update(org); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Organization updated", "data": org})
}

func (h *OrganizationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid organization id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Organization deleted"})
}

func (h *OrganizationHandler) GetAdmins(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid organization id"})
	}
	admins, err := h.repo.GetAdmins(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": admins})
}
