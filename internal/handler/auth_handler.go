package handler

import (
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth  *usecase.AuthUsecase
	users repository.UserRepository
}

func NewAuthHandler(auth *usecase.AuthUsecase, users repository.UserRepository) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}

	user, err := h.auth.Register(req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Registration failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User registered", "data": user})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	token, user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	memberships, _ := h.users.GetMemberships(user.ID)

	return c.JSON(fiber.Map{
		"message":           "Login successful",
		"token":             token,
		"user":              user,
		"userOrganizations": memberships,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.GetByID(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": user})
}

type MembershipRequest struct {
	UserID         uint   `json:"user_id"`
	OrganizationID uint   `json:"organization_id"`
	Role           string `json:"role"`
}

// AddMembership links a user to an organization with a role. Admin only.
func (h *AuthHandler) AddMembership(c *fiber.Ctx) error {
	var req MembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Role != model.RoleAdmin && req.Role != model.RolePlanner && req.Role != model.RoleEvaluator {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role must be ADMIN, PLANNER or EVALUATOR"})
	}

	link := model.OrganizationUser{
		UserID:         req.UserID,
		OrganizationID: req.OrganizationID,
		Role:           req.Role,
	}
	if err := h.users.AddToOrganization(&link); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Membership added", "data": link})
}

func (h *AuthHandler) RemoveMembership(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid membership id"})
	}
	if err := h.users.RemoveFromOrganization(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Membership removed"})
}
