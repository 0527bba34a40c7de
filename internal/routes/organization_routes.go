package routes

import (
	"planning-backend/internal/handler"
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrganizationRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewOrganizationRepository(db)
	hdl := handler.NewOrganizationHandler(repo)

	// The hierarchy itself is public; management is admin-only.
	app.Get("/api/organizations", hdl.GetAll)
	app.Get("/api/organizations/:id", hdl.GetByID)

	api := app.Group("/api/organizations", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
	api.Get("/:id/admins", hdl.GetAdmins)
}
