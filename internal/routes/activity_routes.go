package routes

import (
	"planning-backend/internal/handler"
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupActivityRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewActivityRepository(db)
	initiatives := repository.NewInitiativeRepository(db)
	users := repository.NewUserRepository(db)
	hdl := handler.NewActivityHandler(repo, initiatives, users)

	api := app.Group("/api/activities", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/weight-summary", hdl.WeightSummary)
	api.Get("/validate-weight", hdl.ValidateWeight)
	api.Get("/:id", hdl.GetByID)
	api.Get("/:id/budget", hdl.GetBudget)
	api.Post("/", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Create)
	api.Put("/:id", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Update)
	api.Delete("/:id", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Delete)
	api.Post("/:id/budget", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.UpsertBudget)
}
