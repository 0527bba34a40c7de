package routes

import (
	"planning-backend/internal/handler"
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCostingRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewCostingRepository(db)
	hdl := handler.NewCostingHandler(repo)

	api := app.Group("/api/costing", middleware.Auth)
	api.Get("/:table", hdl.List)
	api.Get("/:table/:id", hdl.Get)

	// Reference tables are maintained by admins only.
	api.Post("/:table", middleware.Role(model.RoleAdmin), hdl.Create)
	api.Put("/:table/:id", middleware.Role(model.RoleAdmin), hdl.Update)
	api.Delete("/:table/:id", middleware.Role(model.RoleAdmin), hdl.Delete)
}
