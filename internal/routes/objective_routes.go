package routes

import (
	"planning-backend/internal/handler"
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupObjectiveRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewObjectiveRepository(db)
	hdl := handler.NewObjectiveHandler(repo)
	programHdl := handler.NewProgramHandler(repo)
	feedHdl := handler.NewFeedHandler(repo)

	api := app.Group("/api/objectives", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/weight-summary", hdl.WeightSummary)
	api.Get("/validate-weight", hdl.ValidateWeight)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", middleware.Role(model.RoleAdmin), hdl.Create)
	// Planners may update too: for default objectives their weight edits land
	// on planner_weight, not the admin weight.
	api.Put("/:id", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Update)
	api.Delete("/:id", middleware.Role(model.RoleAdmin), hdl.Delete)

	programs := app.Group("/api/programs", middleware.Auth)
	programs.Get("/", programHdl.GetAll)
	programs.Get("/:id", programHdl.GetByID)
	programs.Post("/", middleware.Role(model.RoleAdmin), programHdl.Create)
	programs.Put("/:id", middleware.Role(model.RoleAdmin), programHdl.Update)
	programs.Delete("/:id", middleware.Role(model.RoleAdmin), programHdl.Delete)

	feeds := app.Group("/api/initiative-feeds", middleware.Auth)
	feeds.Get("/", feedHdl.GetAll)
	feeds.Post("/", middleware.Role(model.RoleAdmin), feedHdl.Create)
	feeds.Put("/:id", middleware.Role(model.RoleAdmin), feedHdl.Update)
	feeds.Delete("/:id", middleware.Role(model.RoleAdmin), feedHdl.Delete)
}
