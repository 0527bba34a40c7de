package routes

import (
	"planning-backend/internal/handler"
	"planning-backend/internal/mailer"
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPlanRoutes(app *fiber.App, db *gorm.DB) {
	plans := repository.NewPlanRepository(db)
	objectives := repository.NewObjectiveRepository(db)
	users := repository.NewUserRepository(db)
	initiatives := repository.NewInitiativeRepository(db)
	measures := repository.NewMeasureRepository(db)
	activities := repository.NewActivityRepository(db)

	uc := usecase.NewPlanUsecase(db, plans, objectives, users, mailer.New())
	visibility := usecase.NewVisibilityResolver(initiatives, measures, activities)
	hdl := handler.NewPlanHandler(uc, plans, users, visibility)

	api := app.Group("/api/plans", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/pending-reviews", hdl.PendingReviews)
	api.Get("/:id", hdl.GetByID)
	api.Get("/:id/tree", hdl.Tree)
	api.Get("/:id/reviews", hdl.Reviews)

	api.Post("/", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Create)
	api.Put("/:id", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Update)
	api.Delete("/:id", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Delete)
	api.Post("/:id/submit", middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Submit)

	// The usecase still checks for an evaluator membership before recording a
	// review; the role gate here only fails fast.
	api.Post("/:id/approve", middleware.Role(model.RoleAdmin, model.RoleEvaluator), hdl.Approve)
	api.Post("/:id/reject", middleware.Role(model.RoleAdmin, model.RoleEvaluator), hdl.Reject)
}
