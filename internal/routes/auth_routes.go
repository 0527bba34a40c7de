package routes

import (
	"planning-backend/internal/handler"
	"planning-backend/internal/middleware"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	auth := usecase.NewAuthUsecase(users)
	hdl := handler.NewAuthHandler(auth, users)

	app.Post("/api/auth/register", hdl.Register)
	app.Post("/api/auth/login", hdl.Login)

	api := app.Group("/api/auth", middleware.Auth)
	api.Get("/me", hdl.Me)

	admin := app.Group("/api/admin/users", middleware.Auth, middleware.Role(model.RoleAdmin))
	admin.Post("/memberships", hdl.AddMembership)
	admin.Delete("/memberships/:id", hdl.RemoveMembership)
}
