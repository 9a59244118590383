package authRoutes

import (
	authControllers "simdiklat_backend/controllers/auth"
	authValidators "simdiklat_backend/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/v1/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/refresh", authControllers.Refresh)
	authGroup.Get("/logout", authControllers.Logout)
}
