package userRoutes

import (
	controllers "simdiklat_backend/controllers/userControllers"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	validators "simdiklat_backend/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the account directory routes. Every route requires
// a bearer token; account creation and deletion are admin only.
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/v1/users", middleware.JWTMiddleware)

	userGroup.Get("/", controllers.GetAllUsers)
	userGroup.Post("/",
		middleware.RequireRole(models.RoleAdmin),
		validators.CreateUser(),
		controllers.CreateUser)

	userGroup.Get("/:id", validators.UserID(), controllers.GetUserByID)
	userGroup.Put("/:id", validators.UserID(), validators.UpdateUser(), controllers.UpdateUser)
	userGroup.Delete("/:id",
		middleware.RequireRole(models.RoleAdmin),
		validators.UserID(),
		controllers.DeleteUser)
}
