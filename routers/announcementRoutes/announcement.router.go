package announcementRoutes

import (
	controllers "simdiklat_backend/controllers/announcement"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	validators "simdiklat_backend/validators/announcement"

	"github.com/gofiber/fiber/v2"
)

// SetupAnnouncementRoutes sets up the announcement board routes. Reads are
// public; writes require a manager or admin token.
func SetupAnnouncementRoutes(app *fiber.App) {
	group := app.Group("/api/v1/announcements")

	group.Get("/", controllers.GetAllAnnouncements)

	group.Post("/",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		validators.Create(),
		controllers.CreateAnnouncement)

	group.Put("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		validators.AnnouncementID(),
		controllers.UpdateAnnouncement)

	group.Delete("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		validators.AnnouncementID(),
		controllers.DeleteAnnouncement)
}
