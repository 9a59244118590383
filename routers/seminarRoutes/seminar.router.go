package seminarRoutes

import (
	controllers "simdiklat_backend/controllers/seminar"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	validators "simdiklat_backend/validators/seminar"

	"github.com/gofiber/fiber/v2"
)

// SetupSeminarRoutes sets up the seminar catalog routes. Reads are public;
// every mutation requires a manager or admin token.
func SetupSeminarRoutes(app *fiber.App) {
	seminarGroup := app.Group("/api/v1/seminar")

	seminarGroup.Get("/", controllers.GetAllSeminars)

	seminarGroup.Post("/",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		validators.CreateSeminar(),
		controllers.CreateSeminar)

	seminarGroup.Post("/upload-certificate",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		controllers.UploadSeminarCertificate)

	seminarGroup.Get("/:id", validators.SeminarID(), controllers.GetSeminarByID)

	seminarGroup.Put("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		validators.SeminarID(),
		validators.UpdateSeminar(),
		controllers.UpdateSeminar)

	seminarGroup.Delete("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		validators.SeminarID(),
		controllers.DeleteSeminar)
}
