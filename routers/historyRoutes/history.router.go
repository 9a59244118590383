package historyRoutes

import (
	controllers "simdiklat_backend/controllers/history"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	validators "simdiklat_backend/validators/history"

	"github.com/gofiber/fiber/v2"
)

// SetupHistoryRoutes sets up the participation ledger routes.
func SetupHistoryRoutes(app *fiber.App) {
	historyGroup := app.Group("/api/v1/history")

	historyGroup.Post("/register", validators.Register(), controllers.RegisterSeminar)
	historyGroup.Post("/attend", middleware.JWTMiddleware, validators.Attend(), controllers.AttendSeminar)
	historyGroup.Post("/submit", middleware.JWTMiddleware, controllers.SubmitProof)

	historyGroup.Get("/user/:id", controllers.GetMySeminars)
	historyGroup.Get("/user/:id/summary", controllers.GetUserSummary)

	historyGroup.Delete("/:id", middleware.JWTMiddleware, validators.HistoryID(), controllers.DeleteHistory)

	// Manager routes
	historyGroup.Get("/seminar/:id",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		controllers.GetSeminarParticipants)

	historyGroup.Post("/verify",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		validators.Verify(),
		controllers.VerifyHistory)

	historyGroup.Post("/update-certificate",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleManager, models.RoleAdmin),
		controllers.UpdateCertificate)
}
