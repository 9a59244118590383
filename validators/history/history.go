package historyValidator

import (
	"strconv"

	"simdiklat_backend/middleware"
	"simdiklat_backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type RegisterHistoryRequest struct {
	UserID    uint `json:"user_id" validate:"required"`
	SeminarID uint `json:"seminar_id" validate:"required"`
}

type AttendRequest struct {
	SeminarID uint `json:"seminar_id" validate:"required"`
}

type VerifyRequest struct {
	HistoryID uint   `json:"history_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Reason    string `json:"reason"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterHistoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}
		if reqData.SeminarID == 0 {
			errors["seminar_id"] = "Seminar ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedHistoryRegister", reqData)
		return c.Next()
	}
}

// Attend validator middleware
func Attend() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AttendRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Seminar ID required!", nil)
		}

		c.Locals("validatedAttend", reqData)
		return c.Next()
	}
}

// Verify validator middleware. The target status must be one of the two
// verdict states; anything else is rejected before any write happens.
func Verify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.HistoryID == 0 {
			errors["history_id"] = "History ID is required!"
		}
		if !models.IsVerdict(reqData.Status) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status!", nil)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerify", reqData)
		return c.Next()
	}
}

// HistoryID validates the :id path parameter.
func HistoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid history id!", nil)
		}
		c.Locals("historyID", id)
		return c.Next()
	}
}
