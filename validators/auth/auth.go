package authValidator

import (
	"time"

	"simdiklat_backend/middleware"
	"simdiklat_backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterRequest is the registration payload. TanggalLahir accepts either a
// plain date or a full RFC3339 timestamp.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role"`
	NIK          string `json:"nik" validate:"required"`
	Nama         string `json:"nama" validate:"required"`
	Kota         string `json:"kota"`
	Usia         int    `json:"usia"`
	Kelamin      string `json:"kelamin"`
	TanggalLahir string `json:"tanggal_lahir"`
}

// BirthDate parses the submitted birth date, nil when absent or unparsable.
func (r *RegisterRequest) BirthDate() *time.Time {
	if r.TanggalLahir == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.TanggalLahir); err == nil {
			return &t
		}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Email":
					errors["email"] = "Valid email is required!"
				case "Password":
					errors["password"] = "Password must be at least 8 characters long!"
				case "NIK":
					errors["nik"] = "NIK is required!"
				case "Nama":
					errors["nama"] = "Nama is required!"
				}
			}
		}

		if reqData.Role != "" && !models.IsValidRole(reqData.Role) {
			errors["role"] = "Role must be peserta, manager or admin!"
		}

		if reqData.TanggalLahir != "" && reqData.BirthDate() == nil {
			errors["tanggal_lahir"] = "Invalid birth date format!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Email":
					errors["email"] = "Valid email is required!"
				case "Password":
					errors["password"] = "Password is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
