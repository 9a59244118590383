package userValidator

import (
	"strconv"
	"time"

	"simdiklat_backend/middleware"
	"simdiklat_backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateUserRequest struct {
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

type UpdateUserRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture"`
	NIK            string `json:"nik"`
	Nama           string `json:"nama"`
	Kota           string `json:"kota"`
	Usia           *int   `json:"usia"`
	Kelamin        string `json:"kelamin"`
	TanggalLahir   string `json:"tanggal_lahir"`
}

// ParseBirthDate parses a submitted birth date, nil when absent/unparsable.
func ParseBirthDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// CreateUser validator middleware
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)
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

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

// UpdateUser validator middleware
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Role != "" && !models.IsValidRole(reqData.Role) {
			errors["role"] = "Role must be peserta, manager or admin!"
		}
		if reqData.Password != "" && len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}

// UserID validates the :id path parameter.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}
		c.Locals("targetUserID", id)
		return c.Next()
	}
}
