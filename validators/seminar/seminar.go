package seminarValidator

import (
	"strconv"
	"time"

	"simdiklat_backend/middleware"
	"simdiklat_backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateSeminarRequest struct {
	Title            string `json:"seminar_title" validate:"required,min=3"`
	Subtitle         string `json:"seminar_subtitle"`
	DateStart        string `json:"seminar_date_start" validate:"required"`
	DateEnd          string `json:"seminar_date_end" validate:"required"`
	Host             string `json:"seminar_host" validate:"required"`
	Description      string `json:"seminar_desc"`
	Type             string `json:"seminar_type"`
	JP               int    `json:"seminar_jp" validate:"min=0"`
	Image            string `json:"seminar_img"`
	Location         string `json:"seminar_location"`
	RegistrationLink string `json:"seminar_registration_link"`
	ManagerID        uint   `json:"manager_id"`
}

type UpdateSeminarRequest struct {
	Title            string            `json:"seminar_title"`
	Subtitle         string            `json:"seminar_subtitle"`
	DateStart        string            `json:"seminar_date_start"`
	DateEnd          string            `json:"seminar_date_end"`
	Host             string            `json:"seminar_host"`
	Description      string            `json:"seminar_desc"`
	Type             string            `json:"seminar_type"`
	JP               *int              `json:"seminar_jp"`
	Image            string            `json:"seminar_img"`
	Location         string            `json:"seminar_location"`
	Status           string            `json:"seminar_status"`
	RegistrationOpen *bool             `json:"seminar_registration_open"`
	RegistrationLink string            `json:"seminar_registration_link"`
	Links            []models.LinkItem `json:"seminar_links"`
	Materials        []models.LinkItem `json:"seminar_materials"`
	Feedback         string            `json:"seminar_feedback"`
}

// ParseDate accepts a plain date or a full RFC3339 timestamp.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateSeminar validator middleware
func CreateSeminar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSeminarRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Title":
					errors["seminar_title"] = "Title must be at least 3 characters long!"
				case "DateStart":
					errors["seminar_date_start"] = "Start date is required!"
				case "DateEnd":
					errors["seminar_date_end"] = "End date is required!"
				case "Host":
					errors["seminar_host"] = "Host is required!"
				case "JP":
					errors["seminar_jp"] = "JP must not be negative!"
				}
			}
		}

		if reqData.Type != "" && !models.IsValidSeminarType(reqData.Type) {
			errors["seminar_type"] = "Type must be online, onsite or hybrid!"
		}

		start, okStart := ParseDate(reqData.DateStart)
		if reqData.DateStart != "" && !okStart {
			errors["seminar_date_start"] = "Invalid start date format!"
		}
		end, okEnd := ParseDate(reqData.DateEnd)
		if reqData.DateEnd != "" && !okEnd {
			errors["seminar_date_end"] = "Invalid end date format!"
		}
		if okStart && okEnd && !end.After(start) {
			errors["seminar_date_end"] = "End date must be after start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSeminar", reqData)
		return c.Next()
	}
}

// UpdateSeminar validator middleware
func UpdateSeminar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSeminarRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Type != "" && !models.IsValidSeminarType(reqData.Type) {
			errors["seminar_type"] = "Type must be online, onsite or hybrid!"
		}
		if reqData.Status != "" && !models.IsValidSeminarStatus(reqData.Status) {
			errors["seminar_status"] = "Status must be opened, closed or completed!"
		}
		if reqData.DateStart != "" {
			if _, ok := ParseDate(reqData.DateStart); !ok {
				errors["seminar_date_start"] = "Invalid start date format!"
			}
		}
		if reqData.DateEnd != "" {
			if _, ok := ParseDate(reqData.DateEnd); !ok {
				errors["seminar_date_end"] = "Invalid end date format!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSeminarUpdate", reqData)
		return c.Next()
	}
}

// SeminarID validates the :id path parameter.
func SeminarID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid seminar id!", nil)
		}
		c.Locals("seminarID", id)
		return c.Next()
	}
}
